// SPDX-License-Identifier: MIT

package config

// ExampleFile returns the defaults in file form, so that loading the marshaled
// result reproduces Defaults. The redis password is left out.
func ExampleFile() FileConfig {
	d := Defaults()
	return FileConfig{
		LogLevel: d.LogLevel,
		SiteURL:  d.SiteURL,
		DistDir:  d.DistDir,
		Server: ServerFile{
			Listen:          d.Server.Listen,
			MetricsListen:   ptr(d.Server.MetricsListen),
			ReadTimeout:     d.Server.ReadTimeout.String(),
			WriteTimeout:    d.Server.WriteTimeout.String(),
			IdleTimeout:     d.Server.IdleTimeout.String(),
			ShutdownTimeout: d.Server.ShutdownTimeout.String(),
			MaxHeaderBytes:  ptr(d.Server.MaxHeaderBytes),
		},
		Blog: BlogFile{
			SheetURL:     d.Blog.SheetURL,
			FetchTimeout: d.Blog.FetchTimeout.String(),
			CacheTTL:     d.Blog.CacheTTL.String(),
			FallbackTTL:  d.Blog.FallbackTTL.String(),
		},
		Cache: CacheFile{
			Backend:     d.Cache.Backend,
			RedisAddr:   d.Cache.RedisAddr,
			RedisDB:     ptr(d.Cache.RedisDB),
			PageEntries: ptr(d.Cache.PageEntries),
		},
		RateLimit: RateLimitFile{
			Enabled:           ptr(d.RateLimit.Enabled),
			RequestsPerMinute: ptr(d.RateLimit.RequestsPerMinute),
		},
		Tracing: TracingFileConf{
			Enabled:     ptr(d.Tracing.Enabled),
			Exporter:    d.Tracing.Exporter,
			Endpoint:    d.Tracing.Endpoint,
			SampleRate:  ptr(d.Tracing.SampleRate),
			Environment: d.Tracing.Environment,
		},
	}
}

func ptr[T any](v T) *T { return &v }
