// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys shared across spans.
const (
	HTTPMethodKey     = "http.method"
	HTTPStatusCodeKey = "http.status_code"
	HTTPRouteKey      = "http.route"
	HTTPURLKey        = "http.url"

	BlogSourceKey    = "blog.source"
	BlogPostsKey     = "blog.posts"
	BlogFallbackKey  = "blog.fallback"
	BlogCacheHitKey  = "blog.cache_hit"
	BlogSheetHostKey = "blog.sheet_host"

	PrerenderRoutesKey = "prerender.routes"
	PrerenderSkipKey   = "prerender.skipped"
	PrerenderDistKey   = "prerender.dist_dir"

	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// HTTPAttributes creates common HTTP span attributes.
func HTTPAttributes(method, route, url string, statusCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(HTTPMethodKey, method),
		attribute.String(HTTPRouteKey, route),
		attribute.String(HTTPURLKey, url),
		attribute.Int(HTTPStatusCodeKey, statusCode),
	}
}

// BlogAttributes describes the outcome of a blog load.
func BlogAttributes(source string, posts int, fallback bool) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if source != "" {
		attrs = append(attrs, attribute.String(BlogSourceKey, source))
	}
	return append(attrs,
		attribute.Int(BlogPostsKey, posts),
		attribute.Bool(BlogFallbackKey, fallback),
	)
}

// PrerenderAttributes describes a static generation run.
func PrerenderAttributes(distDir string, routes, skipped int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(PrerenderDistKey, distDir),
		attribute.Int(PrerenderRoutesKey, routes),
		attribute.Int(PrerenderSkipKey, skipped),
	}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(_ error, errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
