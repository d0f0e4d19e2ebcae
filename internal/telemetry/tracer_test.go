// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false, ServiceName: "test", ExporterType: "grpc"})
	require.NoError(t, err)
	assert.Nil(t, provider.tp)

	_, span := otel.Tracer("test").Start(context.Background(), "noop-check")
	assert.False(t, span.IsRecording())
	span.End()

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_InvalidExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Enabled: true, ServiceName: "test", ExporterType: "invalid"})
	require.Error(t, err)
	assert.Equal(t, "unsupported exporter type: invalid (supported: grpc, http)", err.Error())
}

func TestNewProvider_HTTPExporter(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		Enabled:      true,
		ServiceName:  "test",
		ExporterType: "http",
		Endpoint:     "127.0.0.1:4318",
		SamplingRate: 0.5,
	})
	require.NoError(t, err)
	require.NotNil(t, provider.tp)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := Tracer("test").Start(context.Background(), "op")
	span.End()
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestAttributes(t *testing.T) {
	attrs := BlogAttributes("", 3, true)
	assert.Equal(t, []attribute.KeyValue{
		attribute.Int(BlogPostsKey, 3),
		attribute.Bool(BlogFallbackKey, true),
	}, attrs)

	assert.Len(t, BlogAttributes("sheet", 1, false), 3)
	assert.Len(t, PrerenderAttributes("dist", 4, 1), 3)
	assert.Len(t, HTTPAttributes("GET", "/", "http://x/", 200), 4)

	errAttrs := ErrorAttributes(errors.New("boom"), "timeout")
	assert.Equal(t, attribute.String(ErrorTypeKey, "timeout"), errAttrs[1])
}
