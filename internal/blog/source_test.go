// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fecauca/fecauca-web/internal/resilience"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, "id,title,excerpt\n1,Uno,Resumen\n")
	}))
	defer srv.Close()

	posts, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Post{{ID: "1", Title: "Uno", Excerpt: "Resumen"}}, posts)
}

func TestHTTPSource_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrUpstream)

	var se *SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Status)
	assert.Equal(t, "upstream_status", fallbackReason(err))
}

func TestHTTPSource_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body>login required</body></html>")
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Equal(t, "missing_columns", fallbackReason(err))
}

func TestHTTPSource_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstream)

	var se *SourceError
	require.True(t, errors.As(err, &se))
	assert.Zero(t, se.Status)
	assert.Equal(t, "transport", fallbackReason(err))
}

func TestHTTPSource_InvalidURL(t *testing.T) {
	_, err := (&HTTPSource{URL: "://bad"}).Fetch(context.Background())
	var se *SourceError
	require.True(t, errors.As(err, &se))
}

func TestSourceError_Messages(t *testing.T) {
	assert.Equal(t, "fetch http://x: status 404", (&SourceError{URL: "http://x", Status: 404}).Error())
	assert.Equal(t, "fetch http://x: boom", (&SourceError{URL: "http://x", Err: errors.New("boom")}).Error())
	assert.Equal(t, "no_rows", fallbackReason(ErrNoRows))
	assert.Equal(t, "parse", fallbackReason(errors.New("other")))
}

func TestGuardedSource_ShortCircuitsAfterFailures(t *testing.T) {
	calls := 0
	src := GuardedSource{
		Source: SourceFunc(func(context.Context) ([]Post, error) {
			calls++
			return nil, &SourceError{URL: "https://sheet", Status: http.StatusBadGateway}
		}),
		Breaker: resilience.NewCircuitBreaker("sheet-test", 2, time.Hour),
	}

	for i := 0; i < 2; i++ {
		_, err := src.Fetch(context.Background())
		require.ErrorIs(t, err, ErrUpstream)
	}
	_, err := src.Fetch(context.Background())
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "circuit_open", fallbackReason(err))
}
