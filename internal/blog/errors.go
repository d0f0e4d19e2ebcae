// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package blog

import (
	"errors"
	"fmt"

	"github.com/fecauca/fecauca-web/internal/resilience"
)

var (
	// ErrMissingColumns is returned when the CSV header lacks id or title.
	ErrMissingColumns = errors.New("csv header is missing required columns")
	// ErrNoRows is returned when the CSV has a header but no usable rows.
	ErrNoRows = errors.New("csv has no data rows")
	// ErrUpstream classifies non-2xx answers from the sheet host.
	ErrUpstream = errors.New("sheet upstream error")
)

// SourceError describes a failed HTTP fetch of the sheet.
type SourceError struct {
	URL    string
	Status int
	Err    error
}

func (e *SourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap exposes the transport error, or ErrUpstream for HTTP status failures.
func (e *SourceError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUpstream
}

// fallbackReason maps an error to a low-cardinality metrics label.
func fallbackReason(err error) string {
	var se *SourceError
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrMissingColumns):
		return "missing_columns"
	case errors.Is(err, ErrNoRows):
		return "no_rows"
	case errors.As(err, &se) && se.Status != 0:
		return "upstream_status"
	case errors.As(err, &se):
		return "transport"
	default:
		return "parse"
	}
}
