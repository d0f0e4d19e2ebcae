// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	FieldRequestID = "request_id"
	FieldEvent     = "event"
	FieldComponent = "component"

	// Blog fields
	FieldPostID   = "post_id"
	FieldSource   = "source"
	FieldSheetURL = "sheet_url"

	// Path / URL fields
	FieldPath    = "path"
	FieldRoute   = "route"
	FieldDistDir = "dist_dir"
)
