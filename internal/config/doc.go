// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config resolves the runtime configuration of the site.
//
// Precedence is ENV (FECAUCA_*) > YAML file > built-in defaults. The YAML file
// is decoded strictly; unknown keys are rejected.
package config
