// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package logging provides the zerolog-based structured logger shared by every
// Gamefinder package.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("apps", n).Msg("catalog loaded")
//	logging.Err(err).Str("path", path).Msg("catalog load failed")
//
// # Context
//
// Each CLI invocation gets a short correlation ID so that resolution,
// recommendation, and sampling log lines from one run can be grouped:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Str("query", q).Msg("resolving app")
//
// # Configuration
//
// Environment variables, read by package config:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate event chains with Msg or Send, otherwise nothing is written.
package logging
