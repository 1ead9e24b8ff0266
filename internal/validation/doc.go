// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

// Package validation provides struct validation using go-playground/validator
// v10.
//
// A single validator instance is shared by the whole process. It caches
// struct metadata, so repeated validation of the same request types is cheap.
// On top of the built-in tags it registers:
//
//   - notblank: string is non-empty after trimming whitespace
//
// Failures come back as *RequestValidationError with one ValidationError per
// field and messages such as "K must be greater than or equal to 0".
//
// Example:
//
//	type RecommendRequest struct {
//	    Query string `validate:"required,notblank"`
//	    K     int    `validate:"gte=0,lte=1000"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return fmt.Errorf("invalid recommend request: %w", verr)
//	}
package validation
