// Gamefinder - Catalog Search and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamefinder

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// lookupRequest mirrors the shape of the catalog request structs.
type lookupRequest struct {
	Query string `validate:"required,notblank,max=200"`
	K     int    `validate:"gte=0,lte=100"`
	Mode  string `validate:"omitempty,oneof=fuzzy exact"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input lookupRequest
	}{
		{"typical", lookupRequest{Query: "hollow knight", K: 5, Mode: "fuzzy"}},
		{"zero k", lookupRequest{Query: "terraria"}},
		{"max k", lookupRequest{Query: "x", K: 100, Mode: "exact"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     lookupRequest
		wantField string
		wantTag   string
	}{
		{"missing query", lookupRequest{K: 1}, "Query", "required"},
		{"blank query", lookupRequest{Query: "   "}, "Query", "notblank"},
		{"query too long", lookupRequest{Query: strings.Repeat("a", 201)}, "Query", "max"},
		{"negative k", lookupRequest{Query: "x", K: -1}, "K", "gte"},
		{"k too high", lookupRequest{Query: "x", K: 101}, "K", "lte"},
		{"unknown mode", lookupRequest{Query: "x", Mode: "phonetic"}, "Mode", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			found := false
			for _, e := range err.Errors() {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, err.Errors())
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&lookupRequest{K: -5, Mode: "bogus"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := err.Fields()
	if len(fields) != 3 {
		t.Fatalf("Fields() = %v, want 3 entries", fields)
	}

	msg := err.Error()
	for _, want := range []string{"Query is required", "K must be greater than or equal to 0", "Mode must be one of: fuzzy exact"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}

func TestValidate_NilOnSuccess(t *testing.T) {
	if err := Validate(&lookupRequest{Query: "ok"}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := Validate(&lookupRequest{})
	var verr *RequestValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %T, want *RequestValidationError", err)
	}
}

type nested struct {
	Items []lookupRequest `validate:"dive"`
}

func TestNestedStructValidation(t *testing.T) {
	err := ValidateStruct(&nested{Items: []lookupRequest{{Query: "a"}, {Query: ""}}})
	if err == nil {
		t.Fatal("expected error from nested element")
	}
	if err.Errors()[0].Field() != "Query" {
		t.Errorf("field = %s, want Query", err.Errors()[0].Field())
	}
}

func TestErrorMessages(t *testing.T) {
	type bounds struct {
		Name  string `validate:"min=3"`
		Count int    `validate:"max=2"`
	}

	err := ValidateStruct(&bounds{Name: "ab", Count: 3})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "Name must be at least 3 characters") {
		t.Errorf("missing string min message: %q", msg)
	}
	if !strings.Contains(msg, "Count must be at most 2") {
		t.Errorf("missing numeric max message: %q", msg)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	var verr RequestValidationError
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", verr.Error(), "validation failed")
	}
}
