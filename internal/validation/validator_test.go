// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package validation

import (
	"strings"
	"testing"
)

func TestGetValidatorSingleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// resolveQuery mirrors the query parameters of the resolution endpoints.
type resolveQuery struct {
	Query  string `validate:"required,min=1,max=500"`
	Domain string `validate:"omitempty,oneof=cuisine establishment_type service_type"`
	Limit  int    `validate:"omitempty,min=1,max=500"`
}

func TestValidateStructValid(t *testing.T) {
	tests := []struct {
		name  string
		input resolveQuery
	}{
		{
			name:  "typical resolve request",
			input: resolveQuery{Query: "nasi lemak", Domain: "cuisine", Limit: 20},
		},
		{
			name:  "minimum query length",
			input: resolveQuery{Query: "a"},
		},
		{
			name:  "maximum query length",
			input: resolveQuery{Query: strings.Repeat("x", 500), Limit: 500},
		},
		{
			name:  "omitted optional fields",
			input: resolveQuery{Query: "dim sum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verr := ValidateStruct(&tt.input); verr != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", verr)
			}
		})
	}
}

func TestValidateStructInvalid(t *testing.T) {
	tests := []struct {
		name      string
		input     resolveQuery
		wantField string
		wantTag   string
	}{
		{
			name:      "missing query",
			input:     resolveQuery{Domain: "cuisine"},
			wantField: "Query",
			wantTag:   "required",
		},
		{
			name:      "query too long",
			input:     resolveQuery{Query: strings.Repeat("x", 501)},
			wantField: "Query",
			wantTag:   "max",
		},
		{
			name:      "unknown domain",
			input:     resolveQuery{Query: "laksa", Domain: "beverages"},
			wantField: "Domain",
			wantTag:   "oneof",
		},
		{
			name:      "limit too large",
			input:     resolveQuery{Query: "laksa", Limit: 501},
			wantField: "Limit",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %s, want %s", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %s, want %s", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateStructCoordinates(t *testing.T) {
	type coords struct {
		Latitude  float64 `validate:"latitude"`
		Longitude float64 `validate:"longitude"`
	}

	if verr := ValidateStruct(&coords{Latitude: 3.1579, Longitude: 101.7123}); verr != nil {
		t.Errorf("Valid KLCC coordinates rejected: %v", verr)
	}

	verr := ValidateStruct(&coords{Latitude: 95.0, Longitude: 101.7123})
	if verr == nil {
		t.Fatal("Expected latitude out of range to fail")
	}
	if got := verr.Errors()[0].Tag(); got != "latitude" {
		t.Errorf("Tag() = %s, want latitude", got)
	}
}

func TestToAPIErrorSingleError(t *testing.T) {
	verr := ValidateStruct(&resolveQuery{})
	if verr == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %s, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "Query is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Query is required")
	}
	if apiErr.Details["field"] != "Query" {
		t.Errorf("Details field = %v, want Query", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultipleErrors(t *testing.T) {
	verr := ValidateStruct(&resolveQuery{Domain: "beverages", Limit: 501})
	if verr == nil {
		t.Fatal("Expected validation error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("Expected 3 validation errors, got %d", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %s, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Query") {
		t.Errorf("Combined message missing Query: %s", apiErr.Message)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details fields has wrong type: %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("Details lists %d fields, want 3", len(fields))
	}
}

func TestTranslateErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{
			name: "string min length",
			input: &struct {
				Query string `validate:"min=2"`
			}{Query: "a"},
			want: "Query must be at least 2 characters",
		},
		{
			name: "numeric max",
			input: &struct {
				Limit int `validate:"max=500"`
			}{Limit: 1000},
			want: "Limit must be at most 500",
		},
		{
			name: "oneof includes allowed values",
			input: &struct {
				Domain string `validate:"oneof=cuisine service_type"`
			}{Domain: "nope"},
			want: "Domain must be one of: cuisine service_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("Expected validation error")
			}
			if got := verr.Errors()[0].Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestValidationErrorErrorString(t *testing.T) {
	empty := &RequestValidationError{}
	if empty.Error() != "validation failed" {
		t.Errorf("Empty Error() = %q, want %q", empty.Error(), "validation failed")
	}

	verr := ValidateStruct(&resolveQuery{Query: "", Domain: "beverages"})
	if verr == nil {
		t.Fatal("Expected validation error")
	}
	msg := verr.Error()
	if !strings.Contains(msg, "; ") {
		t.Errorf("Combined Error() should join messages with semicolons: %q", msg)
	}
}
