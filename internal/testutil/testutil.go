// Package testutil provides shared test utilities for the goldcheck project.
// These helpers cover serialization (YAML/JSON) round-trips and optional
// field construction across multiple packages.
package testutil

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Pointer Helpers
// ============================================================================

// StrPtr creates a pointer to a string - useful for optional fields in tests.
func StrPtr(s string) *string {
	return &s
}

// IntPtr creates a pointer to an int - useful for optional fields in tests.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr creates a pointer to a bool - useful for optional fields in tests.
func BoolPtr(b bool) *bool {
	return &b
}

// ============================================================================
// Round-Trip Assertions
// ============================================================================

// AssertYAMLRoundTrip marshals v to YAML and unmarshals back, failing if not equal.
// Uses reflect.DeepEqual for comparison.
func AssertYAMLRoundTrip[T any](t *testing.T, original T) {
	t.Helper()
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var parsed T
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, parsed) {
		t.Errorf("YAML round-trip mismatch:\noriginal: %+v\nparsed:   %+v", original, parsed)
	}
}

// AssertJSONRoundTrip marshals v to JSON and unmarshals back, failing if not equal.
// Uses reflect.DeepEqual for comparison.
func AssertJSONRoundTrip[T any](t *testing.T, original T) {
	t.Helper()
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var parsed T
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, parsed) {
		t.Errorf("JSON round-trip mismatch:\noriginal: %+v\nparsed:   %+v", original, parsed)
	}
}
