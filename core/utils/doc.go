// Package utils contains conversion helpers for loosely typed JSON values.
//
// Upstream payloads are decoded into map[string]any, so numbers arrive as
// float64 and optional fields may hold anything. These helpers turn such values
// into concrete Go types and report whether the conversion made sense.
package utils
