package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats (truncated), strings and byte slices.
// Values that cannot be converted yield ok=false.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case float32:
		return ToInt(float64(v))
	case fmt.Stringer:
		return ToInt(v.String())
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, false
	}
}

// ToString converts various types to string.
// Nil yields ok=false; composite values are rejected rather than formatted.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case nil, map[string]any, []any:
		return "", false
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// ToMap returns val as a JSON object, or nil when it is not one.
func ToMap(val any) map[string]any {
	if m, ok := val.(map[string]any); ok {
		return m
	}
	return nil
}

// ToSlice returns val as a JSON array, or nil when it is not one.
func ToSlice(val any) []any {
	switch v := val.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}
