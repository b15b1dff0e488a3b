// Package jsonutil provides tolerant decoding of JSON produced by LLMs,
// which frequently return numbers where strings are expected (and vice
// versa) or wrap output in markdown fences.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes ```json / ``` markdown fences around a JSON payload.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// FlexibleString converts a json.RawMessage to a string, handling numbers
// and booleans. Returns empty string for null/empty.
func FlexibleString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		return strVal
	}

	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		if numVal == float64(int64(numVal)) {
			return fmt.Sprintf("%d", int64(numVal))
		}
		return fmt.Sprintf("%g", numVal)
	}

	var boolVal bool
	if err := json.Unmarshal(raw, &boolVal); err == nil {
		return fmt.Sprintf("%t", boolVal)
	}

	return string(raw)
}

// FlexibleInts converts a raw JSON array to a slice of ints, accepting
// numbers, numeric strings, and silently skipping anything else.
func FlexibleInts(raw json.RawMessage) []int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			out = append(out, n)
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			var parsed int
			if _, scanErr := fmt.Sscanf(strings.TrimSpace(s), "%d", &parsed); scanErr == nil {
				out = append(out, parsed)
			}
		}
	}
	return out
}

// FlexibleStrings converts a raw JSON array to a slice of strings, coercing
// numbers and booleans element-wise.
func FlexibleStrings(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := FlexibleString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
