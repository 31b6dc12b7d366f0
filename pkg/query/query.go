// Copyright (c) 2026 ReadTrace. All rights reserved.

// Package query contains small helpers for parsing URL query parameters.
package query

import "strings"

// StringSlice splits a comma-separated query value into a slice of
// trimmed, non-empty strings. Returns nil for an empty input.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
