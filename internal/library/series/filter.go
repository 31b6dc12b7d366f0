// Copyright (c) 2026 ReadTrace. All rights reserved.

package series

import (
	"strings"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/pkg/slice"
)

// Filters narrows an in-memory series list. A zero-valued criterion makes
// its step a full passthrough.
type Filters struct {
	// Query is matched case-insensitively as a substring of the title,
	// the platform display name, or any genre tag.
	Query string
	// Platforms keeps only series on one of these canonical platform IDs.
	Platforms []string
	// Statuses keeps only series in one of these reading statuses.
	Statuses []ReadingStatus
}

// ApplyFilters narrows list by text query, then platform set, then status
// set. The three predicates are independent, so ordering does not change
// the result; it is fixed here for parity with the documented contract.
func ApplyFilters(list []Series, filters Filters) []Series {
	result := list

	if query := strings.ToLower(strings.TrimSpace(filters.Query)); query != "" {
		result = slice.Filter(result, func(s Series) bool {
			return matchesQuery(s, query)
		})
	}

	if len(filters.Platforms) > 0 {
		wanted := toSet(filters.Platforms)
		result = slice.Filter(result, func(s Series) bool {
			_, ok := wanted[s.Platform]
			return ok
		})
	}

	if len(filters.Statuses) > 0 {
		wanted := make(map[ReadingStatus]struct{}, len(filters.Statuses))
		for _, status := range filters.Statuses {
			wanted[status] = struct{}{}
		}
		result = slice.Filter(result, func(s Series) bool {
			_, ok := wanted[s.Status]
			return ok
		})
	}

	return result
}

// matchesQuery reports whether the lowered query appears in the title,
// the platform display name, or any genre tag.
func matchesQuery(s Series, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(s.Title), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(platform.DisplayName(s.Platform)), loweredQuery) {
		return true
	}
	for _, genre := range s.Genres {
		if strings.Contains(strings.ToLower(genre), loweredQuery) {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
