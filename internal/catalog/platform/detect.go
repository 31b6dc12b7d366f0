// Copyright (c) 2026 ReadTrace. All rights reserved.

package platform

import (
	"net/url"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/readtrace/readtrace/internal/platform/apperr"
)

// # URL Detection

// DetectFromURL resolves a raw URL to the platform that serves it.
//
// It returns ("", false) for unparseable URLs and for hosts no registered
// platform claims. Browser-history import uses this as its admission filter.
func DetectFromURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	for i := range registry {
		if registry[i].hostPattern.MatchString(host) {
			return registry[i].ID, true
		}
	}
	return "", false
}

// ExtractChapter pulls a chapter number out of a URL path or page title
// using the platform's own numbering convention. The raw matched string is
// returned; the importer owns numeric validation.
func ExtractChapter(platformID, text string) (string, bool) {
	info, ok := index[platformID]
	if !ok {
		return "", false
	}
	match := info.chapterPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// TitlePathSegment returns the URL path segment index carrying the series
// title slug for the platform, or -1 when titles are not URL-derivable.
func TitlePathSegment(platformID string) int {
	if info, ok := index[platformID]; ok {
		return info.titleSegment
	}
	return -1
}

// # Free-Text Matching

// Match resolves free-form text (e.g. the Platform column of an imported
// CSV) to a canonical platform identifier.
//
// An exact hit via [Normalize] wins; otherwise display names are
// fuzzy-ranked and the best match is taken. Fuzzy matching is intentionally
// confined to import-time inference — the resume resolver compares
// identifiers with exact string equality only.
func Match(freeText string) (string, bool) {
	normalized := Normalize(freeText)
	if normalized == "" {
		return "", false
	}
	if IsValid(normalized) {
		return normalized, true
	}

	names := make([]string, len(registry))
	for i := range registry {
		names[i] = registry[i].DisplayName
	}

	ranks := fuzzy.RankFindNormalizedFold(normalized, names)
	if len(ranks) == 0 {
		return "", false
	}

	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return registry[best.OriginalIndex].ID, true
}

// # Preference Validation

// ValidatePreferenceList checks a user-supplied ordered preference list.
//
// Every entry must name a supported platform and no platform may appear
// twice. The list may be empty — having no preferences is a valid state.
func ValidatePreferenceList(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !IsValid(id) {
			return apperr.ValidationError("Unknown platform: " + id)
		}
		if _, dup := seen[id]; dup {
			return apperr.ValidationError("Duplicate platform in preference list: " + id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
