// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package platform is the static registry of supported reading platforms.

Every platform a user can track progress on is described here: its canonical
identifier, display name, and the URL patterns that identify it in exported
browser history. The registry is immutable at runtime; adding a platform is
a code change, not a data change.
*/
package platform

import (
	"regexp"
	"strings"
)

// # Canonical Identifiers

const (
	MangaDex     = "mangadex"
	Webtoon      = "webtoon"
	Manganato    = "manganato"
	Mangakakalot = "mangakakalot"
	AsuraScans   = "asurascans"
	Tapas        = "tapas"
)

// Info describes one supported platform.
type Info struct {
	// ID is the canonical platform identifier (e.g. "mangadex").
	ID string `json:"id"`
	// DisplayName is the human-readable platform name (e.g. "MangaDex").
	DisplayName string `json:"display_name"`

	// hostPattern matches the hostnames this platform serves content from.
	hostPattern *regexp.Regexp
	// chapterPattern extracts a chapter number from a URL path or page title.
	chapterPattern *regexp.Regexp
	// titleSegment is the path segment index holding the series title slug,
	// or -1 when the title must come from the page title instead.
	titleSegment int
}

// registry holds all supported platforms in stable display order.
var registry = []Info{
	{
		ID:             MangaDex,
		DisplayName:    "MangaDex",
		hostPattern:    regexp.MustCompile(`(^|\.)mangadex\.org$`),
		chapterPattern: regexp.MustCompile(`(?i)chapter[ /-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   -1,
	},
	{
		ID:             Webtoon,
		DisplayName:    "Webtoon",
		hostPattern:    regexp.MustCompile(`(^|\.)webtoons?\.com$`),
		chapterPattern: regexp.MustCompile(`(?i)(?:episode|ep)[ .#/-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   2,
	},
	{
		ID:             Manganato,
		DisplayName:    "Manganato",
		hostPattern:    regexp.MustCompile(`(^|\.)manganato\.com$`),
		chapterPattern: regexp.MustCompile(`(?i)chapter[ /-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   1,
	},
	{
		ID:             Mangakakalot,
		DisplayName:    "Mangakakalot",
		hostPattern:    regexp.MustCompile(`(^|\.)mangakakalot\.com$`),
		chapterPattern: regexp.MustCompile(`(?i)chapter[ /_-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   1,
	},
	{
		ID:             AsuraScans,
		DisplayName:    "Asura Scans",
		hostPattern:    regexp.MustCompile(`(^|\.)asurascans\.com$`),
		chapterPattern: regexp.MustCompile(`(?i)chapter[ /-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   1,
	},
	{
		ID:             Tapas,
		DisplayName:    "Tapas",
		hostPattern:    regexp.MustCompile(`(^|\.)tapas\.io$`),
		chapterPattern: regexp.MustCompile(`(?i)(?:episode|ep)[ .#/-]?([0-9]+(?:\.[0-9]+)?)`),
		titleSegment:   2,
	},
}

// index maps canonical IDs to registry entries for O(1) lookups.
var index = func() map[string]*Info {
	m := make(map[string]*Info, len(registry))
	for i := range registry {
		m[registry[i].ID] = &registry[i]
	}
	return m
}()

// # Registry Operations

// All returns every supported platform in stable display order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// IsValid reports whether id names a supported platform.
func IsValid(id string) bool {
	_, ok := index[id]
	return ok
}

// DisplayName returns the human-readable name for a platform identifier.
// Unknown identifiers fall back to the raw identifier itself.
func DisplayName(id string) string {
	if info, ok := index[id]; ok {
		return info.DisplayName
	}
	return id
}

// Normalize maps free-form platform strings onto canonical identifiers.
//
// Any string containing "webtoon" becomes [Webtoon], any containing
// "mangadex" becomes [MangaDex]. Everything else is passed through
// lower-cased and trimmed, whether or not the result names a supported
// platform — callers combine this with [IsValid] when membership matters.
func Normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lowered, "webtoon"):
		return Webtoon
	case strings.Contains(lowered, "mangadex"):
		return MangaDex
	default:
		return lowered
	}
}
