// Copyright (c) 2026 ReadTrace. All rights reserved.

package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/catalog/platform"
)

/*
TestNormalize verifies free-form platform strings map onto canonical identifiers.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"webtoon_contains", "WEBTOON EN", platform.Webtoon},
		{"webtoon_padded", "  webtoons  ", platform.Webtoon},
		{"mangadex_mixed_case", "MangaDex", platform.MangaDex},
		{"canonical_passthrough", "tapas", platform.Tapas},
		{"unknown_lowered", "Some Reader", "some reader"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, platform.Normalize(tt.input))
		})
	}
}

/*
TestIsValid checks registry membership for canonical and unknown identifiers.
*/
func TestIsValid(t *testing.T) {
	for _, info := range platform.All() {
		assert.True(t, platform.IsValid(info.ID))
	}

	assert.False(t, platform.IsValid("Webtoon"), "membership is exact, not case-folded")
	assert.False(t, platform.IsValid("unknown"))
	assert.False(t, platform.IsValid(""))
}

/*
TestDisplayName verifies display name lookup and the raw-identifier fallback.
*/
func TestDisplayName(t *testing.T) {
	assert.Equal(t, "MangaDex", platform.DisplayName(platform.MangaDex))
	assert.Equal(t, "Asura Scans", platform.DisplayName(platform.AsuraScans))
	assert.Equal(t, "mystery", platform.DisplayName("mystery"))
}

/*
TestDetectFromURL exercises the host-based platform detection used as the
browser-history admission filter.
*/
func TestDetectFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		detected bool
	}{
		{"mangadex", "https://mangadex.org/chapter/77a97b2e", platform.MangaDex, true},
		{"webtoon_www", "https://www.webtoons.com/en/fantasy/tower-of-god/ep-552", platform.Webtoon, true},
		{"manganato", "https://manganato.com/manga-aa951883/chapter-1044", platform.Manganato, true},
		{"tapas", "https://tapas.io/episode/2711234", platform.Tapas, true},
		{"unsupported_host", "https://example.com/manga/chapter-3", "", false},
		{"lookalike_host", "https://notmangadex.org/chapter-1", "", false},
		{"no_host", "not a url", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := platform.DetectFromURL(tt.url)
			assert.Equal(t, tt.detected, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

/*
TestExtractChapter verifies per-platform chapter number extraction from URLs
and page titles.
*/
func TestExtractChapter(t *testing.T) {
	tests := []struct {
		name       string
		platformID string
		text       string
		expected   string
		found      bool
	}{
		{"mangadex_path", platform.MangaDex, "/title/one-piece/chapter-1044", "1044", true},
		{"fractional_chapter", platform.Manganato, "chapter-10.5", "10.5", true},
		{"webtoon_episode", platform.Webtoon, "/en/fantasy/tower-of-god/episode-552", "552", true},
		{"webtoon_ep_short", platform.Webtoon, "ep.12", "12", true},
		{"title_case_insensitive", platform.MangaDex, "One Piece Chapter 99", "99", true},
		{"no_chapter", platform.MangaDex, "/title/one-piece", "", false},
		{"unknown_platform", "unknown", "chapter-10", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chapter, ok := platform.ExtractChapter(tt.platformID, tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, chapter)
		})
	}
}

/*
TestMatch exercises free-text platform resolution as used by CSV import.
*/
func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		matched  bool
	}{
		{"canonical", "mangadex", platform.MangaDex, true},
		{"display_case", "Tapas", platform.Tapas, true},
		{"contains_webtoon", "Line Webtoon", platform.Webtoon, true},
		{"fuzzy_partial", "asura", platform.AsuraScans, true},
		{"no_match", "zzz", "", false},
		{"empty", "", "", false},
		{"whitespace", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := platform.Match(tt.input)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

/*
TestValidatePreferenceList checks the ordered preference list rules: known
platforms only, no duplicates, empty allowed.
*/
func TestValidatePreferenceList(t *testing.T) {
	t.Run("valid_list", func(t *testing.T) {
		err := platform.ValidatePreferenceList([]string{platform.Webtoon, platform.MangaDex})
		require.NoError(t, err)
	})

	t.Run("empty_list", func(t *testing.T) {
		require.NoError(t, platform.ValidatePreferenceList(nil))
		require.NoError(t, platform.ValidatePreferenceList([]string{}))
	})

	t.Run("unknown_platform", func(t *testing.T) {
		err := platform.ValidatePreferenceList([]string{platform.Webtoon, "geocities"})
		require.Error(t, err)
	})

	t.Run("duplicate_platform", func(t *testing.T) {
		err := platform.ValidatePreferenceList([]string{platform.Webtoon, platform.Webtoon})
		require.Error(t, err)
	})
}
