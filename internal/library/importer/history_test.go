// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/importer"
)

/*
TestExtractFromHistory_FiltersUnsupportedURLs verifies only visits to
registered platforms survive the admission filter.
*/
func TestExtractFromHistory_FiltersUnsupportedURLs(t *testing.T) {
	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{URL: "https://news.example.com/article-77"},
		{URL: "https://manganato.com/manga-x/chapter-1044"},
		{URL: "not a url"},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, platform.Manganato, entries[0].Platform)
}

/*
TestExtractFromHistory_TitleFromURLSlug verifies the series title is taken
from the platform's title path segment and de-slugged.
*/
func TestExtractFromHistory_TitleFromURLSlug(t *testing.T) {
	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{
			URL:   "https://www.webtoons.com/en/fantasy/tower-of-god/episode-552",
			Title: "Tower of God Ep. 552 | Webtoon",
		},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "tower of god", entries[0].Title)
	require.NotNil(t, entries[0].Chapter)
	assert.Equal(t, float64(552), *entries[0].Chapter)
}

/*
TestExtractFromHistory_TitleFromPageTitle verifies platforms without a
title path convention fall back to the page title with trailing site noise
stripped.
*/
func TestExtractFromHistory_TitleFromPageTitle(t *testing.T) {
	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{
			URL:   "https://mangadex.org/chapter/77a97b2e",
			Title: "Solo Leveling - MangaDex",
		},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Solo Leveling", entries[0].Title)
}

/*
TestExtractFromHistory_ChapterFromTitleFallback verifies the chapter number
comes from the page title when the URL carries none.
*/
func TestExtractFromHistory_ChapterFromTitleFallback(t *testing.T) {
	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{
			URL:   "https://mangadex.org/chapter/bceadf",
			Title: "Solo Leveling Chapter 110",
		},
	})

	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Chapter)
	assert.Equal(t, float64(110), *entries[0].Chapter)
}

/*
TestExtractFromHistory_KeptWithoutChapter verifies a platform visit with no
extractable chapter is still recorded.
*/
func TestExtractFromHistory_KeptWithoutChapter(t *testing.T) {
	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{URL: "https://mangadex.org/title/one-piece", Title: "One Piece - MangaDex"},
	})

	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Chapter)
	assert.Equal(t, "One Piece", entries[0].Title)
}

/*
TestExtractFromHistory_VisitTime verifies epoch-millisecond visit times are
converted to UTC timestamps and zero times stay absent.
*/
func TestExtractFromHistory_VisitTime(t *testing.T) {
	visitMillis := int64(1767225600000)

	entries := importer.ExtractFromHistory([]importer.HistoryItem{
		{URL: "https://manganato.com/manga-x/chapter-3", LastVisitTime: visitMillis},
		{URL: "https://manganato.com/manga-y/chapter-4"},
	})

	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].LastReadAt)
	assert.Equal(t, time.UnixMilli(visitMillis).UTC(), *entries[0].LastReadAt)
	assert.Nil(t, entries[1].LastReadAt)
}

/*
TestExtractFromHistory_EmptyInput verifies an empty history yields an empty
batch, not an error.
*/
func TestExtractFromHistory_EmptyInput(t *testing.T) {
	assert.Empty(t, importer.ExtractFromHistory(nil))
	assert.Empty(t, importer.ExtractFromHistory([]importer.HistoryItem{}))
}
