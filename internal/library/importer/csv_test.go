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

const csvHeader = "Series Title,Chapter Number,URL,Platform,Last Read Date\n"

/*
TestParseCSV_WellFormed verifies a complete row maps onto all entry fields.
*/
func TestParseCSV_WellFormed(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader +
		"One Piece,1044,https://mangadex.org/chapter/abc,MangaDex,2026-01-15\n")

	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "One Piece", entry.Title)
	require.NotNil(t, entry.Chapter)
	assert.Equal(t, float64(1044), *entry.Chapter)
	assert.Equal(t, "https://mangadex.org/chapter/abc", entry.URL)
	assert.Equal(t, platform.MangaDex, entry.Platform)
	require.NotNil(t, entry.LastReadAt)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), *entry.LastReadAt)
	assert.Empty(t, entry.Errors)
}

/*
TestParseCSV_OptionalColumnsBlank verifies only the title is mandatory.
*/
func TestParseCSV_OptionalColumnsBlank(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader + "Berserk,,,,\n")

	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Berserk", entry.Title)
	assert.Nil(t, entry.Chapter)
	assert.Empty(t, entry.URL)
	assert.Empty(t, entry.Platform)
	assert.Nil(t, entry.LastReadAt)
	assert.Empty(t, entry.Errors)
}

/*
TestParseCSV_BadChapter verifies unparsable or negative chapters clear the
field and record a row error without dropping the row.
*/
func TestParseCSV_BadChapter(t *testing.T) {
	tests := []struct {
		name    string
		chapter string
	}{
		{"non_numeric", "abc"},
		{"negative", "-5"},
		{"nan", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := importer.ParseCSV(csvHeader + "One Piece," + tt.chapter + ",,,\n")

			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Nil(t, entries[0].Chapter)
			assert.NotEmpty(t, entries[0].Errors)
		})
	}
}

/*
TestParseCSV_UnparsableDateIsAbsent verifies a bad date is treated as
missing, never as a row error.
*/
func TestParseCSV_UnparsableDateIsAbsent(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader + "One Piece,12,,,sometime last week\n")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].LastReadAt)
	assert.Empty(t, entries[0].Errors)
}

/*
TestParseCSV_PlatformInference verifies free-text platform values resolve
to canonical identifiers while unknown values pass through normalized.
*/
func TestParseCSV_PlatformInference(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader +
		"A,1,,Line Webtoon,\n" +
		"B,2,,Tapas,\n" +
		"C,3,,My Cool Reader,\n")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, platform.Webtoon, entries[0].Platform)
	assert.Equal(t, platform.Tapas, entries[1].Platform)
	assert.Equal(t, "my cool reader", entries[2].Platform)
}

/*
TestParseCSV_MissingTitleRetained verifies a row with an empty title is
kept so the batch accounting stays complete.
*/
func TestParseCSV_MissingTitleRetained(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader + ",12,,,\nBerserk,1,,,\n")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].Title)
	assert.Equal(t, "Berserk", entries[1].Title)
}

/*
TestParseCSV_EmptyInputs verifies header-only, empty, and missing-title-column
inputs are rejected as a whole.
*/
func TestParseCSV_EmptyInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"header_only", csvHeader},
		{"wrong_header", "Name,Value\nOne Piece,12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := importer.ParseCSV(tt.input)
			assert.ErrorIs(t, err, importer.ErrEmptyCSV)
			assert.Nil(t, entries)
		})
	}
}

/*
TestParseCSV_ShortRecord verifies records with fewer fields than the header
read missing columns as blank instead of failing.
*/
func TestParseCSV_ShortRecord(t *testing.T) {
	entries, err := importer.ParseCSV(csvHeader + "One Piece,12\n")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "One Piece", entries[0].Title)
	require.NotNil(t, entries[0].Chapter)
	assert.Empty(t, entries[0].URL)
}
