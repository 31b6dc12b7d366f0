// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/library/importer"
)

func floatPtr(f float64) *float64 { return &f }

/*
TestNormalizeTitle verifies the dedup key canonicalization: lower-cased,
trimmed, whitespace collapsed, punctuation retained.
*/
func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "One Piece", "one piece"},
		{"trims", "  Berserk  ", "berserk"},
		{"collapses_whitespace", "Tower \t of   God", "tower of god"},
		{"keeps_punctuation", "One, Piece!", "one, piece!"},
		{"empty", "", ""},
		{"whitespace_only", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, importer.NormalizeTitle(tt.input))
		})
	}
}

/*
TestNormalizeTitle_Idempotent verifies applying the normalization twice
changes nothing.
*/
func TestNormalizeTitle_Idempotent(t *testing.T) {
	inputs := []string{"One Piece", "  TOWER   of god ", "one, piece!", ""}
	for _, input := range inputs {
		once := importer.NormalizeTitle(input)
		assert.Equal(t, once, importer.NormalizeTitle(once))
	}
}

/*
TestBuildJob_Classification verifies per-row status assignment and the job
summary counts.
*/
func TestBuildJob_Classification(t *testing.T) {
	raw := []importer.Entry{
		{Title: "One Piece", Chapter: floatPtr(1044)},
		{Title: "one   piece", Chapter: floatPtr(1000)}, // in-batch duplicate
		{Title: ""},                                     // missing title
		{Title: "Berserk", Chapter: floatPtr(-3)},       // negative chapter
		{Title: "Tower of God"},
	}

	job := importer.BuildJob("user-1", importer.SourceCSV, raw)

	require.NotNil(t, job)
	assert.NotEmpty(t, job.ImportID)
	assert.Equal(t, importer.SourceCSV, job.Source)
	require.Len(t, job.Entries, 5)

	assert.Equal(t, 5, job.TotalItems)
	assert.Equal(t, 2, job.ValidItems)
	assert.Equal(t, 2, job.ErrorItems)
	assert.Equal(t, 1, job.SkippedItems)

	assert.Equal(t, importer.StatusOK, job.Entries[0].Status)
	assert.True(t, job.Entries[0].Selected)

	assert.Equal(t, importer.StatusDuplicate, job.Entries[1].Status)
	assert.True(t, job.Entries[1].IsDuplicate)
	assert.False(t, job.Entries[1].Selected)

	assert.Equal(t, importer.StatusError, job.Entries[2].Status)
	assert.False(t, job.Entries[2].Selected)
	assert.NotEmpty(t, job.Entries[2].Errors)

	assert.Equal(t, importer.StatusError, job.Entries[3].Status)

	assert.Equal(t, importer.StatusOK, job.Entries[4].Status)
}

/*
TestBuildJob_DedupKeepsFirstOccurrence verifies exactly one entry per
normalized title is left unflagged, and it is the first occurrence.
*/
func TestBuildJob_DedupKeepsFirstOccurrence(t *testing.T) {
	raw := []importer.Entry{
		{Title: "Solo Leveling"},
		{Title: "SOLO   LEVELING"},
		{Title: "solo leveling"},
		{Title: "Berserk"},
	}

	job := importer.BuildJob("user-1", importer.SourceCSV, raw)

	unflagged := make(map[string]int)
	for _, entry := range job.Entries {
		if !entry.IsDuplicate {
			unflagged[importer.NormalizeTitle(entry.Title)]++
		}
	}

	assert.Equal(t, map[string]int{"solo leveling": 1, "berserk": 1}, unflagged)
	assert.False(t, job.Entries[0].IsDuplicate)
	assert.True(t, job.Entries[1].IsDuplicate)
	assert.True(t, job.Entries[2].IsDuplicate)
}

/*
TestBuildJob_MalformedDuplicate verifies a row that is both malformed and a
duplicate reports the error status while keeping its duplicate flag.
*/
func TestBuildJob_MalformedDuplicate(t *testing.T) {
	raw := []importer.Entry{
		{Title: "One Piece"},
		{Title: "One Piece", Chapter: floatPtr(-1)},
	}

	job := importer.BuildJob("user-1", importer.SourceCSV, raw)

	assert.Equal(t, importer.StatusError, job.Entries[1].Status)
	assert.True(t, job.Entries[1].IsDuplicate)
	assert.Equal(t, 1, job.ErrorItems)
	assert.Equal(t, 0, job.SkippedItems)
	assert.Equal(t, 1, job.ValidItems)
}

/*
TestBuildJob_EmptyTitlesNeverDeduped verifies rows without a title are not
deduplicated against each other — each is an independent error row.
*/
func TestBuildJob_EmptyTitlesNeverDeduped(t *testing.T) {
	raw := []importer.Entry{
		{Title: ""},
		{Title: "   "},
	}

	job := importer.BuildJob("user-1", importer.SourceCSV, raw)

	for _, entry := range job.Entries {
		assert.False(t, entry.IsDuplicate)
		assert.Equal(t, importer.StatusError, entry.Status)
	}
	assert.Equal(t, 2, job.ErrorItems)
}

/*
TestBuildJob_EmptyBatch verifies an empty batch yields an empty job rather
than an error.
*/
func TestBuildJob_EmptyBatch(t *testing.T) {
	job := importer.BuildJob("user-1", importer.SourceBrowserHistory, nil)

	require.NotNil(t, job)
	assert.Equal(t, 0, job.TotalItems)
	assert.Empty(t, job.Entries)
}
