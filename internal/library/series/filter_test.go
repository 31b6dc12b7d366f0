// Copyright (c) 2026 ReadTrace. All rights reserved.

package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/series"
)

func library() []series.Series {
	return []series.Series{
		{
			ID:       "s1",
			Title:    "One Piece",
			Platform: platform.MangaDex,
			Status:   series.StatusReading,
			Genres:   []string{"action", "adventure"},
		},
		{
			ID:       "s2",
			Title:    "Tower of God",
			Platform: platform.Webtoon,
			Status:   series.StatusReading,
			Genres:   []string{"fantasy"},
		},
		{
			ID:       "s3",
			Title:    "Berserk",
			Platform: platform.MangaDex,
			Status:   series.StatusCompleted,
			Genres:   []string{"dark fantasy"},
		},
	}
}

func ids(list []series.Series) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

/*
TestApplyFilters_NoCriteria verifies a zero filter set passes everything
through unchanged.
*/
func TestApplyFilters_NoCriteria(t *testing.T) {
	result := series.ApplyFilters(library(), series.Filters{})
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(result))
}

/*
TestApplyFilters_Query verifies case-insensitive substring matching across
title, platform display name, and genres.
*/
func TestApplyFilters_Query(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"title_substring", "tower", []string{"s2"}},
		{"title_case_insensitive", "ONE PIECE", []string{"s1"}},
		{"platform_display_name", "mangadex", []string{"s1", "s3"}},
		{"genre", "fantasy", []string{"s2", "s3"}},
		{"no_match", "naruto", []string{}},
		{"whitespace_only_passthrough", "   ", []string{"s1", "s2", "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := series.ApplyFilters(library(), series.Filters{Query: tt.query})
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

/*
TestApplyFilters_Platforms verifies platform membership filtering.
*/
func TestApplyFilters_Platforms(t *testing.T) {
	result := series.ApplyFilters(library(), series.Filters{
		Platforms: []string{platform.Webtoon},
	})
	assert.Equal(t, []string{"s2"}, ids(result))

	result = series.ApplyFilters(library(), series.Filters{
		Platforms: []string{platform.Webtoon, platform.MangaDex},
	})
	assert.Len(t, result, 3)
}

/*
TestApplyFilters_Statuses verifies reading status filtering.
*/
func TestApplyFilters_Statuses(t *testing.T) {
	result := series.ApplyFilters(library(), series.Filters{
		Statuses: []series.ReadingStatus{series.StatusCompleted},
	})
	assert.Equal(t, []string{"s3"}, ids(result))
}

/*
TestApplyFilters_Combined verifies the criteria intersect.
*/
func TestApplyFilters_Combined(t *testing.T) {
	result := series.ApplyFilters(library(), series.Filters{
		Query:     "fantasy",
		Platforms: []string{platform.MangaDex},
		Statuses:  []series.ReadingStatus{series.StatusCompleted},
	})

	require.Len(t, result, 1)
	assert.Equal(t, "s3", result[0].ID)
}
