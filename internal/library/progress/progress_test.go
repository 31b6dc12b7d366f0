// Copyright (c) 2026 ReadTrace. All rights reserved.

package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/progress"
)

var base = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func row(platformID string, chapter float64, url string, updated time.Time) progress.PlatformProgress {
	return progress.PlatformProgress{
		ID:             "row-" + platformID,
		UserID:         "user-1",
		SeriesID:       "series-1",
		Platform:       platformID,
		CurrentChapter: chapter,
		ResumeURL:      url,
		UpdatedAt:      updated,
	}
}

/*
TestUnify verifies the most recently updated platform is promoted to the top
level and all other rows become alternatives.
*/
func TestUnify(t *testing.T) {
	t.Run("empty_input", func(t *testing.T) {
		assert.Nil(t, progress.Unify("series-1", nil))
		assert.Nil(t, progress.Unify("series-1", []progress.PlatformProgress{}))
	})

	t.Run("single_row", func(t *testing.T) {
		unified := progress.Unify("series-1", []progress.PlatformProgress{
			row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base),
		})

		require.NotNil(t, unified)
		assert.Equal(t, "series-1", unified.SeriesID)
		assert.Equal(t, platform.Webtoon, unified.Platform)
		assert.Equal(t, float64(12), unified.CurrentChapter)
		assert.Empty(t, unified.Alternatives)
	})

	t.Run("newest_wins", func(t *testing.T) {
		unified := progress.Unify("series-1", []progress.PlatformProgress{
			row(platform.Webtoon, 12, "https://www.webtoons.com/ep-12", base),
			row(platform.MangaDex, 10, "https://mangadex.org/chapter/10", base.Add(time.Hour)),
		})

		require.NotNil(t, unified)
		assert.Equal(t, platform.MangaDex, unified.Platform)
		require.Len(t, unified.Alternatives, 1)
		assert.Equal(t, platform.Webtoon, unified.Alternatives[0].Platform)
	})

	t.Run("tie_first_wins", func(t *testing.T) {
		unified := progress.Unify("series-1", []progress.PlatformProgress{
			row(platform.Webtoon, 12, "", base),
			row(platform.MangaDex, 10, "", base),
		})

		require.NotNil(t, unified)
		assert.Equal(t, platform.Webtoon, unified.Platform)
	})

	t.Run("top_level_never_in_alternatives", func(t *testing.T) {
		unified := progress.Unify("series-1", []progress.PlatformProgress{
			row(platform.Webtoon, 12, "", base),
			row(platform.MangaDex, 10, "", base.Add(time.Hour)),
			row(platform.Tapas, 8, "", base.Add(-time.Hour)),
		})

		require.NotNil(t, unified)
		for _, alt := range unified.Alternatives {
			assert.NotEqual(t, unified.Platform, alt.Platform)
		}
		assert.Len(t, unified.Alternatives, 2)
	})
}

/*
TestCalculatePercent checks the display percentage math, including the
clamping rules for stale or malformed counts.
*/
func TestCalculatePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		total    float64
		expected int
	}{
		{"halfway", 50, 100, 50},
		{"rounds_to_nearest", 1, 3, 33},
		{"rounds_up", 2, 3, 67},
		{"complete", 100, 100, 100},
		{"unknown_total", 12, 0, 0},
		{"negative_total", 12, -5, 0},
		{"stale_total_clamped", 120, 100, 100},
		{"negative_current_clamped", -3, 100, 0},
		{"fractional_chapters", 10.5, 21, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, progress.CalculatePercent(tt.current, tt.total))
		})
	}
}

/*
TestFormatChapterLabel checks chapter label rendering with and without a
known total.
*/
func TestFormatChapterLabel(t *testing.T) {
	assert.Equal(t, "Ch. 12 / 100", progress.FormatChapterLabel(12, 100))
	assert.Equal(t, "Ch. 12", progress.FormatChapterLabel(12, 0))
	assert.Equal(t, "Ch. 12.5 / 100", progress.FormatChapterLabel(12.5, 100))
	assert.Equal(t, "Ch. 0", progress.FormatChapterLabel(0, 0))
}
