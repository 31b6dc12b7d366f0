// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package progress tracks per-platform reading state and consolidates it into
a single cross-platform view per series.

Each platform a user reads a series on contributes one [PlatformProgress]
row. The most recently updated row is promoted to the top level of the
[UnifiedProgress] view; every other platform's state is carried as an
alternative. The resume resolver (resolver.go) decides which platform's
deep link a "continue reading" action should open.
*/
package progress

import (
	"fmt"
	"math"
	"time"
)

// # Domain Entities

// PlatformProgress is one platform's view of reading state for a series.
//
// CurrentChapter may exceed TotalChapters when a source site reports stale
// counts; consumers must tolerate the violation rather than reject the row.
type PlatformProgress struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	SeriesID string `json:"series_id"`
	Platform string `json:"platform"`

	CurrentChapter float64 `json:"current_chapter"`
	// TotalChapters is 0 when the platform does not report a total.
	TotalChapters float64 `json:"total_chapters"`
	// ScrollPosition is the in-chapter offset in whatever unit the source
	// reported (fraction or pixels). Stored opaquely, never interpreted.
	ScrollPosition float64 `json:"scroll_position"`

	// ResumeURL is empty when the platform has no usable deep link.
	ResumeURL string    `json:"resume_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AlternativeProgress is the reduced view of a non-primary platform's state
// inside a [UnifiedProgress].
type AlternativeProgress struct {
	Platform       string    `json:"platform"`
	CurrentChapter float64   `json:"current_chapter"`
	ResumeURL      string    `json:"resume_url,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UnifiedProgress is a series' consolidated reading state: the most
// recently updated platform promoted to the top level, all other platforms
// listed as alternatives.
//
// The top-level platform never also appears inside Alternatives.
type UnifiedProgress struct {
	SeriesID       string    `json:"series_id"`
	Platform       string    `json:"platform"`
	CurrentChapter float64   `json:"current_chapter"`
	TotalChapters  float64   `json:"total_chapters"`
	ScrollPosition float64   `json:"scroll_position"`
	ResumeURL      string    `json:"resume_url,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`

	Alternatives []AlternativeProgress `json:"alternatives"`
}

// Preferences is the per-user ordered platform preference list consulted
// by the resume resolver. First entry is most preferred. The system never
// reorders it; only explicit user edits do.
type Preferences struct {
	PreferredPlatforms   []string `json:"preferred_platforms"`
	LastSelectedPlatform string   `json:"last_selected_platform,omitempty"`
}

// # Consolidation

// Unify consolidates per-platform rows into a [UnifiedProgress].
//
// The row with the newest UpdatedAt becomes the top level; ties are broken
// by input order (first wins). Returns nil for an empty input — no progress
// recorded anywhere is a normal state, not an error.
func Unify(seriesID string, rows []PlatformProgress) *UnifiedProgress {
	if len(rows) == 0 {
		return nil
	}

	primary := 0
	for i := 1; i < len(rows); i++ {
		if rows[i].UpdatedAt.After(rows[primary].UpdatedAt) {
			primary = i
		}
	}

	top := rows[primary]
	unified := &UnifiedProgress{
		SeriesID:       seriesID,
		Platform:       top.Platform,
		CurrentChapter: top.CurrentChapter,
		TotalChapters:  top.TotalChapters,
		ScrollPosition: top.ScrollPosition,
		ResumeURL:      top.ResumeURL,
		UpdatedAt:      top.UpdatedAt,
		Alternatives:   make([]AlternativeProgress, 0, len(rows)-1),
	}

	for i, row := range rows {
		if i == primary {
			continue
		}
		unified.Alternatives = append(unified.Alternatives, AlternativeProgress{
			Platform:       row.Platform,
			CurrentChapter: row.CurrentChapter,
			ResumeURL:      row.ResumeURL,
			UpdatedAt:      row.UpdatedAt,
		})
	}

	return unified
}

// # Progress Math

// CalculatePercent converts raw chapter counts into a display percentage.
//
// An unknown or non-positive total yields 0. The result is clamped to
// [0, 100] so stale counts (current > total) or negative chapters never
// produce an out-of-range value.
func CalculatePercent(current, total float64) int {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return 0
	}

	percent := math.Round(current / total * 100)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(percent)
}

// FormatChapterLabel renders a chapter position for display.
//
// "Ch. 12 / 100" when the total is known, "Ch. 12" otherwise. Fractional
// chapters keep their fraction ("Ch. 12.5").
func FormatChapterLabel(current, total float64) string {
	if total <= 0 {
		return "Ch. " + formatChapterNumber(current)
	}
	return fmt.Sprintf("Ch. %s / %s", formatChapterNumber(current), formatChapterNumber(total))
}

// formatChapterNumber trims trailing zeroes so whole chapters render
// without a decimal point.
func formatChapterNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return fmt.Sprintf("%.0f", n)
	}
	return fmt.Sprintf("%g", n)
}
