// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package series manages the user's library: the set of tracked manga/comics.

A series belongs to exactly one user and is unique per user by normalized
title — the storage layer enforces that with a unique constraint, which is
also how confirm-time import deduplication against the existing library
works.
*/
package series

import "time"

// ReadingStatus is the user-assigned tracking state of a series.
type ReadingStatus string

const (
	StatusReading    ReadingStatus = "reading"
	StatusCompleted  ReadingStatus = "completed"
	StatusPlanToRead ReadingStatus = "plan_to_read"
	StatusDropped    ReadingStatus = "dropped"
)

// IsValid reports whether s is one of the defined reading statuses.
func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusPlanToRead, StatusDropped:
		return true
	}
	return false
}

// Series is one tracked manga/comic in a user's library.
type Series struct {
	ID     string `json:"id"`
	UserID string `json:"-"`

	Title string `json:"title"`
	// NormalizedTitle is the dedup key; derived, never user-edited.
	NormalizedTitle string `json:"-"`
	Slug            string `json:"slug"`

	// Platform is the canonical identifier of the site the series was
	// first imported from or added on.
	Platform string        `json:"platform"`
	Status   ReadingStatus `json:"status"`
	Genres   []string      `json:"genres"`

	// TotalChapters is 0 when unknown.
	TotalChapters float64 `json:"total_chapters"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
