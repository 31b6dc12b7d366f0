// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer

import (
	"math"

	"github.com/readtrace/readtrace/pkg/uuid"
)

// BuildJob runs the shared validation and deduplication stage over a raw
// batch and assembles the reviewable job.
//
// Two passes over the batch, in input order:
//
//   - Dedup: every entry after the first with a given non-empty normalized
//     title is flagged as a duplicate of that first occurrence. Exactly one
//     entry per normalized title is left unflagged.
//   - Classification: shape failures (empty or whitespace-only title; a
//     chapter that is present but not a finite non-negative number) become
//     [StatusError]; flagged rows become [StatusDuplicate]; the rest are
//     [StatusOK] and selected. Error and duplicate rows are never selected
//     by default but stay in the entry list so the user sees the full
//     accounting of the file.
//
// A row that is both malformed and a duplicate reports [StatusError] —
// shape problems need the user's eyes more than dedup bookkeeping — while
// keeping its duplicate flag.
//
// Duplicates against the user's already-persisted library are not checked
// here; the confirm step surfaces those via the storage unique constraint.
func BuildJob(userID string, source Source, rawEntries []Entry) *Job {
	job := &Job{
		ImportID:   uuid.New(),
		UserID:     userID,
		Source:     source,
		Entries:    make([]Entry, 0, len(rawEntries)),
		TotalItems: len(rawEntries),
	}

	// Pass 1: flag in-batch duplicates by normalized title.
	seenTitles := make(map[string]struct{}, len(rawEntries))
	for _, entry := range rawEntries {
		entry.normalizedTitle = NormalizeTitle(entry.Title)
		if entry.normalizedTitle != "" {
			if _, dup := seenTitles[entry.normalizedTitle]; dup {
				entry.IsDuplicate = true
			} else {
				seenTitles[entry.normalizedTitle] = struct{}{}
			}
		}
		job.Entries = append(job.Entries, entry)
	}

	// Pass 2: classify and count.
	for i := range job.Entries {
		entry := &job.Entries[i]
		switch {
		case !isShapeValid(entry):
			entry.Status = StatusError
			entry.Selected = false
			job.ErrorItems++

		case entry.IsDuplicate:
			entry.Status = StatusDuplicate
			entry.Selected = false
			job.SkippedItems++

		default:
			entry.Status = StatusOK
			entry.Selected = true
			job.ValidItems++
		}
	}

	return job
}

// isShapeValid applies the row-level shape rules, appending to the entry's
// error list as it goes.
func isShapeValid(entry *Entry) bool {
	if entry.normalizedTitle == "" {
		entry.Errors = append(entry.Errors, "Series title is required")
	}
	if entry.Chapter != nil {
		chapter := *entry.Chapter
		if math.IsNaN(chapter) || math.IsInf(chapter, 0) || chapter < 0 {
			entry.Errors = append(entry.Errors, "Chapter must be a finite non-negative number")
		}
	}
	return len(entry.Errors) == 0
}
