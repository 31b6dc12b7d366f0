// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package importer ingests externally sourced reading lists into reviewable
import jobs.

Two sources feed the same pipeline: uploaded CSV files and exported browser
history. Both produce raw entries that a shared validation/deduplication
stage classifies row by row — a malformed row never aborts its batch, it is
carried through with an error status so the user sees a full accounting of
the file. Jobs live only for the duration of the request; the client
resubmits the rows it kept to the confirm step, which persists them.
*/
package importer

import (
	"strings"
	"time"
)

// # Entry Classification

// EntryStatus classifies one import row after validation.
type EntryStatus string

const (
	// StatusOK marks a row that passed validation and is importable.
	StatusOK EntryStatus = "ok"
	// StatusDuplicate marks a row whose normalized title already appeared
	// earlier in the same batch. Not an error — user-overridable.
	StatusDuplicate EntryStatus = "duplicate"
	// StatusError marks a row that failed shape validation.
	StatusError EntryStatus = "error"
)

// Source identifies where an import batch came from.
type Source string

const (
	SourceCSV            Source = "csv"
	SourceBrowserHistory Source = "browser_history"
)

// # Entries & Jobs

// Entry is one row extracted from an import source.
//
// It is created once per source row, mutated only by the dedup/validation
// pass in [BuildJob], and discarded after the user confirms or cancels —
// raw entries are never persisted.
type Entry struct {
	Title string `json:"title"`
	// Chapter is nil when the source row carried no parseable chapter.
	Chapter *float64 `json:"chapter,omitempty"`
	URL     string   `json:"url,omitempty"`
	// Platform is the canonical platform identifier, inferred or explicit.
	Platform string `json:"platform,omitempty"`
	// LastReadAt is nil when the source date was absent or unparsable.
	LastReadAt *time.Time `json:"last_read_date,omitempty"`

	Status      EntryStatus `json:"status"`
	IsDuplicate bool        `json:"is_duplicate"`
	// Selected defaults to true unless the row is a duplicate or an error.
	Selected bool `json:"selected"`
	// Errors lists the shape problems found on this row.
	Errors []string `json:"errors,omitempty"`

	normalizedTitle string
}

// Job is one import attempt: the classified entries of a single batch plus
// its summary counts. Ownership belongs to the importing request.
type Job struct {
	ImportID string  `json:"import_id"`
	UserID   string  `json:"-"`
	Source   Source  `json:"source"`
	Entries  []Entry `json:"entries"`

	TotalItems   int `json:"total_items"`
	ValidItems   int `json:"valid_items"`
	ErrorItems   int `json:"error_items"`
	SkippedItems int `json:"skipped_items"`
}

// # Title Normalization

// NormalizeTitle canonicalizes a series title for use as a dedup key:
// lower-cased, trimmed, internal whitespace runs collapsed to one space.
//
// Punctuation and numerals are deliberately retained — "One Piece" and
// "One, Piece" do not match. NormalizeTitle is idempotent and pure.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
