// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/readtrace/readtrace/internal/catalog/platform"
)

// Fixed CSV header contract. Column names are case-sensitive; only the
// title column is mandatory, the rest may be blank or missing entirely.
const (
	columnTitle    = "Series Title"
	columnChapter  = "Chapter Number"
	columnURL      = "URL"
	columnPlatform = "Platform"
	columnDate     = "Last Read Date"
)

// ErrEmptyCSV is returned when the input yields no data rows at all.
// Individual malformed rows never trigger it — they become error entries.
var ErrEmptyCSV = errors.New("importer: csv contains no data rows")

// dateLayouts are tried in order when parsing the Last Read Date column.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseCSV parses CSV text into raw import entries, one per data row.
//
// Rows with an empty Series Title are retained with a row error rather
// than silently dropped. Unparsable chapters clear the chapter field and
// record a row error; unparsable dates are treated as absent, not errors.
func ParseCSV(csvText string) ([]Entry, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrEmptyCSV
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns[columnTitle]; !ok {
		return nil, ErrEmptyCSV
	}

	entries := make([]Entry, 0, 16)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structurally broken line (e.g. bare quote). Keep accounting
			// for it instead of aborting the batch.
			entries = append(entries, Entry{Errors: []string{"Unreadable CSV row"}})
			continue
		}
		entries = append(entries, parseRecord(columns, record))
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCSV
	}
	return entries, nil
}

// parseRecord shapes one CSV record into a raw entry.
func parseRecord(columns map[string]int, record []string) Entry {
	entry := Entry{
		Title: strings.TrimSpace(field(columns, record, columnTitle)),
		URL:   strings.TrimSpace(field(columns, record, columnURL)),
	}

	if raw := strings.TrimSpace(field(columns, record, columnPlatform)); raw != "" {
		if id, ok := platform.Match(raw); ok {
			entry.Platform = id
		} else {
			entry.Platform = platform.Normalize(raw)
		}
	}

	if raw := strings.TrimSpace(field(columns, record, columnChapter)); raw != "" {
		chapter, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || math.IsNaN(chapter) || math.IsInf(chapter, 0):
			entry.Errors = append(entry.Errors, "Chapter is not a number: "+raw)
		case chapter < 0:
			entry.Errors = append(entry.Errors, "Chapter must not be negative")
		default:
			entry.Chapter = &chapter
		}
	}

	if raw := strings.TrimSpace(field(columns, record, columnDate)); raw != "" {
		if parsed, ok := parseDate(raw); ok {
			entry.LastReadAt = &parsed
		}
		// Unparsable dates are absent, never row errors.
	}

	return entry
}

// field safely reads a named column from a record that may be short.
func field(columns map[string]int, record []string, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
