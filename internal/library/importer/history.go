// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/readtrace/readtrace/internal/catalog/platform"
)

// HistoryItem is one record from an exported browser history.
type HistoryItem struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	// LastVisitTime is epoch milliseconds, 0 when the export omitted it.
	LastVisitTime int64 `json:"lastVisitTime,omitempty"`
}

// pageTitleNoise strips common page-title suffixes ("... - MangaDex",
// "... | Webtoon") before using the title as a series name.
var pageTitleNoise = regexp.MustCompile(`\s*[|\-–]\s*[^|\-–]*$`)

// ExtractFromHistory filters history records down to reading activity on
// supported platforms and shapes each into a raw import entry.
//
// URLs no platform claims are discarded. Entries that match a platform but
// have no extractable chapter are still kept (chapter unknown) — a visit
// alone is worth recording even without precise progress.
func ExtractFromHistory(items []HistoryItem) []Entry {
	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		platformID, ok := platform.DetectFromURL(item.URL)
		if !ok {
			continue
		}

		entry := Entry{
			URL:      item.URL,
			Platform: platformID,
			Title:    extractTitle(platformID, item),
		}

		// Chapter: try the URL path first, then the page title.
		if raw, found := platform.ExtractChapter(platformID, item.URL); found {
			entry.Chapter = parseChapterNumber(raw)
		} else if raw, found := platform.ExtractChapter(platformID, item.Title); found {
			entry.Chapter = parseChapterNumber(raw)
		}

		if item.LastVisitTime > 0 {
			visited := time.UnixMilli(item.LastVisitTime).UTC()
			entry.LastReadAt = &visited
		}

		entries = append(entries, entry)
	}

	return entries
}

// extractTitle takes the series title from the URL path segment the
// platform convention dictates, falling back to the cleaned page title.
func extractTitle(platformID string, item HistoryItem) string {
	if segment := platform.TitlePathSegment(platformID); segment >= 0 {
		if parsed, err := url.Parse(item.URL); err == nil {
			parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
			if segment < len(parts) && parts[segment] != "" {
				return deslug(parts[segment])
			}
		}
	}

	title := strings.TrimSpace(item.Title)
	if title == "" {
		return ""
	}
	return strings.TrimSpace(pageTitleNoise.ReplaceAllString(title, ""))
}

// deslug turns a URL slug ("solo-leveling") back into a readable title
// ("solo leveling"). Casing is irrelevant downstream — dedup keys are
// normalized anyway.
func deslug(slug string) string {
	return strings.Join(strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	}), " ")
}

func parseChapterNumber(raw string) *float64 {
	chapter, err := strconv.ParseFloat(raw, 64)
	if err != nil || chapter < 0 {
		return nil
	}
	return &chapter
}
