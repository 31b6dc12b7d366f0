// Copyright (c) 2026 ReadTrace. All rights reserved.

package progress

// Resume resolution picks the single URL a "continue reading" action opens
// when a series has progress on more than one platform.
//
// The resolution ladder, first hit wins:
//
//  1. Manual override — an explicit one-time platform choice beats
//     everything, including stored preferences.
//  2. The user's ordered preference list. Preference order is priority
//     order, not recency order: a less recently read but more preferred
//     platform wins over a more recent but less preferred one.
//  3. The last platform the user manually selected.
//  4. The most recently updated platform (the top level of the unified view).
//  5. The first alternative that has a usable URL at all.
//
// A platform that is present but carries no resume URL is "not usable":
// resolution moves to the next candidate within the same step instead of
// returning an empty link. Platform identifiers are compared with exact
// string equality; callers normalize beforehand when needed.

// SelectResumeURL returns the deep link to resume reading from, or ""
// when no platform has a usable URL (a normal outcome, not an error).
//
// unified may be nil (no progress recorded anywhere); the result is then
// always "" regardless of preferences or override.
func SelectResumeURL(unified *UnifiedProgress, prefs Preferences, manualOverride string) string {
	if unified == nil {
		return ""
	}

	// 1. Manual override: alternatives first, then the top-level platform.
	if manualOverride != "" {
		for _, alt := range unified.Alternatives {
			if alt.Platform == manualOverride && alt.ResumeURL != "" {
				return alt.ResumeURL
			}
		}
		if unified.Platform == manualOverride && unified.ResumeURL != "" {
			return unified.ResumeURL
		}
	}

	// 2. Preference walk, in priority order.
	for _, preferred := range prefs.PreferredPlatforms {
		if url := urlForPlatform(unified, preferred); url != "" {
			return url
		}
	}

	// 3. Last manually selected platform.
	if prefs.LastSelectedPlatform != "" {
		if url := urlForPlatform(unified, prefs.LastSelectedPlatform); url != "" {
			return url
		}
	}

	// 4. Most recently updated platform.
	if unified.ResumeURL != "" {
		return unified.ResumeURL
	}

	// 5. First alternative with any usable URL.
	for _, alt := range unified.Alternatives {
		if alt.ResumeURL != "" {
			return alt.ResumeURL
		}
	}

	return ""
}

// urlForPlatform finds the resume URL recorded for one named platform,
// checking the top level before the alternatives. Returns "" when the
// platform is absent or has no URL.
func urlForPlatform(unified *UnifiedProgress, platformID string) string {
	if unified.Platform == platformID {
		return unified.ResumeURL
	}
	for _, alt := range unified.Alternatives {
		if alt.Platform == platformID {
			return alt.ResumeURL
		}
	}
	return ""
}

// AvailablePlatforms lists every platform with recorded progress for the
// unified view: the top-level platform first, then alternatives in list
// order, without duplicates.
func AvailablePlatforms(unified *UnifiedProgress) []string {
	if unified == nil {
		return nil
	}

	seen := map[string]struct{}{unified.Platform: {}}
	platforms := []string{unified.Platform}

	for _, alt := range unified.Alternatives {
		if _, dup := seen[alt.Platform]; dup {
			continue
		}
		seen[alt.Platform] = struct{}{}
		platforms = append(platforms, alt.Platform)
	}

	return platforms
}
