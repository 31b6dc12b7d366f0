// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package preference stores each user's ordered platform preference list.

The list drives resume resolution: when a series has progress on several
platforms, the earliest list entry with a usable link wins. The system
never reorders the list on its own; only explicit user edits change it.
LastSelectedPlatform records the most recent manual platform choice and
serves as a soft fallback below the ordered list.
*/
package preference

import "time"

// PlatformPreferences is one user's platform preference state.
type PlatformPreferences struct {
	UserID string `json:"-"`
	// PreferredPlatforms is ordered, first = most preferred. May be empty.
	PreferredPlatforms []string `json:"preferred_platforms"`
	// LastSelectedPlatform is empty until the user makes a manual choice.
	LastSelectedPlatform string    `json:"last_selected_platform,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}
