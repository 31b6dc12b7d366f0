package preference

import "context"

// Repository defines the data access contract for platform preferences.
type Repository interface {
	// Get returns the user's preferences. Returns dberr.ErrNotFound when
	// the user has never saved any.
	Get(context context.Context, userID string) (*PlatformPreferences, error)

	// Save inserts or replaces the user's preference row.
	Save(context context.Context, prefs *PlatformPreferences) error
}
