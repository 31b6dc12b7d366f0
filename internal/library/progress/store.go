package progress

import "context"

// Repository defines the data access contract for per-platform progress rows.
type Repository interface {
	// Upsert inserts or replaces the row for (user, series, platform).
	Upsert(context context.Context, row *PlatformProgress) error

	// ListBySeries returns every platform's row for one series, newest first.
	ListBySeries(context context.Context, userID, seriesID string) ([]PlatformProgress, error)

	// DeleteBySeries removes all progress rows for one series.
	DeleteBySeries(context context.Context, userID, seriesID string) error
}
