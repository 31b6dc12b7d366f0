package series

import "context"

// Repository defines the data access contract for library series.
type Repository interface {
	// Create persists a new series. Returns dberr.ErrDuplicate when the
	// user already tracks a series with the same normalized title.
	Create(context context.Context, series *Series) error

	// FindByID returns one series owned by the user.
	FindByID(context context.Context, userID, id string) (*Series, error)

	// ListByUser returns the user's whole library, newest first.
	ListByUser(context context.Context, userID string) ([]Series, error)

	// Update persists changes to mutable fields (title, status, genres,
	// total chapters).
	Update(context context.Context, series *Series) error

	// Delete removes a series from the user's library.
	Delete(context context.Context, userID, id string) error
}
