package series

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readtrace/readtrace/internal/platform/database/schema"
	"github.com/readtrace/readtrace/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, series *Series) error {
	t := schema.LibrarySeries
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		t.Table, t.ID, t.UserID, t.Title, t.NormalizedTitle, t.Slug, t.Platform,
		t.ReadingStatus, t.Genres, t.TotalChapters, t.CreatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		series.ID, series.UserID, series.Title, series.NormalizedTitle, series.Slug,
		series.Platform, series.Status, series.Genres, series.TotalChapters,
		series.CreatedAt, series.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_series")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, userID, id string) (*Series, error) {
	t := schema.LibrarySeries
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		t.ID, t.UserID, t.Title, t.NormalizedTitle, t.Slug, t.Platform,
		t.ReadingStatus, t.Genres, t.TotalChapters, t.CreatedAt, t.UpdatedAt,
		t.Table, t.UserID, t.ID,
	)

	var s Series
	err := repository.db.QueryRow(context, query, userID, id).Scan(
		&s.ID, &s.UserID, &s.Title, &s.NormalizedTitle, &s.Slug, &s.Platform,
		&s.Status, &s.Genres, &s.TotalChapters, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_series_by_id")
	}
	return &s, nil
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]Series, error) {
	t := schema.LibrarySeries
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		t.ID, t.UserID, t.Title, t.NormalizedTitle, t.Slug, t.Platform,
		t.ReadingStatus, t.Genres, t.TotalChapters, t.CreatedAt, t.UpdatedAt,
		t.Table, t.UserID, t.UpdatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_series")
	}
	defer rows.Close()

	list := make([]Series, 0, 32)
	for rows.Next() {
		var s Series
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Title, &s.NormalizedTitle, &s.Slug, &s.Platform,
			&s.Status, &s.Genres, &s.TotalChapters, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_series")
		}
		list = append(list, s)
	}

	return list, nil
}

func (repository *PostgresRepository) Update(context context.Context, series *Series) error {
	t := schema.LibrarySeries
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $8 AND %s = $9
	`,
		t.Table, t.Title, t.NormalizedTitle, t.Slug, t.ReadingStatus,
		t.Genres, t.TotalChapters, t.UpdatedAt, t.UserID, t.ID,
	)

	tag, err := repository.db.Exec(context, query,
		series.Title, series.NormalizedTitle, series.Slug, series.Status,
		series.Genres, series.TotalChapters, series.UpdatedAt,
		series.UserID, series.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_series")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, userID, id string) error {
	t := schema.LibrarySeries
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.UserID, t.ID)

	tag, err := repository.db.Exec(context, query, userID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_series")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
