package progress

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

func (repository *PostgresRepository) Upsert(context context.Context, row *PlatformProgress) error {
	t := schema.LibraryPlatformProgress
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s, %s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		t.Table, t.ID, t.UserID, t.SeriesID, t.Platform, t.CurrentChapter,
		t.TotalChapters, t.ScrollPosition, t.ResumeURL, t.UpdatedAt,
		t.UserID, t.SeriesID, t.Platform,
		t.CurrentChapter, t.CurrentChapter,
		t.TotalChapters, t.TotalChapters,
		t.ScrollPosition, t.ScrollPosition,
		t.ResumeURL, t.ResumeURL,
		t.UpdatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		row.ID, row.UserID, row.SeriesID, row.Platform, row.CurrentChapter,
		row.TotalChapters, row.ScrollPosition, nullableString(row.ResumeURL), row.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "upsert_platform_progress")
	}
	return nil
}

func (repository *PostgresRepository) ListBySeries(context context.Context, userID, seriesID string) ([]PlatformProgress, error) {
	t := schema.LibraryPlatformProgress
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC
	`,
		t.ID, t.UserID, t.SeriesID, t.Platform, t.CurrentChapter,
		t.TotalChapters, t.ScrollPosition, t.ResumeURL, t.UpdatedAt,
		t.Table, t.UserID, t.SeriesID, t.UpdatedAt,
	)

	rows, err := repository.db.Query(context, query, userID, seriesID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_platform_progress")
	}
	defer rows.Close()

	result := make([]PlatformProgress, 0, 4)
	for rows.Next() {
		var row PlatformProgress
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.SeriesID, &row.Platform, &row.CurrentChapter,
			&row.TotalChapters, &row.ScrollPosition, &row.ResumeURL, &row.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_platform_progress")
		}
		result = append(result, row)
	}

	return result, nil
}

func (repository *PostgresRepository) DeleteBySeries(context context.Context, userID, seriesID string) error {
	t := schema.LibraryPlatformProgress
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.UserID, t.SeriesID)

	if _, err := repository.db.Exec(context, query, userID, seriesID); err != nil {
		return dberr.Wrap(err, "delete_platform_progress")
	}
	return nil
}

// nullableString maps "" to SQL NULL so absent resume URLs are stored as NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
