package preference

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

func (repository *PostgresRepository) Get(context context.Context, userID string) (*PlatformPreferences, error) {
	t := schema.UserPlatformPreference
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s = $1
	`,
		t.UserID, t.PreferredPlatforms, t.LastSelectedPlatform, t.UpdatedAt,
		t.Table, t.UserID,
	)

	prefs := &PlatformPreferences{}
	err := repository.db.QueryRow(context, query, userID).Scan(
		&prefs.UserID, &prefs.PreferredPlatforms, &prefs.LastSelectedPlatform, &prefs.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_platform_preferences")
	}
	return prefs, nil
}

func (repository *PostgresRepository) Save(context context.Context, prefs *PlatformPreferences) error {
	t := schema.UserPlatformPreference
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		t.Table, t.UserID, t.PreferredPlatforms, t.LastSelectedPlatform, t.UpdatedAt,
		t.UserID,
		t.PreferredPlatforms, t.PreferredPlatforms,
		t.LastSelectedPlatform, t.LastSelectedPlatform,
		t.UpdatedAt, t.UpdatedAt,
	)

	lastSelected := any(prefs.LastSelectedPlatform)
	if prefs.LastSelectedPlatform == "" {
		lastSelected = nil
	}

	_, err := repository.db.Exec(context, query,
		prefs.UserID, prefs.PreferredPlatforms, lastSelected, prefs.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "save_platform_preferences")
	}
	return nil
}
