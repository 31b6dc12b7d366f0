// Copyright (c) 2026 ReadTrace. All rights reserved.

package series

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/importer"
	"github.com/readtrace/readtrace/internal/library/progress"
	"github.com/readtrace/readtrace/internal/platform/apperr"
	"github.com/readtrace/readtrace/internal/platform/dberr"
	"github.com/readtrace/readtrace/pkg/pointer"
	"github.com/readtrace/readtrace/pkg/slug"
	"github.com/readtrace/readtrace/pkg/uuid"
)

type Service struct {
	repo         Repository
	progressRepo progress.Repository
	logger       *slog.Logger
}

func NewService(repo Repository, progressRepo progress.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// # Library Queries

// List returns the user's library narrowed by the given filters. Filtering
// happens in memory over the full library — personal libraries are small
// enough that pushing predicates into SQL buys nothing.
func (service *Service) List(context context.Context, userID string, filters Filters) ([]Series, error) {
	library, err := service.repo.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(library, filters), nil
}

func (service *Service) Get(context context.Context, userID, id string) (*Series, error) {
	return service.repo.FindByID(context, userID, id)
}

// # Library Mutations

// CreateInput holds the fields for manually adding a series.
type CreateInput struct {
	Title         string
	Platform      string
	Status        ReadingStatus
	Genres        []string
	TotalChapters float64
}

func (service *Service) Create(context context.Context, userID string, input CreateInput) (*Series, error) {
	platformID := platform.Normalize(input.Platform)
	if input.Platform != "" && !platform.IsValid(platformID) {
		return nil, apperr.ValidationError("Unknown platform: " + input.Platform)
	}

	status := input.Status
	if status == "" {
		status = StatusReading
	}
	if !status.IsValid() {
		return nil, apperr.ValidationError("Unknown reading status: " + string(status))
	}

	now := time.Now().UTC()
	series := &Series{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           input.Title,
		NormalizedTitle: importer.NormalizeTitle(input.Title),
		Slug:            slug.From(input.Title),
		Platform:        platformID,
		Status:          status,
		Genres:          normalizeGenres(input.Genres),
		TotalChapters:   input.TotalChapters,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if series.NormalizedTitle == "" {
		return nil, apperr.ValidationError("Title is required")
	}

	if err := service.repo.Create(context, series); err != nil {
		return nil, err
	}
	return series, nil
}

// UpdateInput holds the mutable fields of a series. Nil pointers leave the
// corresponding field unchanged.
type UpdateInput struct {
	Title         *string
	Status        *ReadingStatus
	Genres        []string
	TotalChapters *float64
}

func (service *Service) Update(context context.Context, userID, id string, input UpdateInput) (*Series, error) {
	series, err := service.repo.FindByID(context, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if importer.NormalizeTitle(*input.Title) == "" {
			return nil, apperr.ValidationError("Title is required")
		}
		series.Title = *input.Title
		series.NormalizedTitle = importer.NormalizeTitle(*input.Title)
		series.Slug = slug.From(*input.Title)
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperr.ValidationError("Unknown reading status: " + string(*input.Status))
		}
		series.Status = *input.Status
	}
	if input.Genres != nil {
		series.Genres = normalizeGenres(input.Genres)
	}
	if input.TotalChapters != nil {
		series.TotalChapters = *input.TotalChapters
	}
	series.UpdatedAt = time.Now().UTC()

	if err := service.repo.Update(context, series); err != nil {
		return nil, err
	}
	return series, nil
}

// Delete removes a series; its progress rows go with it via the storage
// foreign-key cascade.
func (service *Service) Delete(context context.Context, userID, id string) error {
	return service.repo.Delete(context, userID, id)
}

// # Import Confirmation

// ConfirmImport persists reviewed import entries as library series.
//
// Each entry is handled independently: a unique-constraint rejection means
// the library already tracks that title and counts as skipped (the
// confirm-time half of import deduplication); any other storage failure
// counts as failed without aborting the rest of the batch. Entries that
// carry a chapter or resume URL also seed an initial progress row.
func (service *Service) ConfirmImport(context context.Context, userID string, entries []importer.Entry) (*importer.ConfirmResult, error) {
	result := &importer.ConfirmResult{}
	now := time.Now().UTC()

	for _, entry := range entries {
		normalizedTitle := importer.NormalizeTitle(entry.Title)
		if normalizedTitle == "" {
			result.FailedItems++
			continue
		}

		series := &Series{
			ID:              uuid.New(),
			UserID:          userID,
			Title:           entry.Title,
			NormalizedTitle: normalizedTitle,
			Slug:            slug.From(entry.Title),
			Platform:        platform.Normalize(entry.Platform),
			Status:          StatusReading,
			Genres:          []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := service.repo.Create(context, series); err != nil {
			if errors.Is(err, dberr.ErrDuplicate) {
				result.SkippedItems++
			} else {
				service.logger.ErrorContext(context, "import_confirm_row_failed",
					slog.String("title", entry.Title), slog.Any("error", err))
				result.FailedItems++
			}
			continue
		}
		result.CreatedItems++

		service.seedProgress(context, series, entry)
	}

	return result, nil
}

// seedProgress records the imported chapter/URL as the series' first
// progress row. Best effort: a failure here downgrades the import, it
// does not undo it.
func (service *Service) seedProgress(context context.Context, series *Series, entry importer.Entry) {
	if entry.Chapter == nil && entry.URL == "" {
		return
	}
	if !platform.IsValid(series.Platform) {
		return
	}

	row := &progress.PlatformProgress{
		ID:             uuid.New(),
		UserID:         series.UserID,
		SeriesID:       series.ID,
		Platform:       series.Platform,
		CurrentChapter: pointer.Val(entry.Chapter),
		ResumeURL:      entry.URL,
		UpdatedAt:      pointer.Fallback(entry.LastReadAt, time.Now().UTC()),
	}

	if err := service.progressRepo.Upsert(context, row); err != nil {
		service.logger.WarnContext(context, "import_seed_progress_failed",
			slog.String("series_id", series.ID), slog.Any("error", err))
	}
}

// normalizeGenres trims and drops empty genre tags.
func normalizeGenres(genres []string) []string {
	cleaned := make([]string, 0, len(genres))
	for _, genre := range genres {
		if trimmed := strings.TrimSpace(genre); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
