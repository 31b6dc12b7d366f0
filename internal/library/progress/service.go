package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/platform/apperr"
	"github.com/readtrace/readtrace/pkg/uuid"
)

// PreferenceSource supplies the per-user platform preference list consulted
// during resume resolution. Implemented by the users/preference service.
type PreferenceSource interface {
	PreferencesFor(context context.Context, userID string) (Preferences, error)
}

type Service struct {
	repo        Repository
	preferences PreferenceSource
	logger      *slog.Logger
}

func NewService(repo Repository, preferences PreferenceSource, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		preferences: preferences,
		logger:      logger,
	}
}

// RecordInput carries one platform's reported reading state.
type RecordInput struct {
	Platform       string
	CurrentChapter float64
	TotalChapters  float64
	ScrollPosition float64
	ResumeURL      string
}

// Record upserts one platform's progress for a series.
//
// The platform identifier is normalized before storage so the resolver's
// exact-string comparisons hold across differently spelled sources.
func (service *Service) Record(context context.Context, userID, seriesID string, input RecordInput) (*PlatformProgress, error) {
	platformID := platform.Normalize(input.Platform)
	if !platform.IsValid(platformID) {
		return nil, apperr.ValidationError("Unknown platform: " + input.Platform)
	}
	if input.CurrentChapter < 0 {
		return nil, apperr.ValidationError("Chapter must be a non-negative number")
	}

	row := &PlatformProgress{
		ID:             uuid.New(),
		UserID:         userID,
		SeriesID:       seriesID,
		Platform:       platformID,
		CurrentChapter: input.CurrentChapter,
		TotalChapters:  input.TotalChapters,
		ScrollPosition: input.ScrollPosition,
		ResumeURL:      input.ResumeURL,
		UpdatedAt:      time.Now().UTC(),
	}

	if err := service.repo.Upsert(context, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Unified loads the consolidated cross-platform view for one series.
// Returns nil when no platform has recorded progress.
func (service *Service) Unified(context context.Context, userID, seriesID string) (*UnifiedProgress, error) {
	rows, err := service.repo.ListBySeries(context, userID, seriesID)
	if err != nil {
		return nil, err
	}
	return Unify(seriesID, rows), nil
}

// ResumeLink is the outcome of a continue-reading resolution.
type ResumeLink struct {
	SeriesID string `json:"series_id"`
	// ResumeURL is empty when no platform has a usable deep link.
	ResumeURL string `json:"resume_url,omitempty"`
	// Platforms lists every platform with recorded progress, primary first.
	Platforms []string `json:"available_platforms"`
}

// ContinueReading resolves the URL a continue-reading action should open.
//
// manualOverride, when non-empty, is an explicit one-time platform choice
// that beats stored preferences. An empty ResumeURL in the result is a
// normal outcome; the caller hides its continue button.
func (service *Service) ContinueReading(context context.Context, userID, seriesID, manualOverride string) (*ResumeLink, error) {
	unified, err := service.Unified(context, userID, seriesID)
	if err != nil {
		return nil, err
	}

	prefs, err := service.preferences.PreferencesFor(context, userID)
	if err != nil {
		// Missing preferences degrade to recency-based resolution.
		service.logger.WarnContext(context, "preferences_unavailable",
			slog.String("user_id", userID), slog.Any("error", err))
		prefs = Preferences{}
	}

	return &ResumeLink{
		SeriesID:  seriesID,
		ResumeURL: SelectResumeURL(unified, prefs, manualOverride),
		Platforms: AvailablePlatforms(unified),
	}, nil
}
