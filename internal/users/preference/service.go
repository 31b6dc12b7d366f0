// Copyright (c) 2026 ReadTrace. All rights reserved.

package preference

import (
	"context"
	"errors"
	"time"

	"github.com/readtrace/readtrace/internal/catalog/platform"
	"github.com/readtrace/readtrace/internal/library/progress"
	"github.com/readtrace/readtrace/internal/platform/apperr"
	"github.com/readtrace/readtrace/internal/platform/dberr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's preferences. A user who never saved any gets the
// empty default rather than a not-found error.
func (service *Service) Get(context context.Context, userID string) (*PlatformPreferences, error) {
	prefs, err := service.repo.Get(context, userID)
	if errors.Is(err, dberr.ErrNotFound) {
		return &PlatformPreferences{UserID: userID, PreferredPlatforms: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// Update replaces the ordered preference list after catalog validation.
func (service *Service) Update(context context.Context, userID string, preferredPlatforms []string) (*PlatformPreferences, error) {
	if err := platform.ValidatePreferenceList(preferredPlatforms); err != nil {
		return nil, err
	}

	current, err := service.Get(context, userID)
	if err != nil {
		return nil, err
	}

	current.PreferredPlatforms = preferredPlatforms
	current.UpdatedAt = time.Now().UTC()

	if err := service.repo.Save(context, current); err != nil {
		return nil, err
	}
	return current, nil
}

// RecordSelection stores the platform of the user's most recent manual
// "open on X" choice. It never touches the ordered list.
func (service *Service) RecordSelection(context context.Context, userID, platformID string) (*PlatformPreferences, error) {
	if !platform.IsValid(platformID) {
		return nil, apperr.ValidationError("Unknown platform: " + platformID)
	}

	current, err := service.Get(context, userID)
	if err != nil {
		return nil, err
	}

	current.LastSelectedPlatform = platformID
	current.UpdatedAt = time.Now().UTC()

	if err := service.repo.Save(context, current); err != nil {
		return nil, err
	}
	return current, nil
}

// PreferencesFor implements [progress.PreferenceSource] for the resume
// resolver.
func (service *Service) PreferencesFor(context context.Context, userID string) (progress.Preferences, error) {
	prefs, err := service.Get(context, userID)
	if err != nil {
		return progress.Preferences{}, err
	}
	return progress.Preferences{
		PreferredPlatforms:   prefs.PreferredPlatforms,
		LastSelectedPlatform: prefs.LastSelectedPlatform,
	}, nil
}
