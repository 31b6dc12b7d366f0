// Copyright (c) 2026 ReadTrace. All rights reserved.

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/readtrace/readtrace/internal/platform/apperr"
	"github.com/readtrace/readtrace/internal/users/auth"
)

// Service implements profile management use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
GetProfile returns the authenticated user's own account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: Account entity
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	return service.repository.FindByID(context, userID)
}

// UpdateProfileInput holds the mutable profile fields. Nil pointers leave
// the corresponding field unchanged.
type UpdateProfileInput struct {
	DisplayName *string
}

/*
UpdateProfile applies the given changes to the user's profile.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: Updated account entity
  - error: Validation or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.repository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		displayName := strings.TrimSpace(*input.DisplayName)
		if displayName == "" {
			return nil, apperr.ValidationError("Display name must not be blank")
		}
		user.DisplayName = displayName
	}

	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	return user, nil
}

/*
DeleteAccount soft-deletes the user's own account.

Description: The row is retained so library data referencing it stays
consistent; the account simply stops resolving.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: apperr.NotFound or storage failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {
	return service.repository.SoftDelete(context, userID)
}
