// Copyright (c) 2026 ReadTrace. All rights reserved.

/*
Package account handles user profile management.

It lets an authenticated user view, update, and delete their own account.
Platform preferences live in the preference package; credentials and
sessions live in auth. This package depends on auth only for the User
entity.
*/
package account

import (
	"context"

	"github.com/readtrace/readtrace/internal/users/auth"
)

// # Repository Contracts

// Repository defines the persistence contract for profile management.
type Repository interface {

	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		SoftDelete marks the account as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Storage failures
	*/
	SoftDelete(context context.Context, id string) error
}
