// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// The service layer depends only on this capability set, so any persistence
// backend that can honor per-record write atomicity may implement it.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given normalized email.

		Parameters:
		  - context: context.Context
		  - email: string (lowercase)

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByRefreshToken returns the account whose stored refresh token
		matches the presented value exactly.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByRefreshToken(context context.Context, token string) (*User, error)

	/*
		FindByResetToken returns the account holding the exact reset token value.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByResetToken(context context.Context, token string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateRefreshToken replaces the stored refresh token. Passing nil
		clears it (logout).

		Parameters:
		  - context: context.Context
		  - userID: string
		  - token: *string

		Returns:
		  - error: Persistence failures
	*/
	UpdateRefreshToken(context context.Context, userID string, token *string) error

	/*
		UpdatePassword replaces the password hash and clears the reset token
		pair in a single write.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error

	/*
		UpdateResetToken sets or clears the reset token and its expiry
		together. Both nil clears the pair.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - token: *string
		  - expiry: *time.Time

		Returns:
		  - error: Persistence failures
	*/
	UpdateResetToken(context context.Context, userID string, token *string, expiry *time.Time) error
}
