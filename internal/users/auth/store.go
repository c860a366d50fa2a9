// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Soft-deleted accounts are invisible to every lookup.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a live account already uses email.
	ExistsByEmail(context context.Context, email string) (bool, error)

	/*
		Create persists a brand-new user account and fills in its ID and timestamps.

		Returns:
		  - error: dberr.ErrDuplicate on a taken email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		Update persists changes to the name and password hash.

		Returns:
		  - error: ErrUserNotFound or persistence failures
	*/
	Update(context context.Context, user *User) error

	/*
		SoftDelete marks the account as deleted without removing the row.

		Returns:
		  - error: ErrUserNotFound or persistence failures
	*/
	SoftDelete(context context.Context, id int64) error
}
