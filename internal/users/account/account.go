// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles user account lifecycle: registration, profile updates,
and soft deletion.

# Architecture

  - Domain: This package depends on the auth package for the User entity and
    its [auth.UserRepository].
  - Security: Passwords are hashed with bcrypt before they reach storage, and
    an authenticated caller may only modify its own account.
*/
package account

import (
	"net/http"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// # Inputs

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateInput defines the mutable subset of account fields. Nil means unchanged.
type UpdateInput struct {
	Name     *string
	Password *string
}

// # Errors

var (
	// ErrEmailDuplicated is returned when a live account already owns the email.
	ErrEmailDuplicated = apperr.New(http.StatusBadRequest, "USER_EMAIL_DUPLICATED", "User's email address is already existed")

	// ErrNotOwner is returned when a caller targets another user's account.
	ErrNotOwner = apperr.Forbidden("You can only modify your own account")
)

// # Validation Limits

const (
	nameMaxLen      = 100
	passwordMinLen  = 4
	passwordTooLong = "Password is too long"
)
