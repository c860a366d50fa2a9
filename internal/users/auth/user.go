// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity layer of the catalog API.

It exchanges an email/password pair for a signed access token and resolves
access tokens back into user identifiers.

# Architecture

  - Service: Login and ParseToken. Stateless per call.
  - Repository: [UserRepository] abstracts the users.account table.
  - Security: bcrypt password hashes and HS256 tokens via the sec package.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// IsDeleted reports whether the account has been soft-deleted.
func (user *User) IsDeleted() bool {
	return user.DeletedAt != nil
}

// Credentials is a transient email/password pair. It is never persisted.
type Credentials struct {
	Email    string
	Password string
}

// # Field Identifiers

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldAccessToken = "accessToken"
)
