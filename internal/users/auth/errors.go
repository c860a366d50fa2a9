// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// Authentication failures. All are terminal for the request.
var (
	// ErrInvalidAccessToken is returned by [Service.ParseToken] for any token the codec rejects.
	ErrInvalidAccessToken = apperr.New(http.StatusUnauthorized, "INVALID_ACCESS_TOKEN", "Invalid access token")

	// ErrUserNotFound is returned when no live account matches the lookup.
	ErrUserNotFound = apperr.New(http.StatusNotFound, "USER_NOT_FOUND", "User not found")

	// ErrInvalidPassword is returned by [Service.Login] when the password does not match.
	ErrInvalidPassword = apperr.New(http.StatusBadRequest, "INVALID_PASSWORD", "Log-in fail")
)
