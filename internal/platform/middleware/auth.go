// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

// TokenParser resolves an access token to a user identifier.
//
// Defined here so the middleware does not depend on the auth service package.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// Authenticate is the single enforcement point for protected route groups.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>'. A missing header or another scheme
//     yields an empty token.
//  2. Resolve the token via [TokenParser]; blank tokens fail there too.
//  3. On failure, respond 401 and stop. The next handler never runs.
//  4. On success, attach the user ID with [ctxutil.WithUserID] and continue.
func Authenticate(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			userID, err := parser.ParseToken(BearerToken(request.Header.Get(constants.HeaderAuthorization)))
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "authentication_rejected",
					slog.Any("error", err),
				)
				respond.Error(writer, request, unauthorized(err))
				return
			}

			ctx := ctxutil.WithUserID(request.Context(), userID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// BearerToken strips the literal "Bearer " prefix from an Authorization header.
// It returns "" when the header is empty or uses another scheme.
func BearerToken(header string) string {
	token, found := strings.CutPrefix(header, constants.BearerPrefix)
	if !found {
		return ""
	}
	return token
}

// unauthorized keeps 401 semantics even if the parser returns an untyped error.
func unauthorized(err error) error {
	if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusUnauthorized {
		return err
	}
	return apperr.Unauthorized("Invalid access token").WithCause(err)
}
