// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/middleware"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/account"
	"github.com/taibuivan/catalog/internal/users/auth"
)

const testSecret = "12345678901234567890123456789012"

type fixture struct {
	router http.Handler
	token  string
}

// newFixture registers user 1 and returns a router mounted like the API server does.
func newFixture(t *testing.T) fixture {
	t.Helper()

	users := newMemoryUsers()
	codec, err := sec.NewTokenCodec(testSecret, 0)
	require.NoError(t, err)

	accountService := account.NewService(users, discardLogger())
	_, err = accountService.Register(context.Background(), registerInput())
	require.NoError(t, err)

	token, err := codec.Encode(1)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Mount("/users", account.NewHandler(accountService).Routes(
		middleware.Authenticate(auth.NewService(users, codec)),
	))

	return fixture{router: router, token: token}
}

func (f fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Register(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"created", `{"email":"law@codesoom.com","name":"Law","password":"secret-pass"}`, http.StatusCreated, ""},
		{"duplicate", `{"email":"newoo4297@codesoom.com","name":"Dup","password":"secret-pass"}`, http.StatusBadRequest, "USER_EMAIL_DUPLICATED"},
		{"invalid_email", `{"email":"nope","name":"X","password":"secret-pass"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"short_password", `{"email":"a@codesoom.com","name":"X","password":"1"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := f.do(http.MethodPost, "/users", tt.body, "")
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantCode)
		})
	}
}

func TestHandler_ProtectedRoutes(t *testing.T) {
	f := newFixture(t)

	t.Run("me", func(t *testing.T) {
		recorder := f.do(http.MethodGet, "/users/me", "", f.token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "newoo4297@codesoom.com")
	})

	t.Run("update_without_token", func(t *testing.T) {
		recorder := f.do(http.MethodPatch, "/users/1", `{"name":"New"}`, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("update_with_invalid_token", func(t *testing.T) {
		recorder := f.do(http.MethodPatch, "/users/1", `{"name":"New"}`, f.token+"INVALID")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("update_other_user", func(t *testing.T) {
		recorder := f.do(http.MethodPatch, "/users/2", `{"name":"New"}`, f.token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("update_own", func(t *testing.T) {
		recorder := f.do(http.MethodPatch, "/users/1", `{"name":"New"}`, f.token)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"name":"New"`)
	})

	t.Run("delete_own", func(t *testing.T) {
		recorder := f.do(http.MethodDelete, "/users/1", "", f.token)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		recorder = f.do(http.MethodGet, "/users/me", "", f.token)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
