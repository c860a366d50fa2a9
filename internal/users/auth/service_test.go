// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
)

/*
TestLogin covers the credential checks in order: lookup, password, signing.
*/
func TestLogin(t *testing.T) {
	service, _, codec := newService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		token, err := service.Login(ctx, auth.Credentials{Email: testEmail, Password: testPassword})
		require.NoError(t, err)

		userID, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(ctx, auth.Credentials{Email: unknownEmail, Password: testPassword})
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, auth.Credentials{Email: testEmail, Password: "12345"})
		assert.ErrorIs(t, err, auth.ErrInvalidPassword)
	})
}

/*
TestLogin_DeletedAccount verifies that soft-deleted accounts cannot log in.
*/
func TestLogin_DeletedAccount(t *testing.T) {
	service, users, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, users.SoftDelete(ctx, 1))

	_, err := service.Login(ctx, auth.Credentials{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

/*
TestParseToken verifies that every codec failure surfaces as ErrInvalidAccessToken.
*/
func TestParseToken(t *testing.T) {
	service, _, codec := newService(t)

	validToken, err := codec.Encode(1)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		userID, err := service.ParseToken(validToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	rejected := map[string]string{
		"altered_signature": validToken + "0",
		"empty":             "",
		"whitespace":        "   ",
		"garbage":           "not-a-token",
	}

	for name, token := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := service.ParseToken(token)
			assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}

	t.Run("foreign_key", func(t *testing.T) {
		other, err := sec.NewTokenCodec("abcdefghijklmnopqrstuvwxyz123456", 0)
		require.NoError(t, err)

		foreign, err := other.Encode(1)
		require.NoError(t, err)

		_, err = service.ParseToken(foreign)
		assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
	})
}
