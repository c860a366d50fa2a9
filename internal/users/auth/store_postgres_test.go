// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/platform/testenv"
	"github.com/taibuivan/catalog/internal/users/auth"
)

/*
TestPostgresUserRepository runs the repository and login flow against a real
database seeded by the migrations.
*/
func TestPostgresUserRepository(t *testing.T) {
	db := testenv.StartPostgres(t)
	repository := auth.NewUserRepository(db)
	ctx := context.Background()

	t.Run("seeded_user_logs_in", func(t *testing.T) {
		codec, err := sec.NewTokenCodec(testSecret, 0)
		require.NoError(t, err)

		token, err := auth.NewService(repository, codec).Login(ctx, auth.Credentials{
			Email:    testEmail,
			Password: testPassword,
		})
		require.NoError(t, err)

		userID, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := repository.FindByEmail(ctx, unknownEmail)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("lifecycle", func(t *testing.T) {
		user := &auth.User{Email: "it@codesoom.com", Name: "IT", PasswordHash: "hash"}
		require.NoError(t, repository.Create(ctx, user))
		require.NotZero(t, user.ID)

		duplicate := &auth.User{Email: "it@codesoom.com", Name: "Dup", PasswordHash: "hash"}
		assert.ErrorIs(t, repository.Create(ctx, duplicate), dberr.ErrDuplicate)

		exists, err := repository.ExistsByEmail(ctx, "it@codesoom.com")
		require.NoError(t, err)
		assert.True(t, exists)

		user.Name = "Renamed"
		require.NoError(t, repository.Update(ctx, user))

		found, err := repository.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)

		require.NoError(t, repository.SoftDelete(ctx, user.ID))
		assert.ErrorIs(t, repository.SoftDelete(ctx, user.ID), auth.ErrUserNotFound)

		_, err = repository.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)

		// The partial unique index frees the email after soft deletion.
		again := &auth.User{Email: "it@codesoom.com", Name: "Again", PasswordHash: "hash"}
		assert.NoError(t, repository.Create(ctx, again))
	})
}
