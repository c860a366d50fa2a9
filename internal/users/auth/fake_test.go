// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/users/auth"
)

const (
	testSecret   = "12345678901234567890123456789012"
	testEmail    = "newoo4297@codesoom.com"
	testPassword = "1234567890"
	unknownEmail = "law@codesoom.com"
)

// memoryUsers is an in-memory [auth.UserRepository].
type memoryUsers struct {
	mu    sync.Mutex
	users map[int64]*auth.User
}

func newMemoryUsers(t *testing.T) *memoryUsers {
	t.Helper()

	hash, err := sec.HashPassword(testPassword)
	require.NoError(t, err)

	return &memoryUsers{users: map[int64]*auth.User{
		1: {ID: 1, Email: testEmail, Name: "Tester", PasswordHash: hash},
	}}
}

func (m *memoryUsers) FindByID(_ context.Context, id int64) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok || user.IsDeleted() {
		return nil, auth.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email && !user.IsDeleted() {
			clone := *user
			return &clone, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (m *memoryUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

func (m *memoryUsers) Create(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = int64(len(m.users) + 1)
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memoryUsers) Update(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return auth.ErrUserNotFound
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memoryUsers) SoftDelete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok || user.IsDeleted() {
		return auth.ErrUserNotFound
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

func newService(t *testing.T) (*auth.Service, *memoryUsers, *sec.TokenCodec) {
	t.Helper()

	codec, err := sec.NewTokenCodec(testSecret, 0)
	require.NoError(t, err)

	users := newMemoryUsers(t)
	return auth.NewService(users, codec), users, codec
}
