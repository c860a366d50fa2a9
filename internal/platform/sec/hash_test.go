// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/sec"
)

func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("1234567890")
	require.NoError(t, err)

	assert.NotEqual(t, "1234567890", hash)
	assert.True(t, sec.CheckPasswordHash("1234567890", hash))
	assert.False(t, sec.CheckPasswordHash("12345", hash))
	assert.False(t, sec.CheckPasswordHash("1234567890", ""))
	assert.False(t, sec.CheckPasswordHash("1234567890", "1234567890"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := sec.HashPassword(strings.Repeat("a", sec.MaxPasswordBytes+1))
	assert.Error(t, err)
}
