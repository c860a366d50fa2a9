// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/pkg/pointer"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, "new", pointer.Fallback(pointer.To("new"), "old"))
	assert.Equal(t, "old", pointer.Fallback[string](nil, "old"))
	assert.Equal(t, int64(0), pointer.Fallback(pointer.To[int64](0), 5))
}
