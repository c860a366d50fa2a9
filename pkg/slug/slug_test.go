// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mouse Toy", "mouse-toy"},
		{"  Café  Crème!! ", "cafe-creme"},
		{"쥐돌이", "쥐돌이"},
		{"냥이 월드 2", "냥이-월드-2"},
		{"---", slug.Fallback},
		{"", slug.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}
