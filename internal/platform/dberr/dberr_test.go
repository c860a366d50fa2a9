// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	err := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "get_product")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	err = dberr.Wrap(&pgconn.PgError{Code: "23505"}, "create_user")
	assert.ErrorIs(t, err, dberr.ErrDuplicate)

	err = dberr.Wrap(errors.New("connection reset"), "list_products")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.Contains(t, ae.Cause.Error(), "list_products")
}
