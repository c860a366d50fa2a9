// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

func withParam(request *http.Request, name, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(name, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"쥐돌이"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &target))
	assert.Equal(t, "쥐돌이", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)
}

func TestInt64Param(t *testing.T) {
	request := withParam(httptest.NewRequest(http.MethodGet, "/products/1", nil), "id", "1")
	id, err := requestutil.Int64Param(request, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		request := withParam(httptest.NewRequest(http.MethodGet, "/products/x", nil), "id", raw)
		_, err := requestutil.Int64Param(request, "id")
		assert.Error(t, err, raw)
	}
}

func TestRequiredUserID(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredUserID(request)
	assert.Error(t, err)

	request = request.WithContext(ctxutil.WithUserID(request.Context(), 1))
	userID, err := requestutil.RequiredUserID(request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}
