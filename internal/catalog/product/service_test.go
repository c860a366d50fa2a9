// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/product"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pagination"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func validInput() product.Input {
	return product.Input{Name: "쥐돌이", Maker: "냥이월드", Price: pointer.To[int64](5000)}
}

func TestCreateProduct(t *testing.T) {
	service := product.NewService(newMemoryRepository(), discardLogger())
	ctx := context.Background()

	p, err := service.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "쥐돌이", p.Slug)
	assert.Nil(t, p.ImageURL)
}

func TestCreateProduct_Validation(t *testing.T) {
	service := product.NewService(newMemoryRepository(), discardLogger())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*product.Input)
		field  string
	}{
		{"blank_name", func(in *product.Input) { in.Name = "  " }, product.FieldName},
		{"blank_maker", func(in *product.Input) { in.Maker = "" }, product.FieldMaker},
		{"missing_price", func(in *product.Input) { in.Price = nil }, product.FieldPrice},
		{"negative_price", func(in *product.Input) { in.Price = pointer.To[int64](-1) }, product.FieldPrice},
		{"bad_image_url", func(in *product.Input) { in.ImageURL = pointer.To("ftp://x") }, product.FieldImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateProduct(ctx, input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	service := product.NewService(newMemoryRepository(), discardLogger())
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	input := validInput()
	input.Name = "쥐순이"
	updated, err := service.UpdateProduct(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "쥐순이", updated.Name)
	assert.Equal(t, "쥐순이", updated.Slug)

	_, err = service.UpdateProduct(ctx, 1000, validInput())
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	require.NoError(t, service.DeleteProduct(ctx, created.ID))
	assert.ErrorIs(t, service.DeleteProduct(ctx, created.ID), product.ErrProductNotFound)

	_, err = service.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	service := product.NewService(newMemoryRepository(), discardLogger())
	ctx := context.Background()

	for range 3 {
		_, err := service.CreateProduct(ctx, validInput())
		require.NoError(t, err)
	}

	page, total, err := service.ListProducts(ctx, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, int64(3), page[0].ID)
}
