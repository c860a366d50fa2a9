// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository defines the persistence contract for products.
//
// Lookups of a missing ID return [ErrProductNotFound].
type Repository interface {
	ListProducts(context context.Context, limit, offset int) ([]*Product, int, error)
	GetProduct(context context.Context, id int64) (*Product, error)
	CreateProduct(context context.Context, p *Product) error
	UpdateProduct(context context.Context, p *Product) error
	DeleteProduct(context context.Context, id int64) error
}
