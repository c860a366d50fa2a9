// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product implements the product catalog: listing, lookup, and the
authenticated create/update/delete operations.

# Architecture

  - Service: Validation, slug derivation, and orchestration.
  - Repository: [PostgresRepository] is the source of truth; [CachedRepository]
    decorates it with a Redis read-through cache for single-product lookups.
  - Delivery: Reads are public, writes are mounted behind the authentication
    middleware.
*/
package product

import (
	"time"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// Product represents a catalog item.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Maker     string    `json:"maker"`
	Price     int64     `json:"price"`
	ImageURL  *string   `json:"image_url"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the client-editable attributes of a product.
//
// Price is a pointer so a missing price can be told apart from a free product.
type Input struct {
	Name     string
	Maker    string
	Price    *int64
	ImageURL *string
}

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = apperr.NotFound("Product")

// Global field names for validation
const (
	FieldName     = "name"
	FieldMaker    = "maker"
	FieldPrice    = "price"
	FieldImageURL = "image_url"
)

const (
	nameMaxLen  = 200
	makerMaxLen = 200
)
