// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table     string
	ID        string
	Name      string
	Maker     string
	Price     string
	ImageURL  string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:     "catalog.product",
	ID:        "id",
	Name:      "name",
	Maker:     "maker",
	Price:     "price",
	ImageURL:  "imageurl",
	Slug:      "slug",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Maker, t.Price, t.ImageURL, t.Slug, t.CreatedAt, t.UpdatedAt,
	}
}
