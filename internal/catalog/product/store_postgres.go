// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the catalog.product table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var productColumns = strings.Join(schema.CatalogProduct.Columns(), ", ")

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Maker, &p.Price, &p.ImageURL, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// wrap maps a missing row to [ErrProductNotFound] and everything else through dberr.
func wrap(err error, action string) error {
	wrapped := dberr.Wrap(err, action)
	if errors.Is(wrapped, dberr.ErrNotFound) {
		return ErrProductNotFound
	}
	return wrapped
}

func (repository *PostgresRepository) ListProducts(context context.Context, limit, offset int) ([]*Product, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogProduct.Table)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		productColumns, schema.CatalogProduct.Table, schema.CatalogProduct.ID)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := make([]*Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetProduct(context context.Context, id int64) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		productColumns, schema.CatalogProduct.Table, schema.CatalogProduct.ID)

	p, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, wrap(err, "get_product")
	}
	return p, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Name, schema.CatalogProduct.Maker, schema.CatalogProduct.Price,
		schema.CatalogProduct.ImageURL, schema.CatalogProduct.Slug,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.ID, schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Name, p.Maker, p.Price, p.ImageURL, p.Slug).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Name, schema.CatalogProduct.Maker, schema.CatalogProduct.Price,
		schema.CatalogProduct.ImageURL, schema.CatalogProduct.Slug, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.ID,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name, p.Maker, p.Price, p.ImageURL, p.Slug).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return wrap(err, "update_product")
	}
	return nil
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogProduct.Table, schema.CatalogProduct.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
