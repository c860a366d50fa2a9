// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/catalog/internal/catalog/product"
)

// memoryRepository is an in-memory [product.Repository] that counts reads.
type memoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*product.Product
	gets     int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1, products: make(map[int64]*product.Product)}
}

func (m *memoryRepository) ListProducts(_ context.Context, limit, offset int) ([]*product.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*product.Product, 0, len(m.products))
	for _, p := range m.products {
		clone := *p
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return []*product.Product{}, len(all), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (m *memoryRepository) GetProduct(_ context.Context, id int64) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gets++
	p, ok := m.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *memoryRepository) CreateProduct(_ context.Context, p *product.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	p.ID = m.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	m.nextID++

	clone := *p
	m.products[p.ID] = &clone
	return nil
}

func (m *memoryRepository) UpdateProduct(_ context.Context, p *product.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[p.ID]
	if !ok {
		return product.ErrProductNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	clone := *p
	m.products[p.ID] = &clone
	return nil
}

func (m *memoryRepository) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
