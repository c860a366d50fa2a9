// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
	"github.com/taibuivan/catalog/pkg/slug"
)

// Service orchestrates product use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new product [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns one page of products and the total count.
func (service *Service) ListProducts(context context.Context, params pagination.Params) ([]*Product, int, error) {
	return service.repo.ListProducts(context, params.Limit, params.Offset())
}

// GetProduct returns a single product or [ErrProductNotFound].
func (service *Service) GetProduct(context context.Context, id int64) (*Product, error) {
	return service.repo.GetProduct(context, id)
}

// CreateProduct validates input and persists a new product.
func (service *Service) CreateProduct(context context.Context, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := fromInput(input)
	if err := service.repo.CreateProduct(context, p); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_created",
		slog.Int64("product_id", p.ID),
		slog.String("name", p.Name),
	)
	return p, nil
}

// UpdateProduct validates input and replaces the attributes of an existing product.
func (service *Service) UpdateProduct(context context.Context, id int64, input Input) (*Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := fromInput(input)
	p.ID = id
	if err := service.repo.UpdateProduct(context, p); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_updated", slog.Int64("product_id", id))
	return p, nil
}

// DeleteProduct removes a product permanently.
func (service *Service) DeleteProduct(context context.Context, id int64) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "product_deleted", slog.Int64("product_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, nameMaxLen).
		Required(FieldMaker, input.Maker).MaxLen(FieldMaker, input.Maker, makerMaxLen).
		Custom(FieldPrice, input.Price == nil, "This field is required")

	if input.Price != nil {
		validator.NonNegative(FieldPrice, *input.Price)
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		validator.URL(FieldImageURL, *input.ImageURL)
	}

	return validator.Err()
}

func fromInput(input Input) *Product {
	name := strings.TrimSpace(input.Name)

	var imageURL *string
	if input.ImageURL != nil && *input.ImageURL != "" {
		imageURL = input.ImageURL
	}

	return &Product{
		Name:     name,
		Maker:    strings.TrimSpace(input.Maker),
		Price:    *input.Price,
		ImageURL: imageURL,
		Slug:     slug.From(name),
	}
}
