// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// Handler implements the product HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with public reads and authenticated writes.
//
// # Endpoints
//   - GET    /      : Paginated list (public)
//   - GET    /{id}  : Single product (public)
//   - POST   /      : Create (authenticated)
//   - PATCH  /{id}  : Update (authenticated)
//   - DELETE /{id}  : Delete (authenticated)
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", handler.createProduct)
		r.Patch("/{id}", handler.updateProduct)
		r.Delete("/{id}", handler.deleteProduct)
	})

	return router
}

type productRequest struct {
	Name     string  `json:"name"`
	Maker    string  `json:"maker"`
	Price    *int64  `json:"price"`
	ImageURL *string `json:"image_url"`
}

func (req productRequest) toInput() Input {
	return Input{
		Name:     req.Name,
		Maker:    req.Maker,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	products, total, err := handler.service.ListProducts(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(params, total))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

/*
POST /products.

Response:
  - 201: Product: Created product
  - 400: Validation failure
  - 401: Missing or invalid access token
*/
func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.CreateProduct(request.Context(), input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, p)
}

/*
PATCH /products/{id}.

Response:
  - 200: Product: Updated product
  - 400: Validation failure
  - 401: Missing or invalid access token
  - 404: Unknown product
*/
func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.UpdateProduct(request.Context(), id, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

/*
DELETE /products/{id}.

Response:
  - 204: No Content
  - 401: Missing or invalid access token
  - 404: Unknown product
*/
func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProduct(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
