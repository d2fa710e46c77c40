// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/monapi/internal/product/errors"
	"github.com/abgdnv/monapi/internal/product/service"
	"github.com/abgdnv/monapi/pkg/web"
	"github.com/go-chi/chi/v5"
)

const (
	msgProductList    = "product list"
	msgProductFound   = "product found"
	msgProductCreated = "product created"
)

type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new product Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "products"),
	}
}

// RegisterRoutes registers the product routes on a router mounted at the products prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.FindAll)
	r.Post("/", h.Create)
	r.Get("/{id}", h.FindByID)
}

// FindAll lists every product.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondSuccess(w, h.logger, http.StatusOK, msgProductList, list)
}

// FindByID retrieves a product by its ID. An ID that is not an integer cannot match any product.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseInt64Param(r, "id")
	if err != nil {
		h.respondFailure(w, r, fmt.Errorf("%w: %v", perrors.ErrProductNotFound, err))
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondSuccess(w, h.logger, http.StatusOK, msgProductFound, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var productCreateDto service.ProductCreateDto
	if err := web.DecodeJSON(r.Body, &productCreateDto); err != nil {
		h.respondFailure(w, r, decodeError(err))
		return
	}

	created, err := h.service.Create(r.Context(), productCreateDto)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondSuccess(w, h.logger, http.StatusCreated, msgProductCreated, created)
}

// respondFailure maps an operation error to exactly one response.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		h.logger.WarnContext(r.Context(), "Product not found", "error", err)
		web.RespondError(w, h.logger, http.StatusNotFound, perrors.ErrProductNotFound.Error())
	case errors.Is(err, perrors.ErrInvalidProduct):
		h.logger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, perrors.ErrInvalidProduct.Error())
	case errors.Is(err, perrors.ErrMalformedBody):
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, perrors.ErrMalformedBody.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Product operation failed", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// decodeError classifies a JSON decoding failure. A well-formed body with a wrongly typed
// field, or no body at all, is a validation failure; anything else, trailing data included,
// is a malformed body.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", perrors.ErrInvalidProduct, err)
	}
	return fmt.Errorf("%w: %v", perrors.ErrMalformedBody, err)
}
