// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	perrors "github.com/abgdnv/monapi/internal/product/errors"
	"github.com/abgdnv/monapi/internal/product/store"
	"github.com/go-playground/validator/v10"
)

// ProductService defines the methods for managing products.
type ProductService interface {
	// FindAll returns all products in creation order.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Create validates and adds a new product.
	// Returns ErrInvalidProduct, and stores nothing, if validation fails.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)
}

// Service implements ProductService on top of a ProductStore.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Price is a pointer so that a missing price can be told apart from zero.
type ProductCreateDto struct {
	Name  string   `json:"name"  validate:"required"`
	Price *float64 `json:"price" validate:"required,gt=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FindAll retrieves all products and returns them as ProductDtos.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Create validates the input and creates a new product.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if err := s.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("%w: %s", perrors.ErrInvalidProduct, describe(err))
	}

	p, err := s.repository.Create(ctx, product.Name, *product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// describe flattens validator errors into "Field failed on rule: tag" pairs.
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
	}
	sort.Strings(details)
	return strings.Join(details, ", ")
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}
