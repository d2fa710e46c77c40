// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("a non-empty name and a numeric price greater than 0 are required")
	ErrMalformedBody   = errors.New("invalid request body")
)
