package utils

import "errors"

// Common application errors used across services.
var (
	ErrQueryRequired    = errors.New("QUERY_REQUIRED")
	ErrProductNotFound  = errors.New("PRODUCT_NOT_FOUND")
	ErrCategoryNotFound = errors.New("CATEGORY_NOT_FOUND")
	ErrDuplicateSlug    = errors.New("DUPLICATE_SLUG")
	ErrInvalidToken     = errors.New("INVALID_TOKEN")
)
