// Package shared defines sentinel errors used across all layers of TillBox.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// auth-specific errors
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInvalidToken = errors.New("invalid token")

	ErrorInvalidAuthheaderFormat = errors.New("invalid auth header format")

	// checkout-specific errors
	ErrorEmptyCart       = errors.New("cart is empty")
	ErrorInvalidQuantity = errors.New("quantity must be positive")
)
