package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// -- Ownership --
	ErrForbidden = errors.New("cart entry belongs to another user")

	// -- Resource State --
	ErrEntryNotFound = errors.New("cart entry not found")
)
