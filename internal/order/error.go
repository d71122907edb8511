package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrForbidden        = errors.New("not allowed on this order")
	ErrInvalidReference = errors.New("order references a non-existent product")
	ErrEmptyOrder       = errors.New("order has no line items")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrStatusConflict   = errors.New("order status changed concurrently")
)
