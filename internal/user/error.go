package user

import "errors"

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCustomerHasOrders rejects deleting a customer whose orders are
	// still on the books; order rows are the sales ledger.
	ErrCustomerHasOrders = errors.New("customer has order history")
)

// Postgres error codes mapped to domain sentinels.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)
