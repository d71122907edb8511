package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Image       *string         `json:"image,omitempty"`
	Sales       int             `json:"sales"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProductParams struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Image       *string
}

type UpdateProductParams struct {
	ID          uint
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Image       *string
}
