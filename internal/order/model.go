package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDelivered Status = "delivered"
	StatusReceived  Status = "received"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDelivered, StatusReceived:
		return true
	}
	return false
}

// ShippingFee is the flat fee added to the item subtotal for display.
// It is never persisted; orders store the item total only.
var ShippingFee = decimal.NewFromInt(10)

type Order struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ShippedAt   *time.Time      `json:"shipped_at,omitempty"`
	Items       []Item          `json:"items,omitempty"`
}

// Item freezes the product's price at the moment the order was placed.
// Product.Price may drift afterwards; Item.Price never does.
type Item struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`

	ProductName  string  `json:"product_name,omitempty"`
	ProductImage *string `json:"product_image,omitempty"`
}

// Line is one requested position of a new order.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Detail is the read-only order projection served to the UI: current
// product fields, historical unit prices, customer contact info, and a
// displayed total that includes the shipping fee.
type Detail struct {
	ID              uint            `json:"id"`
	OrderNumber     string          `json:"order_number"`
	PlacedAt        string          `json:"placed_at"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerAddress string          `json:"customer_address"`
	Items           []Item          `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	ShippedAt       *string         `json:"shipped_at,omitempty"`
}

// Summary is one row of a customer's order history. TotalAmount here is
// the displayed total, shipping included.
type Summary struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}
