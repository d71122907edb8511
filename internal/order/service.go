package order

import (
	"context"
	"fmt"
	"time"

	"mirastore-be/internal/access"
	"mirastore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, ident access.Identity, lines []Line) (*Order, error)
	UpdateStatus(ctx context.Context, ident access.Identity, orderID uint, next Status) (*Order, error)
	View(ctx context.Context, ident access.Identity, orderID uint) (*Detail, error)
	History(ctx context.Context, ident access.Identity) ([]Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PlaceOrder turns the submitted cart lines into a pending order. The
// whole conversion runs in one transaction; see Repository.PlaceOrderTx.
func (s *service) PlaceOrder(ctx context.Context, ident access.Identity, lines []Line) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", ident.UserID),
	)

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrInvalidQuantity)
		}
	}

	o, err := s.repo.PlaceOrderTx(ctx, ident.UserID, lines)
	if err != nil {
		log.Error("failed to place order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed", zap.Uint("order_id", o.ID))
	return o, nil
}

// UpdateStatus applies the status lifecycle. A disallowed move returns
// ErrForbidden and leaves the order untouched.
func (s *service) UpdateStatus(ctx context.Context, ident access.Identity, orderID uint, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(ident, o, next) {
		return nil, ErrForbidden
	}

	markShipped := next == StatusDelivered && o.ShippedAt == nil
	if err := s.repo.UpdateStatus(ctx, orderID, o.Status, next, markShipped); err != nil {
		return nil, err
	}

	o.Status = next
	if markShipped {
		now := time.Now()
		o.ShippedAt = &now
	}

	return o, nil
}

// View assembles the display projection for one order. Customers can only
// see their own orders.
func (s *service) View(ctx context.Context, ident access.Identity, orderID uint) (*Detail, error) {
	o, customer, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !ident.IsAdmin() && o.UserID != ident.UserID {
		return nil, ErrForbidden
	}

	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	detail := &Detail{
		ID:              o.ID,
		OrderNumber:     fmt.Sprintf("ORD-%d", o.ID),
		PlacedAt:        o.CreatedAt.Format("2006-01-02"),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerAddress: derefOrEmpty(customer.Address),
		Items:           o.Items,
		Subtotal:        subtotal,
		Shipping:        ShippingFee,
		Total:           subtotal.Add(ShippingFee),
		Status:          o.Status,
	}

	if o.ShippedAt != nil {
		shipped := o.ShippedAt.Format("2006-01-02")
		detail.ShippedAt = &shipped
	}

	return detail, nil
}

// History lists the caller's orders newest first, with the shipping fee
// folded into the displayed totals.
func (s *service) History(ctx context.Context, ident access.Identity) ([]Summary, error) {
	orders, err := s.repo.ListForUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, Summary{
			ID:          o.ID,
			TotalAmount: o.TotalAmount.Add(ShippingFee),
			Status:      o.Status,
			CreatedAt:   o.CreatedAt.Format("2006-01-02"),
		})
	}

	return summaries, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
