package order

import (
	"context"
	"database/sql"
	"errors"

	"mirastore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	PlaceOrderTx(ctx context.Context, userID uint, lines []Line) (*Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	GetDetail(ctx context.Context, orderID uint) (*Order, *Customer, error)
	ListForUser(ctx context.Context, userID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID uint, from, to Status, markShipped bool) error
}

// Customer is the contact snapshot joined into the order detail view.
type Customer struct {
	Name    string
	Email   string
	Address *string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrderTx converts the given lines into an order inside a single
// transaction: price lookup, order + item inserts, sales counter bumps,
// and the cart wipe either all land or none do.
func (r *repository) PlaceOrderTx(ctx context.Context, userID uint, lines []Line) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrderTx"),
		zap.Uint("user_id", userID),
		zap.Int("line_count", len(lines)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	// Resolve current prices. Missing products invalidate the whole order.
	items := make([]Item, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx, `
			SELECT price FROM products WHERE id = $1
		`, line.ProductID).Scan(&price)

		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("line references missing product", zap.Uint("product_id", line.ProductID))
			return nil, ErrInvalidReference
		}
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	var o Order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total_amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, total_amount, status, created_at
	`, userID, total, StatusPending).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i := range items {
		items[i].OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, items[i].ProductID, items[i].Quantity, items[i].Price).
			Scan(&items[i].ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		// Atomic increment so concurrent orders never lose sales counts.
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET sales = sales + $1 WHERE id = $2
		`, items[i].Quantity, items[i].ProductID)
		if err != nil {
			log.Error("failed to bump sales counter",
				zap.Uint("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}
	committed = true

	o.Items = items

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
	)

	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, total_amount, status, created_at, shipped_at
		FROM orders
		WHERE id = $1
	`, orderID).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.ShippedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// GetDetail loads the order, its items joined with current product data,
// and the customer's contact snapshot.
func (r *repository) GetDetail(ctx context.Context, orderID uint) (*Order, *Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetDetail"),
		zap.Uint("order_id", orderID),
	)

	var o Order
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT
			o.id, o.user_id, o.total_amount, o.status, o.created_at, o.shipped_at,
			u.name, u.email, u.address
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`, orderID).
		Scan(
			&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.ShippedAt,
			&c.Name, &c.Email, &c.Address,
		)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		log.Error("failed to query order", zap.Error(err))
		return nil, nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name, p.image
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.ProductName,
			&item.ProductImage,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return &o, &c, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uint) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total_amount, status, created_at, shipped_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.ShippedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus writes the transition only if the order is still in the
// status the caller checked. A concurrent transition makes the guarded
// UPDATE miss, which surfaces as ErrStatusConflict instead of silently
// landing a forbidden edge.
func (r *repository) UpdateStatus(ctx context.Context, orderID uint, from, to Status, markShipped bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    shipped_at = CASE WHEN $2 THEN NOW() ELSE shipped_at END
		WHERE id = $3 AND status = $4
	`, to, markShipped, orderID, from)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}
