package cart

import (
	"context"
	"database/sql"

	"mirastore-be/internal/logger"
	"mirastore-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, entryID uint) (*Entry, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*Entry, error)
	Create(ctx context.Context, userID, productID uint, quantity int) (*Entry, error)
	UpdateQuantity(ctx context.Context, entryID uint, quantity int) (*Entry, error)
	Remove(ctx context.Context, entryID uint) error
	ListForUser(ctx context.Context, userID uint) ([]Entry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, entryID uint) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM carts
		WHERE id = $1
	`, entryID).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM carts
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) Create(ctx context.Context, userID, productID uint, quantity int) (*Entry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
	)

	var e Entry
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`, userID, productID, quantity).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		log.Error("failed to create cart entry", zap.Error(err))
		return nil, err
	}

	log.Info("cart entry created", zap.Uint("entry_id", e.ID))
	return &e, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, entryID uint, quantity int) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx, `
		UPDATE carts
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`, quantity, entryID).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) Remove(ctx context.Context, entryID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, entryID)
	return err
}

// ListForUser returns the user's cart entries joined with product data.
// No ordering is guaranteed.
func (r *repository) ListForUser(ctx context.Context, userID uint) ([]Entry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListForUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			c.id,
			c.user_id,
			c.product_id,
			c.quantity,
			c.created_at,
			c.updated_at,

			p.id,
			p.name,
			p.description,
			p.price,
			p.stock,
			p.category,
			p.image,
			p.sales
		FROM carts c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var p product.Product
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.ProductID,
			&e.Quantity,
			&e.CreatedAt,
			&e.UpdatedAt,

			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.Category,
			&p.Image,
			&p.Sales,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		e.Product = &p
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Info("cart fetched", zap.Int("rows", len(entries)))
	return entries, nil
}
