package report

import (
	"context"
	"database/sql"
	"time"

	"mirastore-be/internal/access"
	"mirastore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderCounts groups order totals for the dashboard. Completed covers
// every status past pending: accepted, delivered and received.
type OrderCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type Repository interface {
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	OrderCounts(ctx context.Context) (OrderCounts, error)
	SalesSince(ctx context.Context, from time.Time) (map[string]decimal.Decimal, error)
	CountProducts(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// TotalSales sums total_amount over every order regardless of status,
// pending included.
func (r *repository) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0) FROM orders
	`).Scan(&total)
	return total, err
}

func (r *repository) OrderCounts(ctx context.Context) (OrderCounts, error) {
	var c OrderCounts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status IN ('accepted', 'delivered', 'received'))
		FROM orders
	`).Scan(&c.Total, &c.Pending, &c.Completed)
	return c, err
}

// SalesSince returns per-day order totals keyed by "YYYY-MM-DD". Days
// without orders are absent; the service layer zero-fills them.
func (r *repository) SalesSince(ctx context.Context, from time.Time) (map[string]decimal.Decimal, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SalesSince"),
		zap.Time("from", from),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT created_at::date, SUM(total_amount)
		FROM orders
		WHERE created_at >= $1
		GROUP BY created_at::date
	`, from)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var day time.Time
		var total decimal.Decimal
		if err := rows.Scan(&day, &total); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		totals[day.Format("2006-01-02")] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *repository) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *repository) CountCustomers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE role = $1
	`, access.RoleCustomer).Scan(&n)
	return n, err
}
