package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// salesWindowDays is the span of the sales-by-day chart, today included.
const salesWindowDays = 7

// DailySales is one chart point: {date "YYYY-MM-DD", total}.
type DailySales struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type Service interface {
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	OrderCounts(ctx context.Context) (OrderCounts, error)
	SalesByDay(ctx context.Context) ([]DailySales, error)
	CountProducts(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalSales(ctx)
}

func (s *service) OrderCounts(ctx context.Context) (OrderCounts, error) {
	return s.repo.OrderCounts(ctx)
}

// SalesByDay returns the last seven calendar days in ascending order,
// zero-filling days without orders.
func (s *service) SalesByDay(ctx context.Context) ([]DailySales, error) {
	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(salesWindowDays - 1))

	totals, err := s.repo.SalesSince(ctx, from)
	if err != nil {
		return nil, err
	}

	return fillDays(totals, from, salesWindowDays), nil
}

func (s *service) CountProducts(ctx context.Context) (int, error) {
	return s.repo.CountProducts(ctx)
}

func (s *service) CountCustomers(ctx context.Context) (int, error) {
	return s.repo.CountCustomers(ctx)
}

func fillDays(totals map[string]decimal.Decimal, from time.Time, days int) []DailySales {
	series := make([]DailySales, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		total, ok := totals[date]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, DailySales{Date: date, Total: total})
	}
	return series
}
