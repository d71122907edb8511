package product

import (
	"context"
	"errors"
	"time"

	"mirastore-be/internal/logger"

	"go.uber.org/zap"
)

// topSellingLimit caps the dashboard best-sellers list.
const topSellingLimit = 5

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (Product, error)
	Create(ctx context.Context, params CreateProductParams) (Product, error)
	Update(ctx context.Context, params UpdateProductParams) (Product, error)
	Delete(ctx context.Context, id uint) error
	TopSelling(ctx context.Context) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetAll"),
	)

	start := time.Now()

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("get product list success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	if params.Name == "" {
		return Product{}, errors.New("name cannot be empty")
	}
	if params.Price.IsNegative() {
		return Product{}, errors.New("price cannot be negative")
	}
	if params.Stock < 0 {
		return Product{}, errors.New("stock cannot be negative")
	}
	if params.Category == "" {
		return Product{}, errors.New("category cannot be empty")
	}

	return s.repo.Create(ctx, params)
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (Product, error) {
	if params.Name == "" {
		return Product{}, errors.New("name cannot be empty")
	}
	if params.Price.IsNegative() {
		return Product{}, errors.New("price cannot be negative")
	}
	if params.Stock < 0 {
		return Product{}, errors.New("stock cannot be negative")
	}
	if params.Category == "" {
		return Product{}, errors.New("category cannot be empty")
	}

	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) TopSelling(ctx context.Context) ([]Product, error) {
	return s.repo.TopSelling(ctx, topSellingLimit)
}
