package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mirastore-be/internal/access"
	"mirastore-be/internal/product"
	"mirastore-be/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportService) OrderCounts(ctx context.Context) (report.OrderCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(report.OrderCounts), args.Error(1)
}

func (m *MockReportService) SalesByDay(ctx context.Context) ([]report.DailySales, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.DailySales), args.Error(1)
}

func (m *MockReportService) CountProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportService) CountCustomers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, params product.CreateProductParams) (product.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, params product.UpdateProductParams) (product.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) TopSelling(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func TestReportHandler_AdminOnly(t *testing.T) {
	customer := access.Identity{UserID: 7, Role: access.RoleCustomer}

	svc := new(MockReportService)
	productSvc := new(MockProductService)
	h := NewReportHandler(svc, productSvc)

	handlers := map[string]http.HandlerFunc{
		"total-sales":     h.handleTotalSales,
		"total-orders":    h.handleTotalOrders,
		"sales-by-day":    h.handleSalesByDay,
		"total-products":  h.handleTotalProducts,
		"total-customers": h.handleTotalCustomers,
		"top-products":    h.handleTopProducts,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			req := requestWithIdentity(http.MethodGet, "/reports/"+name, nil, customer)
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestReportHandler_TotalSales(t *testing.T) {
	admin := access.Identity{UserID: 1, Role: access.RoleAdmin}

	svc := new(MockReportService)
	productSvc := new(MockProductService)
	h := NewReportHandler(svc, productSvc)

	svc.On("TotalSales", mock.Anything).Return(decimal.RequireFromString("1543.50"), nil)

	req := requestWithIdentity(http.MethodGet, "/reports/total-sales", nil, admin)
	rec := httptest.NewRecorder()

	h.handleTotalSales(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_sales":"1543.5"}`, rec.Body.String())
}

func TestReportHandler_TotalOrders(t *testing.T) {
	admin := access.Identity{UserID: 1, Role: access.RoleAdmin}

	svc := new(MockReportService)
	productSvc := new(MockProductService)
	h := NewReportHandler(svc, productSvc)

	svc.On("OrderCounts", mock.Anything).Return(report.OrderCounts{Total: 12, Pending: 3, Completed: 9}, nil)

	req := requestWithIdentity(http.MethodGet, "/reports/total-orders", nil, admin)
	rec := httptest.NewRecorder()

	h.handleTotalOrders(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":12,"pending":3,"completed":9}`, rec.Body.String())
}

func TestReportHandler_TopProducts(t *testing.T) {
	admin := access.Identity{UserID: 1, Role: access.RoleAdmin}

	svc := new(MockReportService)
	productSvc := new(MockProductService)
	h := NewReportHandler(svc, productSvc)

	productSvc.On("TopSelling", mock.Anything).Return([]product.Product{
		{ID: 3, Name: "Mug", Price: decimal.RequireFromString("9.99"), Sales: 40},
		{ID: 1, Name: "Shirt", Price: decimal.RequireFromString("25"), Sales: 12},
	}, nil)

	req := requestWithIdentity(http.MethodGet, "/reports/top-products", nil, admin)
	rec := httptest.NewRecorder()

	h.handleTopProducts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales":40`)
}
