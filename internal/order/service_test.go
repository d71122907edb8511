package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"mirastore-be/internal/access"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) PlaceOrderTx(ctx context.Context, userID uint, lines []Line) (*Order, error) {
	args := m.Called(ctx, userID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetDetail(ctx context.Context, orderID uint) (*Order, *Customer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Order), args.Get(1).(*Customer), args.Error(2)
}

func (m *MockRepository) ListForUser(ctx context.Context, userID uint) ([]Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, orderID uint, from, to Status, markShipped bool) error {
	args := m.Called(ctx, orderID, from, to, markShipped)
	return args.Error(0)
}

// --- Tests ---

var (
	customer = access.Identity{UserID: 7, Role: access.RoleCustomer}
	admin    = access.Identity{UserID: 1, Role: access.RoleAdmin}
)

func TestService_PlaceOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		lines := []Line{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		}

		want := &Order{
			ID:          10,
			UserID:      7,
			TotalAmount: decimal.RequireFromString("121.97"),
			Status:      StatusPending,
		}
		repo.On("PlaceOrderTx", mock.Anything, uint(7), lines).Return(want, nil)

		o, err := svc.PlaceOrder(context.Background(), customer, lines)
		assert.NoError(t, err)
		assert.Equal(t, want, o)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyLines", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.PlaceOrder(context.Background(), customer, nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
		repo.AssertNotCalled(t, "PlaceOrderTx")
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.PlaceOrder(context.Background(), customer, []Line{{ProductID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "PlaceOrderTx")
	})

	t.Run("MissingProduct", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		lines := []Line{{ProductID: 99, Quantity: 1}}
		repo.On("PlaceOrderTx", mock.Anything, uint(7), lines).Return(nil, ErrInvalidReference)

		_, err := svc.PlaceOrder(context.Background(), customer, lines)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("AdminAcceptsPending", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(42)).
			Return(&Order{ID: 42, UserID: 7, Status: StatusPending}, nil)
		repo.On("UpdateStatus", mock.Anything, uint(42), StatusPending, StatusAccepted, false).Return(nil)

		o, err := svc.UpdateStatus(context.Background(), admin, 42, StatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, StatusAccepted, o.Status)
		repo.AssertExpectations(t)
	})

	t.Run("DeliveredMarksShipped", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(42)).
			Return(&Order{ID: 42, UserID: 7, Status: StatusAccepted}, nil)
		repo.On("UpdateStatus", mock.Anything, uint(42), StatusAccepted, StatusDelivered, true).Return(nil)

		o, err := svc.UpdateStatus(context.Background(), admin, 42, StatusDelivered)
		assert.NoError(t, err)
		assert.NotNil(t, o.ShippedAt)
		repo.AssertExpectations(t)
	})

	t.Run("PendingToReceivedAlwaysRejected", func(t *testing.T) {
		for _, ident := range []access.Identity{admin, customer, {UserID: 8, Role: access.RoleCustomer}} {
			repo := new(MockRepository)
			svc := NewService(repo)

			repo.On("GetByID", mock.Anything, uint(42)).
				Return(&Order{ID: 42, UserID: 7, Status: StatusPending}, nil)

			_, err := svc.UpdateStatus(context.Background(), ident, 42, StatusReceived)
			assert.ErrorIs(t, err, ErrForbidden)
			repo.AssertNotCalled(t, "UpdateStatus")
		}
	})

	t.Run("OwnerReceivesAccepted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(42)).
			Return(&Order{ID: 42, UserID: 7, Status: StatusAccepted}, nil)
		repo.On("UpdateStatus", mock.Anything, uint(42), StatusAccepted, StatusReceived, false).Return(nil)

		o, err := svc.UpdateStatus(context.Background(), customer, 42, StatusReceived)
		assert.NoError(t, err)
		assert.Equal(t, StatusReceived, o.Status)
	})

	t.Run("ConcurrentTransitionConflicts", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		// The order read as accepted, but another request moved it to
		// delivered before the guarded write landed.
		repo.On("GetByID", mock.Anything, uint(42)).
			Return(&Order{ID: 42, UserID: 7, Status: StatusAccepted}, nil)
		repo.On("UpdateStatus", mock.Anything, uint(42), StatusAccepted, StatusReceived, false).
			Return(ErrStatusConflict)

		_, err := svc.UpdateStatus(context.Background(), customer, 42, StatusReceived)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("StrangerCannotReceive", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		stranger := access.Identity{UserID: 8, Role: access.RoleCustomer}
		repo.On("GetByID", mock.Anything, uint(42)).
			Return(&Order{ID: 42, UserID: 7, Status: StatusAccepted}, nil)

		_, err := svc.UpdateStatus(context.Background(), stranger, 42, StatusReceived)
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.UpdateStatus(context.Background(), admin, 42, Status("cancelled"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", mock.Anything, uint(42)).Return(nil, ErrOrderNotFound)

		_, err := svc.UpdateStatus(context.Background(), admin, 42, StatusAccepted)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_View(t *testing.T) {
	placed := time.Date(2025, 8, 30, 14, 0, 0, 0, time.UTC)

	makeOrder := func() *Order {
		return &Order{
			ID:          42,
			UserID:      7,
			TotalAmount: decimal.RequireFromString("121.97"),
			Status:      StatusAccepted,
			CreatedAt:   placed,
			Items: []Item{
				{ID: 1, OrderID: 42, ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("50"), ProductName: "Keyboard"},
				{ID: 2, OrderID: 42, ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("21.97"), ProductName: "Mouse"},
			},
		}
	}

	cust := &Customer{Name: "Ana", Email: "ana@example.com"}

	t.Run("OwnerSeesTotalsWithShipping", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetDetail", mock.Anything, uint(42)).Return(makeOrder(), cust, nil)

		detail, err := svc.View(context.Background(), customer, 42)
		assert.NoError(t, err)
		assert.Equal(t, "ORD-42", detail.OrderNumber)
		assert.Equal(t, "2025-08-30", detail.PlacedAt)
		assert.True(t, detail.Subtotal.Equal(decimal.RequireFromString("121.97")))
		assert.True(t, detail.Shipping.Equal(decimal.NewFromInt(10)))
		assert.True(t, detail.Total.Equal(decimal.RequireFromString("131.97")))
	})

	t.Run("AdminSeesAnyOrder", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetDetail", mock.Anything, uint(42)).Return(makeOrder(), cust, nil)

		_, err := svc.View(context.Background(), admin, 42)
		assert.NoError(t, err)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		stranger := access.Identity{UserID: 8, Role: access.RoleCustomer}
		repo.On("GetDetail", mock.Anything, uint(42)).Return(makeOrder(), cust, nil)

		_, err := svc.View(context.Background(), stranger, 42)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestService_History(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ListForUser", mock.Anything, uint(7)).Return([]Order{
		{ID: 2, UserID: 7, TotalAmount: decimal.RequireFromString("121.97"), Status: StatusPending, CreatedAt: time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 7, TotalAmount: decimal.NewFromInt(40), Status: StatusReceived, CreatedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	summaries, err := svc.History(context.Background(), customer)
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	// Displayed totals include the shipping fee.
	assert.True(t, summaries[0].TotalAmount.Equal(decimal.RequireFromString("131.97")))
	assert.True(t, summaries[1].TotalAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "2025-08-30", summaries[0].CreatedAt)
}

func TestService_HistoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ListForUser", mock.Anything, uint(7)).Return(nil, errors.New("db error"))

	_, err := svc.History(context.Background(), customer)
	assert.Error(t, err)
}
