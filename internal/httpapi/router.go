package httpapi

import (
	"net/http"
	"strconv"

	"mirastore-be/internal/access"
	"mirastore-be/internal/cart"
	"mirastore-be/internal/logger"
	"mirastore-be/internal/middleware"
	"mirastore-be/internal/order"
	"mirastore-be/internal/product"
	"mirastore-be/internal/report"
	"mirastore-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires every handler behind the shared middleware chain.
func NewRouter(
	productSvc product.Service,
	cartSvc cart.Service,
	orderSvc order.Service,
	reportSvc report.Service,
	userSvc user.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	authH := NewAuthHandler(userSvc)
	productH := NewProductHandler(productSvc, cartSvc)
	cartH := NewCartHandler(cartSvc)
	orderH := NewOrderHandler(orderSvc)
	reportH := NewReportHandler(reportSvc, productSvc)
	customerH := NewCustomerHandler(userSvc)

	r.Post("/register", authH.handleRegister)
	r.Post("/login", authH.handleLogin)

	r.Get("/products", productH.handleList)
	r.Get("/products/{id}", productH.handleGet)
	r.Post("/products", productH.handleCreate)
	r.Put("/products/{id}", productH.handleUpdate)
	r.Delete("/products/{id}", productH.handleDelete)

	r.Get("/cart", cartH.handleList)
	r.Post("/cart", cartH.handleAdd)
	r.Patch("/cart/{id}", cartH.handleUpdateQuantity)
	r.Delete("/cart/{id}", cartH.handleRemove)

	r.Post("/order", orderH.handlePlace)
	r.Get("/order/{id}", orderH.handleView)
	r.Patch("/order/{id}", orderH.handleUpdateStatus)
	r.Get("/order-history", orderH.handleHistory)

	r.Get("/reports/total-sales", reportH.handleTotalSales)
	r.Get("/reports/total-orders", reportH.handleTotalOrders)
	r.Get("/reports/sales-by-day", reportH.handleSalesByDay)
	r.Get("/reports/total-products", reportH.handleTotalProducts)
	r.Get("/reports/total-customers", reportH.handleTotalCustomers)
	r.Get("/reports/top-products", reportH.handleTopProducts)

	r.Get("/customers", customerH.handleList)
	r.Post("/customers", customerH.handleCreate)
	r.Put("/customers/{id}", customerH.handleUpdate)
	r.Delete("/customers/{id}", customerH.handleDelete)

	return r
}

// requireIdentity rejects unauthenticated requests.
func requireIdentity(w http.ResponseWriter, r *http.Request) (access.Identity, bool) {
	ident, ok := access.IdentityFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return access.Identity{}, false
	}
	return ident, true
}

// requireOperation additionally checks the permission table.
func requireOperation(w http.ResponseWriter, r *http.Request, op access.Operation) (access.Identity, bool) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return access.Identity{}, false
	}
	if !access.Allowed(ident, op) {
		respondWithError(w, http.StatusForbidden, "operation not permitted")
		return access.Identity{}, false
	}
	return ident, true
}

func parseIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return uint(id), err
}
