package httpapi

import (
	"net/http"

	"mirastore-be/internal/access"
	"mirastore-be/internal/product"
	"mirastore-be/internal/report"
)

type ReportHandler struct {
	service    report.Service
	productSvc product.Service
}

func NewReportHandler(service report.Service, productSvc product.Service) *ReportHandler {
	return &ReportHandler{service: service, productSvc: productSvc}
}

func (h *ReportHandler) handleTotalSales(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	total, err := h.service.TotalSales(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"total_sales": total})
}

func (h *ReportHandler) handleTotalOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	counts, err := h.service.OrderCounts(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, counts)
}

func (h *ReportHandler) handleSalesByDay(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	series, err := h.service.SalesByDay(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, series)
}

func (h *ReportHandler) handleTotalProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	n, err := h.service.CountProducts(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"total_products": n})
}

func (h *ReportHandler) handleTotalCustomers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	n, err := h.service.CountCustomers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"total_customers": n})
}

// handleTopProducts feeds the dashboard best-sellers card.
func (h *ReportHandler) handleTopProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpReportView); !ok {
		return
	}

	products, err := h.productSvc.TopSelling(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"sales": products})
}
