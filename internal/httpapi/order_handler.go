package httpapi

import (
	"encoding/json"
	"net/http"

	"mirastore-be/internal/access"
	"mirastore-be/internal/order"

	"github.com/go-playground/validator/v10"
)

type PlaceOrderRequest struct {
	Cart []order.Line `json:"cart" validate:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status order.Status `json:"status" validate:"required"`
}

type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *OrderHandler) handlePlace(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireOperation(w, r, access.OpOrderPlace)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	o, err := h.service.PlaceOrder(r.Context(), ident, req.Cart)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) handleView(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	detail, err := h.service.View(r.Context(), ident, id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// handleUpdateStatus applies one lifecycle transition. The transition
// table lives in the order package; the handler only decodes and relays.
func (h *OrderHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req UpdateStatusRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), ident, id, req.Status)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	summaries, err := h.service.History(r.Context(), ident)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if summaries == nil {
		summaries = []order.Summary{}
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"orders": summaries})
}
