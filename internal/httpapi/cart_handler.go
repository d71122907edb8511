package httpapi

import (
	"encoding/json"
	"net/http"

	"mirastore-be/internal/access"
	"mirastore-be/internal/cart"

	"github.com/go-playground/validator/v10"
)

type AddCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type CartHandler struct {
	service  cart.Service
	validate *validator.Validate
}

func NewCartHandler(service cart.Service) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *CartHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireOperation(w, r, access.OpCartUse)
	if !ok {
		return
	}

	entries, err := h.service.ListForUser(r.Context(), ident)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []cart.Entry{}
	}

	respondWithJSON(w, http.StatusOK, entries)
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireOperation(w, r, access.OpCartUse)
	if !ok {
		return
	}

	var req AddCartRequest
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

	entry, err := h.service.AddItem(r.Context(), ident, req.ProductID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, entry)
}

func (h *CartHandler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireOperation(w, r, access.OpCartUse)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid cart entry id")
		return
	}

	var req UpdateCartRequest
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

	entry, err := h.service.UpdateQuantity(r.Context(), ident, id, req.Quantity)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}

func (h *CartHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireOperation(w, r, access.OpCartUse)
	if !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid cart entry id")
		return
	}

	if err := h.service.RemoveItem(r.Context(), ident, id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
