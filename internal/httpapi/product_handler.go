package httpapi

import (
	"encoding/json"
	"net/http"

	"mirastore-be/internal/access"
	"mirastore-be/internal/cart"
	"mirastore-be/internal/product"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Category    string          `json:"category" validate:"required"`
	Image       *string         `json:"image"`
}

// CatalogResponse is the customer-facing product listing, cart included.
type CatalogResponse struct {
	Products []product.Product `json:"products"`
	Carts    []cart.Entry      `json:"carts"`
}

type ProductHandler struct {
	service  product.Service
	cartSvc  cart.Service
	validate *validator.Validate
}

func NewProductHandler(service product.Service, cartSvc cart.Service) *ProductHandler {
	return &ProductHandler{
		service:  service,
		cartSvc:  cartSvc,
		validate: validator.New(),
	}
}

// handleList serves the catalog. Anonymous visitors and admins get the
// bare product listing; customers additionally get their own cart.
func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	ident, ok := access.IdentityFrom(r.Context())
	if !ok || ident.Role != access.RoleCustomer {
		respondWithJSON(w, http.StatusOK, map[string]any{"products": products})
		return
	}

	entries, err := h.cartSvc.ListForUser(r.Context(), ident)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []cart.Entry{}
	}

	respondWithJSON(w, http.StatusOK, CatalogResponse{Products: products, Carts: entries})
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpProductManage); !ok {
		return
	}

	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	p, err := h.service.Create(r.Context(), product.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpProductManage); !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	p, err := h.service.Update(r.Context(), product.UpdateProductParams{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpProductManage); !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *ProductHandler) decodeProductRequest(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return ProductRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return ProductRequest{}, false
	}

	if req.Price.IsNegative() {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: map[string]string{"Price": "must not be negative"},
		})
		return ProductRequest{}, false
	}

	return req, true
}
