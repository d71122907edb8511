package httpapi

import (
	"encoding/json"
	"net/http"

	"mirastore-be/internal/access"
	"mirastore-be/internal/user"

	"github.com/go-playground/validator/v10"
)

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

type CustomerHandler struct {
	service  user.Service
	validate *validator.Validate
}

func NewCustomerHandler(service user.Service) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpCustomerManage); !ok {
		return
	}

	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if customers == nil {
		customers = []user.User{}
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"customers": customers})
}

func (h *CustomerHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpCustomerManage); !ok {
		return
	}

	req, ok := h.decodeCustomerRequest(w, r)
	if !ok {
		return
	}

	u, err := h.service.CreateCustomer(r.Context(), req.Name, req.Email)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, u)
}

func (h *CustomerHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpCustomerManage); !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	req, ok := h.decodeCustomerRequest(w, r)
	if !ok {
		return
	}

	u, err := h.service.UpdateCustomer(r.Context(), user.UpdateCustomerParams{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, u)
}

func (h *CustomerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperation(w, r, access.OpCustomerManage); !ok {
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

func (h *CustomerHandler) decodeCustomerRequest(w http.ResponseWriter, r *http.Request) (CustomerRequest, bool) {
	var req CustomerRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return CustomerRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return CustomerRequest{}, false
	}

	return req, true
}
