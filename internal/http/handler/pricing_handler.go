package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

type PricingHandler struct {
	svc service.PricingService
}

func NewPricingHandler(svc service.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// Name and price presence is enforced by the service so both create and
// update answer with the same message.
type pricingRequest struct {
	Name        string  `json:"name" validate:"max=120"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price"`
}

func (r pricingRequest) input() service.PricingInput {
	return service.PricingInput{Name: r.Name, Description: r.Description, Price: r.Price}
}

func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writePricingError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.PricingEntry{}
	}
	response.JSON(w, r, http.StatusOK, items)
}

func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body pricingRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	entry, err := h.svc.Create(r.Context(), body.input())
	if err != nil {
		writePricingError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, entry)
}

func (h *PricingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pricingIDParam(w, r)
	if !ok {
		return
	}
	entry, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writePricingError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, entry)
}

func (h *PricingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pricingIDParam(w, r)
	if !ok {
		return
	}
	var body pricingRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	entry, err := h.svc.Update(r.Context(), id, body.input())
	if err != nil {
		writePricingError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, entry)
}

func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pricingIDParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteByID(r.Context(), id); err != nil {
		writePricingError(w, r, err)
		return
	}
	response.NoContent(w)
}

func pricingIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid pricing id", nil)
		return 0, false
	}
	return id, true
}

func writePricingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPricingInput):
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "Name and price are required", nil)
	case errors.Is(err, service.ErrPricingNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Pricing entry not found", nil)
	default:
		slogError(r, "pricing request failed", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Server error", nil)
	}
}
