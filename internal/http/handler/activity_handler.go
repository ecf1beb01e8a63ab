package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

const msgUserIDRequired = "User ID is required"

type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListNotifications(r.Context(), userID)
	if err != nil {
		slogError(r, "list notifications failed", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Server error", nil)
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	response.JSON(w, r, http.StatusOK, items)
}

func (h *ActivityHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(w, r)
	if !ok {
		return
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid notification id", nil)
		return
	}
	if err := h.svc.DismissNotification(r.Context(), id, userID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Notification not found", nil)
			return
		}
		slogError(r, "dismiss notification failed", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Server error", nil)
		return
	}
	response.NoContent(w)
}

func (h *ActivityHandler) ListVolunteerHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDQuery(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListVolunteerHistory(r.Context(), userID)
	if err != nil {
		slogError(r, "list volunteer history failed", err)
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Server error", nil)
		return
	}
	if items == nil {
		items = []domain.VolunteerHistory{}
	}
	response.JSON(w, r, http.StatusOK, items)
}

func userIDQuery(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("userId")
	if strings.TrimSpace(raw) == "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msgUserIDRequired, nil)
		return 0, false
	}
	id, err := parsePathID(raw)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid userId", nil)
		return 0, false
	}
	return id, true
}
