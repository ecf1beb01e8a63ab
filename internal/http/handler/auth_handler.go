package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/security"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

const (
	msgLoginSuccess     = "Login successful..."
	msgUserCreated      = "User created successfully..."
	msgUnknownEmail     = "Login Error. Please try again. If you dont have an account please create one."
	msgPasswordMismatch = "Password not matched"
)

type AuthHandler struct {
	authSvc   service.AuthServiceInterface
	cookieMgr *security.CookieManager
}

func NewAuthHandler(authSvc service.AuthServiceInterface, cookieMgr *security.CookieManager) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cookieMgr: cookieMgr}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=1024"`
}

type createRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=1024"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "login", status, time.Since(start))
	}()

	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		status = "bad_request"
		writeDecodeError(w, r, err)
		return
	}
	result, err := h.authSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		status = "failure"
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			response.Error(w, r, http.StatusUnauthorized, "UNKNOWN_EMAIL", msgUnknownEmail, nil)
		case errors.Is(err, service.ErrPasswordMismatch):
			response.Error(w, r, http.StatusUnauthorized, "PASSWORD_MISMATCH", msgPasswordMismatch, nil)
		default:
			status = "error"
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "login failed", nil)
		}
		return
	}
	h.cookieMgr.SetSessionCookie(w, result.Token, h.authSvc.SessionTTL())
	response.JSON(w, r, http.StatusOK, map[string]any{"message": msgLoginSuccess, "userId": result.UserID})
}

func (h *AuthHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "create", status, time.Since(start))
	}()

	var body createRequest
	if err := decodeJSON(r, &body); err != nil {
		status = "bad_request"
		writeDecodeError(w, r, err)
		return
	}
	userID, err := h.authSvc.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		status = "failure"
		switch {
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			response.Error(w, r, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered", nil)
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrPasswordRequired):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		default:
			status = "error"
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "Error creating user", nil)
		}
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"message": msgUserCreated, "userId": userID})
}

// Logout clears the session cookie. Tokens are stateless, so nothing is
// revoked server side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookieMgr.ClearSessionCookie(w)
	observability.RecordAuthLogout(r.Context(), "success")
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "Success"})
}
