package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/security"
)

type contextKey string

const (
	userIDContextKey contextKey = "user_id"
	userIDHolderKey  contextKey = "user_id_holder"
)

// userIDHolder lets outer middleware observe the id resolved further in.
type userIDHolder struct{ id uint }

func withUserIDHolder(ctx context.Context, h *userIDHolder) context.Context {
	return context.WithValue(ctx, userIDHolderKey, h)
}

// TokenVerifier is satisfied by *security.JWTManager.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// AuthMiddleware rejects requests without a valid session token. Every
// failure produces the same 401 body.
func AuthMiddleware(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, source := tokenFromRequest(r, cookieName)
			if raw == "" {
				observability.RecordAccessTokenValidation(r.Context(), "missing", source)
				unauthorized(w, r)
				return
			}
			userID, err := verifier.Verify(raw)
			if err != nil {
				observability.RecordAccessTokenValidation(r.Context(), "invalid", source)
				unauthorized(w, r)
				return
			}
			observability.RecordAccessTokenValidation(r.Context(), "valid", source)
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireAuthIf applies AuthMiddleware only when enabled is true.
func RequireAuthIf(enabled bool, verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	if enabled {
		return AuthMiddleware(verifier, cookieName)
	}
	return func(next http.Handler) http.Handler { return next }
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	if h, ok := ctx.Value(userIDHolderKey).(*userIDHolder); ok {
		h.id = userID
	}
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDContextKey).(uint)
	return id, ok && id != 0
}

// tokenFromRequest prefers the session cookie over the Authorization header.
func tokenFromRequest(r *http.Request, cookieName string) (string, string) {
	if raw := security.GetCookie(r, cookieName); raw != "" {
		return raw, "cookie"
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		if raw := strings.TrimSpace(auth[7:]); raw != "" {
			return raw, "bearer"
		}
	}
	return "", "none"
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized", nil)
}
