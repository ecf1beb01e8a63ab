package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/sandeepkv93/volunteer-management-backend/internal/http/response"
	"github.com/sandeepkv93/volunteer-management-backend/internal/security"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
	servicegomock "github.com/sandeepkv93/volunteer-management-backend/internal/service/gomock"
)

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlerLogin(t *testing.T) {
	cookieMgr := security.NewCookieManager("token", "", false, "lax")

	t.Run("success sets session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
		authSvc.EXPECT().Login(gomock.Any(), "a@example.com", "pw").Return(&service.LoginResult{UserID: 9, Token: "signed"}, nil)
		authSvc.EXPECT().SessionTTL().Return(time.Hour)

		h := NewAuthHandler(authSvc, cookieMgr)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@example.com","password":"pw"}`))
		rr := httptest.NewRecorder()
		h.Login(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
		}
		body := decodeMap(t, rr)
		if body["message"] != msgLoginSuccess || body["userId"] != float64(9) {
			t.Fatalf("unexpected body %+v", body)
		}
		c := findCookie(rr.Result().Cookies(), "token")
		if c == nil || c.Value != "signed" || !c.HttpOnly || c.MaxAge != 3600 {
			t.Fatalf("unexpected session cookie %+v", c)
		}
	})

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{name: "unknown email", err: service.ErrUnknownEmail, wantCode: http.StatusUnauthorized, wantErr: "UNKNOWN_EMAIL", wantMsg: msgUnknownEmail},
		{name: "password mismatch", err: service.ErrPasswordMismatch, wantCode: http.StatusUnauthorized, wantErr: "PASSWORD_MISMATCH", wantMsg: msgPasswordMismatch},
		{name: "internal", err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL", wantMsg: "login failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
			authSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			h := NewAuthHandler(authSvc, cookieMgr)
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@example.com","password":"pw"}`))
			rr := httptest.NewRecorder()
			h.Login(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rr.Code)
			}
			body := decodeErrorBody(t, rr)
			if body.Code != tc.wantErr || body.Message != tc.wantMsg {
				t.Fatalf("unexpected error body %+v", body)
			}
			if findCookie(rr.Result().Cookies(), "token") != nil {
				t.Fatal("expected no cookie on failed login")
			}
		})
	}

	t.Run("rejects unknown fields before calling service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
		authSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		h := NewAuthHandler(authSvc, cookieMgr)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@example.com","password":"pw","admin":true}`))
		rr := httptest.NewRecorder()
		h.Login(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("missing password fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
		authSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		h := NewAuthHandler(authSvc, cookieMgr)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@example.com"}`))
		rr := httptest.NewRecorder()
		h.Login(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
		var body struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" || body.Details["password"] != "required" {
			t.Fatalf("unexpected validation body %+v", body)
		}
	})
}

func TestAuthHandlerCreate(t *testing.T) {
	cookieMgr := security.NewCookieManager("token", "", false, "lax")

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
		authSvc.EXPECT().Register(gomock.Any(), "Ann", "ann@example.com", "pw").Return(uint(3), nil)

		h := NewAuthHandler(authSvc, cookieMgr)
		req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"pw"}`))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
		}
		body := decodeMap(t, rr)
		if body["message"] != msgUserCreated || body["userId"] != float64(3) {
			t.Fatalf("unexpected body %+v", body)
		}
		if len(rr.Result().Cookies()) != 0 {
			t.Fatal("create must not log the user in")
		}
	})

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "duplicate email", err: service.ErrEmailAlreadyRegistered, wantCode: http.StatusBadRequest, wantErr: "EMAIL_TAKEN"},
		{name: "invalid email", err: service.ErrInvalidEmail, wantCode: http.StatusBadRequest, wantErr: "BAD_REQUEST"},
		{name: "store failure", err: errors.New("tx aborted"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
			authSvc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint(0), tc.err)

			h := NewAuthHandler(authSvc, cookieMgr)
			req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"pw"}`))
			rr := httptest.NewRecorder()
			h.Create(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rr.Code)
			}
			body := decodeErrorBody(t, rr)
			if body.Code != tc.wantErr {
				t.Fatalf("expected code %q, got %+v", tc.wantErr, body)
			}
			if strings.Contains(body.Message, "tx aborted") {
				t.Fatalf("store error leaked to client: %q", body.Message)
			}
		})
	}
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicegomock.NewMockAuthServiceInterface(ctrl)
	h := NewAuthHandler(authSvc, security.NewCookieManager("token", "", false, "lax"))

	req := httptest.NewRequest(http.MethodGet, "/user/1/logout", nil)
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	c := findCookie(rr.Result().Cookies(), "token")
	if c == nil || c.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", c)
	}
	if body := decodeMap(t, rr); body["status"] != "Success" {
		t.Fatalf("unexpected body %+v", body)
	}
}
