package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
)

type LoginResult struct {
	UserID uint
	Token  string
}

var (
	ErrInvalidEmail           = errors.New("invalid email")
	ErrNameRequired           = errors.New("name is required")
	ErrPasswordRequired       = errors.New("password is required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUnknownEmail           = errors.New("no account for email")
	ErrPasswordMismatch       = errors.New("password not matched")
)

type AuthService struct {
	accounts repository.AccountRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
}

func NewAuthService(accounts repository.AccountRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, tokens: tokens}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.tokens.TTL()
}

// Register creates the profile and credential rows in one transaction and
// returns the new user id. The caller must log in separately.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (uint, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateEmail(email); err != nil {
		observability.RecordAccountCreate(ctx, "bad_request")
		return 0, err
	}
	if name == "" {
		observability.RecordAccountCreate(ctx, "bad_request")
		return 0, ErrNameRequired
	}
	if password == "" {
		observability.RecordAccountCreate(ctx, "bad_request")
		return 0, ErrPasswordRequired
	}
	if _, err := s.accounts.FindCredentialByEmail(ctx, email); err == nil {
		observability.RecordAccountCreate(ctx, "conflict")
		return 0, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrCredentialNotFound) {
		observability.RecordAccountCreate(ctx, "error")
		return 0, err
	}

	userID, err := s.accounts.CreateUser(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			observability.RecordAccountCreate(ctx, "conflict")
			return 0, ErrEmailAlreadyRegistered
		}
		observability.RecordAccountCreate(ctx, "error")
		return 0, err
	}
	observability.RecordAccountCreate(ctx, "success")
	return userID, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	cred, err := s.accounts.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			observability.RecordAuthLogin(ctx, "unknown_email")
			return nil, ErrUnknownEmail
		}
		observability.RecordAuthLogin(ctx, "error")
		return nil, err
	}
	ok, err := s.hasher.Verify(password, cred.PasswordHash)
	if err != nil {
		observability.RecordAuthLogin(ctx, "error")
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		observability.RecordAuthLogin(ctx, "password_mismatch")
		return nil, ErrPasswordMismatch
	}
	token, err := s.tokens.Issue(cred.UserID)
	if err != nil {
		observability.RecordAuthLogin(ctx, "error")
		return nil, fmt.Errorf("issue token: %w", err)
	}
	observability.RecordAuthLogin(ctx, "success")
	return &LoginResult{UserID: cred.UserID, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
