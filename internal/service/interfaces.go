package service

import (
	"context"
	"io"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	SessionTTL() time.Duration
}

type ProfileServiceInterface interface {
	List(ctx context.Context, req repository.PageRequest) (repository.PageResult[domain.UserProfile], error)
	Get(ctx context.Context, userID uint) (*domain.UserAccount, error)
	UpdateCredentials(ctx context.Context, userID uint, input UpdateCredentialsInput) error
	UpdateProfileFields(ctx context.Context, userID uint, input UpdateProfileFieldsInput) error
	UpdateProfileManagement(ctx context.Context, userID uint, input ProfileManagementInput) error
	Delete(ctx context.Context, userID uint) error
}

type PricingService interface {
	Create(ctx context.Context, input PricingInput) (*domain.PricingEntry, error)
	List(ctx context.Context) ([]domain.PricingEntry, error)
	GetByID(ctx context.Context, id uint) (*domain.PricingEntry, error)
	Update(ctx context.Context, id uint, input PricingInput) (*domain.PricingEntry, error)
	DeleteByID(ctx context.Context, id uint) error
}

type ActivityService interface {
	ListNotifications(ctx context.Context, userID uint) ([]domain.Notification, error)
	DismissNotification(ctx context.Context, id, userID uint) error
	ListVolunteerHistory(ctx context.Context, userID uint) ([]domain.VolunteerHistory, error)
}

// ImageStorage persists profile pictures under opaque object keys.
type ImageStorage interface {
	Backend() string
	StoreProfileImage(ctx context.Context, userID uint, file io.Reader, size int64) (string, error)
	DeleteProfileImage(ctx context.Context, userID uint, key string) error
	Locate(ctx context.Context, key string) (ImageLocation, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID uint) (string, error)
	TTL() time.Duration
}
