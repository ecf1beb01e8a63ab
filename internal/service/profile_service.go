package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
)

// UploadsPathPrefix is the public path under which stored images are served.
const UploadsPathPrefix = "/uploads/"

var (
	ErrFullNameRequired = errors.New("full name is required")
	ErrUsernameRequired = errors.New("username is required")
)

type UpdateCredentialsInput struct {
	Email string
	// Password is optional. Nil or empty keeps the stored hash.
	Password *string
}

type UpdateProfileFieldsInput struct {
	FullName  string
	Username  string
	Image     io.Reader
	ImageSize int64
}

// ProfileManagementInput carries a partial update. Nil fields are left as
// stored.
type ProfileManagementInput struct {
	FullName     *string
	Address1     *string
	Address2     *string
	City         *string
	State        *string
	Zipcode      *string
	Skills       []string
	Preferences  *string
	Availability []string
}

type ProfileService struct {
	accounts repository.AccountRepository
	hasher   PasswordHasher
	images   ImageStorage
	logger   *slog.Logger
}

func NewProfileService(accounts repository.AccountRepository, hasher PasswordHasher, images ImageStorage, logger *slog.Logger) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{accounts: accounts, hasher: hasher, images: images, logger: logger}
}

func (s *ProfileService) List(ctx context.Context, req repository.PageRequest) (repository.PageResult[domain.UserProfile], error) {
	res, err := s.accounts.ListProfiles(ctx, req)
	if err != nil {
		observability.RecordUserProfileEvent(ctx, "list", "error")
		return repository.PageResult[domain.UserProfile]{}, err
	}
	observability.RecordUserProfileEvent(ctx, "list", "success")
	return res, nil
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*domain.UserAccount, error) {
	account, err := s.accounts.FetchProfile(ctx, userID)
	if err != nil {
		observability.RecordUserProfileEvent(ctx, "get", outcomeOf(err))
		return nil, err
	}
	observability.RecordUserProfileEvent(ctx, "get", "success")
	return account, nil
}

func (s *ProfileService) UpdateCredentials(ctx context.Context, userID uint, input UpdateCredentialsInput) error {
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		observability.RecordUserProfileEvent(ctx, "update_credentials", "bad_request")
		return err
	}

	var hash *string
	if input.Password != nil && *input.Password != "" {
		h, err := s.hasher.Hash(*input.Password)
		if err != nil {
			observability.RecordUserProfileEvent(ctx, "update_credentials", "error")
			return fmt.Errorf("hash password: %w", err)
		}
		hash = &h
	}
	if err := s.accounts.UpdateCredentials(ctx, userID, email, hash); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			observability.RecordUserProfileEvent(ctx, "update_credentials", "conflict")
			return ErrEmailAlreadyRegistered
		}
		observability.RecordUserProfileEvent(ctx, "update_credentials", outcomeOf(err))
		return err
	}
	observability.RecordUserProfileEvent(ctx, "update_credentials", "success")
	return nil
}

// UpdateProfileFields stores the optional image before touching the row and
// removes it again when the row update fails.
func (s *ProfileService) UpdateProfileFields(ctx context.Context, userID uint, input UpdateProfileFieldsInput) error {
	name := strings.TrimSpace(input.FullName)
	username := strings.TrimSpace(input.Username)
	if name == "" {
		observability.RecordUserProfileEvent(ctx, "update_profile", "bad_request")
		return ErrFullNameRequired
	}
	if username == "" {
		observability.RecordUserProfileEvent(ctx, "update_profile", "bad_request")
		return ErrUsernameRequired
	}

	var (
		key       string
		imagePath *string
	)
	if input.Image != nil {
		stored, err := s.images.StoreProfileImage(ctx, userID, input.Image, input.ImageSize)
		if err != nil {
			observability.RecordUserProfileEvent(ctx, "update_profile", outcomeOf(err))
			return err
		}
		key = stored
		p := UploadsPathPrefix + key
		imagePath = &p
	}

	if err := s.accounts.UpdateProfileFields(ctx, userID, name, username, imagePath); err != nil {
		if key != "" {
			if delErr := s.images.DeleteProfileImage(context.WithoutCancel(ctx), userID, key); delErr != nil {
				s.logger.WarnContext(ctx, "orphaned profile image", "user_id", userID, "key", key, "error", delErr)
			}
		}
		observability.RecordUserProfileEvent(ctx, "update_profile", outcomeOf(err))
		return err
	}
	observability.RecordUserProfileEvent(ctx, "update_profile", "success")
	return nil
}

func (s *ProfileService) UpdateProfileManagement(ctx context.Context, userID uint, input ProfileManagementInput) error {
	pm := domain.ProfileManagement{
		Address1:    input.Address1,
		Address2:    input.Address2,
		City:        input.City,
		State:       input.State,
		Zipcode:     input.Zipcode,
		Preferences: input.Preferences,
	}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		pm.FullName = &name
	}
	if input.Skills != nil {
		pm.Skills = domain.StringList(input.Skills)
	}
	if input.Availability != nil {
		availability, err := domain.ParseDateList(input.Availability)
		if err != nil {
			observability.RecordUserProfileEvent(ctx, "manage_profile", "bad_request")
			return err
		}
		pm.Availability = availability
	}
	if err := s.accounts.UpdateProfileManagement(ctx, userID, pm); err != nil {
		observability.RecordUserProfileEvent(ctx, "manage_profile", outcomeOf(err))
		return err
	}
	observability.RecordUserProfileEvent(ctx, "manage_profile", "success")
	return nil
}

func (s *ProfileService) Delete(ctx context.Context, userID uint) error {
	if err := s.accounts.DeleteUser(ctx, userID); err != nil {
		observability.RecordUserProfileEvent(ctx, "delete", outcomeOf(err))
		return err
	}
	observability.RecordUserProfileEvent(ctx, "delete", "success")
	return nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrCredentialNotFound):
		return "not_found"
	case errors.Is(err, ErrFileTooBig), errors.Is(err, ErrInvalidFileType), errors.Is(err, domain.ErrInvalidDate):
		return "bad_request"
	default:
		return "error"
	}
}
