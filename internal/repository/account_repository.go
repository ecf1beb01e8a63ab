package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user profile not found")
	ErrCredentialNotFound = errors.New("credentials not found")
	ErrEmailTaken         = errors.New("email already registered")

	ErrBeginFailed            = errors.New("begin transaction failed")
	ErrHashingFailed          = errors.New("password hashing failed")
	ErrProfileInsertFailed    = errors.New("profile insert failed")
	ErrCredentialInsertFailed = errors.New("credential insert failed")
	ErrCommitFailed           = errors.New("commit failed")
	ErrCredentialDeleteFailed = errors.New("credential delete failed")
	ErrProfileDeleteFailed    = errors.New("profile delete failed")
)

// TxError reports the step of a transaction script that failed. It matches
// the step sentinel and the underlying cause with errors.Is.
type TxError struct {
	Op    string
	Stage error
	Err   error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Stage, e.Err)
}

func (e *TxError) Unwrap() []error {
	return []error{e.Stage, e.Err}
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type AccountRepository interface {
	CreateUser(ctx context.Context, name, email, password string) (uint, error)
	DeleteUser(ctx context.Context, userID uint) error
	FetchProfile(ctx context.Context, userID uint) (*domain.UserAccount, error)
	FindCredentialByEmail(ctx context.Context, email string) (*domain.UserCredential, error)
	ListProfiles(ctx context.Context, req PageRequest) (PageResult[domain.UserProfile], error)
	UpdateCredentials(ctx context.Context, userID uint, email string, passwordHash *string) error
	UpdateProfileFields(ctx context.Context, userID uint, name, username string, imagePath *string) error
	UpdateProfileManagement(ctx context.Context, userID uint, pm domain.ProfileManagement) error
}

type GormAccountRepository struct {
	db     *gorm.DB
	hasher PasswordHasher
	now    func() time.Time
}

func NewAccountRepository(db *gorm.DB, hasher PasswordHasher) AccountRepository {
	return &GormAccountRepository{db: db, hasher: hasher, now: time.Now}
}

const (
	updateEmailSQL             = "UPDATE user_credentials SET email = ?, updated_at = ? WHERE user_id = ?"
	updateEmailAndPasswordSQL  = "UPDATE user_credentials SET email = ?, password_hash = ?, updated_at = ? WHERE user_id = ?"
	updateNameSQL              = "UPDATE user_profiles SET full_name = ?, username = ?, updated_at = ? WHERE user_id = ?"
	updateNameAndPictureSQL    = "UPDATE user_profiles SET full_name = ?, username = ?, profile_picture = ?, updated_at = ? WHERE user_id = ?"
	updateProfileManagementSQL = "UPDATE user_profiles SET full_name = COALESCE(?, full_name), address1 = COALESCE(?, address1), address2 = COALESCE(?, address2), " +
		"city = COALESCE(?, city), state = COALESCE(?, state), zipcode = COALESCE(?, zipcode), skills = COALESCE(?, skills), " +
		"preferences = COALESCE(?, preferences), availability = COALESCE(?, availability), updated_at = ? WHERE user_id = ?"
)

type txStep struct {
	name string
	fail error
	run  func(tx *gorm.DB) error
}

// runScript executes steps in order inside one transaction and stops at the
// first failure. ErrUserNotFound from a step is returned as is.
func (r *GormAccountRepository) runScript(ctx context.Context, op string, steps []txStep) (err error) {
	ctx, span := observability.StartStoreSpan(ctx, r.db.Dialector.Name(), op)
	defer func() {
		if errors.Is(err, ErrUserNotFound) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}()

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return r.txFailed(ctx, op, "begin", ErrBeginFailed, tx.Error)
	}
	for _, step := range steps {
		if err := step.run(tx); err != nil {
			tx.Rollback()
			if errors.Is(err, ErrUserNotFound) {
				observability.RecordStoreTransaction(ctx, op, step.name, "not_found")
				return ErrUserNotFound
			}
			return r.txFailed(ctx, op, step.name, step.fail, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return r.txFailed(ctx, op, "commit", ErrCommitFailed, err)
	}
	span.SetAttributes(attribute.Int("store.steps", len(steps)))
	observability.RecordStoreTransaction(ctx, op, "commit", "success")
	return nil
}

func (r *GormAccountRepository) txFailed(ctx context.Context, op, stage string, sentinel, cause error) error {
	observability.RecordStoreTransaction(ctx, op, stage, "error")
	if errors.Is(cause, gorm.ErrDuplicatedKey) {
		cause = ErrEmailTaken
	}
	return &TxError{Op: op, Stage: sentinel, Err: cause}
}

func (r *GormAccountRepository) CreateUser(ctx context.Context, name, email, password string) (uint, error) {
	var (
		hash    string
		profile domain.UserProfile
	)
	err := r.runScript(ctx, "create_user", []txStep{
		{name: "hash", fail: ErrHashingFailed, run: func(*gorm.DB) error {
			var err error
			hash, err = r.hasher.Hash(password)
			return err
		}},
		{name: "insert_profile", fail: ErrProfileInsertFailed, run: func(tx *gorm.DB) error {
			profile = domain.UserProfile{FullName: name, Skills: domain.StringList{}, Availability: domain.DateList{}}
			return tx.Create(&profile).Error
		}},
		{name: "insert_credential", fail: ErrCredentialInsertFailed, run: func(tx *gorm.DB) error {
			return tx.Create(&domain.UserCredential{UserID: profile.UserID, Email: email, PasswordHash: hash}).Error
		}},
	})
	if err != nil {
		return 0, err
	}
	return profile.UserID, nil
}

func (r *GormAccountRepository) DeleteUser(ctx context.Context, userID uint) error {
	return r.runScript(ctx, "delete_user", []txStep{
		{name: "delete_credential", fail: ErrCredentialDeleteFailed, run: func(tx *gorm.DB) error {
			return tx.Where("user_id = ?", userID).Delete(&domain.UserCredential{}).Error
		}},
		{name: "delete_profile", fail: ErrProfileDeleteFailed, run: func(tx *gorm.DB) error {
			res := tx.Where("user_id = ?", userID).Delete(&domain.UserProfile{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrUserNotFound
			}
			return nil
		}},
	})
}

func (r *GormAccountRepository) FetchProfile(ctx context.Context, userID uint) (*domain.UserAccount, error) {
	db := r.db.WithContext(ctx)
	var profile domain.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "account", "fetch_profile", "not_found")
			return nil, ErrUserNotFound
		}
		observability.RecordRepositoryOperation(ctx, "account", "fetch_profile", "error")
		return nil, err
	}
	var cred domain.UserCredential
	if err := db.Select("user_id", "email").Where("user_id = ?", userID).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "account", "fetch_profile", "credential_missing")
			return nil, ErrCredentialNotFound
		}
		observability.RecordRepositoryOperation(ctx, "account", "fetch_profile", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "account", "fetch_profile", "success")
	return &domain.UserAccount{UserProfile: profile, Email: cred.Email}, nil
}

func (r *GormAccountRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.UserCredential, error) {
	var cred domain.UserCredential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	return &cred, nil
}

func (r *GormAccountRepository) ListProfiles(ctx context.Context, req PageRequest) (PageResult[domain.UserProfile], error) {
	req = normalizePageRequest(req)

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.UserProfile{}).Count(&total).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "account", "list_profiles", "error")
		return PageResult[domain.UserProfile]{}, err
	}
	var items []domain.UserProfile
	err := r.db.WithContext(ctx).Order("user_id desc").Offset(req.Offset()).Limit(req.PageSize).Find(&items).Error
	if err != nil {
		observability.RecordRepositoryOperation(ctx, "account", "list_profiles", "error")
		return PageResult[domain.UserProfile]{}, err
	}
	observability.RecordRepositoryOperation(ctx, "account", "list_profiles", "success")
	return newPageResult(req, items, total), nil
}

func (r *GormAccountRepository) UpdateCredentials(ctx context.Context, userID uint, email string, passwordHash *string) error {
	now := r.now().UTC()
	if passwordHash == nil {
		return r.exec(ctx, "update_credentials", updateEmailSQL, email, now, userID)
	}
	return r.exec(ctx, "update_credentials", updateEmailAndPasswordSQL, email, *passwordHash, now, userID)
}

func (r *GormAccountRepository) UpdateProfileFields(ctx context.Context, userID uint, name, username string, imagePath *string) error {
	now := r.now().UTC()
	if imagePath == nil {
		return r.exec(ctx, "update_profile_fields", updateNameSQL, name, username, now, userID)
	}
	return r.exec(ctx, "update_profile_fields", updateNameAndPictureSQL, name, username, *imagePath, now, userID)
}

// UpdateProfileManagement binds NULL for every field left nil so COALESCE
// keeps the stored column.
func (r *GormAccountRepository) UpdateProfileManagement(ctx context.Context, userID uint, pm domain.ProfileManagement) error {
	var skills, availability any
	if pm.Skills != nil {
		v, err := pm.Skills.Value()
		if err != nil {
			return fmt.Errorf("encode skills: %w", err)
		}
		skills = v
	}
	if pm.Availability != nil {
		v, err := pm.Availability.Value()
		if err != nil {
			return fmt.Errorf("encode availability: %w", err)
		}
		availability = v
	}
	return r.exec(ctx, "update_profile_management", updateProfileManagementSQL,
		nullable(pm.FullName), nullable(pm.Address1), nullable(pm.Address2), nullable(pm.City),
		nullable(pm.State), nullable(pm.Zipcode), skills, nullable(pm.Preferences), availability,
		r.now().UTC(), userID)
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func (r *GormAccountRepository) exec(ctx context.Context, op, stmt string, args ...any) (err error) {
	ctx, span := observability.StartStoreSpan(ctx, r.db.Dialector.Name(), op)
	defer func() {
		if errors.Is(err, ErrUserNotFound) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}()

	res := r.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			observability.RecordRepositoryOperation(ctx, "account", op, "conflict")
			return ErrEmailTaken
		}
		observability.RecordRepositoryOperation(ctx, "account", op, "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "account", op, "not_found")
		return ErrUserNotFound
	}
	observability.RecordRepositoryOperation(ctx, "account", op, "success")
	return nil
}
