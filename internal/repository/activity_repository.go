package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.Notification, error)
	Dismiss(ctx context.Context, id, userID uint) error
}

type VolunteerHistoryRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.VolunteerHistory, error)
}

type GormNotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	items := []domain.Notification{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&items).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "notification", "list_by_user", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "notification", "list_by_user", "success")
	return items, nil
}

// Dismiss only removes the notification when it belongs to userID.
func (r *GormNotificationRepository) Dismiss(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Notification{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "notification", "dismiss", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "notification", "dismiss", "not_found")
		return ErrNotificationNotFound
	}
	observability.RecordRepositoryOperation(ctx, "notification", "dismiss", "success")
	return nil
}

type GormVolunteerHistoryRepository struct{ db *gorm.DB }

func NewVolunteerHistoryRepository(db *gorm.DB) VolunteerHistoryRepository {
	return &GormVolunteerHistoryRepository{db: db}
}

func (r *GormVolunteerHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]domain.VolunteerHistory, error) {
	items := []domain.VolunteerHistory{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("event_date desc, id desc").Find(&items).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "volunteer_history", "list_by_user", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "volunteer_history", "list_by_user", "success")
	return items, nil
}
