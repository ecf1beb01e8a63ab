package service

import (
	"context"
	"errors"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type activityService struct {
	notifications repository.NotificationRepository
	history       repository.VolunteerHistoryRepository
}

func NewActivityService(notifications repository.NotificationRepository, history repository.VolunteerHistoryRepository) ActivityService {
	return &activityService{notifications: notifications, history: history}
}

func (s *activityService) ListNotifications(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

func (s *activityService) DismissNotification(ctx context.Context, id, userID uint) error {
	if err := s.notifications.Dismiss(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *activityService) ListVolunteerHistory(ctx context.Context, userID uint) ([]domain.VolunteerHistory, error) {
	return s.history.ListByUser(ctx, userID)
}
