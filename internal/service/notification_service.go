package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
)

type NotificationService interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, notification *model.Notification) error {
	// 1. Save to DB
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// 2. Publish to Redis if Redis is available
	if s.redisClient != nil {
		channel := fmt.Sprintf("user_notifications:%s", notification.UserID.String())

		payload, err := json.Marshal(notification)
		if err == nil {
			s.redisClient.Publish(ctx, channel, payload)
		}
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	return s.repo.FindByUserID(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
