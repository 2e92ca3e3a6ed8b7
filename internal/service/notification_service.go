package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// NotificationService reads the notification inbox. Fan-out happens in
// the engagement and follow repositories, inside their transactions.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// Inbox is one page of notifications plus the total unread count, which
// is independent of pagination.
type Inbox struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) GetInbox(ctx context.Context, userID uint, limit, offset int) (*Inbox, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Inbox{Notifications: notifications, UnreadCount: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uint) (*models.Notification, error) {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
