package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

const notificationListLimit = 50

type NotificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(db *gorm.DB, log *logrus.Logger, notificationRepo repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db, userID, notificationListLimit)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return converter.NotificationsToListResponse(notifications, unread), nil
}

// MarkRead only touches notifications owned by userID; a foreign or
// unknown id reads as not found.
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	rows, err := u.notificationRepo.MarkRead(u.db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := u.notificationRepo.MarkAllRead(u.db, userID); err != nil {
		u.log.Warnf("Failed to mark notifications read: %+v", err)
		return err
	}
	return nil
}
