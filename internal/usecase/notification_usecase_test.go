package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediconnect/internal/domain/entity"
)

func TestNotificationListIncludesUnreadCount(t *testing.T) {
	repo := &mockNotificationRepo{
		findByUserIDFn: func(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.Notification, error) {
			return []entity.Notification{
				{ID: uuid.New(), Title: "A", IsRead: false},
				{ID: uuid.New(), Title: "B", IsRead: true},
			}, nil
		},
		countUnreadFn: func(db *gorm.DB, userID uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	uc := NewNotificationUsecase(nil, testLogger(), repo)

	resp, err := uc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(1), resp.UnreadCount)
}

func TestMarkReadForeignNotification(t *testing.T) {
	repo := &mockNotificationRepo{
		markReadFn: func(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	uc := NewNotificationUsecase(nil, testLogger(), repo)

	err := uc.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkReadOwnNotification(t *testing.T) {
	repo := &mockNotificationRepo{}
	uc := NewNotificationUsecase(nil, testLogger(), repo)

	err := uc.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
}
