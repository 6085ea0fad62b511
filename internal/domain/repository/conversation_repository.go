package repository

import (
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(db *gorm.DB, conversation *entity.Conversation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error)
	FindByParticipants(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Conversation, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error)
	TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error
}

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByConversationID(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error)
	// MarkConversationRead flips unread messages not sent by readerID.
	MarkConversationRead(db *gorm.DB, conversationID, readerID uuid.UUID) error
	CountUnread(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error)
}
