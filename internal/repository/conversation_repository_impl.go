package repository

import (
	"errors"
	"time"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type conversationRepository struct{}

func NewConversationRepository() domainRepo.ConversationRepository {
	return &conversationRepository{}
}

func (r *conversationRepository) Create(db *gorm.DB, conversation *entity.Conversation) error {
	return db.Create(conversation).Error
}

func (r *conversationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByParticipants(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	err := db.Preload("Patient").Preload("Doctor.DoctorProfile").
		Where("patient_id = ? OR doctor_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.Model(&entity.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByConversationID(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkConversationRead(db *gorm.DB, conversationID, readerID uuid.UUID) error {
	return db.Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

func (r *messageRepository) CountUnread(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id != ? AND is_read = ?", conversationID, readerID, false).
		Count(&count).Error
	return count, err
}
