package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrMessagingNotAllowed  = errors.New("messaging is only available between patients and doctors")
)

const messagePreviewLimit = 100

type ConversationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	tx               Transactor
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewConversationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	tx Transactor,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *ConversationUsecase {
	return &ConversationUsecase{
		db:               db,
		log:              log,
		tx:               tx,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *ConversationUsecase) List(ctx context.Context, actor *entity.User) (*dto.ConversationListResponse, error) {
	conversations, err := u.conversationRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to list conversations: %+v", err)
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		unread, err := u.messageRepo.CountUnread(u.db, conversations[i].ID, actor.ID)
		if err != nil {
			u.log.Warnf("Failed to count unread messages: %+v", err)
			return nil, err
		}
		responses = append(responses, *converter.ConversationToResponse(&conversations[i], actor.ID, unread))
	}

	return &dto.ConversationListResponse{
		Conversations: responses,
		Total:         len(responses),
	}, nil
}

// Start finds or creates the conversation between the actor and the
// counter-party. The pair is canonical (patient, doctor), so starting
// twice lands on the same row.
func (u *ConversationUsecase) Start(ctx context.Context, actor *entity.User, otherID uuid.UUID) (*dto.ConversationResponse, error) {
	var patientID, doctorID uuid.UUID
	var wantRole string
	switch {
	case actor.IsPatient():
		patientID, doctorID = actor.ID, otherID
		wantRole = entity.RoleDoctor
	case actor.IsDoctor():
		patientID, doctorID = otherID, actor.ID
		wantRole = entity.RolePatient
	default:
		return nil, ErrMessagingNotAllowed
	}

	other, err := u.userRepo.FindActiveByID(u.db, otherID)
	if err != nil {
		u.log.Warnf("Failed to load counter-party: %+v", err)
		return nil, err
	}
	if other == nil || other.Role != wantRole {
		return nil, ErrRecipientNotFound
	}

	conversation, err := u.conversationRepo.FindByParticipants(u.db, patientID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}
	if conversation == nil {
		conversation = &entity.Conversation{
			PatientID:     patientID,
			DoctorID:      doctorID,
			LastMessageAt: time.Now(),
		}
		if err := u.conversationRepo.Create(u.db, conversation); err != nil {
			// Lost the race against a concurrent Start; load the winner.
			if isUniqueViolation(err) {
				conversation, err = u.conversationRepo.FindByParticipants(u.db, patientID, doctorID)
				if err != nil || conversation == nil {
					return nil, ErrConversationNotFound
				}
			} else {
				u.log.Warnf("Failed to create conversation: %+v", err)
				return nil, err
			}
		}
		if actor.IsPatient() {
			conversation.Doctor = other
		} else {
			conversation.Patient = other
		}
	}

	return converter.ConversationToResponse(conversation, actor.ID, 0), nil
}

// Messages lists the conversation and marks the actor's unread messages
// as read.
func (u *ConversationUsecase) Messages(ctx context.Context, actor *entity.User, conversationID uuid.UUID) (*dto.MessageListResponse, error) {
	conversation, err := u.loadParticipating(actor, conversationID)
	if err != nil {
		return nil, err
	}

	if err := u.messageRepo.MarkConversationRead(u.db, conversation.ID, actor.ID); err != nil {
		u.log.Warnf("Failed to mark conversation read: %+v", err)
		return nil, err
	}

	messages, err := u.messageRepo.FindByConversationID(u.db, conversation.ID)
	if err != nil {
		u.log.Warnf("Failed to list messages: %+v", err)
		return nil, err
	}

	return converter.MessagesToListResponse(messages), nil
}

// Send appends a message, bumps the conversation timestamp and notifies
// the counter-party, all in one transaction.
func (u *ConversationUsecase) Send(ctx context.Context, actor *entity.User, conversationID uuid.UUID, request *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conversation, err := u.loadParticipating(actor, conversationID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       actor.ID,
		Content:        request.Content,
		MessageType:    request.MessageType,
		FileURL:        request.FileURL,
	}
	if message.MessageType == "" {
		message.MessageType = entity.MessageTypeText
	}

	err = u.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := u.messageRepo.Create(tx, message); err != nil {
			return err
		}
		if err := u.conversationRepo.TouchLastMessage(tx, conversation.ID, time.Now()); err != nil {
			return err
		}
		return u.notificationRepo.Create(tx, &entity.Notification{
			UserID:    conversation.OtherParticipant(actor.ID),
			Title:     "New Message",
			Message:   actor.FirstName + " " + actor.LastName + ": " + preview(request.Content),
			Type:      entity.NotificationTypeMessage,
			ActionURL: "/messages/" + conversation.ID.String(),
		})
	})
	if err != nil {
		u.log.Warnf("Failed to send message: %+v", err)
		return nil, err
	}

	message.Sender = actor
	return converter.MessageToResponse(message), nil
}

func (u *ConversationUsecase) loadParticipating(actor *entity.User, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := u.conversationRepo.FindByID(u.db, conversationID)
	if err != nil {
		u.log.Warnf("Failed to load conversation: %+v", err)
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	if !conversation.HasParticipant(actor.ID) {
		return nil, ErrNotParticipant
	}
	return conversation, nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLimit {
		return content
	}
	return string(runes[:messagePreviewLimit]) + "..."
}
