package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

type conversationFixture struct {
	uc            *ConversationUsecase
	conversations *mockConversationRepo
	messages      *mockMessageRepo
	users         *mockUserRepo
	notifications *mockNotificationRepo
}

func newConversationFixture() *conversationFixture {
	f := &conversationFixture{
		conversations: &mockConversationRepo{},
		messages:      &mockMessageRepo{},
		users:         &mockUserRepo{},
		notifications: &mockNotificationRepo{},
	}
	f.uc = NewConversationUsecase(nil, testLogger(), fakeTransactor{}, f.conversations, f.messages, f.users, f.notifications)
	return f
}

func TestStartConversationWithNonDoctor(t *testing.T) {
	f := newConversationFixture()
	other := patientUser()
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return other, nil
	}

	_, err := f.uc.Start(context.Background(), patientUser(), other.ID)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestStartConversationByAdmin(t *testing.T) {
	f := newConversationFixture()

	_, err := f.uc.Start(context.Background(), adminUser(), uuid.New())
	assert.ErrorIs(t, err, ErrMessagingNotAllowed)
}

func TestStartConversationCanonicalPair(t *testing.T) {
	f := newConversationFixture()
	doctor := doctorUser()
	patient := patientUser()
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return doctor, nil
	}

	var createdPatientID, createdDoctorID uuid.UUID
	f.conversations.createFn = func(db *gorm.DB, conversation *entity.Conversation) error {
		conversation.ID = uuid.New()
		createdPatientID = conversation.PatientID
		createdDoctorID = conversation.DoctorID
		return nil
	}

	resp, err := f.uc.Start(context.Background(), patient, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, createdPatientID)
	assert.Equal(t, doctor.ID, createdDoctorID)
	assert.Equal(t, doctor.ID, resp.OtherUserID)
}

func TestStartConversationReturnsExisting(t *testing.T) {
	f := newConversationFixture()
	patient := patientUser()
	doctor := doctorUser()
	existing := &entity.Conversation{
		ID:        uuid.New(),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Doctor:    doctor,
	}
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return doctor, nil
	}
	f.conversations.findByParticipantsFn = func(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Conversation, error) {
		return existing, nil
	}
	created := false
	f.conversations.createFn = func(db *gorm.DB, conversation *entity.Conversation) error {
		created = true
		return nil
	}

	resp, err := f.uc.Start(context.Background(), patient, doctor.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, resp.ID)
}

func TestSendMessageByNonParticipant(t *testing.T) {
	f := newConversationFixture()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
	}
	f.conversations.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
		return conversation, nil
	}

	_, err := f.uc.Send(context.Background(), patientUser(), conversation.ID, &dto.SendMessageRequest{Content: "hello"})
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.Empty(t, f.messages.created)
}

func TestSendMessageNotifiesCounterparty(t *testing.T) {
	f := newConversationFixture()
	patient := patientUser()
	doctorID := uuid.New()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		PatientID: patient.ID,
		DoctorID:  doctorID,
	}
	f.conversations.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
		return conversation, nil
	}

	resp, err := f.uc.Send(context.Background(), patient, conversation.ID, &dto.SendMessageRequest{Content: "hello doc"})
	require.NoError(t, err)

	assert.Equal(t, "hello doc", resp.Content)
	assert.Equal(t, entity.MessageTypeText, resp.MessageType)
	require.Len(t, f.messages.created, 1)
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, doctorID, f.notifications.created[0].UserID)
	assert.Equal(t, entity.NotificationTypeMessage, f.notifications.created[0].Type)
}

func TestSendMessageTruncatesPreview(t *testing.T) {
	f := newConversationFixture()
	patient := patientUser()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		PatientID: patient.ID,
		DoctorID:  uuid.New(),
	}
	f.conversations.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
		return conversation, nil
	}

	long := strings.Repeat("x", 500)
	_, err := f.uc.Send(context.Background(), patient, conversation.ID, &dto.SendMessageRequest{Content: long})
	require.NoError(t, err)

	require.Len(t, f.notifications.created, 1)
	assert.Less(t, len(f.notifications.created[0].Message), 200)
}

func TestMessagesMarksConversationRead(t *testing.T) {
	f := newConversationFixture()
	patient := patientUser()
	conversation := &entity.Conversation{
		ID:        uuid.New(),
		PatientID: patient.ID,
		DoctorID:  uuid.New(),
	}
	f.conversations.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
		return conversation, nil
	}

	var markedReader uuid.UUID
	f.messages.markConversationReadFn = func(db *gorm.DB, conversationID, readerID uuid.UUID) error {
		markedReader = readerID
		return nil
	}

	_, err := f.uc.Messages(context.Background(), patient, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, markedReader)
}

func TestMessagesUnknownConversation(t *testing.T) {
	f := newConversationFixture()

	_, err := f.uc.Messages(context.Background(), patientUser(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
