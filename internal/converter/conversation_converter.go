package converter

import (
	"github.com/google/uuid"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// ConversationToResponse shapes a conversation from the viewer's side:
// the counter-party's identity is resolved against viewerID.
func ConversationToResponse(conversation *entity.Conversation, viewerID uuid.UUID, unread int64) *dto.ConversationResponse {
	if conversation == nil {
		return nil
	}
	resp := &dto.ConversationResponse{
		ID:            conversation.ID,
		PatientID:     conversation.PatientID,
		DoctorID:      conversation.DoctorID,
		OtherUserID:   conversation.OtherParticipant(viewerID),
		UnreadCount:   unread,
		LastMessageAt: conversation.LastMessageAt,
		CreatedAt:     conversation.CreatedAt,
	}

	var other *entity.User
	if conversation.PatientID == viewerID {
		other = conversation.Doctor
	} else {
		other = conversation.Patient
	}
	if other != nil {
		resp.OtherUserName = other.FirstName + " " + other.LastName
		resp.OtherUserRole = other.Role
		if other.DoctorProfile != nil {
			resp.Specialization = other.DoctorProfile.Specialization
		}
	}
	return resp
}

func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}
	resp := &dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		MessageType:    message.MessageType,
		FileURL:        message.FileURL,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}
	if message.Sender != nil {
		resp.SenderName = message.Sender.FirstName + " " + message.Sender.LastName
		resp.SenderRole = message.Sender.Role
	}
	return resp
}

func MessagesToListResponse(messages []entity.Message) *dto.MessageListResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *MessageToResponse(&messages[i]))
	}
	return &dto.MessageListResponse{
		Messages: responses,
		Total:    len(responses),
	}
}
