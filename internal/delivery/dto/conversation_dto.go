package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type StartConversationRequest struct {
	// The counter-party: a doctor id when a patient starts the
	// conversation, a patient id when a doctor does.
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type SendMessageRequest struct {
	Content     string `json:"content" validate:"required,min=1"`
	MessageType string `json:"message_type" validate:"omitempty,oneof=text image file"`
	FileURL     string `json:"file_url" validate:"omitempty,url"`
}

// Response DTOs

type ConversationResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	DoctorID       uuid.UUID `json:"doctor_id"`
	OtherUserID    uuid.UUID `json:"other_user_id"`
	OtherUserName  string    `json:"other_user_name"`
	OtherUserRole  string    `json:"other_user_role"`
	Specialization string    `json:"specialization,omitempty"`
	UnreadCount    int64     `json:"unread_count"`
	LastMessageAt  time.Time `json:"last_message_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int                    `json:"total"`
}

type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderName     string    `json:"sender_name,omitempty"`
	SenderRole     string    `json:"sender_role,omitempty"`
	Content        string    `json:"content"`
	MessageType    string    `json:"message_type"`
	FileURL        string    `json:"file_url,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}
