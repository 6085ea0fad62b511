package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is keyed by the (patient, doctor) user id pair.
type Conversation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair" json:"doctor_id"`
	LastMessageAt time.Time `gorm:"not null;index" json:"last_message_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant reports whether the user belongs to this conversation.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.PatientID == userID || c.DoctorID == userID
}

// OtherParticipant returns the counter-party's user id.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.PatientID == userID {
		return c.DoctorID
	}
	return c.PatientID
}
