package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags
const (
	NotificationTypeAppointment  = "appointment"
	NotificationTypeMessage      = "message"
	NotificationTypePrescription = "prescription"
	NotificationTypeAccount      = "account"
)

// Notification is a per-recipient fan-out record created as a side effect
// of state-changing actions. Only IsRead ever changes after creation.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	ActionURL string    `gorm:"type:text" json:"action_url,omitempty"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
