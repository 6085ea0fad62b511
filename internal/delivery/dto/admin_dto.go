package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type SetDoctorVerifiedRequest struct {
	IsVerified *bool `json:"is_verified" validate:"required"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
