package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name" validate:"required,min=1"`
	Role      string `json:"role" validate:"omitempty,oneof=patient doctor admin"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	Role           string                  `json:"role"`
	FirstName      string                  `json:"first_name"`
	LastName       string                  `json:"last_name"`
	Phone          string                  `json:"phone,omitempty"`
	AvatarURL      string                  `json:"avatar_url,omitempty"`
	IsActive       bool                    `json:"is_active"`
	EmailVerified  bool                    `json:"email_verified"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
