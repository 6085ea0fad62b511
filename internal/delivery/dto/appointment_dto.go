package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=5,lte=240"`
	Type            string    `json:"type" validate:"omitempty,max=50"`
	Symptoms        string    `json:"symptoms" validate:"omitempty"`
}

// UpdateAppointmentRequest is the generic PATCH body. Nil fields are left
// untouched.
type UpdateAppointmentRequest struct {
	Status      *string `json:"status" validate:"omitempty"`
	Notes       *string `json:"notes" validate:"omitempty"`
	MeetingLink *string `json:"meeting_link" validate:"omitempty,url"`
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID     `json:"id"`
	PatientID       uuid.UUID     `json:"patient_id"`
	DoctorID        uuid.UUID     `json:"doctor_id"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          string        `json:"status"`
	Type            string        `json:"type"`
	Symptoms        string        `json:"symptoms,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	MeetingLink     string        `json:"meeting_link,omitempty"`
	Patient         *UserResponse `json:"patient,omitempty"`
	Doctor          *UserResponse `json:"doctor,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
