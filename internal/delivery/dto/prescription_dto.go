package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicationRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	Dosage       string `json:"dosage" validate:"omitempty,max=100"`
	Frequency    string `json:"frequency" validate:"omitempty,max=100"`
	Duration     string `json:"duration" validate:"omitempty,max=100"`
	Instructions string `json:"instructions" validate:"omitempty"`
	Quantity     int    `json:"quantity" validate:"omitempty,gte=0"`
}

type CreatePrescriptionRequest struct {
	PatientID     uuid.UUID           `json:"patient_id" validate:"required"`
	AppointmentID *uuid.UUID          `json:"appointment_id" validate:"omitempty"`
	Medications   []MedicationRequest `json:"medications" validate:"required,min=1,dive"`
	Diagnosis     string              `json:"diagnosis" validate:"omitempty"`
	Notes         string              `json:"notes" validate:"omitempty"`
	ValidUntil    string              `json:"valid_until" validate:"omitempty"` // YYYY-MM-DD
}

// Response DTOs

type MedicationResponse struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID            `json:"id"`
	AppointmentID *uuid.UUID           `json:"appointment_id,omitempty"`
	PatientID     uuid.UUID            `json:"patient_id"`
	DoctorID      uuid.UUID            `json:"doctor_id"`
	DoctorName    string               `json:"doctor_name,omitempty"`
	PatientName   string               `json:"patient_name,omitempty"`
	Medications   []MedicationResponse `json:"medications"`
	Diagnosis     string               `json:"diagnosis,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	ValidUntil    *time.Time           `json:"valid_until,omitempty"`
	IsActive      bool                 `json:"is_active"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
