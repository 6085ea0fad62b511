package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=20"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdatePatientProfileRequest struct {
	DateOfBirth           string   `json:"date_of_birth" validate:"omitempty"` // YYYY-MM-DD
	Gender                string   `json:"gender" validate:"omitempty,max=20"`
	BloodType             string   `json:"blood_type" validate:"omitempty,max=5"`
	Allergies             []string `json:"allergies" validate:"omitempty"`
	ChronicConditions     []string `json:"chronic_conditions" validate:"omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyContactPhone string   `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	Address               string   `json:"address" validate:"omitempty"`
	InsuranceProvider     string   `json:"insurance_provider" validate:"omitempty,max=200"`
	InsuranceNumber       string   `json:"insurance_number" validate:"omitempty,max=100"`
}

type UpdateDoctorProfileRequest struct {
	Specialization      string   `json:"specialization" validate:"omitempty,max=100"`
	LicenseNumber       string   `json:"license_number" validate:"omitempty,max=100"`
	ExperienceYears     *int     `json:"experience_years" validate:"omitempty,gte=0"`
	Bio                 string   `json:"bio" validate:"omitempty"`
	ConsultationFee     *string  `json:"consultation_fee" validate:"omitempty"`
	AvailableDays       []string `json:"available_days" validate:"omitempty"`
	AvailableHoursStart string   `json:"available_hours_start" validate:"omitempty"`
	AvailableHoursEnd   string   `json:"available_hours_end" validate:"omitempty"`
}

// Response DTOs

type PatientProfileResponse struct {
	ID                    uuid.UUID  `json:"id"`
	UserID                uuid.UUID  `json:"user_id"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender,omitempty"`
	BloodType             string     `json:"blood_type,omitempty"`
	Allergies             []string   `json:"allergies,omitempty"`
	ChronicConditions     []string   `json:"chronic_conditions,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	Address               string     `json:"address,omitempty"`
	InsuranceProvider     string     `json:"insurance_provider,omitempty"`
	InsuranceNumber       string     `json:"insurance_number,omitempty"`
}

type DoctorProfileResponse struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	Specialization      string          `json:"specialization"`
	LicenseNumber       string          `json:"license_number"`
	ExperienceYears     int             `json:"experience_years"`
	Bio                 string          `json:"bio,omitempty"`
	ConsultationFee     decimal.Decimal `json:"consultation_fee"`
	AvailableDays       []string        `json:"available_days,omitempty"`
	AvailableHoursStart string          `json:"available_hours_start,omitempty"`
	AvailableHoursEnd   string          `json:"available_hours_end,omitempty"`
	Rating              float64         `json:"rating"`
	TotalReviews        int             `json:"total_reviews"`
	IsVerified          bool            `json:"is_verified"`
}

type DoctorListResponse struct {
	Doctors []UserResponse `json:"doctors"`
	Total   int            `json:"total"`
}

type PatientListResponse struct {
	Patients []UserResponse `json:"patients"`
	Total    int            `json:"total"`
}
