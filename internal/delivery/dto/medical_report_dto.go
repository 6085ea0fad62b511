package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalReportRequest struct {
	Title              string     `json:"title" validate:"required,min=1,max=200"`
	Description        string     `json:"description" validate:"omitempty"`
	ReportType         string     `json:"report_type" validate:"omitempty,oneof=lab_report prescription imaging other"`
	FileURL            string     `json:"file_url" validate:"required,url"`
	FileName           string     `json:"file_name" validate:"omitempty,max=255"`
	FileSize           int64      `json:"file_size" validate:"omitempty,gte=0"`
	ReportDate         string     `json:"report_date" validate:"omitempty"` // YYYY-MM-DD, defaults to today
	SharedWithDoctorID *uuid.UUID `json:"shared_with_doctor_id" validate:"omitempty"`
}

// Response DTOs

type MedicalReportResponse struct {
	ID                 uuid.UUID  `json:"id"`
	PatientID          uuid.UUID  `json:"patient_id"`
	PatientName        string     `json:"patient_name,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	ReportType         string     `json:"report_type"`
	FileURL            string     `json:"file_url"`
	FileName           string     `json:"file_name,omitempty"`
	FileSize           int64      `json:"file_size,omitempty"`
	ReportDate         time.Time  `json:"report_date"`
	SharedWithDoctorID *uuid.UUID `json:"shared_with_doctor_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type MedicalReportListResponse struct {
	Reports []MedicalReportResponse `json:"reports"`
	Total   int                     `json:"total"`
}
