package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report type tags
const (
	ReportTypeLab          = "lab_report"
	ReportTypePrescription = "prescription"
	ReportTypeImaging      = "imaging"
	ReportTypeOther        = "other"
)

// ValidReportType reports whether s is a known report type.
func ValidReportType(s string) bool {
	return s == ReportTypeLab || s == ReportTypePrescription ||
		s == ReportTypeImaging || s == ReportTypeOther
}

// MedicalReport stores report metadata and a file URL. Blob transport is
// handled outside this service.
type MedicalReport struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	UploadedBy         uuid.UUID  `gorm:"type:uuid;not null" json:"uploaded_by"`
	Title              string     `gorm:"type:varchar(200);not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description,omitempty"`
	ReportType         string     `gorm:"type:varchar(50);not null;default:'other'" json:"report_type"`
	FileURL            string     `gorm:"type:text;not null" json:"file_url"`
	FileName           string     `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	FileSize           int64      `gorm:"default:0" json:"file_size,omitempty"`
	ReportDate         time.Time  `gorm:"type:date;not null" json:"report_date"`
	SharedWithDoctorID *uuid.UUID `gorm:"type:uuid;index" json:"shared_with_doctor_id,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}
