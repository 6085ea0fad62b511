package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalReportRepository interface {
	Create(db *gorm.DB, report *entity.MedicalReport) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error)
	// FindSharedWithDoctor lists reports a patient shared with the doctor.
	FindSharedWithDoctor(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.MedicalReport, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
