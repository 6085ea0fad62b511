package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error)
	// FindByDoctorID lists prescriptions the doctor wrote, optionally
	// narrowed to one patient.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.Prescription, error)
}
