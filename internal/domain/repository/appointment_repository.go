package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	// UpdateGuarded applies fields only while the row still holds the
	// expected status. Zero affected rows means a concurrent transition
	// won, or the status moved on; callers map that to a conflict.
	UpdateGuarded(db *gorm.DB, id uuid.UUID, expected entity.AppointmentStatus, fields map[string]interface{}) (int64, error)
	// FindPatientsByDoctorID lists distinct patients who have an
	// appointment with the doctor.
	FindPatientsByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.User, error)
}
