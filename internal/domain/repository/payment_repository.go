package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Payment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Payment, error)
	// Settle marks a pending payment completed. Zero affected rows means
	// the payment was not pending anymore.
	Settle(db *gorm.DB, id uuid.UUID, method, transactionID string) (int64, error)
}
