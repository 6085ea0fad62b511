package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	Update(db *gorm.DB, profile *entity.PatientProfile) error
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	// SetVerified flips is_verified and reports whether a row was touched.
	SetVerified(db *gorm.DB, userID uuid.UUID, verified bool) (int64, error)
	// FindDirectory lists active, verified doctors for the public
	// directory, ordered by rating then review count.
	FindDirectory(db *gorm.DB, filter entity.DoctorFilter) ([]entity.User, error)
}
