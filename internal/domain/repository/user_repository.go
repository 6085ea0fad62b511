package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindActiveByID loads an active user with the role profile preloaded.
	// Inactive users resolve to nil, regardless of token validity.
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	// SetActive flips is_active and reports whether a row was touched.
	SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}
