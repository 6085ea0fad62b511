package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data.
// IsVerified gates the doctor's visibility in the public directory and
// their ability to receive bookings; only admins flip it.
type DoctorProfile struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization      string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber       string          `gorm:"type:varchar(100);not null" json:"license_number"`
	ExperienceYears     int             `gorm:"not null;default:0" json:"experience_years"`
	Bio                 string          `gorm:"type:text" json:"bio,omitempty"`
	ConsultationFee     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	AvailableDays       StringList      `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableHoursStart string          `gorm:"type:time" json:"available_hours_start,omitempty"`
	AvailableHoursEnd   string          `gorm:"type:time" json:"available_hours_end,omitempty"`
	Rating              float64         `gorm:"not null;default:0" json:"rating"`
	TotalReviews        int             `gorm:"not null;default:0" json:"total_reviews"`
	IsVerified          bool            `gorm:"not null;default:false;index" json:"is_verified"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
