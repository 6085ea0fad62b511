package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	BloodType             string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies             StringList `gorm:"type:jsonb" json:"allergies,omitempty"`
	ChronicConditions     StringList `gorm:"type:jsonb" json:"chronic_conditions,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	InsuranceProvider     string     `gorm:"type:varchar(200)" json:"insurance_provider,omitempty"`
	InsuranceNumber       string     `gorm:"type:varchar(100)" json:"insurance_number,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
