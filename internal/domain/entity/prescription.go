package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medication is one line item on a prescription.
type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
}

// MedicationList is stored as a jsonb column.
type MedicationList []Medication

func (l MedicationList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *MedicationList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []Medication{}
	err := json.Unmarshal(bytes, &result)
	*l = MedicationList(result)
	return err
}

// Prescription is written by a doctor for a patient. Both sides are
// user ids.
type Prescription struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID *uuid.UUID     `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	PatientID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Medications   MedicationList `gorm:"type:jsonb;not null" json:"medications"`
	Diagnosis     string         `gorm:"type:text" json:"diagnosis,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	ValidUntil    *time.Time     `gorm:"type:date" json:"valid_until,omitempty"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
