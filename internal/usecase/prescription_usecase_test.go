package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

type prescriptionFixture struct {
	uc            *PrescriptionUsecase
	prescriptions *mockPrescriptionRepo
	users         *mockUserRepo
	notifications *mockNotificationRepo
}

func newPrescriptionFixture() *prescriptionFixture {
	f := &prescriptionFixture{
		prescriptions: &mockPrescriptionRepo{},
		users:         &mockUserRepo{},
		notifications: &mockNotificationRepo{},
	}
	f.uc = NewPrescriptionUsecase(nil, testLogger(), fakeTransactor{}, f.prescriptions, f.users, f.notifications, testAudit())
	return f
}

func TestCreatePrescriptionUnknownPatient(t *testing.T) {
	f := newPrescriptionFixture()

	_, err := f.uc.Create(context.Background(), doctorUser(), &dto.CreatePrescriptionRequest{
		PatientID:   uuid.New(),
		Medications: []dto.MedicationRequest{{Name: "Ibuprofen"}},
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreatePrescriptionForDoctorTarget(t *testing.T) {
	f := newPrescriptionFixture()
	other := doctorUser()
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return other, nil
	}

	_, err := f.uc.Create(context.Background(), doctorUser(), &dto.CreatePrescriptionRequest{
		PatientID:   other.ID,
		Medications: []dto.MedicationRequest{{Name: "Ibuprofen"}},
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreatePrescriptionBadValidUntil(t *testing.T) {
	f := newPrescriptionFixture()
	patient := patientUser()
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return patient, nil
	}

	_, err := f.uc.Create(context.Background(), doctorUser(), &dto.CreatePrescriptionRequest{
		PatientID:   patient.ID,
		Medications: []dto.MedicationRequest{{Name: "Ibuprofen"}},
		ValidUntil:  "next month",
	})
	assert.ErrorIs(t, err, ErrInvalidValidUntil)
}

func TestCreatePrescriptionNotifiesPatient(t *testing.T) {
	f := newPrescriptionFixture()
	patient := patientUser()
	doctor := doctorUser()
	f.users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return patient, nil
	}

	resp, err := f.uc.Create(context.Background(), doctor, &dto.CreatePrescriptionRequest{
		PatientID: patient.ID,
		Medications: []dto.MedicationRequest{
			{Name: "Ibuprofen", Dosage: "200mg", Frequency: "2x daily"},
		},
		Diagnosis:  "tension headache",
		ValidUntil: "2026-12-31",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	require.Len(t, resp.Medications, 1)
	assert.Equal(t, "Ibuprofen", resp.Medications[0].Name)
	require.NotNil(t, resp.ValidUntil)

	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, patient.ID, f.notifications.created[0].UserID)
	assert.Equal(t, entity.NotificationTypePrescription, f.notifications.created[0].Type)
}

func TestListPrescriptionsAsAdmin(t *testing.T) {
	f := newPrescriptionFixture()

	_, err := f.uc.List(context.Background(), adminUser(), nil)
	assert.ErrorIs(t, err, ErrPrescriptionForbidden)
}

func TestListPrescriptionsDoctorFiltersPatient(t *testing.T) {
	f := newPrescriptionFixture()
	doctor := doctorUser()
	patientID := uuid.New()

	var gotPatientID *uuid.UUID
	f.prescriptions.findByDoctorIDFn = func(db *gorm.DB, doctorID uuid.UUID, pid *uuid.UUID) ([]entity.Prescription, error) {
		gotPatientID = pid
		return nil, nil
	}

	_, err := f.uc.List(context.Background(), doctor, &patientID)
	require.NoError(t, err)
	require.NotNil(t, gotPatientID)
	assert.Equal(t, patientID, *gotPatientID)
}
