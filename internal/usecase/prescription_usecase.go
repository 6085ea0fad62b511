package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
)

var (
	ErrPatientNotFound       = errors.New("patient not found")
	ErrInvalidValidUntil     = errors.New("valid_until must be a YYYY-MM-DD date")
	ErrPrescriptionForbidden = errors.New("not allowed to view these prescriptions")
)

type PrescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	tx               Transactor
	prescriptionRepo repository.PrescriptionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	audit            *service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	tx Transactor,
	prescriptionRepo repository.PrescriptionRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	audit *service.AuditService,
) *PrescriptionUsecase {
	return &PrescriptionUsecase{
		db:               db,
		log:              log,
		tx:               tx,
		prescriptionRepo: prescriptionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		audit:            audit,
	}
}

// Create writes a prescription for a patient and notifies them in the
// same transaction. The caller is the prescribing doctor.
func (u *PrescriptionUsecase) Create(ctx context.Context, doctor *entity.User, request *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	patient, err := u.userRepo.FindActiveByID(u.db, request.PatientID)
	if err != nil {
		u.log.Warnf("Failed to load patient: %+v", err)
		return nil, err
	}
	if patient == nil || !patient.IsPatient() {
		return nil, ErrPatientNotFound
	}

	var validUntil *time.Time
	if request.ValidUntil != "" {
		parsed, err := time.Parse("2006-01-02", request.ValidUntil)
		if err != nil {
			return nil, ErrInvalidValidUntil
		}
		validUntil = &parsed
	}

	medications := make(entity.MedicationList, 0, len(request.Medications))
	for _, m := range request.Medications {
		medications = append(medications, entity.Medication{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
			Quantity:     m.Quantity,
		})
	}

	prescription := &entity.Prescription{
		AppointmentID: request.AppointmentID,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		Medications:   medications,
		Diagnosis:     request.Diagnosis,
		Notes:         request.Notes,
		ValidUntil:    validUntil,
		IsActive:      true,
	}

	err = u.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
			return err
		}
		return u.notificationRepo.Create(tx, &entity.Notification{
			UserID:    patient.ID,
			Title:     "New Prescription",
			Message:   "Dr. " + doctor.FirstName + " " + doctor.LastName + " issued you a prescription",
			Type:      entity.NotificationTypePrescription,
			ActionURL: "/patient/prescriptions",
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.audit.Record(&doctor.ID, entity.AuditActionPrescriptionCreate, entity.JSON{
		"prescription_id": prescription.ID.String(),
		"patient_id":      patient.ID.String(),
	})

	prescription.Doctor = doctor
	prescription.Patient = patient
	return converter.PrescriptionToResponse(prescription), nil
}

// List scopes by role: patients see prescriptions written for them,
// doctors see ones they wrote, optionally narrowed to a patient.
func (u *PrescriptionUsecase) List(ctx context.Context, actor *entity.User, patientID *uuid.UUID) (*dto.PrescriptionListResponse, error) {
	var (
		prescriptions []entity.Prescription
		err           error
	)
	switch {
	case actor.IsPatient():
		prescriptions, err = u.prescriptionRepo.FindByPatientID(u.db, actor.ID)
	case actor.IsDoctor():
		prescriptions, err = u.prescriptionRepo.FindByDoctorID(u.db, actor.ID, patientID)
	default:
		return nil, ErrPrescriptionForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToListResponse(prescriptions), nil
}
