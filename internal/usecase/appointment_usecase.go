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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentForbidden = errors.New("not allowed to act on this appointment")
	ErrInvalidStatus        = errors.New("unknown appointment status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrTransitionConflict   = errors.New("appointment was updated concurrently")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDoctorNotVerified    = errors.New("doctor is not verified")
)

const defaultDurationMinutes = 30

type AppointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	tx               Transactor
	appointmentRepo  repository.AppointmentRepository
	userRepo         repository.UserRepository
	paymentRepo      repository.PaymentRepository
	notificationRepo repository.NotificationRepository
	audit            *service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	tx Transactor,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	notificationRepo repository.NotificationRepository,
	audit *service.AuditService,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		db:               db,
		log:              log,
		tx:               tx,
		appointmentRepo:  appointmentRepo,
		userRepo:         userRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		audit:            audit,
	}
}

// Create books a pending appointment with a verified doctor and seeds
// the matching pending payment in the same transaction.
func (u *AppointmentUsecase) Create(ctx context.Context, actor *entity.User, request *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctor, err := u.userRepo.FindActiveByID(u.db, request.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to load doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}
	if doctor.DoctorProfile == nil || !doctor.DoctorProfile.IsVerified {
		return nil, ErrDoctorNotVerified
	}

	appointment := &entity.Appointment{
		PatientID:       actor.ID,
		DoctorID:        doctor.ID,
		ScheduledAt:     request.ScheduledAt,
		DurationMinutes: request.DurationMinutes,
		Status:          entity.AppointmentStatusPending,
		Type:            request.Type,
		Symptoms:        request.Symptoms,
	}
	if appointment.DurationMinutes == 0 {
		appointment.DurationMinutes = defaultDurationMinutes
	}
	if appointment.Type == "" {
		appointment.Type = "consultation"
	}

	err = u.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		return u.paymentRepo.Create(tx, &entity.Payment{
			AppointmentID: &appointment.ID,
			PatientID:     actor.ID,
			DoctorID:      doctor.ID,
			Amount:        doctor.DoctorProfile.ConsultationFee,
			Currency:      "USD",
			Status:        entity.PaymentStatusPending,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(&actor.ID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctor.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// List returns appointments scoped by role: patients and doctors see
// their own, admins see everything.
func (u *AppointmentUsecase) List(ctx context.Context, actor *entity.User) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	switch {
	case actor.IsPatient():
		appointments, err = u.appointmentRepo.FindByPatientID(u.db, actor.ID)
	case actor.IsDoctor():
		appointments, err = u.appointmentRepo.FindByDoctorID(u.db, actor.ID)
	default:
		appointments, err = u.appointmentRepo.FindAll(u.db)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *AppointmentUsecase) Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.loadOwned(actor, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Confirm moves pending -> confirmed. Only the assigned doctor may do it.
func (u *AppointmentUsecase) Confirm(ctx context.Context, actor *entity.User, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actor, id, entity.AppointmentStatusConfirmed, nil, entity.AuditActionAppointmentConfirm)
}

// Cancel moves a non-terminal appointment to cancelled. The owning
// patient, the assigned doctor, or an admin may do it.
func (u *AppointmentUsecase) Cancel(ctx context.Context, actor *entity.User, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actor, id, entity.AppointmentStatusCancelled, nil, entity.AuditActionAppointmentCancel)
}

// Complete moves confirmed -> completed and records visit notes. Only the
// assigned doctor may do it.
func (u *AppointmentUsecase) Complete(ctx context.Context, actor *entity.User, id uuid.UUID, notes string) (*dto.AppointmentResponse, error) {
	var extra map[string]interface{}
	if notes != "" {
		extra = map[string]interface{}{"notes": notes}
	}
	return u.transition(ctx, actor, id, entity.AppointmentStatusCompleted, extra, entity.AuditActionAppointmentDone)
}

// Update is the generic PATCH: notes and meeting link edits, plus an
// optional status change that goes through the same transition rules.
func (u *AppointmentUsecase) Update(ctx context.Context, actor *entity.User, id uuid.UUID, request *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if request.Status != nil {
		if !entity.ValidAppointmentStatus(*request.Status) {
			return nil, ErrInvalidStatus
		}
		extra := map[string]interface{}{}
		if request.Notes != nil {
			extra["notes"] = *request.Notes
		}
		if request.MeetingLink != nil {
			extra["meeting_link"] = *request.MeetingLink
		}
		return u.transition(ctx, actor, id, entity.AppointmentStatus(*request.Status), extra, entity.AuditActionAppointmentUpdate)
	}

	appointment, err := u.loadOwned(actor, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Notes != nil {
		fields["notes"] = *request.Notes
	}
	if request.MeetingLink != nil {
		fields["meeting_link"] = *request.MeetingLink
	}
	if len(fields) == 0 {
		return converter.AppointmentToResponse(appointment), nil
	}

	rows, err := u.appointmentRepo.UpdateGuarded(u.db, id, appointment.Status, fields)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrTransitionConflict
	}

	u.audit.Record(&actor.ID, entity.AuditActionAppointmentUpdate, entity.JSON{
		"appointment_id": id.String(),
	})

	return u.reload(id)
}

func (u *AppointmentUsecase) transition(ctx context.Context, actor *entity.User, id uuid.UUID, target entity.AppointmentStatus, extra map[string]interface{}, auditAction string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to load appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !transitionAllowed(actor, appointment, target) {
		return nil, ErrAppointmentForbidden
	}
	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	fields := map[string]interface{}{"status": target}
	for k, v := range extra {
		fields[k] = v
	}

	// The guarded update and the counter-party notification commit
	// together. Losing the status race raises a conflict and rolls the
	// notification back, so no duplicate fan-out on double cancel.
	err = u.tx.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := u.appointmentRepo.UpdateGuarded(tx, id, appointment.Status, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrTransitionConflict
		}
		if notification := transitionNotification(actor, appointment, target); notification != nil {
			return u.notificationRepo.Create(tx, notification)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTransitionConflict) {
			u.log.Warnf("Failed to transition appointment: %+v", err)
		}
		return nil, err
	}

	u.audit.Record(&actor.ID, auditAction, entity.JSON{
		"appointment_id": id.String(),
		"from":           string(appointment.Status),
		"to":             string(target),
	})

	return u.reload(id)
}

// transitionAllowed maps target statuses to actors: confirm and complete
// belong to the assigned doctor, cancel to any owner.
func transitionAllowed(actor *entity.User, appointment *entity.Appointment, target entity.AppointmentStatus) bool {
	switch target {
	case entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted:
		return actor.IsDoctor() && appointment.DoctorID == actor.ID
	case entity.AppointmentStatusCancelled:
		return appointment.CanBeModifiedBy(actor)
	}
	return false
}

// transitionNotification builds the counter-party notification, or nil
// for targets that fan out nothing (completing is a quiet status write).
func transitionNotification(actor *entity.User, appointment *entity.Appointment, target entity.AppointmentStatus) *entity.Notification {
	recipient := appointment.CounterpartyOf(actor)
	actionURL := "/patient/appointments"
	if recipient == appointment.DoctorID {
		actionURL = "/doctor/appointments"
	}

	var title, message string
	when := appointment.ScheduledAt.Format(time.RFC1123)
	switch target {
	case entity.AppointmentStatusConfirmed:
		title = "Appointment Confirmed"
		message = "Your appointment on " + when + " has been confirmed"
	case entity.AppointmentStatusCancelled:
		title = "Appointment Cancelled"
		message = "Your appointment on " + when + " has been cancelled"
	default:
		return nil
	}

	return &entity.Notification{
		UserID:    recipient,
		Title:     title,
		Message:   message,
		Type:      entity.NotificationTypeAppointment,
		ActionURL: actionURL,
	}
}

func (u *AppointmentUsecase) loadOwned(actor *entity.User, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to load appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.CanBeModifiedBy(actor) {
		return nil, ErrAppointmentForbidden
	}
	return appointment, nil
}

func (u *AppointmentUsecase) reload(id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}
