package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// Walks the primary flow end to end over shared in-memory state:
// patient and doctor register, the admin verifies the doctor, the
// patient books, the doctor confirms.
func TestBookingFlow(t *testing.T) {
	ctx := context.Background()

	usersByID := map[uuid.UUID]*entity.User{}
	usersByEmail := map[string]*entity.User{}
	doctorProfiles := map[uuid.UUID]*entity.DoctorProfile{}
	appointmentsByID := map[uuid.UUID]*entity.Appointment{}

	userRepo := &mockUserRepo{
		createFn: func(db *gorm.DB, user *entity.User) error {
			if _, taken := usersByEmail[user.Email]; taken {
				return gorm.ErrDuplicatedKey
			}
			user.ID = uuid.New()
			usersByID[user.ID] = user
			usersByEmail[user.Email] = user
			return nil
		},
		findByEmailFn: func(db *gorm.DB, email string) (*entity.User, error) {
			return usersByEmail[email], nil
		},
		findActiveByIDFn: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			user := usersByID[id]
			if user == nil || !user.IsActive {
				return nil, nil
			}
			user.DoctorProfile = doctorProfiles[id]
			return user, nil
		},
	}
	doctorRepo := &mockDoctorProfileRepo{
		createFn: func(db *gorm.DB, profile *entity.DoctorProfile) error {
			doctorProfiles[profile.UserID] = profile
			return nil
		},
		setVerifiedFn: func(db *gorm.DB, userID uuid.UUID, verified bool) (int64, error) {
			profile := doctorProfiles[userID]
			if profile == nil {
				return 0, nil
			}
			profile.IsVerified = verified
			return 1, nil
		},
	}
	appointmentRepo := &mockAppointmentRepo{
		createFn: func(db *gorm.DB, appointment *entity.Appointment) error {
			appointment.ID = uuid.New()
			appointmentsByID[appointment.ID] = appointment
			return nil
		},
		findByIDFn: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return appointmentsByID[id], nil
		},
		updateGuardedFn: func(db *gorm.DB, id uuid.UUID, expected entity.AppointmentStatus, fields map[string]interface{}) (int64, error) {
			appointment := appointmentsByID[id]
			if appointment == nil || appointment.Status != expected {
				return 0, nil
			}
			if status, ok := fields["status"]; ok {
				appointment.Status = status.(entity.AppointmentStatus)
			}
			return 1, nil
		},
	}
	payments := &mockPaymentRepo{}
	notifications := &mockNotificationRepo{}
	sessions := newFakeSessionStore()

	authUC := NewAuthUsecase(nil, testLogger(), fakeTransactor{}, userRepo, &mockPatientProfileRepo{}, doctorRepo, testTokenService(), sessions, testAudit())
	adminUC := NewAdminUsecase(nil, testLogger(), fakeTransactor{}, userRepo, doctorRepo, notifications, &mockAuditLogRepo{}, sessions, testAudit())
	appointmentUC := NewAppointmentUsecase(nil, testLogger(), fakeTransactor{}, appointmentRepo, userRepo, payments, notifications, testAudit())

	// Patient and doctor sign up.
	patientResp, _, err := authUC.Register(ctx, &dto.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "supersecret",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	doctorResp, _, err := authUC.Register(ctx, &dto.RegisterRequest{
		Email:     "house@example.com",
		Password:  "supersecret",
		FirstName: "Greg",
		LastName:  "House",
		Role:      entity.RoleDoctor,
	})
	require.NoError(t, err)

	doctor := usersByID[doctorResp.ID]
	patient := usersByID[patientResp.ID]
	doctorProfiles[doctor.ID].ConsultationFee = decimal.NewFromInt(200)

	// Booking an unverified doctor is rejected.
	_, err = appointmentUC.Create(ctx, patient, &dto.CreateAppointmentRequest{
		DoctorID:    doctor.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.ErrorIs(t, err, ErrDoctorNotVerified)

	// Admin verifies the doctor, which notifies them.
	require.NoError(t, adminUC.SetDoctorVerified(ctx, adminUser(), doctor.ID, true))
	require.Len(t, notifications.created, 1)
	assert.Equal(t, doctor.ID, notifications.created[0].UserID)

	// Patient logs in fresh and books.
	_, token, err := authUC.Login(ctx, &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	resolved, _, err := authUC.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, patient.ID, resolved.ID)

	booked, err := appointmentUC.Create(ctx, resolved, &dto.CreateAppointmentRequest{
		DoctorID:    doctor.ID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Symptoms:    "persistent migraines",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), booked.Status)

	// Booking seeds a pending payment at the doctor's fee; nothing else
	// fans out.
	require.Len(t, payments.created, 1)
	assert.True(t, payments.created[0].Amount.Equal(decimal.NewFromInt(200)))
	require.Len(t, notifications.created, 1)

	// Doctor confirms; the patient is told and the stored row moved.
	confirmed, err := appointmentUC.Confirm(ctx, doctor, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), confirmed.Status)
	assert.Equal(t, entity.AppointmentStatusConfirmed, appointmentsByID[booked.ID].Status)
	require.Len(t, notifications.created, 2)
	assert.Equal(t, patient.ID, notifications.created[1].UserID)

	// A second confirm is a no-op transition and must not fan out again.
	_, err = appointmentUC.Confirm(ctx, doctor, booked.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, notifications.created, 2)
}
