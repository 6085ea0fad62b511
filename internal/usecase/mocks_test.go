package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
)

// fakeTransactor runs the function directly; mocks ignore the db handle.
type fakeTransactor struct{}

func (fakeTransactor) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// fakeSessionStore is an in-memory session store.
type fakeSessionStore struct {
	sessions map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]bool{}}
}

func (s *fakeSessionStore) key(userID uuid.UUID, sessionID string) string {
	return userID.String() + ":" + sessionID
}

func (s *fakeSessionStore) Put(ctx context.Context, userID uuid.UUID, sessionID string, ttl time.Duration) error {
	s.sessions[s.key(userID, sessionID)] = true
	return nil
}

func (s *fakeSessionStore) Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	return s.sessions[s.key(userID, sessionID)], nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, userID uuid.UUID, sessionID string) error {
	delete(s.sessions, s.key(userID, sessionID))
	return nil
}

func (s *fakeSessionStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	prefix := userID.String() + ":"
	for k := range s.sessions {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(s.sessions, k)
		}
	}
	return nil
}

var _ service.SessionStore = (*fakeSessionStore)(nil)

// testAudit returns an audit service backed by a no-op repository.
func testAudit() *service.AuditService {
	return service.NewAuditService(nil, testLogger(), &mockAuditLogRepo{})
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type mockUserRepo struct {
	createFn         func(db *gorm.DB, user *entity.User) error
	findByEmailFn    func(db *gorm.DB, email string) (*entity.User, error)
	findByIDFn       func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	findActiveByIDFn func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	findAllFn        func(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error)
	updateFn         func(db *gorm.DB, user *entity.User) error
	setActiveFn      func(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(db, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(db, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.findActiveByIDFn != nil {
		return m.findActiveByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db, filter)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(db *gorm.DB, user *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(db, user)
	}
	return nil
}

func (m *mockUserRepo) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(db, id, active)
	}
	return 1, nil
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

type mockPatientProfileRepo struct {
	createFn       func(db *gorm.DB, profile *entity.PatientProfile) error
	findByUserIDFn func(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	updateFn       func(db *gorm.DB, profile *entity.PatientProfile) error
}

func (m *mockPatientProfileRepo) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	if m.createFn != nil {
		return m.createFn(db, profile)
	}
	return nil
}

func (m *mockPatientProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(db, userID)
	}
	return nil, nil
}

func (m *mockPatientProfileRepo) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	if m.updateFn != nil {
		return m.updateFn(db, profile)
	}
	return nil
}

var _ repository.PatientProfileRepository = (*mockPatientProfileRepo)(nil)

type mockDoctorProfileRepo struct {
	createFn        func(db *gorm.DB, profile *entity.DoctorProfile) error
	findByUserIDFn  func(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	updateFn        func(db *gorm.DB, profile *entity.DoctorProfile) error
	setVerifiedFn   func(db *gorm.DB, userID uuid.UUID, verified bool) (int64, error)
	findDirectoryFn func(db *gorm.DB, filter entity.DoctorFilter) ([]entity.User, error)
}

func (m *mockDoctorProfileRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.createFn != nil {
		return m.createFn(db, profile)
	}
	return nil
}

func (m *mockDoctorProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(db, userID)
	}
	return nil, nil
}

func (m *mockDoctorProfileRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.updateFn != nil {
		return m.updateFn(db, profile)
	}
	return nil
}

func (m *mockDoctorProfileRepo) SetVerified(db *gorm.DB, userID uuid.UUID, verified bool) (int64, error) {
	if m.setVerifiedFn != nil {
		return m.setVerifiedFn(db, userID, verified)
	}
	return 1, nil
}

func (m *mockDoctorProfileRepo) FindDirectory(db *gorm.DB, filter entity.DoctorFilter) ([]entity.User, error) {
	if m.findDirectoryFn != nil {
		return m.findDirectoryFn(db, filter)
	}
	return nil, nil
}

var _ repository.DoctorProfileRepository = (*mockDoctorProfileRepo)(nil)

type mockAppointmentRepo struct {
	createFn                 func(db *gorm.DB, appointment *entity.Appointment) error
	findByIDFn               func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	findByPatientIDFn        func(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	findByDoctorIDFn         func(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	findAllFn                func(db *gorm.DB) ([]entity.Appointment, error)
	updateGuardedFn          func(db *gorm.DB, id uuid.UUID, expected entity.AppointmentStatus, fields map[string]interface{}) (int64, error)
	findPatientsByDoctorIDFn func(db *gorm.DB, doctorID uuid.UUID) ([]entity.User, error)
}

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(db, appointment)
	}
	appointment.ID = uuid.New()
	return nil
}

func (m *mockAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(db, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) UpdateGuarded(db *gorm.DB, id uuid.UUID, expected entity.AppointmentStatus, fields map[string]interface{}) (int64, error) {
	if m.updateGuardedFn != nil {
		return m.updateGuardedFn(db, id, expected, fields)
	}
	return 1, nil
}

func (m *mockAppointmentRepo) FindPatientsByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.User, error) {
	if m.findPatientsByDoctorIDFn != nil {
		return m.findPatientsByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockNotificationRepo struct {
	created []entity.Notification

	createFn       func(db *gorm.DB, notification *entity.Notification) error
	findByUserIDFn func(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.Notification, error)
	countUnreadFn  func(db *gorm.DB, userID uuid.UUID) (int64, error)
	markReadFn     func(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	markAllReadFn  func(db *gorm.DB, userID uuid.UUID) error
}

func (m *mockNotificationRepo) Create(db *gorm.DB, notification *entity.Notification) error {
	if m.createFn != nil {
		return m.createFn(db, notification)
	}
	m.created = append(m.created, *notification)
	return nil
}

func (m *mockNotificationRepo) FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.Notification, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(db, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepo) CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(db, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	if m.markReadFn != nil {
		return m.markReadFn(db, id, userID)
	}
	return 1, nil
}

func (m *mockNotificationRepo) MarkAllRead(db *gorm.DB, userID uuid.UUID) error {
	if m.markAllReadFn != nil {
		return m.markAllReadFn(db, userID)
	}
	return nil
}

var _ repository.NotificationRepository = (*mockNotificationRepo)(nil)

type mockConversationRepo struct {
	createFn             func(db *gorm.DB, conversation *entity.Conversation) error
	findByIDFn           func(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error)
	findByParticipantsFn func(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Conversation, error)
	findByUserIDFn       func(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error)
	touchLastMessageFn   func(db *gorm.DB, id uuid.UUID, at time.Time) error
}

func (m *mockConversationRepo) Create(db *gorm.DB, conversation *entity.Conversation) error {
	if m.createFn != nil {
		return m.createFn(db, conversation)
	}
	conversation.ID = uuid.New()
	return nil
}

func (m *mockConversationRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockConversationRepo) FindByParticipants(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Conversation, error) {
	if m.findByParticipantsFn != nil {
		return m.findByParticipantsFn(db, patientID, doctorID)
	}
	return nil, nil
}

func (m *mockConversationRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(db, userID)
	}
	return nil, nil
}

func (m *mockConversationRepo) TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error {
	if m.touchLastMessageFn != nil {
		return m.touchLastMessageFn(db, id, at)
	}
	return nil
}

var _ repository.ConversationRepository = (*mockConversationRepo)(nil)

type mockMessageRepo struct {
	created []entity.Message

	createFn               func(db *gorm.DB, message *entity.Message) error
	findByConversationIDFn func(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error)
	markConversationReadFn func(db *gorm.DB, conversationID, readerID uuid.UUID) error
	countUnreadFn          func(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error)
}

func (m *mockMessageRepo) Create(db *gorm.DB, message *entity.Message) error {
	if m.createFn != nil {
		return m.createFn(db, message)
	}
	message.ID = uuid.New()
	m.created = append(m.created, *message)
	return nil
}

func (m *mockMessageRepo) FindByConversationID(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error) {
	if m.findByConversationIDFn != nil {
		return m.findByConversationIDFn(db, conversationID)
	}
	return nil, nil
}

func (m *mockMessageRepo) MarkConversationRead(db *gorm.DB, conversationID, readerID uuid.UUID) error {
	if m.markConversationReadFn != nil {
		return m.markConversationReadFn(db, conversationID, readerID)
	}
	return nil
}

func (m *mockMessageRepo) CountUnread(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error) {
	if m.countUnreadFn != nil {
		return m.countUnreadFn(db, conversationID, readerID)
	}
	return 0, nil
}

var _ repository.MessageRepository = (*mockMessageRepo)(nil)

type mockPrescriptionRepo struct {
	createFn          func(db *gorm.DB, prescription *entity.Prescription) error
	findByIDFn        func(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	findByPatientIDFn func(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error)
	findByDoctorIDFn  func(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.Prescription, error)
}

func (m *mockPrescriptionRepo) Create(db *gorm.DB, prescription *entity.Prescription) error {
	if m.createFn != nil {
		return m.createFn(db, prescription)
	}
	prescription.ID = uuid.New()
	return nil
}

func (m *mockPrescriptionRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(db, patientID)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.Prescription, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(db, doctorID, patientID)
	}
	return nil, nil
}

var _ repository.PrescriptionRepository = (*mockPrescriptionRepo)(nil)

type mockMedicalReportRepo struct {
	createFn               func(db *gorm.DB, report *entity.MedicalReport) error
	findByIDFn             func(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error)
	findByPatientIDFn      func(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error)
	findSharedWithDoctorFn func(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.MedicalReport, error)
	deleteFn               func(db *gorm.DB, id uuid.UUID) error
}

func (m *mockMedicalReportRepo) Create(db *gorm.DB, report *entity.MedicalReport) error {
	if m.createFn != nil {
		return m.createFn(db, report)
	}
	report.ID = uuid.New()
	return nil
}

func (m *mockMedicalReportRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockMedicalReportRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(db, patientID)
	}
	return nil, nil
}

func (m *mockMedicalReportRepo) FindSharedWithDoctor(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.MedicalReport, error) {
	if m.findSharedWithDoctorFn != nil {
		return m.findSharedWithDoctorFn(db, doctorID, patientID)
	}
	return nil, nil
}

func (m *mockMedicalReportRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(db, id)
	}
	return nil
}

var _ repository.MedicalReportRepository = (*mockMedicalReportRepo)(nil)

type mockPaymentRepo struct {
	created []entity.Payment

	createFn          func(db *gorm.DB, payment *entity.Payment) error
	findByIDFn        func(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	findByPatientIDFn func(db *gorm.DB, patientID uuid.UUID) ([]entity.Payment, error)
	findByDoctorIDFn  func(db *gorm.DB, doctorID uuid.UUID) ([]entity.Payment, error)
	settleFn          func(db *gorm.DB, id uuid.UUID, method, transactionID string) (int64, error)
}

func (m *mockPaymentRepo) Create(db *gorm.DB, payment *entity.Payment) error {
	if m.createFn != nil {
		return m.createFn(db, payment)
	}
	payment.ID = uuid.New()
	m.created = append(m.created, *payment)
	return nil
}

func (m *mockPaymentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(db, id)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Payment, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(db, patientID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Payment, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(db, doctorID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) Settle(db *gorm.DB, id uuid.UUID, method, transactionID string) (int64, error) {
	if m.settleFn != nil {
		return m.settleFn(db, id, method, transactionID)
	}
	return 1, nil
}

var _ repository.PaymentRepository = (*mockPaymentRepo)(nil)

type mockAuditLogRepo struct {
	created []entity.AuditLog

	createFn  func(db *gorm.DB, log *entity.AuditLog) error
	findAllFn func(db *gorm.DB, limit int) ([]entity.AuditLog, error)
}

func (m *mockAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	if m.createFn != nil {
		return m.createFn(db, log)
	}
	m.created = append(m.created, *log)
	return nil
}

func (m *mockAuditLogRepo) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	if m.findAllFn != nil {
		return m.findAllFn(db, limit)
	}
	return nil, nil
}

func (m *mockAuditLogRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

var _ repository.AuditLogRepository = (*mockAuditLogRepo)(nil)
