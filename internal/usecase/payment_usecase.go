package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

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
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentForbidden  = errors.New("not allowed to act on this payment")
	ErrPaymentNotPending = errors.New("payment is not pending")
)

type PaymentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	audit       *service.AuditService
}

func NewPaymentUsecase(db *gorm.DB, log *logrus.Logger, paymentRepo repository.PaymentRepository, audit *service.AuditService) *PaymentUsecase {
	return &PaymentUsecase{
		db:          db,
		log:         log,
		paymentRepo: paymentRepo,
		audit:       audit,
	}
}

func (u *PaymentUsecase) List(ctx context.Context, actor *entity.User) (*dto.PaymentListResponse, error) {
	var (
		payments []entity.Payment
		err      error
	)
	switch {
	case actor.IsPatient():
		payments, err = u.paymentRepo.FindByPatientID(u.db, actor.ID)
	case actor.IsDoctor():
		payments, err = u.paymentRepo.FindByDoctorID(u.db, actor.ID)
	default:
		return nil, ErrPaymentForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return converter.PaymentsToListResponse(payments), nil
}

// Settle marks a pending payment as paid. Settlement is simulated: a
// transaction id is generated locally, no processor is involved. Only
// the paying patient or an admin may settle, and only while the payment
// is pending.
func (u *PaymentUsecase) Settle(ctx context.Context, actor *entity.User, id uuid.UUID, method string) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to load payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if !actor.IsAdmin() && payment.PatientID != actor.ID {
		return nil, ErrPaymentForbidden
	}

	transactionID, err := generateTransactionID()
	if err != nil {
		u.log.Warnf("Failed to generate transaction id: %+v", err)
		return nil, err
	}

	rows, err := u.paymentRepo.Settle(u.db, id, method, transactionID)
	if err != nil {
		u.log.Warnf("Failed to settle payment: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPaymentNotPending
	}

	u.audit.Record(&actor.ID, entity.AuditActionPaymentSettle, entity.JSON{
		"payment_id":     id.String(),
		"transaction_id": transactionID,
	})

	settled, err := u.paymentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to reload payment: %+v", err)
		return nil, err
	}
	if settled == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(settled), nil
}

func generateTransactionID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "TXN-" + strings.ToUpper(hex.EncodeToString(bytes)), nil
}
