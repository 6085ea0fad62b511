package usecase

import (
	"context"
	"errors"

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
	ErrSelfModification = errors.New("admins cannot change their own account status")
	ErrUserNotFound     = errors.New("user not found")
)

const auditListLimit = 100

type AdminUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	tx                Transactor
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	notificationRepo  repository.NotificationRepository
	auditLogRepo      repository.AuditLogRepository
	sessions          service.SessionStore
	audit             *service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	tx Transactor,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	notificationRepo repository.NotificationRepository,
	auditLogRepo repository.AuditLogRepository,
	sessions service.SessionStore,
	audit *service.AuditService,
) *AdminUsecase {
	return &AdminUsecase{
		db:                db,
		log:               log,
		tx:                tx,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		notificationRepo:  notificationRepo,
		auditLogRepo:      auditLogRepo,
		sessions:          sessions,
		audit:             audit,
	}
}

func (u *AdminUsecase) ListUsers(ctx context.Context, filter entity.UserFilter) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// SetUserActive activates or deactivates an account. Admins cannot act
// on themselves. Deactivation revokes every live session, so the user
// drops out immediately, not at token expiry.
func (u *AdminUsecase) SetUserActive(ctx context.Context, admin *entity.User, targetID uuid.UUID, active bool) error {
	if admin.ID == targetID {
		return ErrSelfModification
	}

	rows, err := u.userRepo.SetActive(u.db, targetID, active)
	if err != nil {
		u.log.Warnf("Failed to set user active state: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	if !active {
		if err := u.sessions.DeleteAll(ctx, targetID); err != nil {
			u.log.Warnf("Failed to revoke sessions for deactivated user: %+v", err)
		}
	}

	u.audit.Record(&admin.ID, entity.AuditActionAdminUserUpdate, entity.JSON{
		"target_user_id": targetID.String(),
		"is_active":      active,
	})
	return nil
}

// SetDoctorVerified flips the directory gate on a doctor profile and
// tells the doctor, in one transaction.
func (u *AdminUsecase) SetDoctorVerified(ctx context.Context, admin *entity.User, doctorUserID uuid.UUID, verified bool) error {
	err := u.tx.InTx(ctx, func(tx *gorm.DB) error {
		rows, err := u.doctorProfileRepo.SetVerified(tx, doctorUserID, verified)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrDoctorNotFound
		}

		title := "Profile Verified"
		message := "Your profile has been verified. Patients can now find and book you."
		if !verified {
			title = "Verification Revoked"
			message = "Your profile verification has been revoked."
		}
		return u.notificationRepo.Create(tx, &entity.Notification{
			UserID:  doctorUserID,
			Title:   title,
			Message: message,
			Type:    entity.NotificationTypeAccount,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrDoctorNotFound) {
			u.log.Warnf("Failed to set doctor verification: %+v", err)
		}
		return err
	}

	u.audit.Record(&admin.ID, entity.AuditActionAdminDoctorVerify, entity.JSON{
		"doctor_user_id": doctorUserID.String(),
		"is_verified":    verified,
	})
	return nil
}

func (u *AdminUsecase) ListAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > auditListLimit {
		limit = auditListLimit
	}
	logs, err := u.auditLogRepo.FindAll(u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return converter.AuditLogsToListResponse(logs), nil
}
