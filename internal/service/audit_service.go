package service

import (
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes best-effort audit trail rows. Failures are logged,
// never propagated; an audit miss must not fail the user action.
type AuditService struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (s *AuditService) Record(userID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditLogRepo.Create(s.db, auditLog); err != nil {
		s.log.Warnf("Failed to write audit log for action %s: %+v", action, err)
	}
}
