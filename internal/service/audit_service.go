package service

import (
	"context"

	"sante-backend/internal/domain/entity"
	"sante-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService is the audit sink the business workflows write through.
// Implementations are fire-and-forget: a failed write is logged server-side
// and never fails the operation that triggered it.
type AuditService interface {
	Record(ctx context.Context, actorID *uuid.UUID, action, ipAddress, description string)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, actorID *uuid.UUID, action, ipAddress, description string) {
	auditLog := &entity.AuditLog{
		UserID:      actorID,
		Action:      action,
		IPAddress:   ipAddress,
		Description: description,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to write audit log for action %s: %+v", action, err)
	}
}
