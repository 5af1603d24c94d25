package service

import (
	"context"

	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, newValue interface{}) {
	s.record(ctx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.record(ctx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, actor entity.Identity, action string, entityName string, entityID string, oldValue interface{}) {
	s.record(ctx, actor, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// record never fails the calling operation; a lost audit row is only logged
func (s *auditService) record(ctx context.Context, actor entity.Identity, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ActorRole: actor.Role,
		Action:    action,
		Metadata:  metadata,
	}
	if actor.UserID != uuid.Nil {
		id := actor.UserID
		auditLog.ActorID = &id
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
