package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// FindByActor returns the entries recorded for actorID, newest first
	FindByActor(ctx context.Context, actorID uuid.UUID) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
