package usecase

import (
	"context"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/pkg/paginate"

	"github.com/sirupsen/logrus"
)

// AuditLogUsecase exposes an account's own activity trail
type AuditLogUsecase interface {
	ListMine(ctx context.Context, actor entity.Identity, q paginate.Query) (*paginate.Result[dto.AuditLogResponse], error)
	GetMine(ctx context.Context, actor entity.Identity, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// ListMine pages the actor's entries newest first; search matches the action prefix
func (u *auditLogUsecase) ListMine(ctx context.Context, actor entity.Identity, q paginate.Query) (*paginate.Result[dto.AuditLogResponse], error) {
	logs, err := u.auditLogRepo.FindByActor(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find audit logs of %s: %+v", actor.UserID, err)
		return nil, err
	}

	matched := make([]entity.AuditLog, 0, len(logs))
	for _, l := range logs {
		if paginate.MatchesPrefix(q.Search, l.Action) {
			matched = append(matched, l)
		}
	}

	page := paginate.Apply(matched, q)
	return &paginate.Result[dto.AuditLogResponse]{
		Data:       converter.AuditLogsToResponses(page.Data),
		TotalItems: page.TotalItems,
		NumOfPages: page.NumOfPages,
	}, nil
}

// GetMine hides entries of other accounts behind the same not-found error
func (u *auditLogUsecase) GetMine(ctx context.Context, actor entity.Identity, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil || auditLog.ActorID == nil || *auditLog.ActorID != actor.UserID {
		return nil, ErrAuditLogNotFound
	}
	return converter.AuditLogToResponse(auditLog), nil
}
