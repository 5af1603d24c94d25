package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountRepository looks accounts up across the doctor and patient tables.
// A nil account with nil error means no match.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (entity.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (entity.Account, error)
}
