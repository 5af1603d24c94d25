package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type ClinicRepository interface {
	Create(ctx context.Context, clinic *entity.Clinic) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error)
	FindAll(ctx context.Context) ([]entity.Clinic, error)
	Update(ctx context.Context, clinic *entity.Clinic) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
