package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	UpdateProfile(ctx context.Context, patient *entity.Patient) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
