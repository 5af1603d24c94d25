package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	UpdateProfile(ctx context.Context, doctor *entity.Doctor) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
