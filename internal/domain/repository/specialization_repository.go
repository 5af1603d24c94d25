package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type SpecializationRepository interface {
	Create(ctx context.Context, specialization *entity.Specialization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialization, error)
	FindByKey(ctx context.Context, key string) (*entity.Specialization, error)
	FindAll(ctx context.Context) ([]entity.Specialization, error)
	Update(ctx context.Context, specialization *entity.Specialization) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type DoctorSpecializationRepository interface {
	Create(ctx context.Context, ds *entity.DoctorSpecialization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DoctorSpecialization, error)
	FindAll(ctx context.Context) ([]entity.DoctorSpecialization, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSpecialization, error)
	FindByDoctorAndSpecialization(ctx context.Context, doctorID, specializationID uuid.UUID) (*entity.DoctorSpecialization, error)
	Delete(ctx context.Context, id, doctorID uuid.UUID) (int64, error)
}
