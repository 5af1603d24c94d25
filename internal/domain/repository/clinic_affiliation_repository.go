package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type ClinicAffiliationRepository interface {
	Create(ctx context.Context, affiliation *entity.ClinicAffiliation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClinicAffiliation, error)
	FindAll(ctx context.Context) ([]entity.ClinicAffiliation, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ClinicAffiliation, error)
	FindByDoctorAndClinic(ctx context.Context, doctorID, clinicID uuid.UUID) (*entity.ClinicAffiliation, error)
	Update(ctx context.Context, affiliation *entity.ClinicAffiliation) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
