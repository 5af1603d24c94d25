package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
)

// accountRepository resolves an account by searching doctors first, then patients.
// The role is decided by which table matched.
type accountRepository struct {
	doctorRepo  domainRepo.DoctorRepository
	patientRepo domainRepo.PatientRepository
}

func NewAccountRepository(doctorRepo domainRepo.DoctorRepository, patientRepo domainRepo.PatientRepository) domainRepo.AccountRepository {
	return &accountRepository{
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (entity.Account, error) {
	doctor, err := r.doctorRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		return doctor, nil
	}

	patient, err := r.patientRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}
	return nil, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	doctor, err := r.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		return doctor, nil
	}

	patient, err := r.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}
	return nil, nil
}
