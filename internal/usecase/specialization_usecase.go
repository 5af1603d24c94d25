package usecase

import (
	"context"
	"strings"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SpecializationUsecase interface {
	List(ctx context.Context) ([]dto.SpecializationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error)
	Create(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type specializationUsecase struct {
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
}

func NewSpecializationUsecase(log *logrus.Logger, specializationRepo repository.SpecializationRepository) SpecializationUsecase {
	return &specializationUsecase{
		log:                log,
		specializationRepo: specializationRepo,
	}
}

func (u *specializationUsecase) List(ctx context.Context) ([]dto.SpecializationResponse, error) {
	specializations, err := u.specializationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}
	return converter.SpecializationsToResponses(specializations), nil
}

func (u *specializationUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error) {
	specialization, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) Create(ctx context.Context, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	key := strings.TrimSpace(req.SpecializationKey)
	if key == "" {
		return nil, ErrBadObjectStructure
	}

	existing, err := u.specializationRepo.FindByKey(ctx, key)
	if err != nil {
		u.log.Warnf("Failed to find specialization by key: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpecializationExists
	}

	specialization := &entity.Specialization{SpecializationKey: key}
	if err := u.specializationRepo.Create(ctx, specialization); err != nil {
		if isDuplicateKeyError(err, "uq_specializations_key") {
			return nil, ErrSpecializationExists
		}
		u.log.Warnf("Failed to create specialization: %+v", err)
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.SpecializationRequest) error {
	key := strings.TrimSpace(req.SpecializationKey)
	if key == "" {
		return ErrBadObjectStructure
	}

	specialization, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if key != specialization.SpecializationKey {
		existing, err := u.specializationRepo.FindByKey(ctx, key)
		if err != nil {
			u.log.Warnf("Failed to find specialization by key: %+v", err)
			return err
		}
		if existing != nil {
			return ErrSpecializationExists
		}
	}

	specialization.SpecializationKey = key
	if err := u.specializationRepo.Update(ctx, specialization); err != nil {
		if isDuplicateKeyError(err, "uq_specializations_key") {
			return ErrSpecializationExists
		}
		u.log.Warnf("Failed to update specialization %s: %+v", id, err)
		return err
	}
	return nil
}

func (u *specializationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.specializationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete specialization %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrSpecializationMissing
	}
	return nil
}

func (u *specializationUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Specialization, error) {
	specialization, err := u.specializationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialization by ID: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationMissing
	}
	return specialization, nil
}
