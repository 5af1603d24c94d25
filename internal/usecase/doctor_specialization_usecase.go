package usecase

import (
	"context"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorSpecializationUsecase interface {
	List(ctx context.Context) ([]dto.DoctorSpecializationResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.DoctorSpecializationResponse, error)
	Create(ctx context.Context, actor entity.Identity, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error)
	Delete(ctx context.Context, actor entity.Identity, id uuid.UUID) error
}

type doctorSpecializationUsecase struct {
	log                      *logrus.Logger
	doctorSpecializationRepo repository.DoctorSpecializationRepository
	specializationRepo       repository.SpecializationRepository
}

func NewDoctorSpecializationUsecase(
	log *logrus.Logger,
	doctorSpecializationRepo repository.DoctorSpecializationRepository,
	specializationRepo repository.SpecializationRepository,
) DoctorSpecializationUsecase {
	return &doctorSpecializationUsecase{
		log:                      log,
		doctorSpecializationRepo: doctorSpecializationRepo,
		specializationRepo:       specializationRepo,
	}
}

func (u *doctorSpecializationUsecase) List(ctx context.Context) ([]dto.DoctorSpecializationResponse, error) {
	list, err := u.doctorSpecializationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctor specializations: %+v", err)
		return nil, err
	}
	return converter.DoctorSpecializationsToResponses(list), nil
}

func (u *doctorSpecializationUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.DoctorSpecializationResponse, error) {
	list, err := u.doctorSpecializationRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find specializations of doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return converter.DoctorSpecializationsToResponses(list), nil
}

func (u *doctorSpecializationUsecase) Create(ctx context.Context, actor entity.Identity, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error) {
	specialization, err := u.specializationRepo.FindByID(ctx, req.SpecializationID)
	if err != nil {
		u.log.Warnf("Failed to find specialization by ID: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationMissing
	}

	existing, err := u.doctorSpecializationRepo.FindByDoctorAndSpecialization(ctx, actor.UserID, req.SpecializationID)
	if err != nil {
		u.log.Warnf("Failed to find doctor specialization: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDoctorSpecExists
	}

	ds := &entity.DoctorSpecialization{
		DoctorID:         actor.UserID,
		SpecializationID: req.SpecializationID,
	}
	if err := u.doctorSpecializationRepo.Create(ctx, ds); err != nil {
		if isDuplicateKeyError(err, "uq_doctor_specializations_pair") {
			return nil, ErrDoctorSpecExists
		}
		if isForeignKeyError(err, "doctor_id") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create doctor specialization: %+v", err)
		return nil, err
	}
	ds.Specialization = specialization
	return converter.DoctorSpecializationToResponse(ds), nil
}

// Delete removes one of the calling doctor's specializations; other doctors' rows are never matched
func (u *doctorSpecializationUsecase) Delete(ctx context.Context, actor entity.Identity, id uuid.UUID) error {
	rows, err := u.doctorSpecializationRepo.Delete(ctx, id, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor specialization %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorSpecNotFound
	}
	return nil
}
