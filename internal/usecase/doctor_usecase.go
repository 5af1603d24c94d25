package usecase

import (
	"context"
	"strings"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	List(ctx context.Context, q paginate.Query, specializationIDs []uuid.UUID) (*paginate.Result[dto.DoctorResponse], error)
	Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// List returns the public doctor directory. With specializationIDs set, only doctors
// holding at least one of them are listed.
func (u *doctorUsecase) List(ctx context.Context, q paginate.Query, specializationIDs []uuid.UUID) (*paginate.Result[dto.DoctorResponse], error) {
	doctors, err := u.doctorRepo.FindAll(ctx, &entity.DoctorFilter{SpecializationIDs: specializationIDs})
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	matched := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if paginate.MatchesPrefix(q.Search, d.Name, d.Surname, d.Name+" "+d.Surname) {
			matched = append(matched, d)
		}
	}

	switch q.SortBy {
	case "name":
		paginate.Sort(matched, q.Direction, func(a, b entity.Doctor) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case "surname":
		paginate.Sort(matched, q.Direction, func(a, b entity.Doctor) int {
			return strings.Compare(strings.ToLower(a.Surname), strings.ToLower(b.Surname))
		})
	}

	page := paginate.Apply(matched, q)
	return &paginate.Result[dto.DoctorResponse]{
		Data:       converter.DoctorsToResponses(page.Data),
		TotalItems: page.TotalItems,
		NumOfPages: page.NumOfPages,
	}, nil
}

func (u *doctorUsecase) Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// ParseSpecializationIDs splits an underscore-separated id list, skipping blanks
func ParseSpecializationIDs(raw string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, "_") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, ErrBadObjectStructure.WithDetail(part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
