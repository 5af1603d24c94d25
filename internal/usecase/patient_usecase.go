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

type PatientUsecase interface {
	List(ctx context.Context, q paginate.Query) (*paginate.Result[dto.PatientResponse], error)
	Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) List(ctx context.Context, q paginate.Query) (*paginate.Result[dto.PatientResponse], error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	matched := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if paginate.MatchesPrefix(q.Search, p.Name, p.Surname, p.Name+" "+p.Surname, p.Email, p.PhoneNumber) {
			matched = append(matched, p)
		}
	}

	switch q.SortBy {
	case "name":
		paginate.Sort(matched, q.Direction, func(a, b entity.Patient) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case "surname":
		paginate.Sort(matched, q.Direction, func(a, b entity.Patient) int {
			return strings.Compare(strings.ToLower(a.Surname), strings.ToLower(b.Surname))
		})
	}

	page := paginate.Apply(matched, q)
	return &paginate.Result[dto.PatientResponse]{
		Data:       converter.PatientsToResponses(page.Data),
		TotalItems: page.TotalItems,
		NumOfPages: page.NumOfPages,
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}
