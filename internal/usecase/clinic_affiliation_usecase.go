package usecase

import (
	"context"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ClinicAffiliationUsecase interface {
	List(ctx context.Context) ([]dto.ClinicAffiliationResponse, error)
	ListMine(ctx context.Context, actor entity.Identity) ([]dto.ClinicAffiliationResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.ClinicAffiliationResponse, error)
	Get(ctx context.Context, affiliationID uuid.UUID) (*dto.ClinicAffiliationResponse, error)
	Create(ctx context.Context, actor entity.Identity, req *dto.ClinicAffiliationRequest) (*dto.ClinicAffiliationResponse, error)
	Update(ctx context.Context, actor entity.Identity, affiliationID uuid.UUID, req *dto.ClinicAffiliationRequest) error
	Delete(ctx context.Context, actor entity.Identity, affiliationID uuid.UUID) error
}

type clinicAffiliationUsecase struct {
	log             *logrus.Logger
	affiliationRepo repository.ClinicAffiliationRepository
	clinicRepo      repository.ClinicRepository
	auditService    service.AuditService
}

func NewClinicAffiliationUsecase(
	log *logrus.Logger,
	affiliationRepo repository.ClinicAffiliationRepository,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
) ClinicAffiliationUsecase {
	return &clinicAffiliationUsecase{
		log:             log,
		affiliationRepo: affiliationRepo,
		clinicRepo:      clinicRepo,
		auditService:    auditService,
	}
}

func (u *clinicAffiliationUsecase) List(ctx context.Context) ([]dto.ClinicAffiliationResponse, error) {
	affiliations, err := u.affiliationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find clinic affiliations: %+v", err)
		return nil, err
	}
	return converter.ClinicAffiliationsToResponses(affiliations), nil
}

func (u *clinicAffiliationUsecase) ListMine(ctx context.Context, actor entity.Identity) ([]dto.ClinicAffiliationResponse, error) {
	return u.ListByDoctor(ctx, actor.UserID)
}

func (u *clinicAffiliationUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.ClinicAffiliationResponse, error) {
	affiliations, err := u.affiliationRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find clinic affiliations of doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return converter.ClinicAffiliationsToResponses(affiliations), nil
}

func (u *clinicAffiliationUsecase) Get(ctx context.Context, affiliationID uuid.UUID) (*dto.ClinicAffiliationResponse, error) {
	affiliation, err := u.findAffiliation(ctx, affiliationID)
	if err != nil {
		return nil, err
	}
	return converter.ClinicAffiliationToResponse(affiliation), nil
}

// Create affiliates the calling doctor with a clinic; a doctor holds at most one
// affiliation per clinic.
func (u *clinicAffiliationUsecase) Create(ctx context.Context, actor entity.Identity, req *dto.ClinicAffiliationRequest) (*dto.ClinicAffiliationResponse, error) {
	if !req.ConsultationFee.GreaterThan(decimal.Zero) {
		return nil, ErrBadObjectStructure
	}

	clinic, err := u.findClinic(ctx, req.ClinicID)
	if err != nil {
		return nil, err
	}

	existing, err := u.affiliationRepo.FindByDoctorAndClinic(ctx, actor.UserID, req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic affiliation: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAffiliationExists
	}

	affiliation := &entity.ClinicAffiliation{DoctorID: actor.UserID}
	applyAffiliationRequest(affiliation, req, clinic)

	if err := u.affiliationRepo.Create(ctx, affiliation); err != nil {
		if isDuplicateKeyError(err, "uq_clinic_affiliations_doctor_clinic") {
			return nil, ErrAffiliationExists
		}
		if isForeignKeyError(err, "doctor_id") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create clinic affiliation: %+v", err)
		return nil, err
	}
	affiliation.Clinic = clinic

	resp := converter.ClinicAffiliationToResponse(affiliation)
	u.auditService.LogCreate(ctx, actor, entity.AuditActionAffiliationCreate, "clinic_affiliation", affiliation.ID.String(), resp)
	return resp, nil
}

func (u *clinicAffiliationUsecase) Update(ctx context.Context, actor entity.Identity, affiliationID uuid.UUID, req *dto.ClinicAffiliationRequest) error {
	if !req.ConsultationFee.GreaterThan(decimal.Zero) {
		return ErrBadObjectStructure
	}

	affiliation, err := u.findAffiliation(ctx, affiliationID)
	if err != nil {
		return err
	}
	if !affiliation.IsOwnedBy(actor.UserID) {
		return ErrNoActionAllowed
	}
	before := converter.ClinicAffiliationToResponse(affiliation)

	clinic := affiliation.Clinic
	if clinic == nil || req.ClinicID != affiliation.ClinicID {
		clinic, err = u.findClinic(ctx, req.ClinicID)
		if err != nil {
			return err
		}
	}
	if req.ClinicID != affiliation.ClinicID {
		other, err := u.affiliationRepo.FindByDoctorAndClinic(ctx, actor.UserID, req.ClinicID)
		if err != nil {
			u.log.Warnf("Failed to find clinic affiliation: %+v", err)
			return err
		}
		if other != nil {
			return ErrAffiliationExists
		}
	}

	applyAffiliationRequest(affiliation, req, clinic)
	affiliation.Clinic = nil

	if err := u.affiliationRepo.Update(ctx, affiliation); err != nil {
		if isDuplicateKeyError(err, "uq_clinic_affiliations_doctor_clinic") {
			return ErrAffiliationExists
		}
		u.log.Warnf("Failed to update clinic affiliation %s: %+v", affiliationID, err)
		return err
	}

	u.auditService.LogUpdate(ctx, actor, entity.AuditActionAffiliationUpdate, "clinic_affiliation", affiliationID.String(),
		before, converter.ClinicAffiliationToResponse(affiliation))
	return nil
}

func (u *clinicAffiliationUsecase) Delete(ctx context.Context, actor entity.Identity, affiliationID uuid.UUID) error {
	affiliation, err := u.findAffiliation(ctx, affiliationID)
	if err != nil {
		return err
	}
	if !affiliation.IsOwnedBy(actor.UserID) {
		return ErrNoActionAllowed
	}

	rows, err := u.affiliationRepo.Delete(ctx, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to delete clinic affiliation %s: %+v", affiliationID, err)
		return err
	}
	if rows == 0 {
		return ErrAffiliationNotFound
	}

	u.auditService.LogDelete(ctx, actor, entity.AuditActionAffiliationDelete, "clinic_affiliation", affiliationID.String(),
		converter.ClinicAffiliationToResponse(affiliation))
	return nil
}

func (u *clinicAffiliationUsecase) findAffiliation(ctx context.Context, affiliationID uuid.UUID) (*entity.ClinicAffiliation, error) {
	affiliation, err := u.affiliationRepo.FindByID(ctx, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to find clinic affiliation by ID: %+v", err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}
	return affiliation, nil
}

func (u *clinicAffiliationUsecase) findClinic(ctx context.Context, clinicID uuid.UUID) (*entity.Clinic, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic by ID: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return clinic, nil
}

// applyAffiliationRequest copies the editable terms onto a; availability defaults to true
func applyAffiliationRequest(a *entity.ClinicAffiliation, req *dto.ClinicAffiliationRequest, clinic *entity.Clinic) {
	a.ClinicID = req.ClinicID
	a.ClinicName = req.ClinicName
	if a.ClinicName == "" && clinic != nil {
		a.ClinicName = clinic.ClinicName
	}
	a.WorkingTime = converter.WorkingTimesFromRequest(req.WorkingTime)
	a.Available = true
	if req.Available != nil {
		a.Available = *req.Available
	}
	a.ReasonOfAbsence = req.ReasonOfAbsence
	a.AbsenceFrom, a.AbsenceTo = nil, nil
	if req.AbsenceTime != nil {
		a.AbsenceFrom = req.AbsenceTime.From
		a.AbsenceTo = req.AbsenceTime.To
	}
	a.ConsultationFee = req.ConsultationFee
	a.TimePerPatient = req.TimePerPatient
}
