package usecase

import (
	"context"
	"io"
	"strings"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/internal/infrastructure/storage"
	"patients-care-api/internal/service"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ClinicUsecase interface {
	List(ctx context.Context, q paginate.Query) (*paginate.Result[dto.ClinicResponse], error)
	Get(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	Create(ctx context.Context, actor entity.Identity, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	Update(ctx context.Context, actor entity.Identity, clinicID uuid.UUID, req *dto.ClinicRequest) error
	Delete(ctx context.Context, actor entity.Identity, clinicID uuid.UUID) error
	UploadPhoto(ctx context.Context, actor entity.Identity, clinicID uuid.UUID, file io.Reader) error
	RemovePhoto(ctx context.Context, actor entity.Identity, clinicID uuid.UUID) error
}

type clinicUsecase struct {
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	photoStorage storage.PhotoStorage
	auditService service.AuditService
}

func NewClinicUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	photoStorage storage.PhotoStorage,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		log:          log,
		clinicRepo:   clinicRepo,
		photoStorage: photoStorage,
		auditService: auditService,
	}
}

func (u *clinicUsecase) List(ctx context.Context, q paginate.Query) (*paginate.Result[dto.ClinicResponse], error) {
	clinics, err := u.clinicRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find clinics: %+v", err)
		return nil, err
	}

	matched := make([]entity.Clinic, 0, len(clinics))
	for _, c := range clinics {
		if paginate.MatchesPrefix(q.Search, c.ClinicName, c.Address.Street, c.Address.City, c.Address.PostalCode, c.PhoneNumber) {
			matched = append(matched, c)
		}
	}

	switch q.SortBy {
	case "clinicName":
		paginate.Sort(matched, q.Direction, func(a, b entity.Clinic) int {
			return strings.Compare(strings.ToLower(a.ClinicName), strings.ToLower(b.ClinicName))
		})
	case "city":
		paginate.Sort(matched, q.Direction, func(a, b entity.Clinic) int {
			return strings.Compare(strings.ToLower(a.Address.City), strings.ToLower(b.Address.City))
		})
	}

	page := paginate.Apply(matched, q)
	return &paginate.Result[dto.ClinicResponse]{
		Data:       converter.ClinicsToResponses(page.Data),
		TotalItems: page.TotalItems,
		NumOfPages: page.NumOfPages,
	}, nil
}

func (u *clinicUsecase) Get(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.findClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Create(ctx context.Context, actor entity.Identity, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	clinic := converter.ClinicFromRequest(req)
	if err := u.clinicRepo.Create(ctx, clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, actor, entity.AuditActionClinicCreate, "clinic", clinic.ID.String(), converter.ClinicToResponse(clinic))
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, actor entity.Identity, clinicID uuid.UUID, req *dto.ClinicRequest) error {
	existing, err := u.findClinic(ctx, clinicID)
	if err != nil {
		return err
	}

	clinic := converter.ClinicFromRequest(req)
	clinic.ID = clinicID
	if err := u.clinicRepo.Update(ctx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic %s: %+v", clinicID, err)
		return err
	}

	clinic.Photo = existing.Photo
	u.auditService.LogUpdate(ctx, actor, entity.AuditActionClinicUpdate, "clinic", clinicID.String(),
		converter.ClinicToResponse(existing), converter.ClinicToResponse(clinic))
	return nil
}

// Delete removes the clinic; affiliations and appointments referencing it go with it
func (u *clinicUsecase) Delete(ctx context.Context, actor entity.Identity, clinicID uuid.UUID) error {
	existing, err := u.findClinic(ctx, clinicID)
	if err != nil {
		return err
	}

	rows, err := u.clinicRepo.Delete(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to delete clinic %s: %+v", clinicID, err)
		return err
	}
	if rows == 0 {
		return ErrClinicNotFound
	}

	u.removePhotoFile(existing.Photo)
	u.auditService.LogDelete(ctx, actor, entity.AuditActionClinicDelete, "clinic", clinicID.String(), converter.ClinicToResponse(existing))
	return nil
}

func (u *clinicUsecase) UploadPhoto(ctx context.Context, actor entity.Identity, clinicID uuid.UUID, file io.Reader) error {
	existing, err := u.findClinic(ctx, clinicID)
	if err != nil {
		return err
	}

	path, err := u.photoStorage.Save(file)
	if err != nil {
		return err
	}

	if err := u.clinicRepo.UpdatePhoto(ctx, clinicID, &path); err != nil {
		u.log.Warnf("Failed to update photo of clinic %s: %+v", clinicID, err)
		u.removePhotoFile(&path)
		return err
	}

	u.removePhotoFile(existing.Photo)
	u.auditService.LogUpdate(ctx, actor, entity.AuditActionClinicUpdate, "clinic", clinicID.String(),
		map[string]interface{}{"photo": existing.Photo}, map[string]interface{}{"photo": path})
	return nil
}

func (u *clinicUsecase) RemovePhoto(ctx context.Context, actor entity.Identity, clinicID uuid.UUID) error {
	existing, err := u.findClinic(ctx, clinicID)
	if err != nil {
		return err
	}
	if existing.Photo == nil {
		return ErrNoPhoto
	}

	if err := u.clinicRepo.UpdatePhoto(ctx, clinicID, nil); err != nil {
		u.log.Warnf("Failed to remove photo of clinic %s: %+v", clinicID, err)
		return err
	}

	u.removePhotoFile(existing.Photo)
	u.auditService.LogUpdate(ctx, actor, entity.AuditActionClinicUpdate, "clinic", clinicID.String(),
		map[string]interface{}{"photo": existing.Photo}, map[string]interface{}{"photo": nil})
	return nil
}

func (u *clinicUsecase) findClinic(ctx context.Context, clinicID uuid.UUID) (*entity.Clinic, error) {
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

func (u *clinicUsecase) removePhotoFile(path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.photoStorage.Remove(*path); err != nil {
		u.log.Warnf("Failed to remove photo file %s: %+v", *path, err)
	}
}
