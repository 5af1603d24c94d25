package repository

import (
	"context"
	"errors"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicAffiliationRepository struct {
	db *gorm.DB
}

func NewClinicAffiliationRepository(db *gorm.DB) domainRepo.ClinicAffiliationRepository {
	return &clinicAffiliationRepository{db: db}
}

func (r *clinicAffiliationRepository) Create(ctx context.Context, affiliation *entity.ClinicAffiliation) error {
	return r.db.WithContext(ctx).Omit("Clinic").Create(affiliation).Error
}

func (r *clinicAffiliationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClinicAffiliation, error) {
	var affiliation entity.ClinicAffiliation
	err := r.db.WithContext(ctx).Preload("Clinic").Where("id = ?", id).First(&affiliation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *clinicAffiliationRepository) FindAll(ctx context.Context) ([]entity.ClinicAffiliation, error) {
	var affiliations []entity.ClinicAffiliation
	if err := r.db.WithContext(ctx).Order("clinic_name ASC").Find(&affiliations).Error; err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *clinicAffiliationRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ClinicAffiliation, error) {
	var affiliations []entity.ClinicAffiliation
	err := r.db.WithContext(ctx).
		Preload("Clinic").
		Where("doctor_id = ?", doctorID).
		Order("clinic_name ASC").
		Find(&affiliations).Error
	if err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *clinicAffiliationRepository) FindByDoctorAndClinic(ctx context.Context, doctorID, clinicID uuid.UUID) (*entity.ClinicAffiliation, error) {
	var affiliation entity.ClinicAffiliation
	err := r.db.WithContext(ctx).Where("doctor_id = ? AND clinic_id = ?", doctorID, clinicID).First(&affiliation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *clinicAffiliationRepository) Update(ctx context.Context, affiliation *entity.ClinicAffiliation) error {
	return r.db.WithContext(ctx).Omit("Clinic").Save(affiliation).Error
}

func (r *clinicAffiliationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ClinicAffiliation{})
	return result.RowsAffected, result.Error
}
