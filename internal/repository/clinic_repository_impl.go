package repository

import (
	"context"
	"errors"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct {
	db *gorm.DB
}

func NewClinicRepository(db *gorm.DB) domainRepo.ClinicRepository {
	return &clinicRepository{db: db}
}

func (r *clinicRepository) Create(ctx context.Context, clinic *entity.Clinic) error {
	return r.db.WithContext(ctx).Create(clinic).Error
}

func (r *clinicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAll(ctx context.Context) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	if err := r.db.WithContext(ctx).Order("clinic_name ASC").Find(&clinics).Error; err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) Update(ctx context.Context, clinic *entity.Clinic) error {
	return r.db.WithContext(ctx).
		Model(&entity.Clinic{ID: clinic.ID}).
		Select("clinic_name", "address_street", "address_city", "address_postal_code", "phone_number", "working_time").
		Updates(clinic).Error
}

func (r *clinicRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error {
	return r.db.WithContext(ctx).Model(&entity.Clinic{}).Where("id = ?", id).Update("photo", photo).Error
}

func (r *clinicRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, result.Error
}
