package repository

import (
	"context"
	"errors"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Omit("Specializations", "ClinicAffiliations").Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Specializations.Specialization").
		Preload("ClinicAffiliations.Clinic").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll returns doctors with their specializations and affiliations loaded.
// When filter lists specialization ids, only doctors holding at least one of them are returned.
func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := r.db.WithContext(ctx).Model(&entity.Doctor{})

	if filter != nil && len(filter.SpecializationIDs) > 0 {
		query = query.Where("id IN (?)",
			r.db.Model(&entity.DoctorSpecialization{}).
				Select("doctor_id").
				Where("specialization_id IN ?", filter.SpecializationIDs),
		)
	}

	err := query.
		Preload("Specializations.Specialization").
		Preload("ClinicAffiliations.Clinic").
		Order("surname ASC, name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// UpdateProfile writes the editable profile columns only; the password hash is never touched here.
func (r *doctorRepository) UpdateProfile(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).
		Model(&entity.Doctor{ID: doctor.ID}).
		Select("name", "surname", "email", "professional_statement").
		Updates(doctor).Error
}

func (r *doctorRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *doctorRepository) UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error {
	return r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("id = ?", id).Update("photo", photo).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{}).Error
}
