package repository

import (
	"context"
	"errors"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type specializationRepository struct {
	db *gorm.DB
}

func NewSpecializationRepository(db *gorm.DB) domainRepo.SpecializationRepository {
	return &specializationRepository{db: db}
}

func (r *specializationRepository) Create(ctx context.Context, specialization *entity.Specialization) error {
	return r.db.WithContext(ctx).Create(specialization).Error
}

func (r *specializationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindByKey(ctx context.Context, key string) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := r.db.WithContext(ctx).Where("specialization_key = ?", key).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindAll(ctx context.Context) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	if err := r.db.WithContext(ctx).Order("specialization_key ASC").Find(&specializations).Error; err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) Update(ctx context.Context, specialization *entity.Specialization) error {
	return r.db.WithContext(ctx).Save(specialization).Error
}

func (r *specializationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Specialization{})
	return result.RowsAffected, result.Error
}

type doctorSpecializationRepository struct {
	db *gorm.DB
}

func NewDoctorSpecializationRepository(db *gorm.DB) domainRepo.DoctorSpecializationRepository {
	return &doctorSpecializationRepository{db: db}
}

func (r *doctorSpecializationRepository) Create(ctx context.Context, ds *entity.DoctorSpecialization) error {
	return r.db.WithContext(ctx).Omit("Specialization").Create(ds).Error
}

func (r *doctorSpecializationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DoctorSpecialization, error) {
	var ds entity.DoctorSpecialization
	err := r.db.WithContext(ctx).Preload("Specialization").Where("id = ?", id).First(&ds).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ds, nil
}

func (r *doctorSpecializationRepository) FindAll(ctx context.Context) ([]entity.DoctorSpecialization, error) {
	var list []entity.DoctorSpecialization
	if err := r.db.WithContext(ctx).Preload("Specialization").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *doctorSpecializationRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSpecialization, error) {
	var list []entity.DoctorSpecialization
	err := r.db.WithContext(ctx).Preload("Specialization").Where("doctor_id = ?", doctorID).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *doctorSpecializationRepository) FindByDoctorAndSpecialization(ctx context.Context, doctorID, specializationID uuid.UUID) (*entity.DoctorSpecialization, error) {
	var ds entity.DoctorSpecialization
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND specialization_id = ?", doctorID, specializationID).
		First(&ds).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ds, nil
}

// Delete removes the join row only when it belongs to doctorID
func (r *doctorSpecializationRepository) Delete(ctx context.Context, id, doctorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.DoctorSpecialization{})
	return result.RowsAffected, result.Error
}
