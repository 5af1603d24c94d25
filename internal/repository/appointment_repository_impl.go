package repository

import (
	"context"
	"errors"

	"patients-care-api/internal/domain/entity"
	domainRepo "patients-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts the appointment. A live appointment already holding the same
// doctor slot makes the partial unique index uq_appointments_doctor_slot reject the insert.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Omit("Doctor", "Patient", "Clinic").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := r.db.WithContext(ctx).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "surname", "photo")
		}).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "surname", "photo", "phone_number")
		}).
		Preload("Clinic")

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
	}

	if err := query.Order("appointment_date ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MarkCompleted(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id IN ? AND appointment_status NOT IN ?", ids, []entity.AppointmentStatus{
			entity.AppointmentStatusCompleted,
			entity.AppointmentStatusCanceled,
		}).
		Update("appointment_status", entity.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}

// Cancel atomically cancels an appointment ONLY if it is not already canceled or completed.
// Returns affected rows: 1 = success, 0 = already final (prevents double-cancel race).
func (r *appointmentRepository) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND appointment_status NOT IN ?", id, []entity.AppointmentStatus{
			entity.AppointmentStatusCompleted,
			entity.AppointmentStatusCanceled,
		}).
		Update("appointment_status", entity.AppointmentStatusCanceled)
	return result.RowsAffected, result.Error
}
