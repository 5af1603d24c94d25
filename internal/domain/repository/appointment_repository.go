package repository

import (
	"context"

	"patients-care-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// MarkCompleted moves the given non-final appointments to completed and
	// returns how many rows changed.
	MarkCompleted(ctx context.Context, ids []uuid.UUID) (int64, error)
	// Cancel cancels the appointment only if it is not already final.
	Cancel(ctx context.Context, id uuid.UUID) (int64, error)
}
