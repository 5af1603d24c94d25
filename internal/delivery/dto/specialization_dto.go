package dto

import (
	"github.com/google/uuid"
)

type SpecializationRequest struct {
	SpecializationKey string `json:"specializationKey" validate:"required,max=100"`
}

type DoctorSpecializationRequest struct {
	SpecializationID uuid.UUID `json:"specializationId" validate:"required"`
}

type SpecializationResponse struct {
	ID                uuid.UUID `json:"id"`
	SpecializationKey string    `json:"specializationKey"`
}

type DoctorSpecializationResponse struct {
	ID               uuid.UUID               `json:"id"`
	DoctorID         uuid.UUID               `json:"doctorId"`
	SpecializationID uuid.UUID               `json:"specializationId"`
	Specialization   *SpecializationResponse `json:"specialization,omitempty"`
}
