package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AbsenceTime struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// ClinicAffiliationRequest is shared by create and update; ClinicName defaults to the clinic's own name
type ClinicAffiliationRequest struct {
	ClinicID        uuid.UUID            `json:"clinicId" validate:"required"`
	ClinicName      string               `json:"clinicName" validate:"omitempty,max=255"`
	WorkingTime     []WorkingTimeRequest `json:"workingTime" validate:"required,dive"`
	Available       *bool                `json:"available"`
	ReasonOfAbsence *string              `json:"reasonOfAbsence" validate:"omitempty,max=500"`
	AbsenceTime     *AbsenceTime         `json:"absenceTime"`
	ConsultationFee decimal.Decimal      `json:"consultationFee"`
	TimePerPatient  int                  `json:"timePerPatient" validate:"required,min=1,max=480"`
}

// Response DTOs

type ClinicAffiliationResponse struct {
	ID              uuid.UUID             `json:"id"`
	DoctorID        uuid.UUID             `json:"doctorId"`
	ClinicID        uuid.UUID             `json:"clinicId"`
	ClinicName      string                `json:"clinicName"`
	WorkingTime     []WorkingTimeResponse `json:"workingTime"`
	Available       bool                  `json:"available"`
	ReasonOfAbsence *string               `json:"reasonOfAbsence"`
	AbsenceTime     *AbsenceTime          `json:"absenceTime"`
	ConsultationFee decimal.Decimal       `json:"consultationFee"`
	TimePerPatient  int                   `json:"timePerPatient"`
	ClinicInfo      *ClinicResponse       `json:"clinicInfo,omitempty"`
}
