package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateTimeLayout is the wire format of appointment dates, minute precision
const DateTimeLayout = "2006-01-02 15:04"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID            uuid.UUID       `json:"doctorId" validate:"required"`
	ClinicID            uuid.UUID       `json:"clinicId" validate:"required"`
	ClinicAffiliationID uuid.UUID       `json:"clinicAffiliationId" validate:"required"`
	AppointmentDate     string          `json:"appointmentDate" validate:"required"`
	ConsultationFee     decimal.Decimal `json:"consultationFee"`
	AppointmentAddress  *AddressRequest `json:"appointmentAddress" validate:"required"`
	AppointmentStatus   string          `json:"appointmentStatus" validate:"required,oneof=active postponed"`
	TimePerPatient      int             `json:"timePerPatient" validate:"required,min=1,max=480"`
}

// Response DTOs

type ClinicSummary struct {
	ID         uuid.UUID `json:"id"`
	ClinicName string    `json:"clinicName"`
	Photo      *string   `json:"photo"`
}

type AppointmentResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PatientID           uuid.UUID       `json:"patientId"`
	DoctorID            uuid.UUID       `json:"doctorId"`
	ClinicID            uuid.UUID       `json:"clinicId"`
	ClinicAffiliationID uuid.UUID       `json:"clinicAffiliationId"`
	AppointmentDate     string          `json:"appointmentDate"`
	EstimatedEndDate    string          `json:"estimatedEndDate"`
	AppointmentAddress  AddressResponse `json:"appointmentAddress"`
	AppointmentStatus   string          `json:"appointmentStatus"`
	ConsultationFee     decimal.Decimal `json:"consultationFee"`
	DoctorInfo          *PersonSummary  `json:"doctorInfo,omitempty"`
	PatientInfo         *PersonSummary  `json:"patientInfo,omitempty"`
	ClinicInfo          *ClinicSummary  `json:"clinicInfo,omitempty"`
}
