package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type WorkingTimeRequest struct {
	WeekDay   string `json:"weekDay" validate:"required,max=20"`
	StartTime string `json:"startTime" validate:"required,clock"`
	StopTime  string `json:"stopTime" validate:"required,clock"`
}

type ClinicRequest struct {
	ClinicName  string               `json:"clinicName" validate:"required,max=255"`
	Address     AddressRequest       `json:"address" validate:"required"`
	PhoneNumber string               `json:"phoneNumber" validate:"required,max=20"`
	WorkingTime []WorkingTimeRequest `json:"workingTime" validate:"omitempty,dive"`
}

// Response DTOs

type WorkingTimeResponse struct {
	WeekDay   string `json:"weekDay"`
	StartTime string `json:"startTime"`
	StopTime  string `json:"stopTime"`
}

type ClinicResponse struct {
	ID          uuid.UUID             `json:"id"`
	ClinicName  string                `json:"clinicName"`
	Address     AddressResponse       `json:"address"`
	PhoneNumber string                `json:"phoneNumber"`
	WorkingTime []WorkingTimeResponse `json:"workingTime"`
	Photo       *string               `json:"photo"`
}
