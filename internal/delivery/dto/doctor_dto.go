package dto

import (
	"time"

	"github.com/google/uuid"
)

type DoctorResponse struct {
	ID                    uuid.UUID                      `json:"id"`
	Name                  string                         `json:"name"`
	Surname               string                         `json:"surname"`
	Email                 string                         `json:"email"`
	Photo                 *string                        `json:"photo"`
	ProfessionalStatement *string                        `json:"professionalStatement"`
	DoctorSpecializations []DoctorSpecializationResponse `json:"doctorSpecializations"`
	ClinicAffiliations    []ClinicAffiliationResponse    `json:"clinicAffiliations"`
	CreatedAt             time.Time                      `json:"createdAt"`
}

// PersonSummary is the denormalized doctor or patient shown next to an appointment
type PersonSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Photo       *string   `json:"photo"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
}
