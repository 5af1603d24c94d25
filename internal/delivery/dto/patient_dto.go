package dto

import (
	"time"

	"github.com/google/uuid"
)

type PatientResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Surname     string          `json:"surname"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     AddressResponse `json:"address"`
	Photo       *string         `json:"photo"`
	CreatedAt   time.Time       `json:"createdAt"`
}
