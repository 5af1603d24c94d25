package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,len=6"`
}

// RegisterRequest creates either account kind; patients must also send phone and address
type RegisterRequest struct {
	Name                  string          `json:"name" validate:"required,max=50"`
	Surname               string          `json:"surname" validate:"required,max=50"`
	Email                 string          `json:"email" validate:"required,email"`
	Password              string          `json:"password" validate:"required,min=6,max=72"`
	Role                  string          `json:"role" validate:"required,oneof=doctor patient"`
	ProfessionalStatement *string         `json:"professionalStatement" validate:"omitempty,max=2000"`
	PhoneNumber           string          `json:"phoneNumber" validate:"required_if=Role patient,omitempty,max=20"`
	Address               *AddressRequest `json:"address" validate:"required_if=Role patient"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateAccountRequest struct {
	Name                  string          `json:"name" validate:"required,max=50"`
	Surname               string          `json:"surname" validate:"required,max=50"`
	Email                 string          `json:"email" validate:"required,email"`
	ProfessionalStatement *string         `json:"professionalStatement" validate:"omitempty,max=2000"`
	PhoneNumber           string          `json:"phoneNumber" validate:"omitempty,max=20"`
	Address               *AddressRequest `json:"address"`
}

type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Response DTOs

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// AccountResponse is the current user's profile; doctor-only and patient-only fields are omitted for the other role
type AccountResponse struct {
	ID                    uuid.UUID                      `json:"id"`
	Name                  string                         `json:"name"`
	Surname               string                         `json:"surname"`
	Email                 string                         `json:"email"`
	Photo                 *string                        `json:"photo"`
	Role                  string                         `json:"role"`
	ProfessionalStatement *string                        `json:"professionalStatement,omitempty"`
	DoctorSpecializations []DoctorSpecializationResponse `json:"doctorSpecializations,omitempty"`
	PhoneNumber           string                         `json:"phoneNumber,omitempty"`
	Address               *AddressResponse               `json:"address,omitempty"`
}
