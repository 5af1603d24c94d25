package converter

import (
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		Name:        patient.Name,
		Surname:     patient.Surname,
		Email:       patient.Email,
		PhoneNumber: patient.PhoneNumber,
		Address:     AddressToResponse(patient.Address),
		Photo:       patient.Photo,
		CreatedAt:   patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func AddressToResponse(a entity.Address) dto.AddressResponse {
	return dto.AddressResponse{Street: a.Street, City: a.City, PostalCode: a.PostalCode}
}

func AddressFromRequest(a *dto.AddressRequest) entity.Address {
	if a == nil {
		return entity.Address{}
	}
	return entity.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode}
}
