package converter

import (
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity with its loaded relations to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                    doctor.ID,
		Name:                  doctor.Name,
		Surname:               doctor.Surname,
		Email:                 doctor.Email,
		Photo:                 doctor.Photo,
		ProfessionalStatement: doctor.ProfessionalStatement,
		DoctorSpecializations: DoctorSpecializationsToResponses(doctor.Specializations),
		ClinicAffiliations:    ClinicAffiliationsToResponses(doctor.ClinicAffiliations),
		CreatedAt:             doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func SpecializationToResponse(s *entity.Specialization) *dto.SpecializationResponse {
	if s == nil {
		return nil
	}
	return &dto.SpecializationResponse{ID: s.ID, SpecializationKey: s.SpecializationKey}
}

func SpecializationsToResponses(list []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(list))
	for i := range list {
		responses[i] = *SpecializationToResponse(&list[i])
	}
	return responses
}

func DoctorSpecializationToResponse(ds *entity.DoctorSpecialization) *dto.DoctorSpecializationResponse {
	if ds == nil {
		return nil
	}
	return &dto.DoctorSpecializationResponse{
		ID:               ds.ID,
		DoctorID:         ds.DoctorID,
		SpecializationID: ds.SpecializationID,
		Specialization:   SpecializationToResponse(ds.Specialization),
	}
}

func DoctorSpecializationsToResponses(list []entity.DoctorSpecialization) []dto.DoctorSpecializationResponse {
	responses := make([]dto.DoctorSpecializationResponse, len(list))
	for i := range list {
		responses[i] = *DoctorSpecializationToResponse(&list[i])
	}
	return responses
}
