package converter

import (
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
)

// DoctorToAccountResponse shapes a doctor as the current-user profile
func DoctorToAccountResponse(doctor *entity.Doctor) *dto.AccountResponse {
	if doctor == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:                    doctor.ID,
		Name:                  doctor.Name,
		Surname:               doctor.Surname,
		Email:                 doctor.Email,
		Photo:                 doctor.Photo,
		Role:                  string(entity.RoleDoctor),
		ProfessionalStatement: doctor.ProfessionalStatement,
		DoctorSpecializations: DoctorSpecializationsToResponses(doctor.Specializations),
	}
}

// PatientToAccountResponse shapes a patient as the current-user profile
func PatientToAccountResponse(patient *entity.Patient) *dto.AccountResponse {
	if patient == nil {
		return nil
	}
	address := AddressToResponse(patient.Address)
	return &dto.AccountResponse{
		ID:          patient.ID,
		Name:        patient.Name,
		Surname:     patient.Surname,
		Email:       patient.Email,
		Photo:       patient.Photo,
		Role:        string(entity.RolePatient),
		PhoneNumber: patient.PhoneNumber,
		Address:     &address,
	}
}
