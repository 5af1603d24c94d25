package converter

import (
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
)

func WorkingTimesFromRequest(list []dto.WorkingTimeRequest) entity.WorkingTimes {
	out := make(entity.WorkingTimes, len(list))
	for i, wt := range list {
		out[i] = entity.WorkingTime{WeekDay: wt.WeekDay, StartTime: wt.StartTime, StopTime: wt.StopTime}
	}
	return out
}

func WorkingTimesToResponses(list entity.WorkingTimes) []dto.WorkingTimeResponse {
	out := make([]dto.WorkingTimeResponse, len(list))
	for i, wt := range list {
		out[i] = dto.WorkingTimeResponse{WeekDay: wt.WeekDay, StartTime: wt.StartTime, StopTime: wt.StopTime}
	}
	return out
}

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}
	return &dto.ClinicResponse{
		ID:          clinic.ID,
		ClinicName:  clinic.ClinicName,
		Address:     AddressToResponse(clinic.Address),
		PhoneNumber: clinic.PhoneNumber,
		WorkingTime: WorkingTimesToResponses(clinic.WorkingTime),
		Photo:       clinic.Photo,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to slice of ClinicResponse DTOs
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i := range clinics {
		responses[i] = *ClinicToResponse(&clinics[i])
	}
	return responses
}

// ClinicFromRequest builds a Clinic entity from the create/update payload
func ClinicFromRequest(req *dto.ClinicRequest) *entity.Clinic {
	return &entity.Clinic{
		ClinicName:  req.ClinicName,
		Address:     AddressFromRequest(&req.Address),
		PhoneNumber: req.PhoneNumber,
		WorkingTime: WorkingTimesFromRequest(req.WorkingTime),
	}
}

// ClinicAffiliationToResponse converts a ClinicAffiliation entity to ClinicAffiliationResponse DTO
func ClinicAffiliationToResponse(a *entity.ClinicAffiliation) *dto.ClinicAffiliationResponse {
	if a == nil {
		return nil
	}
	resp := &dto.ClinicAffiliationResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		ClinicID:        a.ClinicID,
		ClinicName:      a.ClinicName,
		WorkingTime:     WorkingTimesToResponses(a.WorkingTime),
		Available:       a.Available,
		ReasonOfAbsence: a.ReasonOfAbsence,
		ConsultationFee: a.ConsultationFee,
		TimePerPatient:  a.TimePerPatient,
		ClinicInfo:      ClinicToResponse(a.Clinic),
	}
	if a.AbsenceFrom != nil || a.AbsenceTo != nil {
		resp.AbsenceTime = &dto.AbsenceTime{From: a.AbsenceFrom, To: a.AbsenceTo}
	}
	return resp
}

// ClinicAffiliationsToResponses converts a slice of ClinicAffiliation entities to DTOs
func ClinicAffiliationsToResponses(list []entity.ClinicAffiliation) []dto.ClinicAffiliationResponse {
	responses := make([]dto.ClinicAffiliationResponse, len(list))
	for i := range list {
		responses[i] = *ClinicAffiliationToResponse(&list[i])
	}
	return responses
}
