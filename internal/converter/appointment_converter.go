package converter

import (
	"time"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO,
// formatting dates in loc
func AppointmentToResponse(a *entity.Appointment, loc *time.Location) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:                  a.ID,
		PatientID:           a.PatientID,
		DoctorID:            a.DoctorID,
		ClinicID:            a.ClinicID,
		ClinicAffiliationID: a.ClinicAffiliationID,
		AppointmentDate:     a.AppointmentDate.In(loc).Format(dto.DateTimeLayout),
		EstimatedEndDate:    a.EstimatedEndDate.In(loc).Format(dto.DateTimeLayout),
		AppointmentAddress:  AddressToResponse(a.AppointmentAddress),
		AppointmentStatus:   string(a.Status),
		ConsultationFee:     a.ConsultationFee,
	}

	if a.Doctor != nil {
		resp.DoctorInfo = &dto.PersonSummary{
			ID:      a.Doctor.ID,
			Name:    a.Doctor.Name,
			Surname: a.Doctor.Surname,
			Photo:   a.Doctor.Photo,
		}
	}
	if a.Patient != nil {
		resp.PatientInfo = &dto.PersonSummary{
			ID:          a.Patient.ID,
			Name:        a.Patient.Name,
			Surname:     a.Patient.Surname,
			Photo:       a.Patient.Photo,
			PhoneNumber: a.Patient.PhoneNumber,
		}
	}
	if a.Clinic != nil {
		resp.ClinicInfo = &dto.ClinicSummary{
			ID:         a.Clinic.ID,
			ClinicName: a.Clinic.ClinicName,
			Photo:      a.Clinic.Photo,
		}
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(list []entity.Appointment, loc *time.Location) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(list))
	for i := range list {
		responses[i] = *AppointmentToResponse(&list[i], loc)
	}
	return responses
}
