package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
}

// DoctorFilter narrows the doctor listing
type DoctorFilter struct {
	SpecializationIDs []uuid.UUID
}
