package entity

import "github.com/google/uuid"

// Specialization is a medical specialization identified by a unique key
type Specialization struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SpecializationKey string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"specializationKey"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// DoctorSpecialization joins a doctor to a specialization, unique per pair
type DoctorSpecialization struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_doctor_specializations_pair" json:"doctorId"`
	SpecializationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_doctor_specializations_pair" json:"specializationId"`

	// Relationships
	Specialization *Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
}

func (DoctorSpecialization) TableName() string {
	return "doctor_specializations"
}
