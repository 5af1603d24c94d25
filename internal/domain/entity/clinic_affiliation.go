package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClinicAffiliation links a doctor to a clinic with per-affiliation schedule and fee terms.
// At most one affiliation exists per (doctor, clinic) pair.
type ClinicAffiliation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_clinic_affiliations_doctor_clinic" json:"doctorId"`
	ClinicID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_clinic_affiliations_doctor_clinic" json:"clinicId"`
	ClinicName      string          `gorm:"type:varchar(255);not null" json:"clinicName"`
	WorkingTime     WorkingTimes    `gorm:"type:jsonb;not null;default:'[]'" json:"workingTime"`
	Available       bool            `gorm:"not null;default:true" json:"available"`
	ReasonOfAbsence *string         `gorm:"type:text" json:"reasonOfAbsence"`
	AbsenceFrom     *time.Time      `json:"absenceFrom"`
	AbsenceTo       *time.Time      `json:"absenceTo"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultationFee"`
	TimePerPatient  int             `gorm:"not null" json:"timePerPatient"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinicInfo,omitempty"`
}

func (ClinicAffiliation) TableName() string {
	return "clinic_affiliations"
}

// IsOwnedBy checks if the affiliation belongs to the given doctor
func (a *ClinicAffiliation) IsOwnedBy(doctorID uuid.UUID) bool {
	return a.DoctorID == doctorID
}
