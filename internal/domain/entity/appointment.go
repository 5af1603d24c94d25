package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusActive    AppointmentStatus = "active"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusPostponed AppointmentStatus = "postponed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment is a patient visit booked against a doctor's clinic affiliation.
// No two non-canceled appointments share (DoctorID, AppointmentDate); the database
// enforces this with a partial unique index.
type Appointment struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctorId"`
	ClinicID            uuid.UUID         `gorm:"type:uuid;not null" json:"clinicId"`
	ClinicAffiliationID uuid.UUID         `gorm:"type:uuid;not null" json:"clinicAffiliationId"`
	AppointmentDate     time.Time         `gorm:"not null" json:"appointmentDate"`
	EstimatedEndDate    time.Time         `gorm:"not null" json:"estimatedEndDate"`
	AppointmentAddress  Address           `gorm:"embedded;embeddedPrefix:appointment_address_" json:"appointmentAddress"`
	Status              AppointmentStatus `gorm:"column:appointment_status;type:varchar(20);not null;default:'active';index" json:"appointmentStatus"`
	ConsultationFee     decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"consultationFee"`
	CreatedAt           time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships, populated for display only
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctorInfo,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patientInfo,omitempty"`
	Clinic  *Clinic  `gorm:"foreignKey:ClinicID" json:"clinicInfo,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCanceled checks if appointment is canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == AppointmentStatusCanceled
}

// IsCompleted checks if appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsFinal reports whether no further transition is possible
func (a *Appointment) IsFinal() bool {
	return a.IsCanceled() || a.IsCompleted()
}

// IsOwnedBy reports whether userID is the appointment's doctor or patient
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.DoctorID == userID || a.PatientID == userID
}

// IsDue reports whether the appointment time has been reached at now.
// Both sides are compared at minute precision.
func (a *Appointment) IsDue(now time.Time) bool {
	return !now.Truncate(time.Minute).Before(a.AppointmentDate.Truncate(time.Minute))
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to canceled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCanceled
}

// ClinicName returns the populated clinic name or an empty string
func (a *Appointment) ClinicName() string {
	if a.Clinic == nil {
		return ""
	}
	return a.Clinic.ClinicName
}
