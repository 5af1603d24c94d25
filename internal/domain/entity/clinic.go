package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic represents a physical practice doctors can be affiliated with
type Clinic struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicName  string       `gorm:"type:varchar(255);not null;index" json:"clinicName"`
	Address     Address      `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	PhoneNumber string       `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	WorkingTime WorkingTimes `gorm:"type:jsonb;not null;default:'[]'" json:"workingTime"`
	Photo       *string      `gorm:"type:varchar(255)" json:"photo"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Clinic) TableName() string {
	return "clinics"
}
