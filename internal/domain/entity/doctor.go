package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a doctor account together with its professional profile
type Doctor struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                  string    `gorm:"type:varchar(50);not null" json:"name"`
	Surname               string    `gorm:"type:varchar(50);not null" json:"surname"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password              string    `gorm:"type:text;not null" json:"-"`
	ProfessionalStatement *string   `gorm:"type:text" json:"professionalStatement"`
	Photo                 *string   `gorm:"type:varchar(255)" json:"photo"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Specializations    []DoctorSpecialization `gorm:"foreignKey:DoctorID" json:"doctorSpecializations,omitempty"`
	ClinicAffiliations []ClinicAffiliation    `gorm:"foreignKey:DoctorID" json:"clinicAffiliations,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) Identity() Identity {
	return Identity{UserID: d.ID, Name: d.Name, Surname: d.Surname, Role: RoleDoctor}
}

func (d *Doctor) AccountEmail() string { return d.Email }

func (d *Doctor) PasswordHash() string { return d.Password }

func (d *Doctor) PhotoPath() *string { return d.Photo }
