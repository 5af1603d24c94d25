package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a patient account
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Surname     string    `gorm:"type:varchar(50);not null" json:"surname"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	Address     Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Photo       *string   `gorm:"type:varchar(255)" json:"photo"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) Identity() Identity {
	return Identity{UserID: p.ID, Name: p.Name, Surname: p.Surname, Role: RolePatient}
}

func (p *Patient) AccountEmail() string { return p.Email }

func (p *Patient) PasswordHash() string { return p.Password }

func (p *Patient) PhotoPath() *string { return p.Photo }
