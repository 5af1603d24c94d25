package entity

import "github.com/google/uuid"

// Identity is the authenticated principal carried in token claims
type Identity struct {
	UserID  uuid.UUID
	Name    string
	Surname string
	Role    Role
}

// Account is the authentication capability shared by doctors and patients.
// Doctor and Patient live in separate tables; the role is implied by the concrete type.
type Account interface {
	Identity() Identity
	AccountEmail() string
	PasswordHash() string
	PhotoPath() *string
}

var (
	_ Account = (*Doctor)(nil)
	_ Account = (*Patient)(nil)
)
