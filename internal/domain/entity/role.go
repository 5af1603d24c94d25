package entity

// Role tags which account table an identity belongs to
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}
