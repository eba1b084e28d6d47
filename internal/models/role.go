package models

// Role identifies which side of the booking flow a user is on.
// A user's role is fixed at registration; there is no role-change operation.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ParseRole maps a raw role string to a known Role.
// Unknown or empty values are rejected so authorization stays closed by default.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, true
	case RoleDoctor:
		return RoleDoctor, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}
