package model

// Role is the single authorization dimension of the API.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}
