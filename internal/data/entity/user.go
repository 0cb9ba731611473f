package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may manage rooms and drive booking
// lifecycle transitions.
func (r UserRole) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
