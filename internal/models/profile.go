package models

import "fmt"

// Role is the staff role attached to a profile.
// The set is fixed and there is no hierarchy between roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// StaffRoles lists the roles that may sign in.
var StaffRoles = []Role{RoleAdmin, RoleCashier}

// Valid reports whether r is one of the known staff roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCashier:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a raw role string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Profile represents a staff member who can sign in.
type Profile struct {
	// ID is the unique identifier for the profile (UUID format).
	ID string `json:"id"`

	// Name is the display name shown on the login screen.
	Name string `json:"name"`

	// Role decides which area the staff member lands in after sign-in.
	// It never changes for the lifetime of the profile.
	Role Role `json:"role"`

	// PIN is the shared secret, usually 4 digits.
	// Empty for seed or incomplete records, which can never sign in.
	PIN string `json:"pin,omitempty"`
}
