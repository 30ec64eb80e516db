package models

import "time"

// Role is the closed set of account roles. Anything else stored in the
// database degrades to RoleUser.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role string to the enum, failing closed to
// RoleUser for absent or unknown values.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Badge     *string   `db:"badge" json:"badge"`
	Package   *string   `db:"package" json:"package"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
