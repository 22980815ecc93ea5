package models

import "time"

// Employee roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee represents a member of staff. Employees double as login
// accounts: the email is the login identifier.
type Employee struct {
	ID           string    `json:"id" db:"id"` // UUID
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"` // "admin" or "employee"
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidRole reports whether role is one of the known employee roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}
