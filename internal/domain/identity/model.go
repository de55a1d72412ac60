package identity

import (
	"time"

	"github.com/google/uuid"
)

// Role discriminates the two account variants sharing the users table.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RolePatient:
		return r, true
	}
	return "", false
}

// User is an account. PatientID is set only for patient-role users and
// points at the patient record the account may read.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Role         Role       `db:"role" json:"role"`
	PatientID    *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
