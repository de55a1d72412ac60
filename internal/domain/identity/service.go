package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure. It deliberately
// does not say whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an email that already has an account.
var ErrEmailTaken = errors.New("email is already registered")

// Service provides account management and credential checks.
type Service struct {
	users Repository
}

// NewService creates a new identity service.
func NewService(users Repository) *Service {
	return &Service{users: users}
}

// RegisterInput carries the fields for creating an account.
type RegisterInput struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	PatientID *uuid.UUID `json:"patient_id"`
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	role, ok := ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("role must be %q or %q", RoleAdmin, RolePatient)
	}
	if role == RolePatient && in.PatientID == nil {
		return nil, fmt.Errorf("patient accounts must reference a patient record")
	}
	if role == RoleAdmin && in.PatientID != nil {
		return nil, fmt.Errorf("admin accounts cannot reference a patient record")
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		PatientID:    in.PatientID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks credentials and returns the account on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
