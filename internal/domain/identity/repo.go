package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
