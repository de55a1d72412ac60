package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for posts.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Post, int, error)
}
