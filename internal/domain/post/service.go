package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service provides business logic for posts.
type Service struct {
	posts Repository
}

// NewService creates a new post service.
func NewService(posts Repository) *Service {
	return &Service{posts: posts}
}

func (s *Service) CreatePost(ctx context.Context, p *Post) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("body is required")
	}
	return s.posts.Create(ctx, p)
}

func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *Service) UpdatePost(ctx context.Context, p *Post) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("body is required")
	}
	return s.posts.Update(ctx, p)
}

func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.posts.Delete(ctx, id)
}

// ListPosts lists posts newest first. When publishedOnly is true, drafts are
// excluded.
func (s *Service) ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Post, int, error) {
	return s.posts.List(ctx, publishedOnly, limit, offset)
}
