package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for the Patient aggregate. Get must return
// *NotFoundError for an unknown id; SaveRecord must persist the whole
// aggregate conditionally on the version it was loaded at and return
// *ConflictError when the stored version has moved on.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error)
	SaveRecord(ctx context.Context, p *Patient) error
}
