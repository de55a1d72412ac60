package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Service provides demographics-level operations on patients. Record
// collections are managed by RecordService; patients are created with both
// collections empty.
type Service struct {
	repo Repository
}

// NewService creates a new patient service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &InvalidInputError{Field: "first_name", Reason: "is required"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return &InvalidInputError{Field: "last_name", Reason: "is required"}
	}
	if strings.TrimSpace(p.Phone) == "" {
		return &InvalidInputError{Field: "phone", Reason: "is required"}
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

// UpdatePatient overwrites demographics only. The record collections and the
// version counter are owned by SaveRecord and are not touched here.
func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &InvalidInputError{Field: "first_name", Reason: "is required"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return &InvalidInputError{Field: "last_name", Reason: "is required"}
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// SearchPatients matches the query against names and phone number.
func (s *Service) SearchPatients(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.List(ctx, limit, offset)
	}
	return s.repo.Search(ctx, query, limit, offset)
}
