package patient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordService maintains the presenting-complaint and history collections
// of a patient record. Every mutating operation follows the same order:
// validate category, load aggregate, locate entry, mutate, persist. Nothing
// is saved when any step before the final save fails.
type RecordService struct {
	repo  Repository
	now   func() time.Time
	newID func() uuid.UUID
}

// RecordOption configures a RecordService.
type RecordOption func(*RecordService)

// WithClock replaces the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) RecordOption {
	return func(s *RecordService) { s.now = now }
}

// WithIDSource replaces the entry id generator.
func WithIDSource(newID func() uuid.UUID) RecordOption {
	return func(s *RecordService) { s.newID = newID }
}

// NewRecordService creates a record service over the given repository.
func NewRecordService(repo Repository, opts ...RecordOption) *RecordService {
	s := &RecordService{repo: repo, now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComplaintInput is the payload for adding a presenting complaint.
type ComplaintInput struct {
	Complaint string `json:"complaint"`
	Duration  string `json:"duration"`
}

// ComplaintPatch carries the editable complaint fields. Nil fields are left
// untouched; at least one must be set.
type ComplaintPatch struct {
	Complaint *string `json:"complaint"`
	Duration  *string `json:"duration"`
}

// AddComplaint appends a new presenting-complaint entry and returns it with
// its server-assigned id and date.
func (s *RecordService) AddComplaint(ctx context.Context, patientID uuid.UUID, in ComplaintInput) (*ComplaintEntry, error) {
	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Complaint) == "" {
		return nil, &InvalidInputError{Field: "complaint", Reason: "text is required"}
	}

	entry := ComplaintEntry{
		ID:        s.newID(),
		Date:      s.now().UTC(),
		Complaint: in.Complaint,
		Duration:  in.Duration,
	}
	p.Complaints = append(p.Complaints, entry)

	if err := s.repo.SaveRecord(ctx, p); err != nil {
		return nil, err
	}
	return &entry, nil
}

// EditComplaint overwrites the complaint text and/or duration of an existing
// entry. Entry id and date never change.
func (s *RecordService) EditComplaint(ctx context.Context, patientID, complaintID uuid.UUID, patch ComplaintPatch) (*ComplaintEntry, error) {
	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	entry := findComplaint(p.Complaints, complaintID)
	if entry == nil {
		return nil, &NotFoundError{Kind: NotFoundComplaint, ID: complaintID.String()}
	}

	if patch.Complaint == nil && patch.Duration == nil {
		return nil, &InvalidInputError{Field: "patch", Reason: "at least one of complaint or duration is required"}
	}
	if patch.Complaint != nil {
		if strings.TrimSpace(*patch.Complaint) == "" {
			return nil, &InvalidInputError{Field: "complaint", Reason: "text is required"}
		}
		entry.Complaint = *patch.Complaint
	}
	if patch.Duration != nil {
		entry.Duration = *patch.Duration
	}

	if err := s.repo.SaveRecord(ctx, p); err != nil {
		return nil, err
	}
	out := *entry
	return &out, nil
}

// DeleteComplaint removes an entry entirely.
func (s *RecordService) DeleteComplaint(ctx context.Context, patientID, complaintID uuid.UUID) error {
	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return err
	}

	list, ok := removeComplaint(p.Complaints, complaintID)
	if !ok {
		return &NotFoundError{Kind: NotFoundComplaint, ID: complaintID.String()}
	}
	p.Complaints = list

	return s.repo.SaveRecord(ctx, p)
}

// AddHistory appends a new entry under the given category and returns it.
// The category is validated before any storage access.
func (s *RecordService) AddHistory(ctx context.Context, patientID uuid.UUID, category string, details HistoryDetails) (*HistoryEntry, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	entry := HistoryEntry{
		ID:      s.newID(),
		Date:    s.now().UTC(),
		Details: details,
	}
	list := p.History.Entries(cat)
	*list = append(*list, entry)

	if err := s.repo.SaveRecord(ctx, p); err != nil {
		return nil, err
	}
	return &entry, nil
}

// EditHistory replaces the details of an existing entry. Entry id and date
// never change.
func (s *RecordService) EditHistory(ctx context.Context, patientID uuid.UUID, category string, historyID uuid.UUID, details HistoryDetails) (*HistoryEntry, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	entry := findHistoryEntry(*p.History.Entries(cat), historyID)
	if entry == nil {
		return nil, &NotFoundError{Kind: NotFoundHistory, ID: historyID.String()}
	}
	entry.Details = details

	if err := s.repo.SaveRecord(ctx, p); err != nil {
		return nil, err
	}
	out := *entry
	return &out, nil
}

// DeleteHistory removes an entry from the given category entirely.
func (s *RecordService) DeleteHistory(ctx context.Context, patientID uuid.UUID, category string, historyID uuid.UUID) error {
	cat, err := ParseCategory(category)
	if err != nil {
		return err
	}

	p, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return err
	}

	list := p.History.Entries(cat)
	updated, ok := removeHistoryEntry(*list, historyID)
	if !ok {
		return &NotFoundError{Kind: NotFoundHistory, ID: historyID.String()}
	}
	*list = updated

	return s.repo.SaveRecord(ctx, p)
}
