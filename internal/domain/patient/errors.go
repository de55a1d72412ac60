package patient

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundKind names which object a NotFoundError refers to.
type NotFoundKind string

const (
	NotFoundPatient   NotFoundKind = "patient"
	NotFoundComplaint NotFoundKind = "complaint entry"
	NotFoundHistory   NotFoundKind = "history entry"
)

// NotFoundError reports an absent patient, complaint entry, or history entry.
type NotFoundError struct {
	Kind NotFoundKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidCategoryError reports a history category outside the closed set.
// The message enumerates the valid categories so callers can surface them.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	valid := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		valid = append(valid, string(c))
	}
	return fmt.Sprintf("invalid history category %q: must be one of %s",
		e.Category, strings.Join(valid, ", "))
}

// InvalidInputError reports a missing or malformed request field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports a lost-update condition: the aggregate changed
// between load and save. The caller should reload and retry.
type ConflictError struct {
	PatientID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("patient %s was modified concurrently", e.PatientID)
}

// IsNotFound reports whether err is a NotFoundError of any kind.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
