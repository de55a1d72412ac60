package patient

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies one of the fixed history groupings on a patient record.
type Category string

const (
	CategoryComorbidity Category = "comorbidity"
	CategoryDrug        Category = "drug"
	CategoryAllergies   Category = "allergies"
	CategoryFamily      Category = "family"
	CategoryFood        Category = "food"
	CategorySanitary    Category = "sanitary"
	CategoryOccupation  Category = "occupation"
	CategorySurgical    Category = "surgical"
	CategoryPregnancy   Category = "pregnancy"
	CategoryMenstrual   Category = "menstrual"
	CategoryVasectomy   Category = "vasectomy"
)

// Categories returns the closed set of history categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryComorbidity, CategoryDrug, CategoryAllergies, CategoryFamily,
		CategoryFood, CategorySanitary, CategoryOccupation, CategorySurgical,
		CategoryPregnancy, CategoryMenstrual, CategoryVasectomy,
	}
}

// ParseCategory validates a raw category string against the closed set.
// Every history operation calls this before touching storage.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryComorbidity, CategoryDrug, CategoryAllergies, CategoryFamily,
		CategoryFood, CategorySanitary, CategoryOccupation, CategorySurgical,
		CategoryPregnancy, CategoryMenstrual, CategoryVasectomy:
		return c, nil
	}
	return "", &InvalidCategoryError{Category: s}
}

// ComplaintEntry is a single presenting-complaint item. ID and Date are
// assigned at creation and never change afterwards.
type ComplaintEntry struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Complaint string    `json:"complaint"`
	Duration  string    `json:"duration,omitempty"`
}

// ComorbidityFlag is one boolean-plus-note pair inside comorbidity details.
type ComorbidityFlag struct {
	Present bool   `json:"present"`
	Note    string `json:"note,omitempty"`
}

// HistoryDetails is the category-shaped payload of a history entry.
// Comorbidity entries use the flag fields; every other category uses the
// free-text Details field.
type HistoryDetails struct {
	Details      string           `json:"details,omitempty"`
	Diabetic     *ComorbidityFlag `json:"diabetic,omitempty"`
	Hypertension *ComorbidityFlag `json:"hypertension,omitempty"`
	HeartDisease *ComorbidityFlag `json:"heart_disease,omitempty"`
	Thyroid      *ComorbidityFlag `json:"thyroid,omitempty"`
	Other        *ComorbidityFlag `json:"other,omitempty"`
}

// HistoryEntry is a single item under one history category. ID and Date are
// assigned at creation; edits replace Details only.
type HistoryEntry struct {
	ID      uuid.UUID      `json:"id"`
	Date    time.Time      `json:"date"`
	Details HistoryDetails `json:"details"`
}

// History holds the patient's history entries as a statically keyed record,
// one ordered list per category.
type History struct {
	Comorbidity []HistoryEntry `json:"comorbidity,omitempty"`
	Drug        []HistoryEntry `json:"drug,omitempty"`
	Allergies   []HistoryEntry `json:"allergies,omitempty"`
	Family      []HistoryEntry `json:"family,omitempty"`
	Food        []HistoryEntry `json:"food,omitempty"`
	Sanitary    []HistoryEntry `json:"sanitary,omitempty"`
	Occupation  []HistoryEntry `json:"occupation,omitempty"`
	Surgical    []HistoryEntry `json:"surgical,omitempty"`
	Pregnancy   []HistoryEntry `json:"pregnancy,omitempty"`
	Menstrual   []HistoryEntry `json:"menstrual,omitempty"`
	Vasectomy   []HistoryEntry `json:"vasectomy,omitempty"`
}

// Entries returns the list for the given category. The caller must hold a
// category produced by ParseCategory; an unknown value returns nil.
func (h *History) Entries(c Category) *[]HistoryEntry {
	switch c {
	case CategoryComorbidity:
		return &h.Comorbidity
	case CategoryDrug:
		return &h.Drug
	case CategoryAllergies:
		return &h.Allergies
	case CategoryFamily:
		return &h.Family
	case CategoryFood:
		return &h.Food
	case CategorySanitary:
		return &h.Sanitary
	case CategoryOccupation:
		return &h.Occupation
	case CategorySurgical:
		return &h.Surgical
	case CategoryPregnancy:
		return &h.Pregnancy
	case CategoryMenstrual:
		return &h.Menstrual
	case CategoryVasectomy:
		return &h.Vasectomy
	}
	return nil
}

// Patient is the aggregate: demographics plus the owned record collections.
// The whole aggregate is the unit of persistence.
type Patient struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	FirstName  string     `db:"first_name" json:"first_name"`
	LastName   string     `db:"last_name" json:"last_name"`
	Email      *string    `db:"email" json:"email,omitempty"`
	Phone      string     `db:"phone" json:"phone"`
	Gender     *string    `db:"gender" json:"gender,omitempty"`
	BirthDate  *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Address    *string    `db:"address" json:"address,omitempty"`
	Complaints []ComplaintEntry `db:"presenting_complaint" json:"presenting_complaint"`
	History    History          `db:"history" json:"history"`
	VersionID  int        `db:"version_id" json:"version_id"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// GetVersionID returns the current version.
func (p *Patient) GetVersionID() int { return p.VersionID }

// SetVersionID sets the current version.
func (p *Patient) SetVersionID(v int) { p.VersionID = v }

// findComplaint returns a pointer to the entry with the given id, or nil.
func findComplaint(list []ComplaintEntry, id uuid.UUID) *ComplaintEntry {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// removeComplaint removes the entry with the given id, preserving order.
// The second return reports whether the entry existed.
func removeComplaint(list []ComplaintEntry, id uuid.UUID) ([]ComplaintEntry, bool) {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// findHistoryEntry returns a pointer to the entry with the given id, or nil.
func findHistoryEntry(list []HistoryEntry, id uuid.UUID) *HistoryEntry {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// removeHistoryEntry removes the entry with the given id, preserving order.
func removeHistoryEntry(list []HistoryEntry, id uuid.UUID) ([]HistoryEntry, bool) {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}
