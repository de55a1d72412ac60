package patient

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q) error = %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}

	for _, bad := range []string{"", "Drug", "DRUG", "dental", " drug"} {
		_, err := ParseCategory(bad)
		var ic *InvalidCategoryError
		if !errors.As(err, &ic) {
			t.Errorf("ParseCategory(%q) err = %v, want InvalidCategoryError", bad, err)
		}
	}
}

func TestCategoriesCount(t *testing.T) {
	if got := len(Categories()); got != 11 {
		t.Errorf("Categories() has %d entries, want 11", got)
	}
}

func TestHistoryEntriesAccessor(t *testing.T) {
	var h History
	for _, c := range Categories() {
		list := h.Entries(c)
		if list == nil {
			t.Fatalf("Entries(%q) = nil", c)
		}
		*list = append(*list, HistoryEntry{ID: uuid.New()})
	}
	if len(h.Comorbidity) != 1 || len(h.Vasectomy) != 1 {
		t.Error("appends through Entries did not reach the struct fields")
	}
	if h.Entries(Category("bogus")) != nil {
		t.Error("Entries should return nil for an unknown category")
	}
}

func TestRemoveComplaintPreservesOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	list := []ComplaintEntry{{ID: a}, {ID: b}, {ID: c}}

	got, ok := removeComplaint(list, b)
	if !ok {
		t.Fatal("removeComplaint reported the entry missing")
	}
	if len(got) != 2 || got[0].ID != a || got[1].ID != c {
		t.Errorf("after remove = %+v, want [a c]", got)
	}

	if _, ok := removeComplaint(got, b); ok {
		t.Error("removing an absent entry should report false")
	}
}

func TestFindHistoryEntryReturnsPointer(t *testing.T) {
	id := uuid.New()
	list := []HistoryEntry{{ID: uuid.New()}, {ID: id}}

	e := findHistoryEntry(list, id)
	if e == nil {
		t.Fatal("entry not found")
	}
	e.Details.Details = "updated"
	if list[1].Details.Details != "updated" {
		t.Error("find should return a pointer into the list")
	}

	if findHistoryEntry(list, uuid.New()) != nil {
		t.Error("unknown id should return nil")
	}
}
