package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

func newHandlerFixture() (*Handler, *mockRepo, *Patient) {
	p := newTestPatient()
	repo := &mockRepo{patient: p}
	return NewHandler(NewService(repo), NewRecordService(repo)), repo, p
}

func adminContext() context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{Role: auth.RoleAdmin})
}

func patientContext(patientID string) context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "acct-1"},
		Role:             auth.RolePatient,
		PatientID:        patientID,
	})
}

func doRequest(h echo.HandlerFunc, method, body string, ctx context.Context, params map[string]string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return rec, h(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestGetPatientAccess(t *testing.T) {
	h, _, p := newHandlerFixture()

	t.Run("admin reads any record", func(t *testing.T) {
		rec, err := doRequest(h.GetPatient, http.MethodGet, "", adminContext(),
			map[string]string{"id": p.ID.String()})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("patient reads own record", func(t *testing.T) {
		rec, err := doRequest(h.GetPatient, http.MethodGet, "", patientContext(p.ID.String()),
			map[string]string{"id": p.ID.String()})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("patient cannot read another record", func(t *testing.T) {
		_, err := doRequest(h.GetPatient, http.MethodGet, "", patientContext("some-other-id"),
			map[string]string{"id": p.ID.String()})
		if got := httpStatus(t, err); got != http.StatusForbidden {
			t.Errorf("status = %d, want 403", got)
		}
	})

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		_, err := doRequest(h.GetPatient, http.MethodGet, "", nil,
			map[string]string{"id": p.ID.String()})
		if got := httpStatus(t, err); got != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", got)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := doRequest(h.GetPatient, http.MethodGet, "", adminContext(),
			map[string]string{"id": "not-a-uuid"})
		if got := httpStatus(t, err); got != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", got)
		}
	})
}

func TestAddComplaintHandler(t *testing.T) {
	h, repo, p := newHandlerFixture()

	rec, err := doRequest(h.AddComplaint, http.MethodPost,
		`{"complaint":"chest pain","duration":"1 day"}`, adminContext(),
		map[string]string{"id": p.ID.String()})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var entry ComplaintEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("response is not a complaint entry: %v", err)
	}
	if entry.Complaint != "chest pain" {
		t.Errorf("complaint = %q", entry.Complaint)
	}
	if len(repo.patient.Complaints) != 1 {
		t.Error("entry was not persisted")
	}
}

func TestAddComplaintHandlerErrors(t *testing.T) {
	h, _, p := newHandlerFixture()

	t.Run("unknown patient is 404", func(t *testing.T) {
		_, err := doRequest(h.AddComplaint, http.MethodPost,
			`{"complaint":"fever"}`, adminContext(),
			map[string]string{"id": "00000000-0000-0000-0000-000000000001"})
		if got := httpStatus(t, err); got != http.StatusNotFound {
			t.Errorf("status = %d, want 404", got)
		}
	})

	t.Run("empty complaint is 400", func(t *testing.T) {
		_, err := doRequest(h.AddComplaint, http.MethodPost,
			`{"complaint":""}`, adminContext(),
			map[string]string{"id": p.ID.String()})
		if got := httpStatus(t, err); got != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", got)
		}
	})
}

func TestHistoryHandlerStatusMapping(t *testing.T) {
	h, _, p := newHandlerFixture()

	t.Run("invalid category is 400", func(t *testing.T) {
		_, err := doRequest(h.AddHistory, http.MethodPost,
			`{"details":"x"}`, adminContext(),
			map[string]string{"id": p.ID.String(), "category": "dental"})
		if got := httpStatus(t, err); got != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", got)
		}
	})

	t.Run("valid category creates entry", func(t *testing.T) {
		rec, err := doRequest(h.AddHistory, http.MethodPost,
			`{"details":"dust allergy"}`, adminContext(),
			map[string]string{"id": p.ID.String(), "category": "allergies"})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201", rec.Code)
		}
	})

	t.Run("missing entry is 404", func(t *testing.T) {
		_, err := doRequest(h.DeleteHistory, http.MethodDelete, "", adminContext(),
			map[string]string{
				"id":       p.ID.String(),
				"category": "allergies",
				"entryId":  "00000000-0000-0000-0000-000000000009",
			})
		if got := httpStatus(t, err); got != http.StatusNotFound {
			t.Errorf("status = %d, want 404", got)
		}
	})
}

func TestConflictMapsTo409(t *testing.T) {
	h, repo, p := newHandlerFixture()
	repo.saveErr = &ConflictError{PatientID: p.ID.String()}

	_, err := doRequest(h.AddComplaint, http.MethodPost,
		`{"complaint":"fever"}`, adminContext(),
		map[string]string{"id": p.ID.String()})
	if got := httpStatus(t, err); got != http.StatusConflict {
		t.Errorf("status = %d, want 409", got)
	}
}

func TestCreatePatientHandler(t *testing.T) {
	h, _, _ := newHandlerFixture()

	rec, err := doRequest(h.CreatePatient, http.MethodPost,
		`{"first_name":"Asha","last_name":"Rahman","phone":"01700000000"}`,
		adminContext(), nil)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	_, err = doRequest(h.CreatePatient, http.MethodPost,
		`{"first_name":"Asha"}`, adminContext(), nil)
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Errorf("missing fields status = %d, want 400", got)
	}
}
