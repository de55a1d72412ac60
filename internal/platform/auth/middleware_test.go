package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestMiddlewareCookie(t *testing.T) {
	cfg := testConfig()
	token, expires, err := IssueToken(cfg, "user-1", RoleAdmin, "")
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.AddCookie(SessionCookie(token, expires, false))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(cfg, func(echo.Context) bool { return false })(func(c echo.Context) error {
		claims := ClaimsFromContext(c.Request().Context())
		if claims == nil {
			t.Fatal("no claims on the request context")
		}
		if claims.Subject != "user-1" || claims.Role != RoleAdmin {
			t.Errorf("claims = %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
}

func TestMiddlewareBearerFallback(t *testing.T) {
	cfg := testConfig()
	token, _, err := IssueToken(cfg, "user-2", RolePatient, "p-1")
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/p-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(cfg, func(echo.Context) bool { return false })(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestMiddlewareRejects(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"bad token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer invalid")
		}},
		{"expired cookie token", func(r *http.Request) {
			expired := cfg
			expired.TTL = -time.Minute
			token, _, _ := IssueToken(expired, "user-1", RoleAdmin, "")
			r.AddCookie(SessionCookie(token, time.Now(), false))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
			tt.setup(req)
			c := e.NewContext(req, httptest.NewRecorder())

			err := Middleware(cfg, func(echo.Context) bool { return false })(okHandler)(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Errorf("err = %v, want 401", err)
			}
		})
	}
}

func TestMiddlewareSkipper(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(testConfig(), func(echo.Context) bool { return true })(okHandler)
	if err := handler(c); err != nil {
		t.Fatalf("skipped route should pass without credentials: %v", err)
	}
}

func TestDefaultSkipper(t *testing.T) {
	e := echo.New()

	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodPost, "/api/v1/auth/login", true},
		{http.MethodGet, "/health", true},
		{http.MethodGet, "/health/db", true},
		{http.MethodGet, "/api/v1/posts", true},
		{http.MethodGet, "/api/v1/posts/:id", true},
		{http.MethodPost, "/api/v1/posts", false},
		{http.MethodGet, "/api/v1/patients", false},
		{http.MethodPost, "/api/v1/auth/logout", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(tt.path)
		if got := DefaultSkipper(c); got != tt.want {
			t.Errorf("DefaultSkipper(%s %s) = %v, want %v", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(claims *Claims, roles ...string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if claims != nil {
			req = req.WithContext(WithClaims(req.Context(), claims))
		}
		c := e.NewContext(req, httptest.NewRecorder())
		return RequireRole(roles...)(okHandler)(c)
	}

	if err := run(&Claims{Role: RoleAdmin}, RolePatient); err != nil {
		t.Errorf("admin should pass any role check: %v", err)
	}
	if err := run(&Claims{Role: RolePatient}, RolePatient); err != nil {
		t.Errorf("matching role should pass: %v", err)
	}

	err := run(&Claims{Role: RolePatient}, RoleAdmin)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusForbidden {
		t.Errorf("wrong role err = %v, want 403", err)
	}

	err = run(nil, RoleAdmin)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("anonymous err = %v, want 401", err)
	}
}
