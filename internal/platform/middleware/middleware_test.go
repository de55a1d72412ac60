package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		if c.Get("request_id") == "" {
			t.Error("request_id missing from context")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("response is missing the request id header")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("request id = %q, want the caller's id preserved", got)
	}
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	handler := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func() error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		c := e.NewContext(req, httptest.NewRecorder())
		return handler(c)
	}

	// Two requests fit in the burst; the third is throttled.
	if err := do(); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if err := do(); err != nil {
		t.Fatalf("second request: %v", err)
	}
	err := do()
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Errorf("third request err = %v, want 429", err)
	}
}

func TestRateLimitIsolatesClients(t *testing.T) {
	e := echo.New()
	handler := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(addr string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		c := e.NewContext(req, httptest.NewRecorder())
		return handler(c)
	}

	if err := do("10.0.0.1:1234"); err != nil {
		t.Fatal(err)
	}
	if err := do("10.0.0.1:1234"); err == nil {
		t.Error("expected the first client to be throttled")
	}
	if err := do("10.0.0.2:1234"); err != nil {
		t.Errorf("a different client should not be throttled: %v", err)
	}
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("err = %v, want 500", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("boom")) {
		t.Error("panic value was not logged")
	}
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Logger(logger)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/api/v1/patients")) {
		t.Errorf("request path missing from log output: %s", buf.String())
	}
}
