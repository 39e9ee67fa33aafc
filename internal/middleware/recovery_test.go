package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRecoveryReturnsJSONError(t *testing.T) {
	e := echo.New()
	e.Use(Recovery())
	e.GET("/boom", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %q: %v", rec.Body.String(), err)
	}
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("unexpected error field: %q", body["error"])
	}
	if body["message"] == "" {
		t.Error("expected a message field")
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Recovery())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}
