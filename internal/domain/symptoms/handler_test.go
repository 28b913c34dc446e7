package symptoms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardiowell/cardiowell/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return e.NewContext(req.WithContext(ctx), rec)
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"chest_pain","severity":6,"duration":"20 minutes"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/symptoms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var sym Symptom
	json.Unmarshal(rec.Body.Bytes(), &sym)
	if sym.Severity == nil || *sym.Severity != 6 {
		t.Errorf("expected severity 6, got %v", sym.Severity)
	}
	if sym.UserID != "u1" {
		t.Errorf("expected owner u1, got %s", sym.UserID)
	}
}

func TestHandler_Create_SeverityOutOfRange(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"chest_pain","severity":11}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/symptoms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(authedContext(e, req, rec, "u1"))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, e := newTestHandler()

	for _, body := range []string{
		`{"type":"chest_pain","severity":6}`,
		`{"type":"fatigue","severity":3}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/symptoms", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/symptoms", nil)
	rec := httptest.NewRecorder()
	if err := h.List(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 2 {
		t.Errorf("expected 2 entries, got %d", resp.Total)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/symptoms?type=fatigue", nil)
	rec = httptest.NewRecorder()
	if err := h.List(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("expected 1 fatigue entry, got %d", resp.Total)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"dizziness","severity":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/symptoms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var created Symptom
	json.Unmarshal(rec.Body.Bytes(), &created)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	rec = httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
