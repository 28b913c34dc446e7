package labresults

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

	body := `{"type":"bloodPressure","systolic":120,"diastolic":80}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-results", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var lr LabResult
	json.Unmarshal(rec.Body.Bytes(), &lr)
	if lr.UserID != "u1" {
		t.Errorf("expected owner u1, got %s", lr.UserID)
	}
	if lr.Systolic == nil || *lr.Systolic != 120 {
		t.Errorf("expected systolic 120, got %v", lr.Systolic)
	}
}

func TestHandler_Create_ValidationError(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"bloodPressure","systolic":301,"diastolic":80}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-results", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	err := h.Create(c)
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

func TestHandler_Get_InvalidID(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_List_FiltersByType(t *testing.T) {
	h, e := newTestHandler()

	for _, body := range []string{
		`{"type":"bloodPressure","systolic":120,"diastolic":80}`,
		`{"type":"hba1c","hba1c":6.1}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-results", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lab-results?type=hba1c", nil)
	rec := httptest.NewRecorder()
	if err := h.List(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data  []*LabResult `json:"data"`
		Total int          `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("expected 1 hba1c result, got %d", resp.Total)
	}
}

func TestHandler_Update(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"bloodPressure","systolic":120,"diastolic":80}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-results", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var created LabResult
	json.Unmarshal(rec.Body.Bytes(), &created)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"systolic":135}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var updated LabResult
	json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Systolic == nil || *updated.Systolic != 135 {
		t.Errorf("expected systolic 135, got %v", updated.Systolic)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()

	body := `{"type":"hba1c","hba1c":6.1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-results", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Create(authedContext(e, req, rec, "u1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var created LabResult
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

	// Second delete hits nothing.
	rec = httptest.NewRecorder()
	c = authedContext(e, httptest.NewRequest(http.MethodDelete, "/", nil), rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())
	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeat delete, got %v", err)
	}
}
