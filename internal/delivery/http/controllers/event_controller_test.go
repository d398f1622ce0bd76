package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"munsociety/internal/delivery/http/helpers"
	"munsociety/internal/domain"
)

type mockEventService struct {
	events  []*domain.Event
	saved   *domain.Event
	saveErr error
	delErr  error
}

func (m *mockEventService) List(ctx context.Context) []*domain.Event {
	return m.events
}

func (m *mockEventService) GetByID(ctx context.Context, id string) (*domain.Event, bool) {
	for _, e := range m.events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func (m *mockEventService) Save(ctx context.Context, event *domain.Event) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if event.ID == "" {
		event.ID = "generated-id"
	}
	m.saved = event
	return nil
}

func (m *mockEventService) DeleteByID(ctx context.Context, id string) error {
	return m.delErr
}

func testControllerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestEventController_List(t *testing.T) {
	svc := &mockEventService{events: []*domain.Event{
		{ID: "e1", Title: "Winter Conference", Date: "2026-01-10", Status: domain.EventStatusOpen},
	}}
	ctrl := NewEventController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	ctrl.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestEventController_Get_NotFound(t *testing.T) {
	ctrl := NewEventController(testControllerLogger(), &mockEventService{})

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	ctrl.Get(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_Save_CreatesWhenIDEmpty(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(testControllerLogger(), svc)

	body := `{"title":"Spring Summit","date":"2026-04-02","status":"Upcoming"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Save(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if svc.saved == nil || svc.saved.Title != "Spring Summit" {
		t.Fatalf("expected saved event, got %+v", svc.saved)
	}
}

func TestEventController_Save_RejectsUnknownStatus(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(testControllerLogger(), svc)

	body := `{"title":"Spring Summit","date":"2026-04-02","status":"cancelled"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Save(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.saved != nil {
		t.Fatalf("expected save to be rejected, saved %+v", svc.saved)
	}
}

func TestEventController_Save_MissingTitle(t *testing.T) {
	ctrl := NewEventController(testControllerLogger(), &mockEventService{})

	body := `{"date":"2026-04-02","status":"Open"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Save(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_Save_UpdateNotFound(t *testing.T) {
	svc := &mockEventService{saveErr: domain.ErrNotFound}
	ctrl := NewEventController(testControllerLogger(), svc)

	body := `{"id":"missing","title":"Spring Summit","date":"2026-04-02","status":"Open"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Save(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_Delete_Error(t *testing.T) {
	svc := &mockEventService{delErr: errors.New("db down")}
	ctrl := NewEventController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/events/e1", nil)
	req.SetPathValue("id", "e1")
	w := httptest.NewRecorder()
	ctrl.Delete(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
