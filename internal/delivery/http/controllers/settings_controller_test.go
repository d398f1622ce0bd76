package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"munsociety/internal/domain"
)

type mockSettingsService struct {
	values map[string]domain.SettingValue
	setErr error
}

func (m *mockSettingsService) GetAll(ctx context.Context) map[string]domain.SettingValue {
	return m.values
}

func (m *mockSettingsService) SetAll(ctx context.Context, values map[string]domain.SettingValue) error {
	if m.setErr != nil {
		return m.setErr
	}
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func TestSettingsController_Update_DecodesBoolsAndText(t *testing.T) {
	svc := &mockSettingsService{values: map[string]domain.SettingValue{}}
	ctrl := NewSettingsController(testControllerLogger(), svc)

	body := `{"showJoinUs":true,"joinUsLink":"https://forms.example/join"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if b, ok := svc.values["showJoinUs"].Bool(); !ok || !b {
		t.Errorf("expected showJoinUs to decode as boolean true, got %+v", svc.values["showJoinUs"])
	}
	if s, ok := svc.values["joinUsLink"].Text(); !ok || s != "https://forms.example/join" {
		t.Errorf("expected joinUsLink to decode as text, got %+v", svc.values["joinUsLink"])
	}
}

func TestSettingsController_Update_RejectsNonScalarValues(t *testing.T) {
	svc := &mockSettingsService{values: map[string]domain.SettingValue{}}
	ctrl := NewSettingsController(testControllerLogger(), svc)

	body := `{"showJoinUs":{"nested":true}}`
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Update(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSettingsController_Get(t *testing.T) {
	svc := &mockSettingsService{values: map[string]domain.SettingValue{
		"showJoinUs": domain.BoolValue(false),
	}}
	ctrl := NewSettingsController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	ctrl.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"showJoinUs":false`) {
		t.Errorf("expected boolean JSON in body, got %s", w.Body.String())
	}
}
