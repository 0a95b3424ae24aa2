package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nogahub/testhelpers"
)

func TestHandleProjectSave_CreatesNew(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectSave(app)

	body := `{"projectName":"Club Install","clientName":"Amman Nights","equipment":[{"code":"VENU6","quantity":2}],"globalDiscount":5}`
	req := newJSONRequest(http.MethodPost, "/api/projects", body)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	r, err := app.FindFirstRecordByFilter("projects", "project_name = 'Club Install'")
	if err != nil {
		t.Fatalf("saved project not found: %v", err)
	}
	if got := r.GetFloat("global_discount"); got != 5 {
		t.Errorf("global_discount = %v, want 5", got)
	}
}

func TestHandleProjectSave_UpsertsByName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectSave(app)

	first := `{"projectName":"Club Install","clientName":"Amman Nights","equipment":[{"code":"VENU6","quantity":2}]}`
	req := newJSONRequest(http.MethodPost, "/api/projects", first)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first save, got %d", rec.Code)
	}

	// Same project and client pair updates in place.
	second := `{"projectName":"Club Install","clientName":"Amman Nights","equipment":[{"code":"VENU6","quantity":4}],"globalDiscount":10}`
	req = newJSONRequest(http.MethodPost, "/api/projects", second)
	rec = httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on second save, got %d", rec.Code)
	}

	records, err := app.FindRecordsByFilter("projects", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record after upsert, got %d", len(records))
	}
	if got := records[0].GetFloat("global_discount"); got != 10 {
		t.Errorf("global_discount = %v, want 10", got)
	}
}

func TestHandleProjectSave_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectSave(app)

	tests := []struct {
		name string
		body string
	}{
		{"missing project name", `{"clientName":"Amman Nights"}`},
		{"missing client name", `{"projectName":"Club Install"}`},
		{"blank project name", `{"projectName":"   ","clientName":"Amman Nights"}`},
		{"discount over 100", `{"projectName":"Club Install","clientName":"Amman Nights","globalDiscount":120}`},
		{"negative discount", `{"projectName":"Club Install","clientName":"Amman Nights","globalDiscount":-5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, "/api/projects", tt.body)
			rec := httptest.NewRecorder()
			if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleProjectDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Delete Me", "Some Client")

	handler := HandleProjectDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+proj.Id, nil)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("projects", proj.Id); err == nil {
		t.Error("expected project to be deleted")
	}
}

func TestHandleProjectDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleProjectStats(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Draft Project", "Client A")
	calculated := testhelpers.CreateTestProject(t, app, "Priced Project", "Client B")
	calculated.Set("calculation_result", map[string]any{
		"equipment":  []map[string]any{{"code": "VENU6", "quantity": 2}},
		"grandTotal": 1500.0,
	})
	if err := app.Save(calculated); err != nil {
		t.Fatalf("failed to store result: %v", err)
	}

	handler := HandleProjectStats(app)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/stats", nil)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var stats map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got := stats["totalProjects"].(float64); got != 2 {
		t.Errorf("totalProjects = %v, want 2", got)
	}
	if got := stats["calculatedProjects"].(float64); got != 1 {
		t.Errorf("calculatedProjects = %v, want 1", got)
	}
	if got := stats["totalValueJOD"].(float64); got != 1500 {
		t.Errorf("totalValueJOD = %v, want 1500", got)
	}
}
