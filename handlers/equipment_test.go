package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nogahub/services"
	"nogahub/testhelpers"
)

func TestHandleEquipmentCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleEquipmentCreate(app)

	body := `{"code":"VENU6","name":"Venu 6 Speaker","dealerUSD":250,"clientUSD":375,"msrpUSD":468.75,"weight":8.5,"category":"void"}`
	req := newJSONRequest(http.MethodPost, "/api/equipment", body)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	r, err := app.FindFirstRecordByFilter("equipment", "code = {:code}", map[string]any{"code": "VENU6"})
	if err != nil {
		t.Fatalf("created item not found: %v", err)
	}
	if !r.GetBool("is_active") {
		t.Error("expected new item to be active")
	}
	if got := r.GetFloat("dealer_usd"); got != 250 {
		t.Errorf("dealer_usd = %v, want 250", got)
	}
}

func TestHandleEquipmentCreate_DuplicateCode(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEquipment(t, app, "VENU6", "Venu 6 Speaker", 250, 375, 8.5, services.CategoryVoid)

	handler := HandleEquipmentCreate(app)

	body := `{"code":"VENU6","name":"Another Speaker","dealerUSD":100,"category":"void"}`
	req := newJSONRequest(http.MethodPost, "/api/equipment", body)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestHandleEquipmentCreate_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleEquipmentCreate(app)

	tests := []struct {
		name string
		body string
	}{
		{"missing code", `{"name":"Speaker","dealerUSD":100,"category":"void"}`},
		{"missing name", `{"code":"X1","dealerUSD":100,"category":"void"}`},
		{"zero dealer price", `{"code":"X1","name":"Speaker","dealerUSD":0,"category":"void"}`},
		{"bad category", `{"code":"X1","name":"Speaker","dealerUSD":100,"category":"misc"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, "/api/equipment", tt.body)
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

func TestHandleEquipmentDelete_SoftDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	item := testhelpers.CreateTestEquipment(t, app, "VENU6", "Venu 6 Speaker", 250, 375, 8.5, services.CategoryVoid)

	handler := HandleEquipmentDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/equipment/"+item.Id, nil)
	req.SetPathValue("id", item.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The record survives, it is just no longer active.
	r, err := app.FindRecordById("equipment", item.Id)
	if err != nil {
		t.Fatalf("expected record to still exist: %v", err)
	}
	if r.GetBool("is_active") {
		t.Error("expected item to be inactive after delete")
	}
}

func TestHandleEquipmentList_ExcludesInactive(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEquipment(t, app, "VENU6", "Venu 6 Speaker", 250, 375, 8.5, services.CategoryVoid)
	retired := testhelpers.CreateTestEquipment(t, app, "OLD1", "Retired Amp", 100, 150, 5, services.CategoryVoid)
	retired.Set("is_active", false)
	if err := app.Save(retired); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	handler := HandleEquipmentList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 active item, got %d", len(items))
	}
	if items[0]["code"] != "VENU6" {
		t.Errorf("unexpected item: %v", items[0]["code"])
	}

	// include_inactive=true returns both.
	req = httptest.NewRequest(http.MethodGet, "/api/equipment?include_inactive=true", nil)
	rec = httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items with include_inactive, got %d", len(items))
	}
}

func TestHandleEquipmentList_SearchFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEquipment(t, app, "VENU6", "Venu 6 Speaker", 250, 375, 8.5, services.CategoryVoid)
	testhelpers.CreateTestEquipment(t, app, "AC1006", "CAT 6 Cables", 5, 8, 0.2, services.CategoryAccessory)

	handler := HandleEquipmentList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/equipment?search=Cables", nil)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0]["code"] != "AC1006" {
		t.Errorf("expected only AC1006, got %v", items)
	}
}
