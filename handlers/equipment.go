package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
)

// equipmentResponse is the JSON shape for one catalog item.
type equipmentResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	DealerUSD float64 `json:"dealerUSD"`
	ClientUSD float64 `json:"clientUSD"`
	MSRPUSD   float64 `json:"msrpUSD"`
	Weight    float64 `json:"weight"`
	Category  string  `json:"category"`
	IsActive  bool    `json:"isActive"`
}

func equipmentToResponse(r *core.Record) equipmentResponse {
	return equipmentResponse{
		ID:        r.Id,
		Code:      r.GetString("code"),
		Name:      r.GetString("name"),
		DealerUSD: r.GetFloat("dealer_usd"),
		ClientUSD: r.GetFloat("client_usd"),
		MSRPUSD:   r.GetFloat("msrp_usd"),
		Weight:    r.GetFloat("weight"),
		Category:  r.GetString("category"),
		IsActive:  r.GetBool("is_active"),
	}
}

// equipmentRequest is the JSON body for create/update.
type equipmentRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	DealerUSD float64 `json:"dealerUSD"`
	ClientUSD float64 `json:"clientUSD"`
	MSRPUSD   float64 `json:"msrpUSD"`
	Weight    float64 `json:"weight"`
	Category  string  `json:"category"`
}

func (req equipmentRequest) validate() string {
	if strings.TrimSpace(req.Code) == "" {
		return "code is required"
	}
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.DealerUSD <= 0 {
		return "dealerUSD must be greater than zero"
	}
	if req.Category != services.CategoryVoid && req.Category != services.CategoryAccessory {
		return "category must be void or accessory"
	}
	return ""
}

// HandleEquipmentList returns the active catalog, optionally filtered by
// category and a case-insensitive search over code and name. Pass
// include_inactive=true to also return soft-deleted items.
func HandleEquipmentList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()

		filter := "is_active = true"
		params := map[string]any{}
		if query.Get("include_inactive") == "true" {
			filter = "id != ''"
		}
		if category := query.Get("category"); category != "" {
			filter += " && category = {:category}"
			params["category"] = category
		}
		if search := query.Get("search"); search != "" {
			filter += " && (code ~ {:search} || name ~ {:search})"
			params["search"] = search
		}

		records, err := app.FindRecordsByFilter("equipment", filter, "code", 0, 0, params)
		if err != nil {
			log.Printf("equipment_list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load equipment"})
		}

		items := make([]equipmentResponse, 0, len(records))
		for _, r := range records {
			items = append(items, equipmentToResponse(r))
		}
		return e.JSON(http.StatusOK, items)
	}
}

// HandleEquipmentCategories returns the distinct categories in use.
func HandleEquipmentCategories(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("equipment", "is_active = true", "", 0, 0, nil)
		if err != nil {
			log.Printf("equipment_categories: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load equipment"})
		}

		seen := map[string]bool{}
		categories := []string{}
		for _, r := range records {
			c := r.GetString("category")
			if c != "" && !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
		return e.JSON(http.StatusOK, categories)
	}
}

// HandleEquipmentCreate adds a catalog item. Codes are unique: creating
// with an existing code is rejected.
func HandleEquipmentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req equipmentRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if msg := req.validate(); msg != "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}

		existing, _ := app.FindFirstRecordByFilter("equipment", "code = {:code}", map[string]any{"code": req.Code})
		if existing != nil {
			return e.JSON(http.StatusConflict, map[string]string{"error": "an item with this code already exists"})
		}

		col, err := app.FindCollectionByNameOrId("equipment")
		if err != nil {
			log.Printf("equipment_create: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save equipment"})
		}

		r := core.NewRecord(col)
		r.Set("code", strings.TrimSpace(req.Code))
		r.Set("name", strings.TrimSpace(req.Name))
		r.Set("dealer_usd", req.DealerUSD)
		r.Set("client_usd", req.ClientUSD)
		r.Set("msrp_usd", req.MSRPUSD)
		r.Set("weight", req.Weight)
		r.Set("category", req.Category)
		r.Set("is_active", true)
		if err := app.Save(r); err != nil {
			log.Printf("equipment_create: save: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save equipment"})
		}

		return e.JSON(http.StatusCreated, equipmentToResponse(r))
	}
}

// HandleEquipmentUpdate modifies an existing catalog item.
func HandleEquipmentUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing equipment id"})
		}

		r, err := app.FindRecordById("equipment", id)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "equipment not found"})
		}

		var req equipmentRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if msg := req.validate(); msg != "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}

		r.Set("code", strings.TrimSpace(req.Code))
		r.Set("name", strings.TrimSpace(req.Name))
		r.Set("dealer_usd", req.DealerUSD)
		r.Set("client_usd", req.ClientUSD)
		r.Set("msrp_usd", req.MSRPUSD)
		r.Set("weight", req.Weight)
		r.Set("category", req.Category)
		if err := app.Save(r); err != nil {
			log.Printf("equipment_update: save %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save equipment"})
		}

		return e.JSON(http.StatusOK, equipmentToResponse(r))
	}
}

// HandleEquipmentDelete soft-deletes a catalog item. Saved projects keep
// referencing the code; the item just stops appearing in new quotes.
func HandleEquipmentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing equipment id"})
		}

		r, err := app.FindRecordById("equipment", id)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "equipment not found"})
		}

		r.Set("is_active", false)
		if err := app.Save(r); err != nil {
			log.Printf("equipment_delete: save %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete equipment"})
		}

		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
