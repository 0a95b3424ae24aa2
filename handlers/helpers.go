package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
)

// recordToEquipmentItem maps an equipment record to the engine's catalog type.
func recordToEquipmentItem(r *core.Record) services.EquipmentItem {
	return services.EquipmentItem{
		Code:      r.GetString("code"),
		Name:      r.GetString("name"),
		DealerUSD: r.GetFloat("dealer_usd"),
		ClientUSD: r.GetFloat("client_usd"),
		MSRPUSD:   r.GetFloat("msrp_usd"),
		Weight:    r.GetFloat("weight"),
		Category:  r.GetString("category"),
	}
}

// loadActiveEquipment fetches all active equipment records in code order.
func loadActiveEquipment(app *pocketbase.PocketBase) ([]services.EquipmentItem, error) {
	records, err := app.FindRecordsByFilter(
		"equipment",
		"is_active = true",
		"code",
		0,
		0,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("query active equipment: %w", err)
	}

	items := make([]services.EquipmentItem, 0, len(records))
	for _, r := range records {
		items = append(items, recordToEquipmentItem(r))
	}
	return items, nil
}

// loadCatalog takes the catalog snapshot one calculation runs against.
func loadCatalog(app *pocketbase.PocketBase) (services.Catalog, error) {
	items, err := loadActiveEquipment(app)
	if err != nil {
		return nil, err
	}
	return services.BuildCatalog(items), nil
}

// projectFromRecord decodes the stored JSON fields of a project record into
// the engine's input type. Malformed stored JSON is logged and treated as
// empty rather than failing the request.
func projectFromRecord(r *core.Record) services.ProjectDefinition {
	project := services.ProjectDefinition{
		ProjectName:    r.GetString("project_name"),
		ClientName:     r.GetString("client_name"),
		GlobalDiscount: r.GetFloat("global_discount"),
	}

	unmarshal := func(field string, dst any) {
		if err := r.UnmarshalJSONField(field, dst); err != nil {
			log.Printf("project %s: bad %s JSON: %v", r.Id, field, err)
		}
	}
	unmarshal("equipment", &project.Equipment)
	unmarshal("custom_equipment", &project.CustomEquipment)
	unmarshal("services", &project.Services)
	unmarshal("custom_services", &project.CustomServices)
	unmarshal("roles", &project.Roles)

	return project
}

// applyProjectToRecord writes a project definition onto a record.
func applyProjectToRecord(r *core.Record, project services.ProjectDefinition) {
	r.Set("project_name", project.ProjectName)
	r.Set("client_name", project.ClientName)
	r.Set("equipment", project.Equipment)
	r.Set("custom_equipment", project.CustomEquipment)
	r.Set("services", project.Services)
	r.Set("custom_services", project.CustomServices)
	r.Set("roles", project.Roles)
	r.Set("global_discount", project.GlobalDiscount)
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
