package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
	"nogahub/templates"
)

func recordToProjectSummary(r *core.Record) templates.ProjectSummary {
	summary := templates.ProjectSummary{
		ID:          r.Id,
		ProjectName: r.GetString("project_name"),
		ClientName:  r.GetString("client_name"),
		Updated:     r.GetDateTime("updated").Time().Format("02 Jan 2006"),
	}

	var result services.CalculationResult
	if err := r.UnmarshalJSONField("calculation_result", &result); err == nil &&
		len(result.Equipment)+len(result.CustomEquipment) > 0 {
		summary.Calculated = true
		summary.GrandTotal = result.GrandTotal
	}
	return summary
}

// HandleDashboardPage renders the home page with portfolio stats and the
// five most recently updated projects.
func HandleDashboardPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("projects", "id != ''", "-updated", 0, 0, nil)
		if err != nil {
			log.Printf("dashboard: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load projects")
		}

		stats := templates.DashboardStats{TotalProjects: len(records)}
		recent := make([]templates.ProjectSummary, 0, 5)
		for _, r := range records {
			summary := recordToProjectSummary(r)
			if summary.Calculated {
				stats.CalculatedProjects++
				stats.TotalValueJOD += summary.GrandTotal
			}
			if len(recent) < 5 {
				recent = append(recent, summary)
			}
		}

		component := templates.Dashboard(stats, recent)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProjectListPage renders the full project listing.
func HandleProjectListPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("projects", "id != ''", "-updated", 0, 0, nil)
		if err != nil {
			log.Printf("project_list_page: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load projects")
		}

		projects := make([]templates.ProjectSummary, 0, len(records))
		for _, r := range records {
			projects = append(projects, recordToProjectSummary(r))
		}

		component := templates.ProjectList(projects)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleEquipmentPage renders the catalog listing.
func HandleEquipmentPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		items, err := loadActiveEquipment(app)
		if err != nil {
			log.Printf("equipment_page: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load equipment")
		}

		component := templates.EquipmentList(items)
		return component.Render(e.Request.Context(), e.Response)
	}
}
