package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
)

// projectResponse is the JSON shape for one saved project.
type projectResponse struct {
	ID                string                      `json:"id"`
	Project           services.ProjectDefinition  `json:"project"`
	CalculationResult *services.CalculationResult `json:"calculationResult,omitempty"`
	Created           string                      `json:"created"`
	Updated           string                      `json:"updated"`
}

func projectToResponse(r *core.Record) projectResponse {
	resp := projectResponse{
		ID:      r.Id,
		Project: projectFromRecord(r),
		Created: r.GetDateTime("created").String(),
		Updated: r.GetDateTime("updated").String(),
	}

	// The stored result is returned verbatim, never recomputed on load.
	var result services.CalculationResult
	if err := r.UnmarshalJSONField("calculation_result", &result); err == nil && len(result.Equipment)+len(result.CustomEquipment) > 0 {
		resp.CalculationResult = &result
	}
	return resp
}

// HandleProjectList returns all saved projects, newest first.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("projects", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("project_list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load projects"})
		}

		items := make([]projectResponse, 0, len(records))
		for _, r := range records {
			items = append(items, projectToResponse(r))
		}
		return e.JSON(http.StatusOK, items)
	}
}

// HandleProjectGet returns one saved project with its last stored result.
func HandleProjectGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing project id"})
		}

		r, err := app.FindRecordById("projects", id)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}

		return e.JSON(http.StatusOK, projectToResponse(r))
	}
}

// HandleProjectSave saves a project. Saving is an upsert keyed on project
// name and client name: a second save with the same pair updates the
// existing record instead of creating a duplicate.
func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var project services.ProjectDefinition
		if err := e.BindBody(&project); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		project.ProjectName = strings.TrimSpace(project.ProjectName)
		project.ClientName = strings.TrimSpace(project.ClientName)
		if project.ProjectName == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "projectName is required"})
		}
		if project.ClientName == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "clientName is required"})
		}
		if project.GlobalDiscount < 0 || project.GlobalDiscount > 100 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "globalDiscount must be between 0 and 100"})
		}

		r, err := app.FindFirstRecordByFilter(
			"projects",
			"project_name = {:projectName} && client_name = {:clientName}",
			map[string]any{"projectName": project.ProjectName, "clientName": project.ClientName},
		)
		created := false
		if err != nil || r == nil {
			col, err := app.FindCollectionByNameOrId("projects")
			if err != nil {
				log.Printf("project_save: %v", err)
				return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save project"})
			}
			r = core.NewRecord(col)
			created = true
		}

		applyProjectToRecord(r, project)
		if err := app.Save(r); err != nil {
			log.Printf("project_save: save: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save project"})
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		return e.JSON(status, projectToResponse(r))
	}
}

// HandleProjectDelete removes a saved project.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing project id"})
		}

		r, err := app.FindRecordById("projects", id)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}

		if err := app.Delete(r); err != nil {
			log.Printf("project_delete: %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete project"})
		}

		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// HandleProjectStats returns the portfolio summary: project count, how many
// carry a stored calculation, and the combined quoted value.
func HandleProjectStats(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("projects", "id != ''", "", 0, 0, nil)
		if err != nil {
			log.Printf("project_stats: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load projects"})
		}

		var calculated int
		var totalValue float64
		for _, r := range records {
			var result services.CalculationResult
			if err := r.UnmarshalJSONField("calculation_result", &result); err != nil {
				continue
			}
			if len(result.Equipment)+len(result.CustomEquipment) == 0 {
				continue
			}
			calculated++
			totalValue += result.GrandTotal
		}

		return e.JSON(http.StatusOK, map[string]any{
			"totalProjects":      len(records),
			"calculatedProjects": calculated,
			"totalValueJOD":      totalValue,
		})
	}
}
