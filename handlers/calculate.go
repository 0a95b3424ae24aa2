package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
)

// HandleProjectCalculate runs the pricing engine on a saved project against
// the current catalog snapshot and persists the result verbatim on the
// record. Subsequent loads return that stored result unchanged.
func HandleProjectCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing project id"})
		}

		r, err := app.FindRecordById("projects", id)
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("calculate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load catalog"})
		}

		project := projectFromRecord(r)
		result := services.Calculate(project, catalog, services.DefaultPricingConstants())
		if result == nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "project has no equipment to price"})
		}

		r.Set("calculation_result", result)
		if err := app.Save(r); err != nil {
			log.Printf("calculate: save %s: %v", id, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store result"})
		}

		return e.JSON(http.StatusOK, result)
	}
}

// HandleCalculatePreview prices a project definition from the request body
// without touching any saved record. The quotation screen uses it to show
// live totals while the user edits.
func HandleCalculatePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var project services.ProjectDefinition
		if err := e.BindBody(&project); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if project.GlobalDiscount < 0 || project.GlobalDiscount > 100 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "globalDiscount must be between 0 and 100"})
		}

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("calculate_preview: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load catalog"})
		}

		result := services.Calculate(project, catalog, services.DefaultPricingConstants())
		if result == nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "project has no equipment to price"})
		}

		return e.JSON(http.StatusOK, result)
	}
}
