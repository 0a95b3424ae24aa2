package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/services"
)

// loadProjectWithResult fetches a project record and its stored calculation
// result. Documents are rendered only from a stored result: if the project
// was never calculated, or its inputs changed since, the caller must
// calculate first.
func loadProjectWithResult(app *pocketbase.PocketBase, id string) (services.ProjectDefinition, *services.CalculationResult, error) {
	r, err := app.FindRecordById("projects", id)
	if err != nil {
		return services.ProjectDefinition{}, nil, fmt.Errorf("project not found: %w", err)
	}

	var result services.CalculationResult
	if err := r.UnmarshalJSONField("calculation_result", &result); err != nil {
		return services.ProjectDefinition{}, nil, fmt.Errorf("project has no calculation result: %w", err)
	}
	if len(result.Equipment)+len(result.CustomEquipment) == 0 {
		return services.ProjectDefinition{}, nil, fmt.Errorf("project has no calculation result")
	}

	return projectFromRecord(r), &result, nil
}

// HandleQuotationPDF downloads the client quotation for a calculated project.
func HandleQuotationPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		project, result, err := loadProjectWithResult(app, id)
		if err != nil {
			log.Printf("quotation_pdf: %v", err)
			return e.String(http.StatusNotFound, "Project has no calculation to export")
		}

		data := services.BuildQuotationData(project, result, time.Now().Format("02 Jan 2006"))
		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("quotation_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quotation_%s_%d.pdf", sanitizeFilename(project.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandlePOPDF downloads the distributor purchase order for a calculated
// project. The order carries only factory catalog lines at dealer USD.
func HandlePOPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		project, result, err := loadProjectWithResult(app, id)
		if err != nil {
			log.Printf("po_pdf: %v", err)
			return e.String(http.StatusNotFound, "Project has no calculation to export")
		}

		data := services.BuildPOData(project, result, time.Now().Format("02 Jan 2006"))
		if len(data.Rows) == 0 {
			return e.String(http.StatusBadRequest, "Project has no factory equipment to order")
		}

		pdfBytes, err := services.GeneratePOPDF(data)
		if err != nil {
			log.Printf("po_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("PO_%s_%d.pdf", sanitizeFilename(project.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
