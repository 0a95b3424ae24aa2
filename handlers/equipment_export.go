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

// HandleEquipmentExportExcel downloads the active catalog as an Excel file
// in the price-list layout.
func HandleEquipmentExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		items, err := loadActiveEquipment(app)
		if err != nil {
			log.Printf("equipment_export: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load equipment")
		}

		xlsxBytes, err := services.GenerateCatalogExcel(items)
		if err != nil {
			log.Printf("equipment_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Equipment_Catalog_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleEquipmentImportExcel accepts a multipart upload of a price list and
// upserts items by code. The response reports the per-row validation result;
// error rows are skipped, valid rows are applied.
func HandleEquipmentImportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing file upload"})
		}
		defer file.Close()

		result, err := services.ParseCatalogExcel(file)
		if err != nil {
			log.Printf("equipment_import: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		col, err := app.FindCollectionByNameOrId("equipment")
		if err != nil {
			log.Printf("equipment_import: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to import equipment"})
		}

		imported := 0
		for _, item := range result.Items {
			r, err := app.FindFirstRecordByFilter("equipment", "code = {:code}", map[string]any{"code": item.Code})
			if err != nil || r == nil {
				r = core.NewRecord(col)
				r.Set("code", item.Code)
			}
			r.Set("name", item.Name)
			r.Set("dealer_usd", item.DealerUSD)
			r.Set("client_usd", item.ClientUSD)
			r.Set("msrp_usd", item.MSRPUSD)
			r.Set("weight", item.Weight)
			r.Set("category", item.Category)
			r.Set("is_active", true)
			if err := app.Save(r); err != nil {
				log.Printf("equipment_import: save %q: %v", item.Code, err)
				continue
			}
			imported++
		}

		return e.JSON(http.StatusOK, map[string]any{
			"totalRows": result.TotalRows,
			"imported":  imported,
			"errorRows": result.ErrorRows,
			"errors":    result.Errors,
		})
	}
}
