package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/collections"
	"nogahub/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed the catalog, and backfill data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		if err := collections.MigrateMissingMSRP(app); err != nil {
			log.Printf("Warning: MSRP backfill failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Pages ────────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleDashboardPage(app))
		se.Router.GET("/projects", handlers.HandleProjectListPage(app))
		se.Router.GET("/equipment", handlers.HandleEquipmentPage(app))

		// ── Equipment catalog API ────────────────────────────────
		se.Router.GET("/api/equipment", handlers.HandleEquipmentList(app))
		se.Router.GET("/api/equipment/categories", handlers.HandleEquipmentCategories(app))
		se.Router.POST("/api/equipment", handlers.HandleEquipmentCreate(app))
		se.Router.PATCH("/api/equipment/{id}", handlers.HandleEquipmentUpdate(app))
		se.Router.DELETE("/api/equipment/{id}", handlers.HandleEquipmentDelete(app))
		se.Router.GET("/api/equipment/export/excel", handlers.HandleEquipmentExportExcel(app))
		se.Router.POST("/api/equipment/import/excel", handlers.HandleEquipmentImportExcel(app))

		// ── Project API ──────────────────────────────────────────
		se.Router.GET("/api/projects", handlers.HandleProjectList(app))
		se.Router.GET("/api/projects/stats", handlers.HandleProjectStats(app))
		se.Router.POST("/api/projects", handlers.HandleProjectSave(app))
		se.Router.GET("/api/projects/{id}", handlers.HandleProjectGet(app))
		se.Router.DELETE("/api/projects/{id}", handlers.HandleProjectDelete(app))

		// ── Calculation ──────────────────────────────────────────
		se.Router.POST("/api/calculate", handlers.HandleCalculatePreview(app))
		se.Router.POST("/api/projects/{id}/calculate", handlers.HandleProjectCalculate(app))

		// ── Document export ──────────────────────────────────────
		se.Router.GET("/api/projects/{id}/quotation/pdf", handlers.HandleQuotationPDF(app))
		se.Router.GET("/api/projects/{id}/po/pdf", handlers.HandlePOPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
