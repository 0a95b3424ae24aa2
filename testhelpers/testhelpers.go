// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nogahub/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestEquipment creates an active equipment record and returns it.
func CreateTestEquipment(t *testing.T, app *pocketbase.PocketBase, code, name string, dealerUSD, clientUSD, weight float64, category string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("equipment")
	if err != nil {
		t.Fatalf("failed to find equipment collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("dealer_usd", dealerUSD)
	record.Set("client_usd", clientUSD)
	record.Set("msrp_usd", clientUSD*1.25)
	record.Set("weight", weight)
	record.Set("category", category)
	record.Set("is_active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test equipment: %v", err)
	}

	return record
}

// CreateTestProject creates a project record with the given names and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, projectName, clientName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project_name", projectName)
	record.Set("client_name", clientName)
	record.Set("equipment", []map[string]any{})
	record.Set("global_discount", 0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
