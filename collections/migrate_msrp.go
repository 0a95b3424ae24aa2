package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateMissingMSRP backfills msrp_usd on equipment records imported from
// older price lists that carried no MSRP column. The backfill uses the
// standard retail markup of 25% over the client price. Safe to call on
// every startup -- returns early if nothing to migrate.
func MigrateMissingMSRP(app *pocketbase.PocketBase) error {
	equipmentCol, err := app.FindCollectionByNameOrId("equipment")
	if err != nil {
		return fmt.Errorf("migrate: could not find equipment collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		equipmentCol,
		"msrp_usd = 0 || msrp_usd = null",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query equipment without msrp: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d equipment record(s) without msrp_usd -- backfilling...\n", len(missing))

	for _, r := range missing {
		client := r.GetFloat("client_usd")
		if client == 0 {
			client = r.GetFloat("dealer_usd")
		}
		r.Set("msrp_usd", client*1.25)
		if err := app.Save(r); err != nil {
			log.Printf("migrate: failed to backfill msrp for %q (%s): %v\n", r.GetString("code"), r.Id, err)
			continue
		}
	}

	log.Println("migrate: msrp backfill complete.")
	return nil
}
