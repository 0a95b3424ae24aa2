package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type equipmentDef struct {
	code      string
	name      string
	dealerUSD float64
	clientUSD float64
	msrpUSD   float64
	weight    float64
	category  string
}

// Seed populates the equipment collection with the Void Acoustics dealer
// price list plus the locally sourced accessories, so a fresh install can
// quote projects immediately. It is safe to call on every startup because
// it returns early if any equipment records already exist.
func Seed(app *pocketbase.PocketBase) error {
	equipmentCol, err := app.FindCollectionByNameOrId("equipment")
	if err != nil {
		return fmt.Errorf("seed: could not find equipment collection: %w", err)
	}
	existing, err := app.FindAllRecords(equipmentCol)
	if err != nil {
		return fmt.Errorf("seed: could not query equipment: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: equipment collection is empty – inserting catalog …")

	items := []equipmentDef{
		// Void Acoustics loudspeakers and subwoofers.
		{"VENU6", "Venu 6 Surface Loudspeaker", 395, 565, 706, 4.6, "void"},
		{"VENU8", "Venu 8 Surface Loudspeaker", 495, 710, 887, 7.2, "void"},
		{"VENU10", "Venu 10 Surface Loudspeaker", 640, 915, 1143, 10.5, "void"},
		{"VENU12", "Venu 12 Surface Loudspeaker", 820, 1170, 1462, 15.8, "void"},
		{"VENU112", "Venu 112 Subwoofer", 980, 1400, 1750, 24.0, "void"},
		{"VENU212", "Venu 212 Subwoofer", 1650, 2360, 2950, 42.5, "void"},
		{"CYC55", "Cyclone 55 Compact Loudspeaker", 310, 445, 556, 3.6, "void"},
		{"CYC8", "Cyclone 8 Loudspeaker", 460, 660, 825, 8.4, "void"},
		{"CYC10", "Cyclone 10 Loudspeaker", 580, 830, 1037, 12.1, "void"},
		{"CYCBASS", "Cyclone Bass Subwoofer", 890, 1275, 1593, 26.8, "void"},
		{"AIR8", "Air 8 Hybrid Loudspeaker", 1480, 2115, 2643, 16.5, "void"},
		{"AIRTEN", "Airten V3 Loudspeaker", 2350, 3360, 4200, 27.0, "void"},
		{"AIRV3", "Air Vantage V3 System", 5850, 8360, 10450, 58.0, "void"},
		{"STXAIR", "Stasys Xair Subwoofer", 3150, 4500, 5625, 68.5, "void"},
		{"STX218", "Stasys 218 Subwoofer", 3950, 5645, 7056, 92.0, "void"},
		// Void Acoustics amplifiers and processing.
		{"BIASQ2", "Bias Q2 Amplifier", 1420, 2030, 2537, 9.8, "void"},
		{"BIASQ3", "Bias Q3 Amplifier", 1890, 2700, 3375, 10.2, "void"},
		{"BIASD1", "Bias D1 Amplifier", 2450, 3500, 4375, 11.5, "void"},
		// Locally sourced accessories.
		{"AC1006", "CAT 6 Cables (305m Box)", 95, 145, 181, 10.0, "accessory"},
		{"AC1007", "NetGear 8-Port Gigabit Switch", 55, 85, 106, 0.8, "accessory"},
		{"AC1008", "Italy Power Cables (Per Roll)", 120, 180, 225, 18.0, "accessory"},
		{"AC1009", "Allen & Heath AHM-16 Audio Matrix", 1150, 1650, 2062, 4.3, "accessory"},
		{"AC1010", "Focusrite Scarlett 2i2 Interface", 165, 250, 312, 0.6, "accessory"},
		{"AC1011", "Speaker Wall Mount Bracket (Pair)", 48, 75, 94, 2.4, "accessory"},
	}

	for _, d := range items {
		r := core.NewRecord(equipmentCol)
		r.Set("code", d.code)
		r.Set("name", d.name)
		r.Set("dealer_usd", d.dealerUSD)
		r.Set("client_usd", d.clientUSD)
		r.Set("msrp_usd", d.msrpUSD)
		r.Set("weight", d.weight)
		r.Set("category", d.category)
		r.Set("is_active", true)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save equipment %q: %w", d.code, err)
		}
	}

	log.Printf("seed: inserted %d catalog items\n", len(items))
	return nil
}
