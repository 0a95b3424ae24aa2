package services

import (
	"math"
	"testing"
)

const tolerance = 0.001

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func testCatalog() Catalog {
	return BuildCatalog([]EquipmentItem{
		{Code: "X100", Name: "X100 Loudspeaker", DealerUSD: 100, ClientUSD: 150, Weight: 10, Category: CategoryVoid},
		{Code: "AMP-1", Name: "Power Amplifier", DealerUSD: 500, ClientUSD: 750, Weight: 25, Category: CategoryVoid},
		{Code: "AC1006", Name: "CAT 6 Cables", DealerUSD: 40, ClientUSD: 60, Weight: 2, Category: CategoryAccessory},
	})
}

func TestCalculateEmptyProject(t *testing.T) {
	project := ProjectDefinition{ProjectName: "Empty", ClientName: "Nobody"}
	if got := Calculate(project, testCatalog(), DefaultPricingConstants()); got != nil {
		t.Errorf("Calculate(empty project) = %+v, want nil", got)
	}
}

func TestCalculateSingleItem(t *testing.T) {
	// Hand-computed against the default constants: 2x X100 at $100 dealer,
	// $150 client, 10 kg each.
	project := ProjectDefinition{
		ProjectName: "Single Item",
		ClientName:  "Test Client",
		Equipment:   []EquipmentLine{{Code: "X100", Quantity: 2}},
	}

	result := Calculate(project, testCatalog(), DefaultPricingConstants())
	if result == nil {
		t.Fatal("Calculate returned nil for non-empty project")
	}

	checks := []struct {
		name   string
		got    float64
		expect float64
	}{
		{"DealerTotalUSD", result.DealerTotalUSD, 200},
		{"DealerTotalJOD", result.DealerTotalJOD, 142},
		{"ClientTotalJOD", result.ClientTotalJOD, 213},
		{"TotalWeight", result.TotalWeight, 20},
		{"ShippingCost", result.Landed.ShippingCost, 90},
		{"TotalShippingCost", result.Landed.TotalShippingCost, 240},
		{"TaxableAmount", result.Landed.TaxableAmount, 382},
		{"CustomsDuty", result.Landed.CustomsDuty, 19.1},
		{"ImportVAT", result.Landed.ImportVAT, 64.176},
		{"TotalCustomsExclVAT", result.Landed.TotalCustomsExclVAT, 138.09},
		{"TotalCustomsInclVAT", result.Landed.TotalCustomsInclVAT, 202.266},
		{"DoorToDoorCost", result.Landed.DoorToDoorCost, 584.266},
		{"DoorToDoorCostExclVAT", result.Landed.DoorToDoorCostExclVAT, 520.09},
		{"EquipmentSubtotalBeforeDiscount", result.EquipmentSubtotalBeforeDiscount, 591.09},
		{"SubtotalBeforeDiscount", result.SubtotalBeforeDiscount, 591.09},
		{"TaxAmount", result.TaxAmount, 94.5744},
		{"GrandTotal", result.GrandTotal, 685.6644},
		{"SalesProfit", result.Profit.SalesProfit, 71},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.expect) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.expect)
		}
	}

	if len(result.Equipment) != 1 {
		t.Fatalf("len(Equipment) = %d, want 1", len(result.Equipment))
	}
	line := result.Equipment[0]
	if !approxEqual(line.ShippingPerUnit, 120) {
		t.Errorf("ShippingPerUnit = %v, want 120", line.ShippingPerUnit)
	}
	if !approxEqual(line.CustomsPerUnit, 69.045) {
		t.Errorf("CustomsPerUnit = %v, want 69.045", line.CustomsPerUnit)
	}
	if !approxEqual(line.FinalUnitPriceJOD, 295.545) {
		t.Errorf("FinalUnitPriceJOD = %v, want 295.545", line.FinalUnitPriceJOD)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	project := ProjectDefinition{
		ProjectName: "Repeatable",
		ClientName:  "Client",
		Equipment: []EquipmentLine{
			{Code: "X100", Quantity: 4},
			{Code: "AMP-1", Quantity: 1},
		},
		Services:       ServiceSelections{Commissioning: ServiceSelection{Enabled: true}},
		GlobalDiscount: 5,
	}
	catalog := testCatalog()
	pc := DefaultPricingConstants()

	first := Calculate(project, catalog, pc)
	second := Calculate(project, catalog, pc)

	if first.GrandTotal != second.GrandTotal {
		t.Errorf("GrandTotal differs between runs: %v vs %v", first.GrandTotal, second.GrandTotal)
	}
	if first.Profit.SalesProfit != second.Profit.SalesProfit {
		t.Errorf("SalesProfit differs between runs: %v vs %v", first.Profit.SalesProfit, second.Profit.SalesProfit)
	}
	if first.Landed.DoorToDoorCost != second.Landed.DoorToDoorCost {
		t.Errorf("DoorToDoorCost differs between runs: %v vs %v", first.Landed.DoorToDoorCost, second.Landed.DoorToDoorCost)
	}
}

func TestCalculateAllocationSums(t *testing.T) {
	// Per-line shipping and customs adders must reassemble into the shipment
	// totals: sum of final line totals = client total + shipping + customs
	// excluding import VAT.
	project := ProjectDefinition{
		ProjectName: "Allocation",
		ClientName:  "Client",
		Equipment: []EquipmentLine{
			{Code: "X100", Quantity: 3},
			{Code: "AMP-1", Quantity: 2},
			{Code: "AC1006", Quantity: 10},
		},
	}

	result := Calculate(project, testCatalog(), DefaultPricingConstants())

	var sumFinal float64
	for _, line := range result.Equipment {
		sumFinal += line.FinalTotalJOD
	}

	expect := result.ClientTotalJOD + result.Landed.TotalShippingCost + result.Landed.TotalCustomsExclVAT
	if !approxEqual(sumFinal, expect) {
		t.Errorf("sum of line totals = %v, want %v", sumFinal, expect)
	}
	if !approxEqual(sumFinal, result.EquipmentSubtotalBeforeDiscount) {
		t.Errorf("sum of line totals = %v, want subtotal %v", sumFinal, result.EquipmentSubtotalBeforeDiscount)
	}
}

func TestCalculateDiscountAppliedOnce(t *testing.T) {
	project := ProjectDefinition{
		ProjectName: "Discounted",
		ClientName:  "Client",
		Equipment:   []EquipmentLine{{Code: "X100", Quantity: 2}},
		Services:    ServiceSelections{Commissioning: ServiceSelection{Enabled: true}},
	}
	catalog := testCatalog()
	pc := DefaultPricingConstants()

	base := Calculate(project, catalog, pc)

	project.GlobalDiscount = 10
	discounted := Calculate(project, catalog, pc)

	if !approxEqual(discounted.SubtotalBeforeDiscount, base.SubtotalBeforeDiscount) {
		t.Errorf("SubtotalBeforeDiscount changed with discount: %v vs %v",
			discounted.SubtotalBeforeDiscount, base.SubtotalBeforeDiscount)
	}
	if !approxEqual(discounted.DiscountAmount, base.SubtotalBeforeDiscount*0.10) {
		t.Errorf("DiscountAmount = %v, want %v", discounted.DiscountAmount, base.SubtotalBeforeDiscount*0.10)
	}
	if !approxEqual(discounted.SubtotalAfterDiscount, base.SubtotalBeforeDiscount*0.90) {
		t.Errorf("SubtotalAfterDiscount = %v, want %v", discounted.SubtotalAfterDiscount, base.SubtotalBeforeDiscount*0.90)
	}
	if !approxEqual(discounted.TaxAmount, discounted.SubtotalAfterDiscount*0.16) {
		t.Errorf("TaxAmount = %v, want 16%% of discounted subtotal %v",
			discounted.TaxAmount, discounted.SubtotalAfterDiscount*0.16)
	}
	if !approxEqual(discounted.GrandTotal, discounted.SubtotalAfterDiscount+discounted.TaxAmount) {
		t.Errorf("GrandTotal = %v, want %v", discounted.GrandTotal,
			discounted.SubtotalAfterDiscount+discounted.TaxAmount)
	}
	if !approxEqual(discounted.EquipmentSubtotalAfterDiscount, base.EquipmentSubtotalBeforeDiscount*0.90) {
		t.Errorf("EquipmentSubtotalAfterDiscount = %v, want %v",
			discounted.EquipmentSubtotalAfterDiscount, base.EquipmentSubtotalBeforeDiscount*0.90)
	}
}

func TestCalculateCustomEquipmentOnly(t *testing.T) {
	// No catalog equipment means a zero dealer total: the allocation shares
	// must stay zero instead of dividing by zero, and only the flat fees
	// appear in the landed cost.
	project := ProjectDefinition{
		ProjectName: "Custom Only",
		ClientName:  "Client",
		CustomEquipment: []CustomEquipmentLine{
			{Name: "Acoustic Panels", Price: 120, Quantity: 10},
		},
	}

	result := Calculate(project, testCatalog(), DefaultPricingConstants())
	if result == nil {
		t.Fatal("Calculate returned nil for project with custom equipment")
	}

	if !approxEqual(result.CustomEquipmentTotal, 1200) {
		t.Errorf("CustomEquipmentTotal = %v, want 1200", result.CustomEquipmentTotal)
	}
	if math.IsNaN(result.GrandTotal) || math.IsInf(result.GrandTotal, 0) {
		t.Errorf("GrandTotal = %v, want finite value", result.GrandTotal)
	}
	if !approxEqual(result.Landed.TotalShippingCost, 150) {
		t.Errorf("TotalShippingCost = %v, want flat fees 150", result.Landed.TotalShippingCost)
	}
	if len(result.CustomEquipment) != 1 {
		t.Fatalf("len(CustomEquipment) = %d, want 1", len(result.CustomEquipment))
	}
	if result.CustomEquipment[0].Code != "CUSTOM-1" {
		t.Errorf("custom code = %q, want CUSTOM-1", result.CustomEquipment[0].Code)
	}
	if result.CustomEquipment[0].ShippingPerUnit != 0 || result.CustomEquipment[0].CustomsPerUnit != 0 {
		t.Error("custom equipment must not receive shipping or customs adders")
	}
}

func TestCalculateSkipsInvalidLines(t *testing.T) {
	project := ProjectDefinition{
		ProjectName: "Invalid Lines",
		ClientName:  "Client",
		Equipment: []EquipmentLine{
			{Code: "X100", Quantity: 2},
			{Code: "NO-SUCH-CODE", Quantity: 5},
			{Code: "AMP-1", Quantity: 0},
			{Code: "AC1006", Quantity: -1},
		},
		CustomEquipment: []CustomEquipmentLine{
			{Name: "", Price: 100, Quantity: 1},
			{Name: "Free Item", Price: 0, Quantity: 1},
			{Name: "Phantom", Price: 100, Quantity: 0},
		},
	}

	result := Calculate(project, testCatalog(), DefaultPricingConstants())

	if len(result.Equipment) != 1 {
		t.Errorf("len(Equipment) = %d, want 1 (invalid lines skipped)", len(result.Equipment))
	}
	if len(result.CustomEquipment) != 0 {
		t.Errorf("len(CustomEquipment) = %d, want 0 (invalid lines skipped)", len(result.CustomEquipment))
	}
	if !approxEqual(result.DealerTotalUSD, 200) {
		t.Errorf("DealerTotalUSD = %v, want 200", result.DealerTotalUSD)
	}
}

func TestCalcServicesDefaults(t *testing.T) {
	pc := DefaultPricingConstants()
	selections := ServiceSelections{
		Commissioning: ServiceSelection{Enabled: true},
		NoiseControl:  ServiceSelection{Enabled: true},
		SoundDesign:   ServiceSelection{Enabled: true},
	}

	costs := CalcServices(selections, nil, 1000, pc)

	if !approxEqual(costs.Commissioning, 60) {
		t.Errorf("Commissioning = %v, want 60", costs.Commissioning)
	}
	if !approxEqual(costs.NoiseControl, 100) {
		t.Errorf("NoiseControl = %v, want 100", costs.NoiseControl)
	}
	if !approxEqual(costs.SoundDesign, 25) {
		t.Errorf("SoundDesign = %v, want 25", costs.SoundDesign)
	}
	if !approxEqual(costs.Total, 185) {
		t.Errorf("Total = %v, want 185", costs.Total)
	}
}

func TestCalcServicesCustomValueOverride(t *testing.T) {
	pc := DefaultPricingConstants()

	tests := []struct {
		name   string
		sel    ServiceSelection
		expect float64
	}{
		{"disabled", ServiceSelection{}, 0},
		{"disabled with custom value", ServiceSelection{CustomValue: 500}, 0},
		{"enabled default rate", ServiceSelection{Enabled: true}, 60},
		{"enabled custom value", ServiceSelection{Enabled: true, CustomValue: 500}, 500},
		{"enabled zero custom value uses default", ServiceSelection{Enabled: true, CustomValue: 0}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs := CalcServices(ServiceSelections{Commissioning: tt.sel}, nil, 1000, pc)
			if !approxEqual(costs.Commissioning, tt.expect) {
				t.Errorf("Commissioning = %v, want %v", costs.Commissioning, tt.expect)
			}
		})
	}
}

func TestCalcServicesCustomServices(t *testing.T) {
	costs := CalcServices(ServiceSelections{}, []CustomService{
		{Name: "Rigging", Price: 300},
		{Name: "Training", Price: 150},
	}, 1000, DefaultPricingConstants())

	if !approxEqual(costs.CustomServicesTotal, 450) {
		t.Errorf("CustomServicesTotal = %v, want 450", costs.CustomServicesTotal)
	}
	if !approxEqual(costs.Total, 450) {
		t.Errorf("Total = %v, want 450", costs.Total)
	}
}

func TestBuildCatalogNormalization(t *testing.T) {
	catalog := BuildCatalog([]EquipmentItem{
		{Code: "A", Name: "No client price", DealerUSD: 100},
		{Code: "B", Name: "No msrp", DealerUSD: 100, ClientUSD: 150},
		{Code: "DUP", Name: "First", DealerUSD: 10},
		{Code: "DUP", Name: "Second", DealerUSD: 20},
	})

	a, _ := catalog.Lookup("A")
	if a.ClientUSD != 100 || a.MSRPUSD != 100 {
		t.Errorf("item A = %+v, want client and msrp fallback to 100", a)
	}
	b, _ := catalog.Lookup("B")
	if b.MSRPUSD != 150 {
		t.Errorf("item B MSRPUSD = %v, want fallback 150", b.MSRPUSD)
	}
	dup, _ := catalog.Lookup("DUP")
	if dup.Name != "Second" {
		t.Errorf("duplicate code kept %q, want later entry to win", dup.Name)
	}
	if _, ok := catalog.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) reported ok")
	}
}
