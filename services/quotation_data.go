package services

// QuotationRow is a single line in the quotation table.
type QuotationRow struct {
	Index       int
	Code        string
	Description string
	Qty         float64
	UnitPrice   float64
	Total       float64
}

// QuotationServiceRow is a single service line below the equipment table.
type QuotationServiceRow struct {
	Description string
	Amount      float64
}

// QuotationData holds everything the quotation PDF needs. It is assembled
// from a saved CalculationResult; nothing is recomputed here.
type QuotationData struct {
	ProjectName string
	ClientName  string
	Date        string

	EquipmentRows []QuotationRow
	ServiceRows   []QuotationServiceRow

	EquipmentSubtotal float64
	ServicesTotal     float64
	SubtotalBefore    float64
	DiscountPercent   float64
	DiscountAmount    float64
	SubtotalAfter     float64
	TaxAmount         float64
	GrandTotal        float64
	AmountInWords     string
}

// PORow is a single line of the purchase order sent to the distributor.
// Prices are dealer USD, straight off the price list.
type PORow struct {
	Index     int
	Code      string
	Name      string
	Qty       float64
	DealerUSD float64
	TotalUSD  float64
	WeightKg  float64
}

// POData holds everything the purchase-order PDF needs.
type POData struct {
	ProjectName string
	ClientName  string
	Date        string

	Rows        []PORow
	TotalUSD    float64
	TotalWeight float64
}

// BuildQuotationData flattens a calculation result into quotation rows.
// Catalog and custom equipment share one table; services get their own
// section with the standard services named and custom services listed by
// their given names.
func BuildQuotationData(project ProjectDefinition, result *CalculationResult, date string) QuotationData {
	data := QuotationData{
		ProjectName: project.ProjectName,
		ClientName:  project.ClientName,
		Date:        date,

		EquipmentSubtotal: result.EquipmentSubtotalBeforeDiscount + result.CustomEquipmentTotal,
		ServicesTotal:     result.Services.Total,
		SubtotalBefore:    result.SubtotalBeforeDiscount,
		DiscountPercent:   result.DiscountPercent,
		DiscountAmount:    result.DiscountAmount,
		SubtotalAfter:     result.SubtotalAfterDiscount,
		TaxAmount:         result.TaxAmount,
		GrandTotal:        result.GrandTotal,
		AmountInWords:     AmountToWords(result.GrandTotal),
	}

	idx := 0
	for _, d := range result.Equipment {
		idx++
		data.EquipmentRows = append(data.EquipmentRows, QuotationRow{
			Index:       idx,
			Code:        d.Code,
			Description: d.Name,
			Qty:         d.Quantity,
			UnitPrice:   d.FinalUnitPriceJOD,
			Total:       d.FinalTotalJOD,
		})
	}
	for _, d := range result.CustomEquipment {
		idx++
		data.EquipmentRows = append(data.EquipmentRows, QuotationRow{
			Index:       idx,
			Code:        d.Code,
			Description: d.Name,
			Qty:         d.Quantity,
			UnitPrice:   d.FinalUnitPriceJOD,
			Total:       d.FinalTotalJOD,
		})
	}

	if result.Services.Commissioning > 0 {
		data.ServiceRows = append(data.ServiceRows, QuotationServiceRow{
			Description: "System Commissioning",
			Amount:      result.Services.Commissioning,
		})
	}
	if result.Services.NoiseControl > 0 {
		data.ServiceRows = append(data.ServiceRows, QuotationServiceRow{
			Description: "Noise Control Engineering",
			Amount:      result.Services.NoiseControl,
		})
	}
	if result.Services.SoundDesign > 0 {
		data.ServiceRows = append(data.ServiceRows, QuotationServiceRow{
			Description: "Sound System Design",
			Amount:      result.Services.SoundDesign,
		})
	}
	for _, cs := range project.CustomServices {
		if cs.Name == "" {
			continue
		}
		data.ServiceRows = append(data.ServiceRows, QuotationServiceRow{
			Description: cs.Name,
			Amount:      cs.Price,
		})
	}

	return data
}

// BuildPOData extracts the distributor order from a calculation result.
// Only factory catalog lines go on the PO; accessories are sourced locally
// and custom equipment never leaves the quotation.
func BuildPOData(project ProjectDefinition, result *CalculationResult, date string) POData {
	data := POData{
		ProjectName: project.ProjectName,
		ClientName:  project.ClientName,
		Date:        date,
	}

	idx := 0
	for _, d := range result.Equipment {
		if d.Category != CategoryVoid {
			continue
		}
		idx++
		data.Rows = append(data.Rows, PORow{
			Index:     idx,
			Code:      d.Code,
			Name:      d.Name,
			Qty:       d.Quantity,
			DealerUSD: d.DealerPriceUSD,
			TotalUSD:  d.DealerPriceUSD * d.Quantity,
			WeightKg:  d.WeightTotal,
		})
		data.TotalUSD += d.DealerPriceUSD * d.Quantity
		data.TotalWeight += d.WeightTotal
	}

	return data
}
