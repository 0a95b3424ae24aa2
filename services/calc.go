package services

import "strconv"

// EquipmentDetail is one priced line of the quotation. Quantity is float64
// so catalog and custom lines share the same shape in the persisted result.
type EquipmentDetail struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`

	DealerPriceUSD float64 `json:"dealerPriceUSD"`
	DealerPriceJOD float64 `json:"dealerPriceJOD"`
	ClientPriceJOD float64 `json:"clientPriceJOD"`
	DealerTotalJOD float64 `json:"dealerTotalJOD"`
	ClientTotalJOD float64 `json:"clientTotalJOD"`
	WeightTotal    float64 `json:"weightTotal"`

	ShippingPerUnit   float64 `json:"shippingPerUnit"`
	CustomsPerUnit    float64 `json:"customsPerUnit"`
	FinalUnitPriceJOD float64 `json:"finalUnitPriceJOD"`
	FinalTotalJOD     float64 `json:"finalTotalJOD"`
}

// CustomsChargeAmount is one evaluated customs charge.
type CustomsChargeAmount struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// LandedCost is the full import cost stack for one shipment. Import VAT is
// kept apart from the other charges: it is recoverable against the VAT
// collected from the client, so the excl-VAT figures feed the per-unit
// allocation and the profit base while the incl-VAT figures show the cash
// actually paid at the border.
type LandedCost struct {
	ShippingCost      float64               `json:"shippingCost"`
	TotalShippingCost float64               `json:"totalShippingCost"`
	TaxableAmount     float64               `json:"taxableAmount"`
	CustomsDuty       float64               `json:"customsDuty"`
	ImportVAT         float64               `json:"importVAT"`
	Charges           []CustomsChargeAmount `json:"charges"`

	TotalCustomsInclVAT   float64 `json:"totalCustomsInclVAT"`
	TotalCustomsExclVAT   float64 `json:"totalCustomsExclVAT"`
	DoorToDoorCost        float64 `json:"doorToDoorCost"`
	DoorToDoorCostExclVAT float64 `json:"doorToDoorCostExclVAT"`
}

// ServiceCosts totals the standard and custom services in JOD.
type ServiceCosts struct {
	Commissioning       float64 `json:"commissioning"`
	NoiseControl        float64 `json:"noiseControl"`
	SoundDesign         float64 `json:"soundDesign"`
	CustomServicesTotal float64 `json:"customServicesTotal"`
	Total               float64 `json:"total"`
}

// CalculationResult is the complete output of one engine run. Handlers
// persist it verbatim on the project record and renderers read it without
// recomputing anything.
type CalculationResult struct {
	Equipment       []EquipmentDetail `json:"equipment"`
	CustomEquipment []EquipmentDetail `json:"customEquipment"`

	DealerTotalUSD float64 `json:"dealerTotalUSD"`
	DealerTotalJOD float64 `json:"dealerTotalJOD"`
	ClientTotalJOD float64 `json:"clientTotalJOD"`
	TotalWeight    float64 `json:"totalWeight"`

	Landed   LandedCost   `json:"landed"`
	Services ServiceCosts `json:"services"`

	EquipmentSubtotalBeforeDiscount float64 `json:"equipmentSubtotalBeforeDiscount"`
	EquipmentSubtotalAfterDiscount  float64 `json:"equipmentSubtotalAfterDiscount"`
	CustomEquipmentTotal            float64 `json:"customEquipmentTotal"`
	SubtotalBeforeDiscount          float64 `json:"subtotalBeforeDiscount"`
	DiscountPercent                 float64 `json:"discountPercent"`
	DiscountAmount                  float64 `json:"discountAmount"`
	SubtotalAfterDiscount           float64 `json:"subtotalAfterDiscount"`
	TaxAmount                       float64 `json:"taxAmount"`
	GrandTotal                      float64 `json:"grandTotal"`

	Profit       ProfitBreakdown    `json:"profit"`
	Distribution map[string]float64 `json:"distribution"`
}

// CalcLandedCost stacks freight, duty and the customs charge table on top of
// the dealer value of the shipment.
func CalcLandedCost(dealerTotalJOD, totalWeight float64, pc PricingConstants) LandedCost {
	shipping := totalWeight * pc.ShippingRatePerKg
	totalShipping := shipping + pc.ClearanceFee + pc.TransportFee + pc.DeliveryOrderFee
	taxable := dealerTotalJOD + totalShipping

	duty := taxable * pc.CustomsDutyRate
	importVAT := (taxable + duty) * pc.ImportVATRate

	charges := make([]CustomsChargeAmount, 0, len(pc.CustomsCharges))
	chargesTotal := 0.0
	for _, ch := range pc.CustomsCharges {
		var amount float64
		switch ch.Basis {
		case BasisTaxable:
			amount = taxable * ch.Rate
		case BasisDealerTotal:
			amount = dealerTotalJOD * ch.Rate
		case BasisShipping:
			amount = shipping * ch.Rate
		case BasisFlat:
			amount = ch.Rate
		}
		charges = append(charges, CustomsChargeAmount{Code: ch.Code, Name: ch.Name, Amount: amount})
		chargesTotal += amount
	}

	exclVAT := duty + chargesTotal
	inclVAT := exclVAT + importVAT

	return LandedCost{
		ShippingCost:      shipping,
		TotalShippingCost: totalShipping,
		TaxableAmount:     taxable,
		CustomsDuty:       duty,
		ImportVAT:         importVAT,
		Charges:           charges,

		TotalCustomsInclVAT:   inclVAT,
		TotalCustomsExclVAT:   exclVAT,
		DoorToDoorCost:        dealerTotalJOD + totalShipping + inclVAT,
		DoorToDoorCostExclVAT: dealerTotalJOD + totalShipping + exclVAT,
	}
}

// CalcServices totals the selected services against the dealer equipment
// cost. A positive custom value replaces the percentage default for that
// service; custom services are added verbatim.
func CalcServices(selections ServiceSelections, customServices []CustomService, dealerTotalJOD float64, pc PricingConstants) ServiceCosts {
	serviceCost := func(sel ServiceSelection, rate float64) float64 {
		if !sel.Enabled {
			return 0
		}
		if sel.CustomValue > 0 {
			return sel.CustomValue
		}
		return dealerTotalJOD * rate
	}

	costs := ServiceCosts{
		Commissioning: serviceCost(selections.Commissioning, pc.ServiceRates.Commissioning),
		NoiseControl:  serviceCost(selections.NoiseControl, pc.ServiceRates.NoiseControl),
		SoundDesign:   serviceCost(selections.SoundDesign, pc.ServiceRates.SoundDesign),
	}
	for _, cs := range customServices {
		costs.CustomServicesTotal += cs.Price
	}
	costs.Total = costs.Commissioning + costs.NoiseControl + costs.SoundDesign + costs.CustomServicesTotal
	return costs
}

// Calculate prices a project against a catalog snapshot. It is a pure
// function of its inputs: same project, catalog and constants always yield
// the same result. Returns nil when the project has nothing to price.
func Calculate(project ProjectDefinition, catalog Catalog, pc PricingConstants) *CalculationResult {
	if project.Empty() {
		return nil
	}

	var dealerTotalUSD, dealerTotalJOD, clientTotalJOD, totalWeight float64
	for _, line := range project.Equipment {
		item, ok := catalog.Lookup(line.Code)
		if !ok || line.Quantity <= 0 {
			continue
		}
		qty := float64(line.Quantity)
		dealerTotalUSD += item.DealerUSD * qty
		dealerTotalJOD += item.DealerUSD * pc.ExchangeRate * qty
		clientTotalJOD += item.ClientUSD * pc.ExchangeRate * qty
		totalWeight += item.Weight * qty
	}

	landed := CalcLandedCost(dealerTotalJOD, totalWeight, pc)

	// Freight and customs are spread across the catalog lines in proportion
	// to each line's share of the dealer value.
	var shippingShare, customsShare float64
	if dealerTotalJOD > 0 {
		shippingShare = landed.TotalShippingCost / dealerTotalJOD
		customsShare = landed.TotalCustomsExclVAT / dealerTotalJOD
	}

	equipment := make([]EquipmentDetail, 0, len(project.Equipment))
	equipmentBefore := 0.0
	for _, line := range project.Equipment {
		item, ok := catalog.Lookup(line.Code)
		if !ok || line.Quantity <= 0 {
			continue
		}
		qty := float64(line.Quantity)
		dealerJOD := item.DealerUSD * pc.ExchangeRate
		clientJOD := item.ClientUSD * pc.ExchangeRate
		shippingPerUnit := dealerJOD * shippingShare
		customsPerUnit := dealerJOD * customsShare
		finalUnit := clientJOD + shippingPerUnit + customsPerUnit

		equipment = append(equipment, EquipmentDetail{
			Code:     item.Code,
			Name:     item.Name,
			Category: item.Category,
			Quantity: qty,

			DealerPriceUSD: item.DealerUSD,
			DealerPriceJOD: dealerJOD,
			ClientPriceJOD: clientJOD,
			DealerTotalJOD: dealerJOD * qty,
			ClientTotalJOD: clientJOD * qty,
			WeightTotal:    item.Weight * qty,

			ShippingPerUnit:   shippingPerUnit,
			CustomsPerUnit:    customsPerUnit,
			FinalUnitPriceJOD: finalUnit,
			FinalTotalJOD:     finalUnit * qty,
		})
		equipmentBefore += finalUnit * qty
	}

	equipmentAfter := equipmentBefore * (100 - project.GlobalDiscount) / 100

	customEquipment, customTotal := priceCustomEquipment(project.CustomEquipment)

	services := CalcServices(project.Services, project.CustomServices, dealerTotalJOD, pc)

	subtotalBefore := equipmentBefore + customTotal + services.Total
	discountAmount := subtotalBefore * project.GlobalDiscount / 100
	subtotalAfter := subtotalBefore - discountAmount
	tax := subtotalAfter * pc.VATRate

	profit := CalcProfit(equipmentAfter-landed.DoorToDoorCostExclVAT, services, pc)

	return &CalculationResult{
		Equipment:       equipment,
		CustomEquipment: customEquipment,

		DealerTotalUSD: dealerTotalUSD,
		DealerTotalJOD: dealerTotalJOD,
		ClientTotalJOD: clientTotalJOD,
		TotalWeight:    totalWeight,

		Landed:   landed,
		Services: services,

		EquipmentSubtotalBeforeDiscount: equipmentBefore,
		EquipmentSubtotalAfterDiscount:  equipmentAfter,
		CustomEquipmentTotal:            customTotal,
		SubtotalBeforeDiscount:          subtotalBefore,
		DiscountPercent:                 project.GlobalDiscount,
		DiscountAmount:                  discountAmount,
		SubtotalAfterDiscount:           subtotalAfter,
		TaxAmount:                       tax,
		GrandTotal:                      subtotalAfter + tax,

		Profit:       profit,
		Distribution: CalcDistribution(project.Roles, profit, pc),
	}
}

// priceCustomEquipment turns the free-form lines into details. Custom lines
// are priced in JOD already and carry no freight or customs allocation.
func priceCustomEquipment(lines []CustomEquipmentLine) ([]EquipmentDetail, float64) {
	details := make([]EquipmentDetail, 0, len(lines))
	total := 0.0
	for i, line := range lines {
		if line.Name == "" || line.Price <= 0 || line.Quantity <= 0 {
			continue
		}
		lineTotal := line.Price * line.Quantity
		details = append(details, EquipmentDetail{
			Code:     customCode(i + 1),
			Name:     line.Name,
			Category: CategoryCustom,
			Quantity: line.Quantity,

			ClientPriceJOD:    line.Price,
			ClientTotalJOD:    lineTotal,
			FinalUnitPriceJOD: line.Price,
			FinalTotalJOD:     lineTotal,
		})
		total += lineTotal
	}
	return details, total
}

func customCode(n int) string {
	return "CUSTOM-" + strconv.Itoa(n)
}
