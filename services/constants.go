package services

// Basis values for customs charges.
const (
	BasisTaxable     = "taxable"
	BasisDealerTotal = "dealer_total"
	BasisShipping    = "shipping"
	BasisFlat        = "flat"
)

// CustomsCharge is one line of the customs charge table. Rate is a fraction
// for percentage bases and an absolute JOD amount for BasisFlat.
type CustomsCharge struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Basis string  `json:"basis"`
	Rate  float64 `json:"rate"`
}

// ServiceRates are the default service fees as fractions of the dealer
// equipment cost.
type ServiceRates struct {
	Commissioning float64 `json:"commissioning"`
	NoiseControl  float64 `json:"noiseControl"`
	SoundDesign   float64 `json:"soundDesign"`
}

// ProfitSplit carves sales profit into the four top-level buckets. The four
// fractions are expected to sum to 1.
type ProfitSplit struct {
	Producer    float64 `json:"producer"`
	Management  float64 `json:"management"`
	Retained    float64 `json:"retained"`
	Shareholder float64 `json:"shareholder"`
}

// ShareholderSplit is one owner's fraction of the shareholder pool.
type ShareholderSplit struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// ManagementSplit divides the management fee across the management roles.
// The nine fractions are expected to sum to 1.
type ManagementSplit struct {
	Director             float64 `json:"director"`
	ProjectManager       float64 `json:"projectManager"`
	JuniorProjectManager float64 `json:"juniorProjectManager"`
	Logistics            float64 `json:"logistics"`
	Accounting           float64 `json:"accounting"`
	Legal                float64 `json:"legal"`
	Admin                float64 `json:"admin"`
	Retained             float64 `json:"retained"`
	Shareholder          float64 `json:"shareholder"`
}

// PricingConstants carries every rate and fee the engine uses. Callers that
// need different terms (a new tariff sheet, a renegotiated freight rate)
// build their own instance; the engine never reaches for globals.
type PricingConstants struct {
	ExchangeRate      float64 `json:"exchangeRate"`
	ShippingRatePerKg float64 `json:"shippingRatePerKg"`
	ClearanceFee      float64 `json:"clearanceFee"`
	TransportFee      float64 `json:"transportFee"`
	DeliveryOrderFee  float64 `json:"deliveryOrderFee"`

	CustomsDutyRate float64         `json:"customsDutyRate"`
	ImportVATRate   float64         `json:"importVATRate"`
	CustomsCharges  []CustomsCharge `json:"customsCharges"`

	VATRate      float64      `json:"vatRate"`
	ServiceRates ServiceRates `json:"serviceRates"`

	ProfitSplit     ProfitSplit        `json:"profitSplit"`
	Shareholders    []ShareholderSplit `json:"shareholders"`
	ManagementSplit ManagementSplit    `json:"managementSplit"`

	NoiseControlEngineerShare float64 `json:"noiseControlEngineerShare"`
	SoundDesignerShare        float64 `json:"soundDesignerShare"`
}

// DefaultPricingConstants returns the rates from the 2024 business report and
// the Jordan customs tariff sheet the company clears shipments under.
func DefaultPricingConstants() PricingConstants {
	return PricingConstants{
		ExchangeRate:      0.71,
		ShippingRatePerKg: 4.5,
		ClearanceFee:      35,
		TransportFee:      70,
		DeliveryOrderFee:  45,

		CustomsDutyRate: 0.05,
		ImportVATRate:   0.16,
		CustomsCharges: []CustomsCharge{
			{Code: "215", Name: "Warehouse handling", Basis: BasisDealerTotal, Rate: 0.01},
			{Code: "301", Name: "Clearance service", Basis: BasisFlat, Rate: 50},
			{Code: "111", Name: "Freight insurance", Basis: BasisShipping, Rate: 0.003},
			{Code: "016", Name: "Inspection", Basis: BasisFlat, Rate: 23.2},
			{Code: "019", Name: "Brokerage", Basis: BasisFlat, Rate: 25},
			{Code: "070", Name: "Additional fees", Basis: BasisTaxable, Rate: 0.05},
		},

		VATRate: 0.16,
		ServiceRates: ServiceRates{
			Commissioning: 0.06,
			NoiseControl:  0.10,
			SoundDesign:   0.025,
		},

		ProfitSplit: ProfitSplit{
			Producer:    0.05,
			Management:  0.30,
			Retained:    0.05,
			Shareholder: 0.60,
		},
		Shareholders: []ShareholderSplit{
			{Name: "Nadeem", Share: 0.55},
			{Name: "Issa", Share: 0.225},
			{Name: "Omar", Share: 0.225},
		},
		ManagementSplit: ManagementSplit{
			Director:             0.20,
			ProjectManager:       0.25,
			JuniorProjectManager: 0.10,
			Logistics:            0.10,
			Accounting:           0.10,
			Legal:                0.05,
			Admin:                0.05,
			Retained:             0.05,
			Shareholder:          0.10,
		},

		NoiseControlEngineerShare: 0.50,
		SoundDesignerShare:        0.50,
	}
}
