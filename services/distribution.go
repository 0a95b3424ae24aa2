package services

// ManagementFees breaks the management fee into its role buckets.
type ManagementFees struct {
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

// Total sums every management bucket. It equals the management fee when the
// configured split sums to 1.
func (m ManagementFees) Total() float64 {
	return m.Director + m.ProjectManager + m.JuniorProjectManager +
		m.Logistics + m.Accounting + m.Legal + m.Admin +
		m.Retained + m.Shareholder
}

// ProfitBreakdown is the full profit cascade for one calculation.
type ProfitBreakdown struct {
	SalesProfit      float64 `json:"salesProfit"`
	ProducerFee      float64 `json:"producerFee"`
	ManagementFee    float64 `json:"managementFee"`
	RetainedEarnings float64 `json:"retainedEarnings"`
	ShareholderPool  float64 `json:"shareholderPool"`

	ShareholderShares map[string]float64 `json:"shareholderShares"`
	Management        ManagementFees     `json:"management"`

	NoiseControlEngineerFee float64 `json:"noiseControlEngineerFee"`
	SoundDesignerFee        float64 `json:"soundDesignerFee"`
}

// CalcProfit runs the profit cascade. Sales profit is the discounted
// equipment revenue minus the door-to-door cost excluding import VAT; the
// professional fees come out of the service revenue, not the sales profit.
func CalcProfit(salesProfit float64, services ServiceCosts, pc PricingConstants) ProfitBreakdown {
	pool := salesProfit * pc.ProfitSplit.Shareholder
	shares := make(map[string]float64, len(pc.Shareholders))
	for _, sh := range pc.Shareholders {
		shares[sh.Name] = pool * sh.Share
	}

	fee := salesProfit * pc.ProfitSplit.Management
	return ProfitBreakdown{
		SalesProfit:       salesProfit,
		ProducerFee:       salesProfit * pc.ProfitSplit.Producer,
		ManagementFee:     fee,
		RetainedEarnings:  salesProfit * pc.ProfitSplit.Retained,
		ShareholderPool:   pool,
		ShareholderShares: shares,
		Management: ManagementFees{
			Director:             fee * pc.ManagementSplit.Director,
			ProjectManager:       fee * pc.ManagementSplit.ProjectManager,
			JuniorProjectManager: fee * pc.ManagementSplit.JuniorProjectManager,
			Logistics:            fee * pc.ManagementSplit.Logistics,
			Accounting:           fee * pc.ManagementSplit.Accounting,
			Legal:                fee * pc.ManagementSplit.Legal,
			Admin:                fee * pc.ManagementSplit.Admin,
			Retained:             fee * pc.ManagementSplit.Retained,
			Shareholder:          fee * pc.ManagementSplit.Shareholder,
		},
		NoiseControlEngineerFee: services.NoiseControl * pc.NoiseControlEngineerShare,
		SoundDesignerFee:        services.SoundDesign * pc.SoundDesignerShare,
	}
}

// CalcDistribution folds the profit cascade into a per-person payout map.
// Shareholders are credited their ownership share unconditionally; role
// buckets are credited to whoever fills the role. An unfilled role bucket
// stays unattributed; it is not redistributed.
func CalcDistribution(roles RoleAssignments, profit ProfitBreakdown, pc PricingConstants) map[string]float64 {
	dist := make(map[string]float64)
	for _, sh := range pc.Shareholders {
		dist[sh.Name] += profit.ShareholderShares[sh.Name]
	}

	credit := func(person string, amount float64) {
		if person == "" {
			return
		}
		dist[person] += amount
	}

	credit(roles.Producer, profit.ProducerFee)
	credit(roles.Director, profit.Management.Director)
	credit(roles.ProjectManager, profit.Management.ProjectManager)
	credit(roles.JuniorProjectManager, profit.Management.JuniorProjectManager)
	credit(roles.LogisticsManager, profit.Management.Logistics)
	credit(roles.Accountant, profit.Management.Accounting)
	credit(roles.NoiseControlEngineer, profit.NoiseControlEngineerFee)
	credit(roles.SoundSystemDesigner, profit.SoundDesignerFee)

	return dist
}
