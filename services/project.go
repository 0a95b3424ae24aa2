package services

// EquipmentLine references a catalog item by code. Lines with an unknown
// code or a non-positive quantity contribute nothing to the calculation.
type EquipmentLine struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// CustomEquipmentLine is a free-form equipment entry priced in JOD.
// Quantity is serialized as "weight": the original data model reused the
// weight column as the unit count for custom items, and saved projects
// still carry it under that key. Custom equipment gets no freight or
// customs allocation and is never discounted at the line level.
type CustomEquipmentLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"weight"`
}

// ServiceSelection toggles one of the standard services. A positive
// CustomValue (JOD) replaces the percentage-of-dealer-cost default.
type ServiceSelection struct {
	Enabled     bool    `json:"enabled"`
	CustomValue float64 `json:"customValue"`
}

// ServiceSelections covers the three standard services.
type ServiceSelections struct {
	Commissioning ServiceSelection `json:"commissioning"`
	NoiseControl  ServiceSelection `json:"noiseControl"`
	SoundDesign   ServiceSelection `json:"soundDesign"`
}

// CustomService is a free-form service added verbatim to the services total.
type CustomService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RoleAssignments maps each project role to a person. An empty string means
// the role is unfilled: its fee bucket is still computed but paid to nobody.
type RoleAssignments struct {
	Producer             string `json:"producer"`
	Director             string `json:"director"`
	ProjectManager       string `json:"projectManager"`
	JuniorProjectManager string `json:"juniorProjectManager"`
	Accountant           string `json:"accountant"`
	LogisticsManager     string `json:"logisticsManager"`
	NoiseControlEngineer string `json:"noiseControlEngineer"`
	SoundSystemDesigner  string `json:"soundSystemDesigner"`
}

// ProjectDefinition is the full input to one calculation. It is treated as
// an immutable snapshot: the engine never mutates it, and a fresh
// CalculationResult replaces the previous one when inputs change.
type ProjectDefinition struct {
	ProjectName     string                `json:"projectName"`
	ClientName      string                `json:"clientName"`
	Equipment       []EquipmentLine       `json:"equipment"`
	CustomEquipment []CustomEquipmentLine `json:"customEquipment"`
	Services        ServiceSelections     `json:"services"`
	CustomServices  []CustomService       `json:"customServices"`
	Roles           RoleAssignments       `json:"roles"`
	GlobalDiscount  float64               `json:"globalDiscount"`
}

// Empty reports whether the project has nothing to price. Calculate returns
// nil for empty projects so callers can prompt for input instead of showing
// a zeroed quotation.
func (p ProjectDefinition) Empty() bool {
	return len(p.Equipment) == 0 && len(p.CustomEquipment) == 0
}
