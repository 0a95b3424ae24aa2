// Package services holds the pricing and profit-distribution engine plus the
// document generation (PDF/Excel) built on top of its output.
package services

// Equipment categories as stored in the catalog.
const (
	CategoryVoid      = "void"
	CategoryAccessory = "accessory"
	CategoryCustom    = "custom"
)

// EquipmentItem is a single catalog entry. Prices are in USD as supplied by
// the distributor price list; Weight is kg per unit.
type EquipmentItem struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	DealerUSD float64 `json:"dealerUSD"`
	ClientUSD float64 `json:"clientUSD"`
	MSRPUSD   float64 `json:"msrpUSD"`
	Weight    float64 `json:"weight"`
	Category  string  `json:"category"`
}

// Catalog is an immutable snapshot of the equipment list keyed by code,
// taken once per calculation.
type Catalog map[string]EquipmentItem

// Lookup resolves an equipment code. The second return value is false when
// the code is unknown; callers decide whether to skip or warn.
func (c Catalog) Lookup(code string) (EquipmentItem, bool) {
	item, ok := c[code]
	return item, ok
}

// BuildCatalog indexes items by code and normalizes pricing: an item without
// a client price falls back to its dealer price, and a missing MSRP falls
// back to the client price. Later duplicates win, matching upsert-by-code
// import behavior.
func BuildCatalog(items []EquipmentItem) Catalog {
	catalog := make(Catalog, len(items))
	for _, item := range items {
		if item.ClientUSD == 0 {
			item.ClientUSD = item.DealerUSD
		}
		if item.MSRPUSD == 0 {
			item.MSRPUSD = item.ClientUSD
		}
		catalog[item.Code] = item
	}
	return catalog
}
