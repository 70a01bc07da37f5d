package domain

// Category classifies an appliance for load-diversity purposes.
type Category string

const (
	CategoryLighting      Category = "lighting"
	CategoryCooling       Category = "cooling"
	CategoryHeating       Category = "heating"
	CategoryAppliances    Category = "appliances"
	CategoryElectronics   Category = "electronics"
	CategoryEntertainment Category = "entertainment"
	CategoryPumping       Category = "pumping"
	CategoryCustom        Category = "custom"
)

// CriticalByDefault reports whether entries of this category count toward
// critical (outage-backed) load when the caller does not tag them explicitly.
func (c Category) CriticalByDefault() bool {
	return c == CategoryLighting || c == CategoryElectronics
}

// ApplianceEntry is one row of the household load list.
type ApplianceEntry struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Watts       int      `json:"watts"`
	CustomWatts int      `json:"custom_watts,omitempty"`
	Quantity    int      `json:"quantity"`
	HoursPerDay float64  `json:"hours_per_day"`
	IsCritical  bool     `json:"is_critical"`
}

// EffectiveWatts returns the user override when set, else the rated value.
func (a ApplianceEntry) EffectiveWatts() int {
	if a.CustomWatts > 0 {
		return a.CustomWatts
	}
	return a.Watts
}

// ApplianceDefault is a catalog template for a common household appliance.
type ApplianceDefault struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	DefaultWatts int      `json:"default_watts"`
	CommonRange  string   `json:"common_range"`
	HoursPerDay  float64  `json:"hours_per_day"`
	IsCritical   bool     `json:"is_critical"`
}
