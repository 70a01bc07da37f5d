package domain

// Region is a Lebanese governorate key into the irradiance table.
type Region string

const (
	RegionBeirut        Region = "beirut"
	RegionMountLebanon  Region = "mount_lebanon"
	RegionNorthLebanon  Region = "north_lebanon"
	RegionAkkar         Region = "akkar"
	RegionBekaa         Region = "bekaa"
	RegionBaalbekHermel Region = "baalbek_hermel"
	RegionNabatieh      Region = "nabatieh"
	RegionSouthLebanon  Region = "south_lebanon"
)

// ShadingLevel describes how much of the day the roof is shaded.
type ShadingLevel string

const (
	ShadingNone        ShadingLevel = "none"
	ShadingMinimal     ShadingLevel = "minimal"
	ShadingPartial     ShadingLevel = "partial"
	ShadingSignificant ShadingLevel = "significant"
)

// SystemType selects the system topology.
type SystemType string

const (
	SystemGridTie SystemType = "grid_tie"
	SystemHybrid  SystemType = "hybrid"
	SystemOffGrid SystemType = "offgrid"
)

// BatteryChemistry is the storage chemistry preference.
type BatteryChemistry string

const (
	ChemistryLeadAcid BatteryChemistry = "lead_acid"
	ChemistryLithium  BatteryChemistry = "lithium"
)

// EnergyProvider maps the current supply mix to a cost per kWh.
type EnergyProvider string

const (
	ProviderEDLOnly       EnergyProvider = "edl_only"
	ProviderEDLGenerator  EnergyProvider = "edl_and_generator"
	ProviderGeneratorOnly EnergyProvider = "generator_only"
)

// HouseholdProfile describes the site and the owner's preferences.
type HouseholdProfile struct {
	Region         Region           `json:"region"`
	City           string           `json:"city,omitempty"`
	SystemType     SystemType       `json:"system_type"`
	RoofArea       int              `json:"roof_area"` // m²
	RoofDirection  string           `json:"roof_direction"`
	Shading        ShadingLevel     `json:"shading"`
	BackupDays     int              `json:"backup_days"` // 1-3
	BatteryType    BatteryChemistry `json:"battery_type"`
	EnergyProvider EnergyProvider   `json:"energy_provider"`
}
