package domain

// CategoryLoad is the per-category subtotal of the load analysis.
type CategoryLoad struct {
	Watts    float64 `json:"watts"`
	DailyKwh float64 `json:"daily_kwh"`
	Count    int     `json:"count"`
}

// LoadAnalysis aggregates the appliance list into demand figures.
type LoadAnalysis struct {
	TotalDailyConsumption  float64                   `json:"total_daily_consumption"` // kWh
	PeakSimultaneousLoad   int                       `json:"peak_simultaneous_load"`  // W
	ContinuousLoad         int                       `json:"continuous_load"`         // W
	IntermittentLoad       int                       `json:"intermittent_load"`       // W
	CriticalLoad           int                       `json:"critical_load"`           // W
	BackupCapacity         int                       `json:"backup_capacity"`         // W
	AutonomyHours          int                       `json:"autonomy_hours"`
	AutonomyEnergyRequired float64                   `json:"autonomy_energy_required"` // kWh
	AverageHourlyLoad      int                       `json:"average_hourly_load"`      // W
	LoadFactor             float64                   `json:"load_factor"`
	LoadByCategory         map[Category]CategoryLoad `json:"load_by_category"`
}

// SystemSizing is the PV array sizing result. Efficiency and TempDerating
// keep the unrounded values the later stages compute with; the *_pct and
// *Factor fields are the published, rounded figures.
type SystemSizing struct {
	NominalKw                 float64 `json:"nominal_kw"` // published, 0.5 kW steps
	ActualKw                  float64 `json:"actual_kw"`
	RequiredDailyGeneration   float64 `json:"required_daily_generation"` // kWh
	AnnualProduction          int     `json:"annual_production"`         // kWh
	AverageDailyProduction    float64 `json:"average_daily_production"`  // kWh
	SystemEfficiencyPct       int     `json:"system_efficiency_pct"`
	PerformanceRatioPct       int     `json:"performance_ratio_pct"`
	TemperatureDeratingFactor float64 `json:"temperature_derating_factor"`
	Efficiency                float64 `json:"-"`
	TempDerating              float64 `json:"-"`
}

// PanelSelection is the chosen PV module with derived quantities.
type PanelSelection struct {
	Panel
	Quantity     int     `json:"quantity"`
	TotalWattage int     `json:"total_wattage"`
	TotalCost    float64 `json:"total_cost"`
	MarketNote   string  `json:"market_note"`
}

// InverterSelection is the chosen inverter, possibly a multi-unit bank.
type InverterSelection struct {
	Inverter
	Quantity          int     `json:"quantity"`
	TotalPower        int     `json:"total_power"` // W
	TotalCost         float64 `json:"total_cost"`
	AdequacyMarginPct int     `json:"adequacy_margin_pct"`
	MarketNote        string  `json:"market_note"`
}

// BatterySelection is the chosen battery bank.
type BatterySelection struct {
	Battery
	Quantity              int     `json:"quantity"`
	TotalCapacityAh       int     `json:"total_capacity_ah"`
	TotalEnergyKwh        float64 `json:"total_energy_kwh"`
	TotalCost             float64 `json:"total_cost"`
	AutonomyProvidedHours float64 `json:"autonomy_provided_hours"`
	MarketNote            string  `json:"market_note"`
}

// ControllerSelection is the chosen charge controller, when one is needed.
type ControllerSelection struct {
	ChargeController
	TotalCost      float64 `json:"total_cost"`
	UtilizationPct int     `json:"utilization_pct"`
	MarketNote     string  `json:"market_note"`
}

// CostBreakdown itemizes the full installed cost in USD.
type CostBreakdown struct {
	Panels           float64 `json:"panels"`
	Inverter         float64 `json:"inverter"`
	Batteries        float64 `json:"batteries"`
	ChargeController float64 `json:"charge_controller"`
	Installation     float64 `json:"installation"`
	Labor            float64 `json:"labor"`
	Permits          float64 `json:"permits"`
	Commissioning    float64 `json:"commissioning"`
	Mounting         float64 `json:"mounting"`
	Wiring           float64 `json:"wiring"`
	Protection       float64 `json:"protection"`
	Total            float64 `json:"total"`
	PerWatt          float64 `json:"per_watt"`
}

// EquipmentSelection bundles the selected hardware and cost rollup. Notes
// records every fallback substitution the selector had to make.
type EquipmentSelection struct {
	Panels           PanelSelection       `json:"panels"`
	Inverter         InverterSelection    `json:"inverter"`
	Batteries        BatterySelection     `json:"batteries"`
	ChargeController *ControllerSelection `json:"charge_controller,omitempty"`
	Costs            CostBreakdown        `json:"costs"`
	Notes            []string             `json:"notes,omitempty"`
}

// MonthlyYield is one entry of the 12-month production projection.
type MonthlyYield struct {
	Month        string  `json:"month"`
	Production   int     `json:"production"` // kWh
	DailyAverage float64 `json:"daily_average"`
	Irradiance   int     `json:"irradiance"` // kWh/m²/month
	DaysInMonth  int     `json:"days_in_month"`
}

// Economics is the financial and environmental forecast.
type Economics struct {
	TotalSystemCost      int           `json:"total_system_cost"`
	CostPerKw            int           `json:"cost_per_kw"`
	AnnualSavings        float64       `json:"annual_savings"`
	SimplePaybackYears   float64       `json:"simple_payback_years"`
	Npv25Years           int           `json:"npv_25_years"`
	Roi25YearsPct        int           `json:"roi_25_years_pct"`
	Lcoe                 float64       `json:"lcoe"` // USD/kWh over 25 years
	AnnualCO2AvoidedKg   int           `json:"annual_co2_avoided_kg"`
	LifetimeCO2AvoidedKg int           `json:"lifetime_co2_avoided_kg"`
	ElectricityCostUsed  float64       `json:"electricity_cost_used"`
	Breakdown            CostBreakdown `json:"breakdown"`
	EconomicNote         string        `json:"economic_note"`
}

// InstallationPhase is one templated project phase.
type InstallationPhase struct {
	Phase        string   `json:"phase"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Tasks        []string `json:"tasks"`
	Requirements []string `json:"requirements,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
	Cost         float64  `json:"cost"`
}

// RegulatoryNotes lists the local compliance items for an installation.
type RegulatoryNotes struct {
	Permits        string `json:"permits"`
	Inspection     string `json:"inspection"`
	GridConnection string `json:"grid_connection"`
	Insurance      string `json:"insurance"`
}

// InstallationPlan is the phased project plan.
type InstallationPlan struct {
	TotalDuration     string              `json:"total_duration"`
	Phases            []InstallationPhase `json:"phases"`
	EstimatedTotal    float64             `json:"estimated_total"`
	KeyConsiderations []string            `json:"key_considerations"`
	PostInstallation  []string            `json:"post_installation"`
	Regulatory        RegulatoryNotes     `json:"regulatory"`
}

// ApplianceBreakdown is the per-appliance consumption and cost detail.
type ApplianceBreakdown struct {
	Name               string   `json:"name"`
	Category           Category `json:"category"`
	Quantity           int      `json:"quantity"`
	UnitWatts          int      `json:"unit_watts"`
	TotalWatts         int      `json:"total_watts"`
	HoursPerDay        float64  `json:"hours_per_day"`
	DailyKwh           float64  `json:"daily_kwh"`
	Amps               float64  `json:"amps"` // at 220V
	MonthlyCost        float64  `json:"monthly_cost"`
	AnnualCost         int      `json:"annual_cost"`
	SimultaneityFactor float64  `json:"simultaneity_factor"`
	IsCritical         bool     `json:"is_critical"`
	IsCustomWattage    bool     `json:"is_custom_wattage"`
}

// Recommendation is an advisory message derived from a finished result.
type Recommendation struct {
	Type    string `json:"type"` // "info" or "warning"
	Message string `json:"message"`
}

// LocationSummary echoes the regional factors the result was computed with.
type LocationSummary struct {
	Region           Region  `json:"region"`
	PeakSunHours     float64 `json:"peak_sun_hours"`
	AnnualIrradiance float64 `json:"annual_irradiance"`
	AverageTemp      float64 `json:"average_temp"`
}

// MarketNotes carries the static pricing disclaimers.
type MarketNotes struct {
	PriceDisclaimer  string `json:"price_disclaimer"`
	CurrencyNote     string `json:"currency_note"`
	AvailabilityNote string `json:"availability_note"`
	WarrantyNote     string `json:"warranty_note"`
}

// ResultBundle is the complete output of one calculation.
type ResultBundle struct {
	Sizing          SystemSizing         `json:"sizing"`
	Load            LoadAnalysis         `json:"load_analysis"`
	Equipment       EquipmentSelection   `json:"equipment"`
	MonthlyYield    []MonthlyYield       `json:"monthly_production"`
	Economics       Economics            `json:"economics"`
	Installation    InstallationPlan     `json:"installation_guide"`
	Appliances      []ApplianceBreakdown `json:"appliance_analysis"`
	Recommendations []Recommendation     `json:"recommendations"`
	Location        LocationSummary      `json:"location"`
	MarketNotes     MarketNotes          `json:"market_notes"`
}
