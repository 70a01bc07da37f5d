package domain

// Availability is an ordinal stock rating for the local market.
type Availability string

const (
	AvailabilityExcellent Availability = "Excellent"
	AvailabilityGood      Availability = "Good"
	AvailabilityFair      Availability = "Fair"
	AvailabilityPoor      Availability = "Poor"
)

// Rank orders availability ratings, higher is better stocked.
func (a Availability) Rank() int {
	switch a {
	case AvailabilityExcellent:
		return 3
	case AvailabilityGood:
		return 2
	case AvailabilityFair:
		return 1
	default:
		return 0
	}
}

// Panel is one PV module catalog entry.
type Panel struct {
	Brand           string       `json:"brand"`
	Model           string       `json:"model"`
	Wattage         int          `json:"wattage"`
	Efficiency      float64      `json:"efficiency"` // percent
	TempCoefficient float64      `json:"temp_coefficient"`
	Warranty        string       `json:"warranty"`
	WeightKg        float64      `json:"weight_kg"`
	Price           float64      `json:"price"` // USD
	Availability    Availability `json:"availability"`
}

// Inverter is one inverter catalog entry.
type Inverter struct {
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	Type           string       `json:"type"`
	Power          int          `json:"power"`       // W continuous
	SurgePower     int          `json:"surge_power"` // W
	Efficiency     float64      `json:"efficiency"`  // percent
	MaxPvInput     int          `json:"max_pv_input,omitempty"`
	ChargerCurrent int          `json:"charger_current,omitempty"`
	Warranty       string       `json:"warranty"`
	Price          float64      `json:"price"`
	Availability   Availability `json:"availability"`
}

// Battery is one storage catalog entry. ActualCapacityWh is populated for
// lithium packs rated in Wh; lead-acid entries are rated in Ah at Voltage.
type Battery struct {
	Brand            string           `json:"brand"`
	Model            string           `json:"model"`
	Chemistry        BatteryChemistry `json:"chemistry"`
	Type             string           `json:"type"` // Tubular, Flooded, AGM, OPzS, LiFePO4
	Capacity         int              `json:"capacity"` // Ah
	Voltage          int              `json:"voltage"`
	ActualCapacityWh int              `json:"actual_capacity_wh,omitempty"`
	Cycles           int              `json:"cycles"`
	Warranty         string           `json:"warranty"`
	Price            float64          `json:"price"`
	Availability     Availability     `json:"availability"`
}

// ChargeController is one MPPT controller catalog entry.
type ChargeController struct {
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Type         string       `json:"type"`
	Current      int          `json:"current"` // A
	MaxPvVoltage int          `json:"max_pv_voltage"`
	MaxPvPower   int          `json:"max_pv_power"` // W at 48V
	Efficiency   float64      `json:"efficiency"`
	Warranty     string       `json:"warranty"`
	Price        float64      `json:"price"`
	Availability Availability `json:"availability"`
}

// EquipmentCatalog groups the selectable hardware tables.
type EquipmentCatalog struct {
	Panels            []Panel            `json:"panels"`
	Inverters         []Inverter         `json:"inverters"`
	Batteries         []Battery          `json:"batteries"`
	ChargeControllers []ChargeController `json:"charge_controllers"`
}

// RegionProfile carries the static solar resource data for one governorate.
type RegionProfile struct {
	Latitude          float64     `json:"latitude"`
	Longitude         float64     `json:"longitude"`
	AnnualIrradiance  float64     `json:"annual_irradiance"` // kWh/m²/year
	PeakSunHours      float64     `json:"peak_sun_hours"`    // daily average
	MonthlyIrradiance [12]float64 `json:"monthly_irradiance"`
	AverageTemp       float64     `json:"average_temp"` // °C
	Climate           string      `json:"climate"`
}

// UtilityTariff maps a supply mix to its effective cost per kWh.
type UtilityTariff struct {
	Provider    EnergyProvider `json:"provider"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Reliability string         `json:"reliability"`
	CostPerKwh  float64        `json:"cost_per_kwh"` // USD
}
