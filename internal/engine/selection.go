package engine

import (
	"fmt"
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

const systemVoltage = 48 // V DC bus

// Installation cost schedule, USD.
const (
	installCostPerWatt = 0.40
	laborCostPerWatt   = 0.30
	permitsFee         = 300.0
	commissioningFee   = 200.0
	mountingPerKw      = 150.0
	wiringPerKw        = 100.0
	protectionPerKw    = 80.0
)

// stocked means the entry is reliably purchasable on the local market.
func stocked(a domain.Availability) bool {
	return a.Rank() >= domain.AvailabilityGood.Rank()
}

// Each piece of hardware is picked by an ordered chain of named rules.
// The first rule that yields a selection wins; any rule past the first
// records a note so the fallback is visible to the caller.

type panelRule struct {
	name string
	pick func(panels []domain.Panel) (domain.Panel, bool)
}

var panelRules = []panelRule{
	{
		name: "best efficiency per dollar among stocked panels",
		pick: func(panels []domain.Panel) (domain.Panel, bool) {
			best := -1
			bestRatio := 0.0
			for i, p := range panels {
				if !stocked(p.Availability) || p.Price <= 0 {
					continue
				}
				ratio := p.Efficiency / p.Price
				if best < 0 || ratio > bestRatio {
					best, bestRatio = i, ratio
				}
			}
			if best < 0 {
				return domain.Panel{}, false
			}
			return panels[best], true
		},
	},
	{
		name: "first catalog entry",
		pick: func(panels []domain.Panel) (domain.Panel, bool) {
			if len(panels) == 0 {
				return domain.Panel{}, false
			}
			return panels[0], true
		},
	},
}

func selectPanel(sizing domain.SystemSizing, catalog []domain.Panel, notes *[]string) (domain.PanelSelection, error) {
	var chosen domain.Panel
	found := false
	for i, rule := range panelRules {
		if p, ok := rule.pick(catalog); ok {
			chosen, found = p, true
			if i > 0 {
				*notes = append(*notes, fmt.Sprintf("No stocked panel available, fell back to %s.", rule.name))
			}
			break
		}
	}
	if !found {
		return domain.PanelSelection{}, fmt.Errorf("panel catalog is empty")
	}

	quantity := int(math.Ceil(sizing.NominalKw * 1000 / float64(chosen.Wattage)))
	return domain.PanelSelection{
		Panel:        chosen,
		Quantity:     quantity,
		TotalWattage: quantity * chosen.Wattage,
		TotalCost:    float64(quantity) * chosen.Price,
		MarketNote:   fmt.Sprintf("%s availability in the local market", chosen.Availability),
	}, nil
}

type inverterRule struct {
	name string
	pick func(inverters []domain.Inverter, requiredPower float64) (domain.Inverter, bool)
}

var inverterRules = []inverterRule{
	{
		name: "cheapest stocked inverter meeting demand",
		pick: func(inverters []domain.Inverter, requiredPower float64) (domain.Inverter, bool) {
			best := -1
			for i, inv := range inverters {
				if !stocked(inv.Availability) || float64(inv.Power) < requiredPower {
					continue
				}
				if best < 0 || inv.Price < inverters[best].Price {
					best = i
				}
			}
			if best < 0 {
				return domain.Inverter{}, false
			}
			return inverters[best], true
		},
	},
	{
		name: "largest stocked inverter as a multi-unit bank",
		pick: func(inverters []domain.Inverter, _ float64) (domain.Inverter, bool) {
			best := -1
			for i, inv := range inverters {
				if !stocked(inv.Availability) {
					continue
				}
				if best < 0 || inv.Power > inverters[best].Power {
					best = i
				}
			}
			if best < 0 {
				return domain.Inverter{}, false
			}
			return inverters[best], true
		},
	},
	{
		name: "largest inverter in the catalog regardless of availability",
		pick: func(inverters []domain.Inverter, _ float64) (domain.Inverter, bool) {
			best := -1
			for i, inv := range inverters {
				if best < 0 || inv.Power > inverters[best].Power {
					best = i
				}
			}
			if best < 0 {
				return domain.Inverter{}, false
			}
			return inverters[best], true
		},
	},
}

func selectInverter(load domain.LoadAnalysis, catalog []domain.Inverter, notes *[]string) (domain.InverterSelection, error) {
	requiredPower := float64(load.PeakSimultaneousLoad) * 1.25

	var chosen domain.Inverter
	found := false
	for i, rule := range inverterRules {
		if inv, ok := rule.pick(catalog, requiredPower); ok {
			chosen, found = inv, true
			if i > 0 {
				*notes = append(*notes, fmt.Sprintf("No single stocked inverter covers %.0fW, fell back to %s.", requiredPower, rule.name))
			}
			break
		}
	}
	if !found {
		return domain.InverterSelection{}, fmt.Errorf("inverter catalog is empty")
	}

	quantity := 1
	if float64(chosen.Power) < requiredPower {
		quantity = int(math.Ceil(requiredPower / float64(chosen.Power)))
	}
	totalPower := chosen.Power * quantity

	margin := 0
	if load.PeakSimultaneousLoad > 0 {
		margin = int(math.Round(float64(totalPower-load.PeakSimultaneousLoad) / float64(load.PeakSimultaneousLoad) * 100))
	}

	return domain.InverterSelection{
		Inverter:          chosen,
		Quantity:          quantity,
		TotalPower:        totalPower,
		TotalCost:         chosen.Price * float64(quantity),
		AdequacyMarginPct: margin,
		MarketNote:        fmt.Sprintf("%s availability in the local market", chosen.Availability),
	}, nil
}

// Lithium banks count 95% of rated energy as usable; lead-acid strings are
// limited by depth of discharge, better for AGM construction.
const (
	lithiumUsableFraction   = 0.95
	agmDepthOfDischarge     = 0.60
	floodedDepthOfDischarge = 0.50
)

func depthOfDischarge(b domain.Battery) float64 {
	if b.Type == "AGM" {
		return agmDepthOfDischarge
	}
	return floodedDepthOfDischarge
}

// Lithium is only worth its premium above this autonomy requirement.
const lithiumAutonomyThresholdKwh = 20.0

func selectBattery(load domain.LoadAnalysis, profile domain.HouseholdProfile, catalog []domain.Battery, notes *[]string) (domain.BatterySelection, error) {
	if len(catalog) == 0 {
		return domain.BatterySelection{}, fmt.Errorf("battery catalog is empty")
	}

	if profile.BatteryType == domain.ChemistryLithium && load.AutonomyEnergyRequired > lithiumAutonomyThresholdKwh {
		for _, b := range catalog {
			if b.Chemistry != domain.ChemistryLithium || b.ActualCapacityWh <= 0 {
				continue
			}
			usableKwhPerUnit := float64(b.ActualCapacityWh) * lithiumUsableFraction / 1000
			quantity := int(math.Ceil(load.AutonomyEnergyRequired / usableKwhPerUnit))
			return lithiumSelection(b, quantity, load), nil
		}
		*notes = append(*notes, "No lithium battery in the catalog, sized a lead-acid bank instead.")
	}

	// Lead-acid chain: prefer an excellently stocked entry, then any
	// lead-acid entry, then whatever the catalog holds.
	chosen, ok := pickLeadAcid(catalog)
	if !ok {
		chosen = catalog[0]
		*notes = append(*notes, "No lead-acid battery in the catalog, fell back to the first entry.")
	}

	dod := depthOfDischarge(chosen)
	totalAhNeeded := load.AutonomyEnergyRequired * 1000 / (systemVoltage * dod)
	seriesCount := systemVoltage / chosen.Voltage
	parallelStrings := int(math.Ceil(totalAhNeeded / float64(chosen.Capacity)))
	quantity := seriesCount * parallelStrings

	usableWh := float64(quantity*chosen.Capacity*chosen.Voltage) * dod
	return domain.BatterySelection{
		Battery:               chosen,
		Quantity:              quantity,
		TotalCapacityAh:       quantity * chosen.Capacity,
		TotalEnergyKwh:        round2(float64(quantity*chosen.Capacity*chosen.Voltage) / 1000),
		TotalCost:             float64(quantity) * chosen.Price,
		AutonomyProvidedHours: autonomyHours(usableWh, load.BackupCapacity),
		MarketNote:            fmt.Sprintf("%s availability in the local market", chosen.Availability),
	}, nil
}

func lithiumSelection(b domain.Battery, quantity int, load domain.LoadAnalysis) domain.BatterySelection {
	usableWh := float64(quantity*b.ActualCapacityWh) * lithiumUsableFraction
	return domain.BatterySelection{
		Battery:               b,
		Quantity:              quantity,
		TotalCapacityAh:       quantity * b.Capacity,
		TotalEnergyKwh:        round2(float64(quantity*b.ActualCapacityWh) / 1000),
		TotalCost:             float64(quantity) * b.Price,
		AutonomyProvidedHours: autonomyHours(usableWh, load.BackupCapacity),
		MarketNote:            fmt.Sprintf("%s availability in the local market", b.Availability),
	}
}

func pickLeadAcid(catalog []domain.Battery) (domain.Battery, bool) {
	for _, b := range catalog {
		if b.Chemistry == domain.ChemistryLeadAcid && b.Availability == domain.AvailabilityExcellent {
			return b, true
		}
	}
	for _, b := range catalog {
		if b.Chemistry == domain.ChemistryLeadAcid {
			return b, true
		}
	}
	return domain.Battery{}, false
}

func autonomyHours(usableWh float64, backupCapacityW int) float64 {
	if backupCapacityW <= 0 {
		return 0
	}
	return math.Round(usableWh/float64(backupCapacityW)*10) / 10
}

// selectController picks the cheapest adequately rated controller. A nil
// selection is valid: hybrid inverters commonly integrate the MPPT stage.
func selectController(totalPvWatts int, catalog []domain.ChargeController, notes *[]string) *domain.ControllerSelection {
	requiredAmps := float64(totalPvWatts) / systemVoltage * 1.25

	best := -1
	for i, cc := range catalog {
		if float64(cc.Current) < requiredAmps || cc.Availability == domain.AvailabilityPoor {
			continue
		}
		if best < 0 || cc.Price < catalog[best].Price {
			best = i
		}
	}
	if best < 0 {
		*notes = append(*notes, fmt.Sprintf("No charge controller rated for %.0fA, assuming the inverter integrates MPPT.", requiredAmps))
		return nil
	}

	chosen := catalog[best]
	return &domain.ControllerSelection{
		ChargeController: chosen,
		TotalCost:        chosen.Price,
		UtilizationPct:   int(math.Round(float64(totalPvWatts) / systemVoltage / float64(chosen.Current) * 100)),
		MarketNote:       "Separate charge controller (if not integrated in inverter)",
	}
}

func rollupCosts(sel domain.EquipmentSelection, totalPvWatts int, nominalKw float64) domain.CostBreakdown {
	perKw := math.Ceil(float64(totalPvWatts) / 1000)

	costs := domain.CostBreakdown{
		Panels:        sel.Panels.TotalCost,
		Inverter:      sel.Inverter.TotalCost,
		Batteries:     sel.Batteries.TotalCost,
		Installation:  float64(totalPvWatts) * installCostPerWatt,
		Labor:         float64(totalPvWatts) * laborCostPerWatt,
		Permits:       permitsFee,
		Commissioning: commissioningFee,
		Mounting:      perKw * mountingPerKw,
		Wiring:        perKw * wiringPerKw,
		Protection:    perKw * protectionPerKw,
	}
	if sel.ChargeController != nil {
		costs.ChargeController = sel.ChargeController.TotalCost
	}

	costs.Total = costs.Panels + costs.Inverter + costs.Batteries + costs.ChargeController +
		costs.Installation + costs.Labor + costs.Permits + costs.Commissioning +
		costs.Mounting + costs.Wiring + costs.Protection
	if nominalKw > 0 {
		costs.PerWatt = round2(costs.Total / (nominalKw * 1000))
	}
	return costs
}

// SelectEquipment maps the sizing and load figures onto concrete catalog
// hardware. Selection is deterministic: ties break toward the earlier
// catalog entry, and every fallback is recorded in the returned notes.
func SelectEquipment(sizing domain.SystemSizing, load domain.LoadAnalysis, profile domain.HouseholdProfile, catalog domain.EquipmentCatalog) (domain.EquipmentSelection, error) {
	var notes []string

	panels, err := selectPanel(sizing, catalog.Panels, &notes)
	if err != nil {
		return domain.EquipmentSelection{}, err
	}

	inverter, err := selectInverter(load, catalog.Inverters, &notes)
	if err != nil {
		return domain.EquipmentSelection{}, err
	}

	batteries, err := selectBattery(load, profile, catalog.Batteries, &notes)
	if err != nil {
		return domain.EquipmentSelection{}, err
	}

	sel := domain.EquipmentSelection{
		Panels:    panels,
		Inverter:  inverter,
		Batteries: batteries,
		Notes:     notes,
	}
	sel.ChargeController = selectController(panels.TotalWattage, catalog.ChargeControllers, &sel.Notes)
	sel.Costs = rollupCosts(sel, panels.TotalWattage, sizing.NominalKw)

	return sel, nil
}
