package engine

import (
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

// Financial model constants for the local economy.
const (
	discountRate      = 0.08
	systemLifespan    = 25 // years
	annualDegradation = 0.006
	tariffInflation   = 0.05
	gridCO2Factor     = 0.8 // kg CO2 per kWh displaced
)

const economicNote = "Calculations based on current local market conditions and may vary with economic changes"

// ElectricityCost is the effective USD/kWh for the household's supply mix.
func ElectricityCost(provider domain.EnergyProvider) float64 {
	switch provider {
	case domain.ProviderEDLOnly:
		return 0.10
	case domain.ProviderGeneratorOnly:
		return 0.45
	default:
		return 0.35
	}
}

// EvaluateEconomics computes savings, payback, 25-year NPV, ROI, LCOE and
// CO2 figures. Savings never exceed what the household would have spent
// buying the consumed energy.
func EvaluateEconomics(sizing domain.SystemSizing, load domain.LoadAnalysis, equipment domain.EquipmentSelection, profile domain.HouseholdProfile) domain.Economics {
	totalCost := equipment.Costs.Total
	cost := ElectricityCost(profile.EnergyProvider)

	annualProduction := float64(sizing.AnnualProduction)
	annualConsumptionCost := load.TotalDailyConsumption * 365 * cost

	annualSavings := math.Min(annualProduction*cost, annualConsumptionCost)

	simplePayback := 0.0
	if annualSavings > 0 {
		simplePayback = math.Round(totalCost/annualSavings*10) / 10
	}

	npv := -totalCost
	for year := 1; year <= systemLifespan; year++ {
		yearlyProduction := annualProduction * math.Pow(1-annualDegradation, float64(year-1))
		inflation := math.Pow(1+tariffInflation, float64(year-1))
		yearlySavings := math.Min(yearlyProduction*cost*inflation, annualConsumptionCost*inflation)
		npv += yearlySavings / math.Pow(1+discountRate, float64(year))
	}

	roi := 0
	if totalCost > 0 {
		roi = int(math.Round((npv + totalCost) / totalCost * 100))
	}

	lcoe := 0.0
	if annualProduction > 0 {
		lcoe = math.Round(totalCost/(annualProduction*systemLifespan)*1000) / 1000
	}

	costPerKw := 0
	if sizing.NominalKw > 0 {
		costPerKw = int(math.Round(totalCost / sizing.NominalKw))
	}

	annualCO2 := int(math.Round(annualProduction * gridCO2Factor))

	return domain.Economics{
		TotalSystemCost:      int(math.Round(totalCost)),
		CostPerKw:            costPerKw,
		AnnualSavings:        round2(annualSavings),
		SimplePaybackYears:   simplePayback,
		Npv25Years:           int(math.Round(npv)),
		Roi25YearsPct:        roi,
		Lcoe:                 lcoe,
		AnnualCO2AvoidedKg:   annualCO2,
		LifetimeCO2AvoidedKg: annualCO2 * systemLifespan,
		ElectricityCostUsed:  cost,
		Breakdown:            equipment.Costs,
		EconomicNote:         economicNote,
	}
}
