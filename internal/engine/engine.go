// Package engine implements the sizing estimator as a pipeline of pure
// stage functions: load analysis, system sizing, equipment selection,
// production projection, economics and installation planning. Each stage
// is a function of its inputs only; given identical inputs and catalogs
// the result is identical.
package engine

import (
	"fmt"
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

// MarketNotes are the static pricing disclaimers attached to every result.
var marketNotes = domain.MarketNotes{
	PriceDisclaimer:  "Prices are estimates based on current market conditions and may vary ±15-30% depending on supplier, quantity, exchange rate fluctuations, and market availability.",
	CurrencyNote:     "All prices shown in USD. Actual payments may be in LBP at prevailing exchange rates.",
	AvailabilityNote: "Equipment availability varies. Contact local suppliers for current stock and updated pricing.",
	WarrantyNote:     "Warranty terms may vary based on local distributor agreements and import conditions.",
}

// Calculate runs the full estimation pipeline and assembles the result
// bundle. Inputs are read-only; the region and equipment catalogs are never
// mutated. Callers are expected to run Validate first: Calculate only fails
// on conditions validation cannot catch, wrapped in a *CalculationError.
func Calculate(profile domain.HouseholdProfile, appliances []domain.ApplianceEntry, regions map[domain.Region]domain.RegionProfile, equipment domain.EquipmentCatalog) (*domain.ResultBundle, error) {
	region, ok := regions[profile.Region]
	if !ok {
		return nil, &CalculationError{Stage: "system sizing", Err: fmt.Errorf("unknown region %q", profile.Region)}
	}

	load := AnalyzeLoad(appliances, profile.BackupDays)
	sizing := SizeSystem(load, profile, region)

	selection, err := SelectEquipment(sizing, load, profile, equipment)
	if err != nil {
		return nil, &CalculationError{Stage: "equipment selection", Err: err}
	}

	economics := EvaluateEconomics(sizing, load, selection, profile)

	bundle := &domain.ResultBundle{
		Sizing:       sizing,
		Load:         load,
		Equipment:    selection,
		MonthlyYield: ProjectProduction(sizing, region),
		Economics:    economics,
		Installation: PlanInstallation(selection),
		Appliances:   AnalyzeAppliances(appliances, profile.EnergyProvider),
		Location: domain.LocationSummary{
			Region:           profile.Region,
			PeakSunHours:     region.PeakSunHours,
			AnnualIrradiance: region.AnnualIrradiance,
			AverageTemp:      region.AverageTemp,
		},
		MarketNotes: marketNotes,
	}
	bundle.Recommendations = Recommend(bundle)

	if err := checkFinite(bundle); err != nil {
		return nil, &CalculationError{Stage: "result assembly", Err: err}
	}
	return bundle, nil
}

// checkFinite rejects bundles carrying NaN or infinite figures, which can
// only come from corrupt numeric input.
func checkFinite(bundle *domain.ResultBundle) error {
	values := map[string]float64{
		"nominal_kw":           bundle.Sizing.NominalKw,
		"actual_kw":            bundle.Sizing.ActualKw,
		"load_factor":          bundle.Load.LoadFactor,
		"total_cost":           bundle.Equipment.Costs.Total,
		"annual_savings":       bundle.Economics.AnnualSavings,
		"simple_payback_years": bundle.Economics.SimplePaybackYears,
		"lcoe":                 bundle.Economics.Lcoe,
	}
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite %s in result", name)
		}
	}
	return nil
}
