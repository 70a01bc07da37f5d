package engine

import (
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

const gridVoltage = 220 // V AC single phase

// AnalyzeAppliances builds the per-appliance consumption and running-cost
// breakdown, priced at the household's current tariff.
func AnalyzeAppliances(appliances []domain.ApplianceEntry, provider domain.EnergyProvider) []domain.ApplianceBreakdown {
	cost := ElectricityCost(provider)

	breakdown := make([]domain.ApplianceBreakdown, 0, len(appliances))
	for _, app := range appliances {
		unitWatts := app.EffectiveWatts()
		totalWatts := unitWatts * app.Quantity
		dailyKwh := float64(totalWatts) * app.HoursPerDay / 1000
		monthlyCost := dailyKwh * 30 * cost

		breakdown = append(breakdown, domain.ApplianceBreakdown{
			Name:               app.Name,
			Category:           app.Category,
			Quantity:           app.Quantity,
			UnitWatts:          unitWatts,
			TotalWatts:         totalWatts,
			HoursPerDay:        app.HoursPerDay,
			DailyKwh:           round2(dailyKwh),
			Amps:               math.Round(float64(totalWatts)/gridVoltage*10) / 10,
			MonthlyCost:        round2(monthlyCost),
			AnnualCost:         int(math.Round(monthlyCost * 12)),
			SimultaneityFactor: SimultaneityFactor(app.Category),
			IsCritical:         app.IsCritical,
			IsCustomWattage:    app.CustomWatts > 0,
		})
	}
	return breakdown
}
