package engine

import (
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

// simultaneityFactors are empirical per-category multipliers reflecting
// that not every load in a category peaks at the same moment.
var simultaneityFactors = map[domain.Category]float64{
	domain.CategoryCooling:       0.85,
	domain.CategoryHeating:       0.75,
	domain.CategoryAppliances:    0.70,
	domain.CategoryElectronics:   0.90,
	domain.CategoryLighting:      0.60,
	domain.CategoryEntertainment: 0.50,
	domain.CategoryPumping:       1.00,
	domain.CategoryCustom:        0.80,
}

const defaultSimultaneityFactor = 0.70

// SimultaneityFactor returns the peak-demand multiplier for a category.
func SimultaneityFactor(c domain.Category) float64 {
	if f, ok := simultaneityFactors[c]; ok {
		return f
	}
	return defaultSimultaneityFactor
}

// diversityFactor scales the summed peak by household size: the larger the
// intermittent load, the less of it coincides.
func diversityFactor(intermittentLoad float64) float64 {
	switch {
	case intermittentLoad < 3000:
		return 0.90
	case intermittentLoad < 8000:
		return 0.85
	case intermittentLoad < 15000:
		return 0.80
	default:
		return 0.75
	}
}

const defaultBackupDays = 2

// AnalyzeLoad aggregates the appliance list into consumption and demand
// figures. An empty list yields zero totals; input checking belongs to
// Validate.
func AnalyzeLoad(appliances []domain.ApplianceEntry, backupDays int) domain.LoadAnalysis {
	var (
		totalDailyKwh    float64
		continuousLoad   float64
		intermittentLoad float64
		criticalLoad     float64
		peakLoad         float64
	)
	byCategory := make(map[domain.Category]domain.CategoryLoad)

	for _, app := range appliances {
		watts := float64(app.EffectiveWatts() * app.Quantity)
		dailyKwh := watts * app.HoursPerDay / 1000
		totalDailyKwh += dailyKwh

		cl := byCategory[app.Category]
		cl.Watts += watts
		cl.DailyKwh += dailyKwh
		cl.Count += app.Quantity
		byCategory[app.Category] = cl

		// Loads running near-continuously size the base, not the peak.
		if app.HoursPerDay >= 20 {
			continuousLoad += watts
		} else {
			intermittentLoad += watts
		}

		if app.IsCritical {
			criticalLoad += watts
		}

		peakLoad += watts * SimultaneityFactor(app.Category)
	}

	peakLoad *= diversityFactor(intermittentLoad)

	backupCapacity := criticalLoad + 0.30*intermittentLoad

	if backupDays <= 0 {
		backupDays = defaultBackupDays
	}
	autonomyHours := backupDays * 24
	autonomyEnergy := backupCapacity / 1000 * float64(autonomyHours)

	loadFactor := 0.0
	if peakLoad > 0 {
		loadFactor = round2(totalDailyKwh * 1000 / (peakLoad * 24))
	}

	return domain.LoadAnalysis{
		TotalDailyConsumption:  round2(totalDailyKwh),
		PeakSimultaneousLoad:   int(math.Round(peakLoad)),
		ContinuousLoad:         int(math.Round(continuousLoad)),
		IntermittentLoad:       int(math.Round(intermittentLoad)),
		CriticalLoad:           int(math.Round(criticalLoad)),
		BackupCapacity:         int(math.Round(backupCapacity)),
		AutonomyHours:          autonomyHours,
		AutonomyEnergyRequired: round2(autonomyEnergy),
		AverageHourlyLoad:      int(math.Round(totalDailyKwh / 24 * 1000)),
		LoadFactor:             loadFactor,
		LoadByCategory:         byCategory,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
