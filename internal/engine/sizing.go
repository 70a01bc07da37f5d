package engine

import (
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

// Loss chain constants. All factors are bounded and strictly positive, so
// the efficiency product can never reach zero.
const (
	inverterEfficiency = 0.94
	mpptEfficiency     = 0.98
	lithiumEfficiency  = 0.95 // round-trip
	leadAcidEfficiency = 0.82
	wiringLossFactor   = 0.97
	dustFactor         = 0.93
	temperatureFactor  = 0.96

	stcTemp            = 25.0  // °C, panel rating reference
	tempCoefficientPct = -0.37 // %/°C
	minTempDerating    = 0.82

	safetyMargin = 1.20
)

var shadingFactors = map[domain.ShadingLevel]float64{
	domain.ShadingNone:        1.00,
	domain.ShadingMinimal:     0.95,
	domain.ShadingPartial:     0.85,
	domain.ShadingSignificant: 0.70,
}

// SystemEfficiency multiplies the loss chain for the given topology.
// Grid-tie systems skip the MPPT and battery round-trip losses.
func SystemEfficiency(profile domain.HouseholdProfile) float64 {
	shading, ok := shadingFactors[profile.Shading]
	if !ok {
		shading = shadingFactors[domain.ShadingMinimal]
	}

	if profile.SystemType == domain.SystemGridTie {
		return inverterEfficiency * wiringLossFactor * dustFactor * temperatureFactor * shading
	}

	batteryEfficiency := leadAcidEfficiency
	if profile.BatteryType == domain.ChemistryLithium {
		batteryEfficiency = lithiumEfficiency
	}
	return inverterEfficiency * mpptEfficiency * batteryEfficiency *
		wiringLossFactor * dustFactor * temperatureFactor * shading
}

// TemperatureDerating derives the output factor for ambient temperature
// above the STC reference, floored at 82% output.
func TemperatureDerating(averageTemp float64) float64 {
	return math.Max(minTempDerating, 1+(averageTemp-stcTemp)*tempCoefficientPct/100)
}

// SizeSystem converts the daily load and site irradiance into an array
// size and annual yield. The published size rounds up to the next 0.5 kW;
// the unrounded value is kept for yield math.
func SizeSystem(load domain.LoadAnalysis, profile domain.HouseholdProfile, region domain.RegionProfile) domain.SystemSizing {
	efficiency := SystemEfficiency(profile)
	requiredDailyGeneration := load.TotalDailyConsumption / efficiency

	nominalArrayKw := requiredDailyGeneration / region.PeakSunHours

	derating := TemperatureDerating(region.AverageTemp)
	adjustedArrayKw := nominalArrayKw / derating

	finalArrayKw := adjustedArrayKw * safetyMargin

	annualProduction := int(math.Round(finalArrayKw * region.AnnualIrradiance * efficiency))

	return domain.SystemSizing{
		NominalKw:                 math.Ceil(finalArrayKw*2) / 2,
		ActualKw:                  round2(finalArrayKw),
		RequiredDailyGeneration:   round2(requiredDailyGeneration),
		AnnualProduction:          annualProduction,
		AverageDailyProduction:    round2(float64(annualProduction) / 365),
		SystemEfficiencyPct:       int(math.Round(efficiency * 100)),
		PerformanceRatioPct:       int(math.Round(efficiency * 100)),
		TemperatureDeratingFactor: round2(derating),
		Efficiency:                efficiency,
		TempDerating:              derating,
	}
}
