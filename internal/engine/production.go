package engine

import (
	"math"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Fixed non-leap reference calendar.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ProjectProduction spreads the sized array's yield over the region's
// monthly irradiance profile.
func ProjectProduction(sizing domain.SystemSizing, region domain.RegionProfile) []domain.MonthlyYield {
	series := make([]domain.MonthlyYield, 0, 12)
	for i, irradiance := range region.MonthlyIrradiance {
		production := int(math.Round(sizing.NominalKw * irradiance * sizing.Efficiency * sizing.TempDerating))
		series = append(series, domain.MonthlyYield{
			Month:        monthNames[i],
			Production:   production,
			DailyAverage: round2(float64(production) / float64(daysInMonth[i])),
			Irradiance:   int(math.Round(irradiance)),
			DaysInMonth:  daysInMonth[i],
		})
	}
	return series
}
