package engine

import (
	"testing"

	"github.com/Hussein-66/SolarSystemCalc/internal/catalog"
	"github.com/Hussein-66/SolarSystemCalc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectProduction(t *testing.T) {
	sizing := domain.SystemSizing{NominalKw: 5.0, Efficiency: 0.8, TempDerating: 1.0}
	region := catalog.Regions[domain.RegionBeirut]

	series := ProjectProduction(sizing, region)
	require.Len(t, series, 12)

	t.Run("january figures", func(t *testing.T) {
		jan := series[0]
		assert.Equal(t, "January", jan.Month)
		// 5.0 kW * 95 kWh/m2 * 0.8
		assert.Equal(t, 380, jan.Production)
		assert.Equal(t, 31, jan.DaysInMonth)
		assert.InDelta(t, 12.26, jan.DailyAverage, 1e-9)
	})

	t.Run("february always has 28 days", func(t *testing.T) {
		feb := series[1]
		assert.Equal(t, "February", feb.Month)
		assert.Equal(t, 28, feb.DaysInMonth)
	})

	t.Run("summer outproduces winter", func(t *testing.T) {
		july := series[6]
		december := series[11]
		assert.Greater(t, july.Production, december.Production)
	})

	t.Run("months cover a full year", func(t *testing.T) {
		days := 0
		for _, m := range series {
			days += m.DaysInMonth
		}
		assert.Equal(t, 365, days)
	})
}
