package engine

import (
	"testing"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeLoad(t *testing.T) {
	appliances := []domain.ApplianceEntry{
		{Name: "Refrigerator", Category: domain.CategoryAppliances, Watts: 150, Quantity: 1, HoursPerDay: 24, IsCritical: true},
		{Name: "LED Lights", Category: domain.CategoryLighting, Watts: 10, Quantity: 5, HoursPerDay: 6, IsCritical: true},
	}

	load := AnalyzeLoad(appliances, 0)

	t.Run("daily consumption", func(t *testing.T) {
		// 150W x 24h + 50W x 6h = 3.6 + 0.3 kWh
		assert.Equal(t, 3.9, load.TotalDailyConsumption)
	})

	t.Run("peak applies simultaneity and diversity", func(t *testing.T) {
		// (150*0.70 + 50*0.60) * 0.90 = 121.5, rounded
		assert.Equal(t, 122, load.PeakSimultaneousLoad)
	})

	t.Run("continuous vs intermittent split at 20h", func(t *testing.T) {
		assert.Equal(t, 150, load.ContinuousLoad)
		assert.Equal(t, 50, load.IntermittentLoad)
	})

	t.Run("critical and backup capacity", func(t *testing.T) {
		assert.Equal(t, 200, load.CriticalLoad)
		// critical + 30% of intermittent
		assert.Equal(t, 215, load.BackupCapacity)
	})

	t.Run("autonomy defaults to two days", func(t *testing.T) {
		assert.Equal(t, 48, load.AutonomyHours)
		assert.InDelta(t, 10.32, load.AutonomyEnergyRequired, 1e-9)
	})

	t.Run("average hourly load", func(t *testing.T) {
		assert.Equal(t, 163, load.AverageHourlyLoad)
	})

	t.Run("load factor from unrounded peak", func(t *testing.T) {
		assert.InDelta(t, 1.34, load.LoadFactor, 1e-9)
	})

	t.Run("category subtotals", func(t *testing.T) {
		assert.Len(t, load.LoadByCategory, 2)
		assert.Equal(t, 50.0, load.LoadByCategory[domain.CategoryLighting].Watts)
		assert.Equal(t, 5, load.LoadByCategory[domain.CategoryLighting].Count)
	})
}

func TestAnalyzeLoadEmpty(t *testing.T) {
	load := AnalyzeLoad(nil, 0)

	assert.Zero(t, load.TotalDailyConsumption)
	assert.Zero(t, load.PeakSimultaneousLoad)
	assert.Zero(t, load.LoadFactor)
	assert.Equal(t, 48, load.AutonomyHours)
}

func TestAnalyzeLoadBackupDays(t *testing.T) {
	appliances := []domain.ApplianceEntry{
		{Name: "Router", Category: domain.CategoryElectronics, Watts: 100, Quantity: 1, HoursPerDay: 24, IsCritical: true},
	}

	load := AnalyzeLoad(appliances, 3)
	assert.Equal(t, 72, load.AutonomyHours)
	assert.InDelta(t, 7.2, load.AutonomyEnergyRequired, 1e-9)
}

func TestAnalyzeLoadCustomWattage(t *testing.T) {
	appliances := []domain.ApplianceEntry{
		{Name: "Workshop Tool", Category: domain.CategoryCustom, Watts: 500, CustomWatts: 800, Quantity: 1, HoursPerDay: 2},
	}

	load := AnalyzeLoad(appliances, 1)
	assert.InDelta(t, 1.6, load.TotalDailyConsumption, 1e-9)
	assert.Equal(t, 800, load.IntermittentLoad)
}

func TestSimultaneityFactor(t *testing.T) {
	assert.Equal(t, 1.00, SimultaneityFactor(domain.CategoryPumping))
	assert.Equal(t, 0.50, SimultaneityFactor(domain.CategoryEntertainment))
	assert.Equal(t, 0.70, SimultaneityFactor(domain.Category("unknown")))
}

func TestDiversityFactor(t *testing.T) {
	tests := []struct {
		load float64
		want float64
	}{
		{0, 0.90},
		{2999, 0.90},
		{3000, 0.85},
		{7999, 0.85},
		{8000, 0.80},
		{14999, 0.80},
		{15000, 0.75},
		{50000, 0.75},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, diversityFactor(tc.load), "load %.0f", tc.load)
	}
}
