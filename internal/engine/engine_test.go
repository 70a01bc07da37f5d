package engine

import (
	"errors"
	"testing"

	"github.com/Hussein-66/SolarSystemCalc/internal/catalog"
	"github.com/Hussein-66/SolarSystemCalc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func householdFixture() (domain.HouseholdProfile, []domain.ApplianceEntry) {
	profile := domain.HouseholdProfile{
		Region:         domain.RegionBeirut,
		SystemType:     domain.SystemHybrid,
		RoofArea:       60,
		RoofDirection:  "south",
		Shading:        domain.ShadingMinimal,
		BackupDays:     2,
		BatteryType:    domain.ChemistryLeadAcid,
		EnergyProvider: domain.ProviderEDLGenerator,
	}
	appliances := []domain.ApplianceEntry{
		{Name: "Refrigerator", Category: domain.CategoryAppliances, Watts: 150, Quantity: 1, HoursPerDay: 24, IsCritical: true},
		{Name: "Air Conditioner", Category: domain.CategoryCooling, Watts: 1200, Quantity: 1, HoursPerDay: 6},
		{Name: "LED Lights", Category: domain.CategoryLighting, Watts: 10, Quantity: 8, HoursPerDay: 6, IsCritical: true},
		{Name: "TV", Category: domain.CategoryEntertainment, Watts: 100, Quantity: 1, HoursPerDay: 4},
		{Name: "Washing Machine", Category: domain.CategoryAppliances, Watts: 500, Quantity: 1, HoursPerDay: 1},
	}
	return profile, appliances
}

func TestCalculate(t *testing.T) {
	profile, appliances := householdFixture()

	bundle, err := Calculate(profile, appliances, catalog.Regions, catalog.Equipment)
	require.NoError(t, err)

	t.Run("all sections are populated", func(t *testing.T) {
		assert.Greater(t, bundle.Sizing.NominalKw, 0.0)
		assert.Greater(t, bundle.Load.TotalDailyConsumption, 0.0)
		assert.NotZero(t, bundle.Equipment.Panels.Quantity)
		assert.Len(t, bundle.MonthlyYield, 12)
		assert.Greater(t, bundle.Economics.TotalSystemCost, 0)
		assert.Len(t, bundle.Installation.Phases, 4)
		assert.Len(t, bundle.Appliances, len(appliances))
		assert.Equal(t, domain.RegionBeirut, bundle.Location.Region)
		assert.NotEmpty(t, bundle.MarketNotes.PriceDisclaimer)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		again, err := Calculate(profile, appliances, catalog.Regions, catalog.Equipment)
		require.NoError(t, err)
		require.Equal(t, bundle, again)
	})

	t.Run("lead acid bank triggers the maintenance note", func(t *testing.T) {
		found := false
		for _, rec := range bundle.Recommendations {
			if rec.Type == "info" && rec.Message == "Lead-acid batteries require regular maintenance but are cost-effective for local conditions." {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestCalculateUnknownRegion(t *testing.T) {
	profile, appliances := householdFixture()
	profile.Region = "atlantis"

	_, err := Calculate(profile, appliances, catalog.Regions, catalog.Equipment)
	require.Error(t, err)

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "system sizing", calcErr.Stage)
	assert.Contains(t, err.Error(), "Please verify your inputs")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCalculateRejectsNonFiniteResults(t *testing.T) {
	profile, appliances := householdFixture()

	// A corrupt region profile with zero sun hours drives the sizing to
	// infinity; the pipeline must refuse to publish such a result.
	regions := map[domain.Region]domain.RegionProfile{
		domain.RegionBeirut: {AnnualIrradiance: 1680, PeakSunHours: 0, AverageTemp: 20.5},
	}

	_, err := Calculate(profile, appliances, regions, catalog.Equipment)
	require.Error(t, err)

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "result assembly", calcErr.Stage)
}

func TestCalculateEmptyEquipmentCatalog(t *testing.T) {
	profile, appliances := householdFixture()

	_, err := Calculate(profile, appliances, catalog.Regions, domain.EquipmentCatalog{})
	require.Error(t, err)

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "equipment selection", calcErr.Stage)
}

func TestRecommend(t *testing.T) {
	t.Run("bekaa gets the solar resource note", func(t *testing.T) {
		profile, appliances := householdFixture()
		profile.Region = domain.RegionBekaa

		bundle, err := Calculate(profile, appliances, catalog.Regions, catalog.Equipment)
		require.NoError(t, err)

		found := false
		for _, rec := range bundle.Recommendations {
			if rec.Message == "The Bekaa Valley has excellent solar resources. Your system will perform above the national average." {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("heavy shading warns about performance", func(t *testing.T) {
		profile, appliances := householdFixture()
		profile.Shading = domain.ShadingSignificant

		bundle, err := Calculate(profile, appliances, catalog.Regions, catalog.Equipment)
		require.NoError(t, err)

		found := false
		for _, rec := range bundle.Recommendations {
			if rec.Type == "warning" && rec.Message == "Low performance ratio. Check for shading issues or consider a different panel orientation." {
				found = true
			}
		}
		assert.True(t, found)
	})
}
