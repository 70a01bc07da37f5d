package catalog

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Regions maps each governorate to its solar resource profile. Irradiance
// figures follow the Global Solar Atlas / NREL data for Lebanon.
var Regions = map[domain.Region]domain.RegionProfile{
	domain.RegionBeirut: {
		Latitude:          33.8938,
		Longitude:         35.5018,
		AnnualIrradiance:  1680,
		PeakSunHours:      4.6,
		MonthlyIrradiance: [12]float64{95, 110, 140, 165, 185, 195, 200, 190, 165, 135, 105, 85},
		AverageTemp:       20.5,
		Climate:           "Mediterranean coastal",
	},
	domain.RegionMountLebanon: {
		Latitude:          33.8547,
		Longitude:         35.5623,
		AnnualIrradiance:  1750,
		PeakSunHours:      4.8,
		MonthlyIrradiance: [12]float64{100, 115, 150, 175, 195, 205, 210, 200, 175, 145, 110, 90},
		AverageTemp:       18.2,
		Climate:           "Mountain Mediterranean",
	},
	domain.RegionNorthLebanon: {
		Latitude:          34.4367,
		Longitude:         36.0167,
		AnnualIrradiance:  1650,
		PeakSunHours:      4.5,
		MonthlyIrradiance: [12]float64{90, 105, 135, 160, 180, 190, 195, 185, 160, 130, 100, 80},
		AverageTemp:       19.8,
		Climate:           "Coastal Mediterranean",
	},
	domain.RegionBekaa: {
		Latitude:          33.8469,
		Longitude:         35.9019,
		AnnualIrradiance:  1850,
		PeakSunHours:      5.1,
		MonthlyIrradiance: [12]float64{110, 125, 160, 185, 210, 220, 225, 215, 185, 155, 120, 100},
		AverageTemp:       17.5,
		Climate:           "Continental semi-arid",
	},
	domain.RegionSouthLebanon: {
		Latitude:          33.2623,
		Longitude:         35.2033,
		AnnualIrradiance:  1720,
		PeakSunHours:      4.7,
		MonthlyIrradiance: [12]float64{100, 115, 145, 170, 190, 200, 205, 195, 170, 140, 110, 95},
		AverageTemp:       21.0,
		Climate:           "Mediterranean coastal",
	},
	domain.RegionAkkar: {
		Latitude:          34.5331,
		Longitude:         36.2167,
		AnnualIrradiance:  1680,
		PeakSunHours:      4.6,
		MonthlyIrradiance: [12]float64{95, 110, 140, 165, 185, 195, 200, 190, 165, 135, 105, 85},
		AverageTemp:       18.9,
		Climate:           "Mediterranean",
	},
	domain.RegionNabatieh: {
		Latitude:          33.3792,
		Longitude:         35.4836,
		AnnualIrradiance:  1730,
		PeakSunHours:      4.7,
		MonthlyIrradiance: [12]float64{100, 115, 145, 170, 190, 200, 205, 195, 170, 140, 110, 95},
		AverageTemp:       20.2,
		Climate:           "Mediterranean hill",
	},
	domain.RegionBaalbekHermel: {
		Latitude:          34.0058,
		Longitude:         36.2081,
		AnnualIrradiance:  1800,
		PeakSunHours:      4.9,
		MonthlyIrradiance: [12]float64{105, 120, 155, 180, 205, 215, 220, 210, 180, 150, 115, 95},
		AverageTemp:       16.8,
		Climate:           "Continental",
	},
}
