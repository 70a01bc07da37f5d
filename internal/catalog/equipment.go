// Package catalog holds the static reference tables the estimator consumes:
// hardware available on the Lebanese market, regional irradiance profiles,
// common appliance defaults and utility tariffs. Everything here is
// immutable; the engine only ever reads it.
package catalog

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Equipment lists the top-selling hardware on the local market with
// approximate USD pricing. Prices vary with supplier and exchange rate.
var Equipment = domain.EquipmentCatalog{
	Panels: []domain.Panel{
		{
			Brand:           "LONGi Solar",
			Model:           "Hi-MO 4m LR4-72HPH-450M",
			Wattage:         450,
			Efficiency:      20.6,
			TempCoefficient: -0.38,
			Warranty:        "12 years product, 25 years performance",
			WeightKg:        22.5,
			Price:           135,
			Availability:    domain.AvailabilityExcellent,
		},
		{
			Brand:           "JinkoSolar",
			Model:           "Tiger Pro JKM440M-54HL4-V",
			Wattage:         440,
			Efficiency:      20.78,
			TempCoefficient: -0.37,
			Warranty:        "12 years product, 25 years performance",
			WeightKg:        22.0,
			Price:           130,
			Availability:    domain.AvailabilityExcellent,
		},
		{
			Brand:           "Canadian Solar",
			Model:           "HiKu CS3W-400MS",
			Wattage:         400,
			Efficiency:      20.3,
			TempCoefficient: -0.39,
			Warranty:        "10 years product, 25 years performance",
			WeightKg:        20.6,
			Price:           115,
			Availability:    domain.AvailabilityGood,
		},
		{
			Brand:           "Trina Solar",
			Model:           "Vertex S TSM-405DE09.08",
			Wattage:         405,
			Efficiency:      20.8,
			TempCoefficient: -0.36,
			Warranty:        "12 years product, 25 years performance",
			WeightKg:        20.5,
			Price:           125,
			Availability:    domain.AvailabilityGood,
		},
		{
			Brand:           "Risen Energy",
			Model:           "RSM120-8-535M",
			Wattage:         535,
			Efficiency:      20.7,
			TempCoefficient: -0.35,
			Warranty:        "12 years product, 25 years performance",
			WeightKg:        26.5,
			Price:           155,
			Availability:    domain.AvailabilityFair,
		},
	},
	Inverters: []domain.Inverter{
		{
			Brand:          "MUST Solar",
			Model:          "PV18-5048 VPK",
			Type:           "Hybrid MPPT Inverter",
			Power:          5000,
			SurgePower:     15000,
			Efficiency:     93,
			MaxPvInput:     6000,
			ChargerCurrent: 100,
			Warranty:       "2 years",
			Price:          580,
			Availability:   domain.AvailabilityExcellent,
		},
		{
			Brand:          "Growatt",
			Model:          "SPF 5000 ES",
			Type:           "Off-grid MPPT Inverter",
			Power:          5000,
			SurgePower:     10000,
			Efficiency:     93,
			MaxPvInput:     6000,
			ChargerCurrent: 60,
			Warranty:       "5 years",
			Price:          520,
			Availability:   domain.AvailabilityExcellent,
		},
		{
			Brand:          "Victron Energy",
			Model:          "MultiPlus-II 48/3000/35-32",
			Type:           "Hybrid Inverter/Charger",
			Power:          3000,
			SurgePower:     6000,
			Efficiency:     94,
			ChargerCurrent: 35,
			Warranty:       "5 years",
			Price:          750,
			Availability:   domain.AvailabilityGood,
		},
		{
			Brand:          "Goodwe",
			Model:          "GW5048D-ES",
			Type:           "Hybrid MPPT Inverter",
			Power:          5000,
			SurgePower:     10000,
			Efficiency:     97.6,
			MaxPvInput:     6500,
			ChargerCurrent: 80,
			Warranty:       "5 years",
			Price:          650,
			Availability:   domain.AvailabilityGood,
		},
		{
			Brand:          "SMA",
			Model:          "Sunny Island 4.4M",
			Type:           "Battery Inverter",
			Power:          3300,
			SurgePower:     4600,
			Efficiency:     96,
			ChargerCurrent: 35,
			Warranty:       "5 years",
			Price:          1200,
			Availability:   domain.AvailabilityFair,
		},
	},
	Batteries: []domain.Battery{
		{
			Brand:        "Eastman",
			Model:        "Tubular Deep Cycle 200Ah",
			Chemistry:    domain.ChemistryLeadAcid,
			Type:         "Tubular",
			Capacity:     200,
			Voltage:      12,
			Cycles:       1200,
			Warranty:     "60 months",
			Price:        220,
			Availability: domain.AvailabilityExcellent,
		},
		{
			Brand:        "Trojan",
			Model:        "T-105 RE Deep Cycle",
			Chemistry:    domain.ChemistryLeadAcid,
			Type:         "Flooded",
			Capacity:     225,
			Voltage:      6,
			Cycles:       1500,
			Warranty:     "18 months",
			Price:        165,
			Availability: domain.AvailabilityGood,
		},
		{
			Brand:        "Fullriver",
			Model:        "DC224-6A AGM",
			Chemistry:    domain.ChemistryLeadAcid,
			Type:         "AGM",
			Capacity:     224,
			Voltage:      6,
			Cycles:       1000,
			Warranty:     "36 months",
			Price:        185,
			Availability: domain.AvailabilityGood,
		},
		{
			Brand:            "Pylontech",
			Model:            "US3000C LiFePO4",
			Chemistry:        domain.ChemistryLithium,
			Type:             "LiFePO4",
			Capacity:         74,
			Voltage:          48,
			ActualCapacityWh: 3550,
			Cycles:           6000,
			Warranty:         "10 years",
			Price:            1050,
			Availability:     domain.AvailabilityFair,
		},
		{
			Brand:        "BAE",
			Model:        "PVS 2420 OPzS",
			Chemistry:    domain.ChemistryLeadAcid,
			Type:         "OPzS",
			Capacity:     420,
			Voltage:      2,
			Cycles:       1800,
			Warranty:     "24 months",
			Price:        145,
			Availability: domain.AvailabilityFair,
		},
	},
	ChargeControllers: []domain.ChargeController{
		{
			Brand:        "EPEVER",
			Model:        "Tracer 6415AN",
			Type:         "MPPT",
			Current:      60,
			MaxPvVoltage: 150,
			MaxPvPower:   3120,
			Efficiency:   98,
			Warranty:     "2 years",
			Price:        145,
			Availability: domain.AvailabilityExcellent,
		},
		{
			Brand:        "Victron Energy",
			Model:        "SmartSolar MPPT 100/50",
			Type:         "MPPT",
			Current:      50,
			MaxPvVoltage: 100,
			MaxPvPower:   2900,
			Efficiency:   98,
			Warranty:     "5 years",
			Price:        185,
			Availability: domain.AvailabilityGood,
		},
		{
			Brand:        "Morningstar",
			Model:        "TriStar TS-MPPT-60",
			Type:         "MPPT",
			Current:      60,
			MaxPvVoltage: 150,
			MaxPvPower:   3400,
			Efficiency:   99,
			Warranty:     "5 years",
			Price:        220,
			Availability: domain.AvailabilityFair,
		},
	},
}
