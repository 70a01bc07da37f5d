package catalog

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Appliances is the default household appliance list. Wattage is
// customizable by the caller; entries that must survive an outage are
// pre-tagged critical so the engine never has to guess from names.
var Appliances = []domain.ApplianceDefault{
	// Lighting
	{Name: "LED Bulbs", Category: domain.CategoryLighting, DefaultWatts: 10, CommonRange: "5-25W", HoursPerDay: 6, IsCritical: true},
	{Name: "Fluorescent Tubes", Category: domain.CategoryLighting, DefaultWatts: 36, CommonRange: "18-58W", HoursPerDay: 8, IsCritical: true},
	{Name: "Halogen Spotlights", Category: domain.CategoryLighting, DefaultWatts: 50, CommonRange: "20-100W", HoursPerDay: 4, IsCritical: true},

	// Cooling & heating
	{Name: "Split AC Unit", Category: domain.CategoryCooling, DefaultWatts: 1500, CommonRange: "800-2500W", HoursPerDay: 8},
	{Name: "Window AC Unit", Category: domain.CategoryCooling, DefaultWatts: 1200, CommonRange: "600-1800W", HoursPerDay: 6},
	{Name: "Ceiling Fan", Category: domain.CategoryCooling, DefaultWatts: 75, CommonRange: "50-150W", HoursPerDay: 12},
	{Name: "Portable Fan", Category: domain.CategoryCooling, DefaultWatts: 50, CommonRange: "30-100W", HoursPerDay: 8},
	{Name: "Electric Heater", Category: domain.CategoryHeating, DefaultWatts: 2000, CommonRange: "1000-3000W", HoursPerDay: 4},

	// Kitchen
	{Name: "Refrigerator", Category: domain.CategoryAppliances, DefaultWatts: 150, CommonRange: "80-300W", HoursPerDay: 24, IsCritical: true},
	{Name: "Freezer", Category: domain.CategoryAppliances, DefaultWatts: 200, CommonRange: "100-400W", HoursPerDay: 24, IsCritical: true},
	{Name: "Microwave", Category: domain.CategoryAppliances, DefaultWatts: 1000, CommonRange: "600-1200W", HoursPerDay: 0.5},
	{Name: "Electric Kettle", Category: domain.CategoryAppliances, DefaultWatts: 2000, CommonRange: "1500-2500W", HoursPerDay: 0.25},
	{Name: "Toaster", Category: domain.CategoryAppliances, DefaultWatts: 1200, CommonRange: "800-1500W", HoursPerDay: 0.2},
	{Name: "Dishwasher", Category: domain.CategoryAppliances, DefaultWatts: 1800, CommonRange: "1200-2400W", HoursPerDay: 1},
	{Name: "Electric Stove", Category: domain.CategoryAppliances, DefaultWatts: 2500, CommonRange: "1500-4000W", HoursPerDay: 1.5},
	{Name: "Oven", Category: domain.CategoryAppliances, DefaultWatts: 3000, CommonRange: "2000-5000W", HoursPerDay: 1},

	// Laundry
	{Name: "Washing Machine", Category: domain.CategoryAppliances, DefaultWatts: 2000, CommonRange: "300-2500W", HoursPerDay: 1},
	{Name: "Dryer", Category: domain.CategoryAppliances, DefaultWatts: 3000, CommonRange: "2000-4000W", HoursPerDay: 1},
	{Name: "Iron", Category: domain.CategoryAppliances, DefaultWatts: 1500, CommonRange: "800-2200W", HoursPerDay: 0.5},

	// Water systems
	{Name: "Electric Water Heater", Category: domain.CategoryHeating, DefaultWatts: 3000, CommonRange: "1500-6000W", HoursPerDay: 2},
	{Name: "Water Pump", Category: domain.CategoryPumping, DefaultWatts: 1000, CommonRange: "500-2000W", HoursPerDay: 1},

	// Electronics & entertainment
	{Name: "LED TV", Category: domain.CategoryEntertainment, DefaultWatts: 100, CommonRange: "50-200W", HoursPerDay: 6},
	{Name: "Satellite Receiver", Category: domain.CategoryEntertainment, DefaultWatts: 25, CommonRange: "15-40W", HoursPerDay: 8},
	{Name: "Sound System", Category: domain.CategoryEntertainment, DefaultWatts: 150, CommonRange: "50-500W", HoursPerDay: 3},
	{Name: "Desktop Computer", Category: domain.CategoryElectronics, DefaultWatts: 300, CommonRange: "150-800W", HoursPerDay: 8, IsCritical: true},
	{Name: "Laptop", Category: domain.CategoryElectronics, DefaultWatts: 65, CommonRange: "30-120W", HoursPerDay: 6, IsCritical: true},
	{Name: "Router/Modem", Category: domain.CategoryElectronics, DefaultWatts: 15, CommonRange: "10-30W", HoursPerDay: 24, IsCritical: true},
	{Name: "Phone Chargers", Category: domain.CategoryElectronics, DefaultWatts: 10, CommonRange: "5-25W", HoursPerDay: 4, IsCritical: true},

	// Security & communication
	{Name: "Security System", Category: domain.CategoryElectronics, DefaultWatts: 50, CommonRange: "20-100W", HoursPerDay: 24, IsCritical: true},
	{Name: "Intercom System", Category: domain.CategoryElectronics, DefaultWatts: 20, CommonRange: "10-50W", HoursPerDay: 24, IsCritical: true},

	// Custom entry
	{Name: "Custom Appliance", Category: domain.CategoryCustom, DefaultWatts: 100, CommonRange: "User Defined", HoursPerDay: 4},
}
