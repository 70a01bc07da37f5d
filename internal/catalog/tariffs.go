package catalog

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Tariffs lists the utility supply options with their effective USD cost
// per kWh as of 2024.
var Tariffs = []domain.UtilityTariff{
	{
		Provider:    domain.ProviderEDLOnly,
		Label:       "EDL Grid Only",
		Description: "Électricité du Liban - Official grid",
		Reliability: "2-8 hours/day (varies by area)",
		CostPerKwh:  0.10,
	},
	{
		Provider:    domain.ProviderEDLGenerator,
		Label:       "EDL Grid + Private Generator",
		Description: "Mixed supply - most common setup",
		Reliability: "18-24 hours/day",
		CostPerKwh:  0.35,
	},
	{
		Provider:    domain.ProviderGeneratorOnly,
		Label:       "Private Generator Only",
		Description: "Diesel generator subscription",
		Reliability: "24 hours/day",
		CostPerKwh:  0.45,
	},
}
