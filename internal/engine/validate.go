package engine

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Wattage and total-load plausibility limits for a residential install.
const (
	maxApplianceWatts = 10000
	maxTotalLoadWatts = 30000
	minTotalLoadWatts = 500
)

// Validate checks the inputs and returns a list of human-readable issues.
// An empty list means the inputs are acceptable for Calculate. It never
// fails: every problem it can detect is caller-correctable.
func Validate(profile domain.HouseholdProfile, appliances []domain.ApplianceEntry) []string {
	var issues []string

	if len(appliances) == 0 {
		issues = append(issues, "At least one appliance must be selected")
	}

	invalidWattage := false
	totalLoad := 0
	for _, app := range appliances {
		watts := app.EffectiveWatts()
		if watts <= 0 || watts > maxApplianceWatts {
			invalidWattage = true
		}
		totalLoad += watts * app.Quantity
	}

	if invalidWattage {
		issues = append(issues, "All appliances must have valid wattage values (1-10,000 watts)")
	}

	if totalLoad > maxTotalLoadWatts {
		issues = append(issues, "Total load exceeds typical residential capacity (30kW max recommended)")
	}

	if totalLoad < minTotalLoadWatts {
		issues = append(issues, "Total load seems too low for a typical household")
	}

	if profile.Region == "" {
		issues = append(issues, "Location/region must be specified")
	}

	return issues
}
