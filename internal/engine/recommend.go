package engine

import "github.com/Hussein-66/SolarSystemCalc/internal/domain"

// Recommend derives advisory messages from a finished result bundle.
func Recommend(bundle *domain.ResultBundle) []domain.Recommendation {
	var recs []domain.Recommendation

	if bundle.Sizing.NominalKw > 15 {
		recs = append(recs, domain.Recommendation{
			Type:    "warning",
			Message: "Large system detected. Consider energy efficiency measures first to reduce initial investment.",
		})
	}

	if bundle.Equipment.Batteries.AutonomyProvidedHours < 12 {
		recs = append(recs, domain.Recommendation{
			Type:    "info",
			Message: "Consider increasing battery capacity for longer backup during extended grid outages.",
		})
	}

	if bundle.Economics.SimplePaybackYears > 8 {
		recs = append(recs, domain.Recommendation{
			Type:    "warning",
			Message: "Payback period exceeds 8 years. Consider reducing system size or improving energy efficiency first.",
		})
	}

	if bundle.Sizing.PerformanceRatioPct < 75 {
		recs = append(recs, domain.Recommendation{
			Type:    "warning",
			Message: "Low performance ratio. Check for shading issues or consider a different panel orientation.",
		})
	}

	if bundle.Location.Region == domain.RegionBekaa {
		recs = append(recs, domain.Recommendation{
			Type:    "info",
			Message: "The Bekaa Valley has excellent solar resources. Your system will perform above the national average.",
		})
	}

	if bundle.Equipment.Batteries.Chemistry == domain.ChemistryLeadAcid {
		recs = append(recs, domain.Recommendation{
			Type:    "info",
			Message: "Lead-acid batteries require regular maintenance but are cost-effective for local conditions.",
		})
	}

	return recs
}
