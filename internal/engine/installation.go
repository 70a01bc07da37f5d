package engine

import (
	"fmt"

	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
)

// PlanInstallation emits the phased project plan. The phases are fixed
// templates; only the equipment quantities and the selector's cost figures
// are substituted in.
func PlanInstallation(equipment domain.EquipmentSelection) domain.InstallationPlan {
	costs := equipment.Costs

	phases := []domain.InstallationPhase{
		{
			Phase:       "Site Assessment & Permits",
			Duration:    "3-5 days",
			Description: "Regulatory compliance and site preparation",
			Tasks: []string{
				"Obtain building permit from municipality",
				"EDL interconnection application (if grid-tie)",
				"Structural assessment for local building standards",
				"Electrical panel upgrade assessment",
				"Equipment procurement and import clearance",
			},
			Requirements: []string{
				"Licensed electrical engineer approval",
				"Municipal building permit",
				"Import documentation for equipment",
			},
			Cost: costs.Permits,
		},
		{
			Phase:       "Mounting & Mechanical Installation",
			Duration:    "2-3 days",
			Description: "Panel mounting system installation",
			Tasks: []string{
				fmt.Sprintf("Install mounting system for %d panels", equipment.Panels.Quantity),
				"Waterproofing for coastal and mountain weather",
				"Grounding system per the local electrical code",
				"Cable management and protection",
			},
			Requirements: []string{
				"Weather-resistant mounting hardware",
				"Proper safety equipment",
				"Local electrical code compliance",
			},
			Cost: costs.Installation,
		},
		{
			Phase:       "Electrical Installation",
			Duration:    "2-3 days",
			Description: "Power system and battery installation",
			Tasks: []string{
				fmt.Sprintf("Install %dW inverter with proper ventilation", equipment.Inverter.TotalPower),
				fmt.Sprintf("Configure %d battery bank (%s %s)", equipment.Batteries.Quantity, equipment.Batteries.Brand, equipment.Batteries.Type),
				"DC and AC electrical connections",
				"Protection devices and monitoring systems",
				"Grid interconnection (if applicable)",
			},
			Requirements: []string{
				"Adequate ventilation for the climate",
				"Battery ventilation (for lead-acid systems)",
				"Surge protection devices",
			},
			Cost: costs.Labor,
		},
		{
			Phase:       "Testing & Commissioning",
			Duration:    "1-2 days",
			Description: "System testing and customer training",
			Tasks: []string{
				"Complete electrical testing and certification",
				"Performance verification",
				"System monitoring setup",
				"Customer training on operation",
				"Warranty registration with local distributors",
			},
			Deliverables: []string{
				"Installation certificate",
				"Performance test report",
				"User manual in Arabic/English",
				"Warranty documentation",
			},
			Cost: costs.Commissioning,
		},
	}

	return domain.InstallationPlan{
		TotalDuration:  "8-13 working days",
		Phases:         phases,
		EstimatedTotal: costs.Permits + costs.Installation + costs.Labor + costs.Commissioning,
		KeyConsiderations: []string{
			"Consider seasonal weather patterns for installation timing",
			"Ensure compliance with the local electrical code and municipal requirements",
			"Coordinate with EDL for grid-tie systems",
			"Account for potential currency fluctuations in final costing",
			"Verify equipment warranty coverage with the distributor",
		},
		PostInstallation: []string{
			"Monthly panel cleaning (important in dusty conditions)",
			"Quarterly battery maintenance for lead-acid systems",
			"Annual professional inspection",
			"Performance monitoring through the system interface",
			"Maintain contact with the distributor for warranty service",
		},
		Regulatory: domain.RegulatoryNotes{
			Permits:        "Municipal permit required for most installations",
			Inspection:     "Electrical inspection by a certified engineer",
			GridConnection: "EDL approval required for grid-tie systems",
			Insurance:      "Consider adding the solar system to property insurance",
		},
	}
}
