package api

import (
	"net/http"

	"github.com/Hussein-66/SolarSystemCalc/internal/catalog"
	"github.com/Hussein-66/SolarSystemCalc/internal/domain"
	"github.com/Hussein-66/SolarSystemCalc/internal/engine"
	"github.com/Hussein-66/SolarSystemCalc/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests
type Handler struct {
	regions   map[domain.Region]domain.RegionProfile
	equipment domain.EquipmentCatalog
}

// NewHandler creates a handler backed by the built-in catalogs
func NewHandler() *Handler {
	return &Handler{
		regions:   catalog.Regions,
		equipment: catalog.Equipment,
	}
}

// applianceRequest mirrors domain.ApplianceEntry with an optional critical
// flag: when the caller leaves it out, the category default applies.
type applianceRequest struct {
	Name        string          `json:"name"`
	Category    domain.Category `json:"category"`
	Watts       int             `json:"watts"`
	CustomWatts int             `json:"custom_watts"`
	Quantity    int             `json:"quantity"`
	HoursPerDay float64         `json:"hours_per_day"`
	IsCritical  *bool           `json:"is_critical"`
}

type calculateRequest struct {
	Region         domain.Region           `json:"region"`
	City           string                  `json:"city"`
	SystemType     domain.SystemType       `json:"system_type"`
	RoofArea       int                     `json:"roof_area"`
	RoofDirection  string                  `json:"roof_direction"`
	Shading        domain.ShadingLevel     `json:"shading"`
	BackupDays     int                     `json:"backup_days"`
	BatteryType    domain.BatteryChemistry `json:"battery_type"`
	EnergyProvider domain.EnergyProvider   `json:"energy_provider"`
	Appliances     []applianceRequest      `json:"appliances"`
}

func (r calculateRequest) profile() domain.HouseholdProfile {
	profile := domain.HouseholdProfile{
		Region:         r.Region,
		City:           r.City,
		SystemType:     r.SystemType,
		RoofArea:       r.RoofArea,
		RoofDirection:  r.RoofDirection,
		Shading:        r.Shading,
		BackupDays:     r.BackupDays,
		BatteryType:    r.BatteryType,
		EnergyProvider: r.EnergyProvider,
	}
	if profile.BatteryType == "" {
		profile.BatteryType = domain.ChemistryLeadAcid
	}
	return profile
}

func (r calculateRequest) entries() []domain.ApplianceEntry {
	entries := make([]domain.ApplianceEntry, 0, len(r.Appliances))
	for _, app := range r.Appliances {
		critical := app.Category.CriticalByDefault()
		if app.IsCritical != nil {
			critical = *app.IsCritical
		}
		entries = append(entries, domain.ApplianceEntry{
			Name:        app.Name,
			Category:    app.Category,
			Watts:       app.Watts,
			CustomWatts: app.CustomWatts,
			Quantity:    app.Quantity,
			HoursPerDay: app.HoursPerDay,
			IsCritical:  critical,
		})
	}
	return entries
}

// Calculate handles POST /api/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	profile := req.profile()
	entries := req.entries()

	if issues := engine.Validate(profile, entries); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "invalid",
			"issues": issues,
		})
		return
	}

	results, err := engine.Calculate(profile, entries, h.regions, h.equipment)
	if err != nil {
		logger.Error("Calculation failed: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	calculationID := uuid.NewString()
	logger.Infof("Calculated %.1fkW system for %s (calculation_id=%s)",
		results.Sizing.NominalKw, profile.Region, calculationID)

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"calculation_id": calculationID,
		"results":        results,
	})
}

// Validate handles POST /api/validate
func (h *Handler) Validate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	issues := engine.Validate(req.profile(), req.entries())
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}

// Health handles GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Solar System Calculator",
	})
}

// Catalog handlers

// GetAppliances handles GET /api/catalog/appliances
func (h *Handler) GetAppliances(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":      len(catalog.Appliances),
		"appliances": catalog.Appliances,
	})
}

// GetRegions handles GET /api/catalog/regions
func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":   len(h.regions),
		"regions": h.regions,
	})
}

// GetEquipment handles GET /api/catalog/equipment
func (h *Handler) GetEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.equipment)
}

// GetUtilities handles GET /api/catalog/utilities
func (h *Handler) GetUtilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":     len(catalog.Tariffs),
		"utilities": catalog.Tariffs,
	})
}
