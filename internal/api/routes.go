package api

import "github.com/gin-gonic/gin"

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Core endpoints
		api.POST("/calculate", h.Calculate)
		api.POST("/validate", h.Validate)
		api.GET("/health", h.Health)

		// Read-only reference catalogs
		cat := api.Group("/catalog")
		{
			cat.GET("/appliances", h.GetAppliances)
			cat.GET("/regions", h.GetRegions)
			cat.GET("/equipment", h.GetEquipment)
			cat.GET("/utilities", h.GetUtilities)
		}
	}
}
