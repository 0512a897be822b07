package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes. metricsHandler may be nil to skip
// the /metrics endpoint.
func SetupRoutes(router *gin.Engine, handler *Handler, metricsHandler http.Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Detection endpoints
		detect := v1.Group("/detect")
		{
			detect.POST("", handler.Detect)            // POST /api/v1/detect
			detect.POST("/batch", handler.DetectBatch) // POST /api/v1/detect/batch
		}

		// Gazetteer inspection endpoints
		orgs := v1.Group("/orgs")
		{
			orgs.GET("/:org_id/gazetteer", handler.GetGazetteer)             // GET /api/v1/orgs/:org_id/gazetteer
			orgs.POST("/:org_id/gazetteer/refresh", handler.RefreshGazetteer) // POST /api/v1/orgs/:org_id/gazetteer/refresh
		}
	}
}
