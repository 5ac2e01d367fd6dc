package api

import "github.com/gin-gonic/gin"

// RegisterRoutes maps form events to handlers
func RegisterRoutes(router gin.IRouter, h *Handlers) {
	router.GET("/health", h.HealthCheck)

	sessions := router.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.EndSession)
	sessions.PUT("/:id/draft/:field", h.SetField)
	sessions.POST("/:id/submit", h.Submit)
	sessions.POST("/:id/refresh", h.Refresh)
	sessions.DELETE("/:id/records/:index", h.DeleteRecord)
}
