package http

import (
	"github.com/gin-gonic/gin"
	"github.com/waypoint/backend/config"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, gate SessionGate, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(SessionMiddleware(gate, logger))
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.POST("/classify", handler.ClassifyProduct)
			products.POST("/metafields", handler.SaveMetafields)
		}
	}

	return router
}
