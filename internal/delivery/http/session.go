package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

const adminContextKey = "admin"

// SessionGate authenticates a merchant session and yields its Admin API capability
type SessionGate interface {
	Authenticate(r *http.Request) (domain.AdminAPI, error)
}

// SessionMiddleware rejects unauthenticated requests and stores the admin capability
func SessionMiddleware(gate SessionGate, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := gate.Authenticate(c.Request)
		if err != nil {
			logger.Warn("session rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// adminFromContext returns the capability stored by SessionMiddleware
func adminFromContext(c *gin.Context) domain.AdminAPI {
	return c.MustGet(adminContextKey).(domain.AdminAPI)
}
