package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/waypoint/backend/internal/domain"
	"github.com/waypoint/backend/internal/usecase"
	"go.uber.org/zap"
)

const (
	serviceName    = "waypoint-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog    *usecase.CatalogService
	classifier *usecase.ClassificationService
	metafields *usecase.MetafieldService
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *usecase.CatalogService,
	classifier *usecase.ClassificationService,
	metafields *usecase.MetafieldService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:    catalog,
		classifier: classifier,
		metafields: metafields,
		logger:     logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// ListProducts returns the first page of products with their classification state
func (h *Handler) ListProducts(c *gin.Context) {
	admin := adminFromContext(c)

	listing, err := h.catalog.ListProducts(c.Request.Context(), admin)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ClassifyProduct asks the model for the customs description and HS code of one product.
// Form fields: productId, productTitle.
func (h *Handler) ClassifyProduct(c *gin.Context) {
	productID := c.PostForm("productId")
	title := c.PostForm("productTitle")

	result, err := h.classifier.Classify(c.Request.Context(), productID, title)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "productTitle is required",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success":   false,
			"productId": productID,
			"error":     "AI classification failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"productId": result.ProductID,
		"data": gin.H{
			"customs_description": result.CustomsDescription,
			"hs_code":             result.HSCode,
		},
	})
}

// SaveMetafields persists a classification on the product.
// Form fields: productId, customsDescription, hsCode.
func (h *Handler) SaveMetafields(c *gin.Context) {
	admin := adminFromContext(c)
	productID := c.PostForm("productId")

	result, err := h.metafields.SaveClassification(
		c.Request.Context(),
		admin,
		productID,
		c.PostForm("customsDescription"),
		c.PostForm("hsCode"),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// respondError maps domain errors to HTTP status codes.
// The client only sees a fixed message; the detail goes to the log.
func (h *Handler) respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status, message = http.StatusBadRequest, "invalid request"
	case errors.Is(err, domain.ErrUnauthenticated):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrShopifyAPIFailure), errors.Is(err, domain.ErrClassificationFailed):
		status, message = http.StatusBadGateway, "upstream service failed"
	}

	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"error": message})
}
