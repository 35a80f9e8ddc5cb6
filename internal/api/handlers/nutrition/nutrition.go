package nutrition

import (
	"net/http"

	nutritionService "nutriplan-api/internal/core/nutrition"
	"nutriplan-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstimateRequest is the free-text nutrition estimate request body.
type EstimateRequest struct {
	Description string `json:"description" binding:"required"`
}

// Handler serves the nutrition estimation endpoint.
type Handler struct {
	service *nutritionService.Service
}

// NewHandler creates the nutrition handler.
func NewHandler(service *nutritionService.Service) *Handler {
	return &Handler{service: service}
}

// HandleEstimate estimates nutrition for a described meal.
func (h *Handler) HandleEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	estimate, err := h.service.EstimateMeal(c.Request.Context(), req.Description)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		common.LogError("Nutrition estimate failed", zap.Error(err))
		if err == common.ErrTooManyRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Too many requests, slow down"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Estimation service is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"estimate": estimate,
	})
}
