package mealplan

import (
	"net/http"

	mealplanService "nutriplan-api/internal/core/mealplan"
	"nutriplan-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the LLM-backed plan and recipe endpoints.
type Handler struct {
	service *mealplanService.Service
}

// NewHandler creates the meal-plan handler.
func NewHandler(service *mealplanService.Service) *Handler {
	return &Handler{service: service}
}

// HandleGeneratePlan generates a multi-day meal plan.
func (h *Handler) HandleGeneratePlan(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req mealplanService.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if req.Days < 1 || req.Days > 14 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "days must be between 1 and 14"})
		return
	}
	if req.MealsPerDay < 1 || req.MealsPerDay > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "meals_per_day must be between 1 and 5"})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		common.LogError("Failed to generate meal plan",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"meal_plan":     plan,
		"days":          req.Days,
		"meals_per_day": req.MealsPerDay,
	})
}

// HandleGenerateRecipe generates one recipe.
func (h *Handler) HandleGenerateRecipe(c *gin.Context) {
	var req mealplanService.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}
	if req.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "dish_name is required"})
		return
	}

	recipe, err := h.service.GenerateRecipe(c.Request.Context(), &req)
	if err != nil {
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipe":  recipe,
	})
}

func writeAIError(c *gin.Context, err error) {
	switch err {
	case common.ErrTooManyRequests:
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Too many requests, slow down"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Generation service is unavailable"})
	}
}
