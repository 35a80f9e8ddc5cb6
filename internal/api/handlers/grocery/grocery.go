package grocery

import (
	"net/http"
	"time"

	groceryService "nutriplan-api/internal/core/grocery"
	"nutriplan-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateRequest is the grocery-list generation request body.
type GenerateRequest struct {
	MealPlan    string `json:"meal_plan" binding:"required"`
	Days        int    `json:"days" binding:"required"`
	MealsPerDay int    `json:"meals_per_day" binding:"required"`
}

// GenerateResponse is the grocery-list generation response body.
type GenerateResponse struct {
	Success              bool                         `json:"success"`
	GroceryList          []groceryService.Item        `json:"grocery_list"`
	CostBreakdown        groceryService.CostBreakdown `json:"cost_breakdown"`
	Summary              groceryService.Summary       `json:"summary"`
	ShoppingTips         []string                     `json:"shopping_tips"`
	RecipesFound         int                          `json:"recipes_found"`
	IngredientsProcessed int                          `json:"ingredients_processed"`
}

// UpdateChecksRequest toggles check state on grocery items.
type UpdateChecksRequest struct {
	GroceryList []groceryService.Item        `json:"grocery_list" binding:"required"`
	ItemUpdates []groceryService.CheckUpdate `json:"item_updates" binding:"required"`
}

// Handler serves the grocery-list endpoints.
type Handler struct {
	service *groceryService.Service
}

// NewHandler creates the grocery handler.
func NewHandler(service *groceryService.Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerate consolidates a meal plan into a costed grocery list.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid grocery list request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
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

	common.LogInfo("Generating grocery list",
		zap.String("request_id", requestID),
		zap.Int("days", req.Days),
		zap.Int("meals_per_day", req.MealsPerDay),
		zap.Int("plan_length", len(req.MealPlan)),
	)

	result, err := h.service.GenerateList(req.MealPlan, req.Days, req.MealsPerDay)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to generate grocery list"
		switch err {
		case common.ErrNoRecipesFound:
			status = http.StatusUnprocessableEntity
			message = "No recipes could be found in the provided meal plan"
		case common.ErrNoIngredientsResolved:
			status = http.StatusUnprocessableEntity
			message = "No ingredients could be recognized in the provided meal plan"
		}
		common.LogWarn("Grocery list generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(status, gin.H{"success": false, "error": message})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success:              true,
		GroceryList:          result.Report.GroceryList,
		CostBreakdown:        result.Report.CostBreakdown,
		Summary:              result.Report.Summary,
		ShoppingTips:         result.Report.ShoppingTips,
		RecipesFound:         result.RecipesFound,
		IngredientsProcessed: result.IngredientsProcessed,
	})
}

// HandleUpdateChecks applies check-off updates to a grocery list.
func (h *Handler) HandleUpdateChecks(c *gin.Context) {
	var req UpdateChecksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	updated := groceryService.ApplyCheckUpdates(req.GroceryList, req.ItemUpdates, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"grocery_list": updated,
	})
}
