package mealplan

import (
	"context"
	"fmt"
	"strings"

	"nutriplan-api/internal/core/ai/service"
	"nutriplan-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Service generates meal-plan and recipe text through the AI service. The
// output is plain text shaped so the grocery pipeline can consume it directly.
type Service struct {
	aiService *service.Service
}

// NewService creates the meal-plan service.
func NewService(aiService *service.Service) *Service {
	return &Service{aiService: aiService}
}

// PlanRequest describes the meal plan to generate.
type PlanRequest struct {
	Days        int      `json:"days"`
	MealsPerDay int      `json:"meals_per_day"`
	Preferences []string `json:"preferences"`
	Exclusions  []string `json:"exclusions"`
}

// RecipeRequest describes a single recipe to generate.
type RecipeRequest struct {
	DishName    string   `json:"dish_name"`
	Servings    int      `json:"servings"`
	Preferences []string `json:"preferences"`
}

// GeneratePlan asks the model for a multi-day meal plan.
func (s *Service) GeneratePlan(ctx context.Context, req *PlanRequest) (string, error) {
	prompt := fmt.Sprintf(`Create a %d-day meal plan with %d meals per day.

Dietary preferences: %s
Excluded ingredients: %s

Requirements:
1. Separate each recipe with a line of three equals signs (===)
2. Start each recipe with its meal type and name on the first line, e.g. "Breakfast: Veggie Omelette"
3. List ingredients as bullet lines starting with "-", each with a quantity and unit, e.g. "- 2 cups spinach"
4. Use common US grocery units (cups, tbsp, tsp, lbs, oz, pieces)
5. Do not include cooking instructions, only the ingredient lists
6. Only use ingredients a regular supermarket carries`,
		req.Days, req.MealsPerDay,
		orUnspecified(req.Preferences), orUnspecified(req.Exclusions))

	resp, err := s.aiService.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("Meal plan generation failed",
			zap.Error(err),
			zap.Int("days", req.Days),
		)
		return "", err
	}

	common.LogInfo("Meal plan generated",
		zap.Int("days", req.Days),
		zap.Int("meals_per_day", req.MealsPerDay),
		zap.Int("length", len(resp.Content)),
	)
	return resp.Content, nil
}

// GenerateRecipe asks the model for one recipe with an ingredient list.
func (s *Service) GenerateRecipe(ctx context.Context, req *RecipeRequest) (string, error) {
	servings := req.Servings
	if servings <= 0 {
		servings = 2
	}

	prompt := fmt.Sprintf(`Write a recipe for "%s" serving %d people.

Dietary preferences: %s

Requirements:
1. First line is the recipe name
2. Then a line "Ingredients:" followed by bullet lines starting with "-", each with a quantity and unit
3. Then a line "Instructions:" followed by numbered steps
4. Use common US grocery units (cups, tbsp, tsp, lbs, oz, pieces)`,
		req.DishName, servings, orUnspecified(req.Preferences))

	resp, err := s.aiService.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("Recipe generation failed",
			zap.Error(err),
			zap.String("dish", req.DishName),
		)
		return "", err
	}
	return resp.Content, nil
}

func orUnspecified(values []string) string {
	if len(values) == 0 {
		return "none specified"
	}
	return strings.Join(values, ", ")
}
