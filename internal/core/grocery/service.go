package grocery

import (
	"nutriplan-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Service runs the full grocery pipeline: meal-plan text to costed list.
type Service struct {
	lexicon    *Lexicon
	parser     *Parser
	planParser *MealPlanParser
	aggregator *Aggregator
	builder    *ReportBuilder
}

// NewService creates the grocery list service over a shared lexicon.
func NewService(lexicon *Lexicon) *Service {
	return &Service{
		lexicon:    lexicon,
		parser:     NewParser(lexicon),
		planParser: NewMealPlanParser(),
		aggregator: NewAggregator(lexicon),
		builder:    NewReportBuilder(),
	}
}

// Result is the outcome of one grocery-list generation.
type Result struct {
	Report               Report
	RecipesFound         int
	IngredientsProcessed int
}

// GenerateList parses the meal plan, resolves and aggregates ingredients and
// builds the report. Unresolvable ingredient lines are skipped, not errors.
func (s *Service) GenerateList(mealPlan string, days, mealsPerDay int) (*Result, error) {
	recipes := s.planParser.Parse(mealPlan)
	if len(recipes) == 0 {
		return nil, common.ErrNoRecipesFound
	}

	var instances []ParsedIngredient
	processed := 0
	for id, recipe := range recipes {
		for _, line := range recipe.Ingredients {
			processed++
			if inst := s.parser.Parse(line, id); inst != nil {
				instances = append(instances, *inst)
			}
		}
	}
	if len(instances) == 0 {
		return nil, common.ErrNoIngredientsResolved
	}

	items := s.aggregator.Aggregate(instances)
	report := s.builder.Build(items, PlanInfo{
		Days:         days,
		MealsPerDay:  mealsPerDay,
		RecipesCount: len(recipes),
	})

	common.LogInfo("grocery list generated",
		zap.Int("recipes", len(recipes)),
		zap.Int("ingredient_lines", processed),
		zap.Int("resolved", len(instances)),
		zap.Int("items", len(report.GroceryList)),
	)

	return &Result{
		Report:               report,
		RecipesFound:         len(recipes),
		IngredientsProcessed: processed,
	}, nil
}
