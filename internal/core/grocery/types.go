package grocery

import "time"

// Meal type tags assigned by the meal-plan parser.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealGeneric   = "meal"
)

// Recipe is one recipe section extracted from a meal-plan blob.
type Recipe struct {
	Title       string   `json:"title"`
	MealType    string   `json:"meal_type"`
	Ingredients []string `json:"ingredients"`
	RawText     string   `json:"-"`
}

// ParsedIngredient is a single ingredient line resolved against the lexicon.
type ParsedIngredient struct {
	OriginalText  string  `json:"original_text"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	IngredientKey string  `json:"ingredient_key"`
	RecipeID      int     `json:"recipe_id"`
}

// Item is one consolidated purchase line on the grocery list.
type Item struct {
	Name             string     `json:"name"`
	Quantity         string     `json:"quantity"`
	Unit             string     `json:"unit"`
	Category         string     `json:"category"`
	Notes            string     `json:"notes"`
	EstimatedCost    float64    `json:"estimated_cost"`
	IsChecked        bool       `json:"is_checked"`
	CheckedAt        *time.Time `json:"checked_at"`
	PurchaseQuantity float64    `json:"-"`
	CategoryKey      string     `json:"-"`
}

// CostBreakdown summarizes estimated spend for the plan.
type CostBreakdown struct {
	TotalCost         float64            `json:"total_cost"`
	CostPerDay        float64            `json:"cost_per_day"`
	CostPerMeal       float64            `json:"cost_per_meal"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	ItemCount         int                `json:"item_count"`
	ExcludedItems     []string           `json:"excluded_items"`
}

// Summary holds headline counts for the grocery report.
type Summary struct {
	TotalItems     int            `json:"total_items"`
	TotalCost      float64        `json:"total_cost"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// Report is the full serializable grocery-list response payload.
type Report struct {
	GroceryList   []Item        `json:"grocery_list"`
	CostBreakdown CostBreakdown `json:"cost_breakdown"`
	Summary       Summary       `json:"summary"`
	ShoppingTips  []string      `json:"shopping_tips"`
}

// PlanInfo carries plan-level parameters into the report builder.
type PlanInfo struct {
	Days         int
	MealsPerDay  int
	RecipesCount int
}
