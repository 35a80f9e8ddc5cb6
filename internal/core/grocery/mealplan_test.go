package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRecipe(t *testing.T) {
	p := NewMealPlanParser()

	recipes := p.Parse("Breakfast: Scramble\n• 2 eggs\n• 1 tbsp olive oil")
	require.Len(t, recipes, 1)
	assert.Equal(t, "Breakfast: Scramble", recipes[0].Title)
	assert.Equal(t, MealBreakfast, recipes[0].MealType)
	assert.Equal(t, []string{"2 eggs", "1 tbsp olive oil"}, recipes[0].Ingredients)
}

func TestParseEqualsSeparator(t *testing.T) {
	p := NewMealPlanParser()

	plan := "Veggie Omelette\n- 2 eggs\n- 1 cup spinach\n===\nChicken Salad\n- 1 chicken breast\n- 1 head lettuce"
	recipes := p.Parse(plan)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Veggie Omelette", recipes[0].Title)
	assert.Equal(t, "Chicken Salad", recipes[1].Title)
}

func TestParseDashSeparator(t *testing.T) {
	p := NewMealPlanParser()

	plan := "Veggie Omelette\n- 2 eggs\n- 1 cup spinach\n-----\nChicken Salad\n- 1 chicken breast\n- 1 head lettuce"
	recipes := p.Parse(plan)
	require.Len(t, recipes, 2)
}

func TestParseMealHeaderSeparator(t *testing.T) {
	p := NewMealPlanParser()

	plan := "Breakfast: Veggie Omelette\n- 2 eggs\n- 1 cup spinach\nLunch: Chicken Salad\n- 1 chicken breast\n- 1 head lettuce"
	recipes := p.Parse(plan)
	require.Len(t, recipes, 2)
	assert.Equal(t, MealBreakfast, recipes[0].MealType)
	assert.Equal(t, MealLunch, recipes[1].MealType)
}

func TestParseDropsShortSegments(t *testing.T) {
	p := NewMealPlanParser()

	plan := "Veggie Omelette\n- 2 eggs\n- 1 cup spinach\n===\nok\n==="
	recipes := p.Parse(plan)
	require.Len(t, recipes, 1)
}

func TestParseDropsRecipesWithoutIngredients(t *testing.T) {
	p := NewMealPlanParser()

	recipes := p.Parse("Just a title with nothing else behind it")
	assert.Empty(t, recipes)
}

func TestParseMealTypeFallback(t *testing.T) {
	p := NewMealPlanParser()

	recipes := p.Parse("Pasta Night Special\n- 1 box pasta\n- 1 can tomato sauce")
	require.Len(t, recipes, 1)
	assert.Equal(t, MealGeneric, recipes[0].MealType)
}

func TestParseIngredientLineFallback(t *testing.T) {
	p := NewMealPlanParser()

	// No bullets at all: measurement-looking lines are harvested instead.
	recipes := p.Parse("Simple Rice Bowl\n2 cups rice for the base\n1 tbsp soy sauce drizzled on top")
	require.Len(t, recipes, 1)
	assert.Len(t, recipes[0].Ingredients, 2)
}

func TestParseSkipsStructuralLinesForTitle(t *testing.T) {
	p := NewMealPlanParser()

	plan := "Day 1\nIngredients:\nHearty Veggie Soup\n- 2 carrots\n- 1 bunch celery"
	recipes := p.Parse(plan)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Hearty Veggie Soup", recipes[0].Title)
}
