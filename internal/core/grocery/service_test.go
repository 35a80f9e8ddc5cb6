package grocery

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nutriplan-api/internal/pkg/common"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestService() *Service {
	return NewService(NewLexicon())
}

func TestGenerateListSingleRecipe(t *testing.T) {
	svc := newTestService()

	result, err := svc.GenerateList("Breakfast: Scramble\n• 2 eggs\n• 1 tbsp olive oil", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.RecipesFound)
	assert.Equal(t, 2, result.IngredientsProcessed)

	list := result.Report.GroceryList
	require.Len(t, list, 2)

	// Eggs come first (proteins before pantry).
	assert.Equal(t, "Eggs", list[0].Name)
	assert.Equal(t, "1", list[0].Quantity)
	assert.Equal(t, UnitDozen, list[0].Unit)

	assert.Equal(t, "Olive Oil", list[1].Name)
	assert.Equal(t, "1", list[1].Quantity)
	assert.Equal(t, UnitBottle, list[1].Unit)

	assert.Equal(t, 2, result.Report.CostBreakdown.ItemCount)
	assert.Equal(t, 2, result.Report.Summary.TotalItems)
}

func TestGenerateListMergesAcrossRecipes(t *testing.T) {
	svc := newTestService()

	plan := "Lunch: Grilled Chicken\n• 1 chicken breast\n===\nDinner: Chicken Stir Fry\n• 1 chicken breast"
	result, err := svc.GenerateList(plan, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.RecipesFound)
	require.Len(t, result.Report.GroceryList, 1)

	item := result.Report.GroceryList[0]
	assert.Equal(t, "Chicken Breast", item.Name)
	assert.Equal(t, "1", item.Quantity)
	assert.Equal(t, UnitLbs, item.Unit)
	assert.Contains(t, item.Notes, "Used in 2 recipes")
}

func TestGenerateListConvertsClovesToHead(t *testing.T) {
	svc := newTestService()

	result, err := svc.GenerateList("Dinner: Garlic Pasta\n• 6 cloves garlic\n• 2 cups spinach", 1, 1)
	require.NoError(t, err)

	byName := make(map[string]Item)
	for _, item := range result.Report.GroceryList {
		byName[item.Name] = item
	}

	garlic, ok := byName["Garlic"]
	require.True(t, ok)
	assert.Equal(t, "1", garlic.Quantity)
	assert.Equal(t, UnitHead, garlic.Unit)

	spinach, ok := byName["Spinach"]
	require.True(t, ok)
	assert.Equal(t, "1", spinach.Quantity)
	assert.Equal(t, UnitBag, spinach.Unit)
}

func TestGenerateListDeterministic(t *testing.T) {
	svc := newTestService()

	plan := "Breakfast: Omelette\n• 3 eggs\n• 1 cup spinach\n===\nDinner: Steak Night\n• 1 lb steak\n• 2 potatoes"
	first, err := svc.GenerateList(plan, 2, 2)
	require.NoError(t, err)
	second, err := svc.GenerateList(plan, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
}

func TestGenerateListNoRecipes(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateList("just some words with no structure", 1, 1)
	assert.ErrorIs(t, err, common.ErrNoRecipesFound)
}

func TestGenerateListNoIngredientsResolved(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateList("Dinner: Mystery Meal\n• 2 cups glarbnax\n• 1 tbsp zzyzx powder", 1, 1)
	assert.ErrorIs(t, err, common.ErrNoIngredientsResolved)
}
