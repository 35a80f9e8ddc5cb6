package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.5, "½"},
		{0.75, "¾"},
		{0.25, "¼"},
		{2, "2"},
		{2.5, "2.5"},
		{3.0, "3"},
		{1, "1"},
		{1.2, "1.2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatQuantity(tt.input), "FormatQuantity(%v)", tt.input)
	}
}

func TestAggregateCountsDistinctRecipes(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 1, Unit: "item", IngredientKey: "chicken breast", RecipeID: 0},
		{Quantity: 1, Unit: "item", IngredientKey: "chicken breast", RecipeID: 1},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken Breast", items[0].Name)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, UnitLbs, items[0].Unit)
	assert.Equal(t, "Used in 2 recipes", items[0].Notes)
}

func TestAggregateEggsToDozen(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 2, Unit: "item", IngredientKey: "eggs", RecipeID: 0},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, UnitDozen, items[0].Unit)
}

func TestAggregateClovesToHead(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 6, Unit: "clove", IngredientKey: "garlic", RecipeID: 0},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Garlic", items[0].Name)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, UnitHead, items[0].Unit)
}

func TestAggregateCupToBag(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 2, Unit: "cup", IngredientKey: "spinach", RecipeID: 0},
	})
	require.Len(t, items, 1)
	// 2 cups × 0.1 = 0.2 bags, rounded up to a whole bag.
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, UnitBag, items[0].Unit)
}

func TestAggregateWeightRounding(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	// 3 × 0.5 lbs = 1.5 lbs, already on a half-pound step.
	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 3, Unit: "item", IngredientKey: "chicken breast", RecipeID: 0},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "1.5", items[0].Quantity)
	assert.InDelta(t, 1.5, items[0].PurchaseQuantity, 1e-9)
}

func TestAggregatePermutationInvariant(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	instances := []ParsedIngredient{
		{Quantity: 2, Unit: "item", IngredientKey: "eggs", RecipeID: 0},
		{Quantity: 1, Unit: "tbsp", IngredientKey: "olive oil", RecipeID: 0},
		{Quantity: 1, Unit: "item", IngredientKey: "chicken breast", RecipeID: 1},
		{Quantity: 6, Unit: "clove", IngredientKey: "garlic", RecipeID: 1},
	}
	reversed := make([]ParsedIngredient, len(instances))
	for i, inst := range instances {
		reversed[len(instances)-1-i] = inst
	}

	assert.Equal(t, agg.Aggregate(instances), agg.Aggregate(reversed))
}

func TestAggregateCostInvariant(t *testing.T) {
	lexicon := NewLexicon()
	agg := NewAggregator(lexicon)

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 2, Unit: "item", IngredientKey: "eggs", RecipeID: 0},
		{Quantity: 3, Unit: "item", IngredientKey: "chicken breast", RecipeID: 0},
		{Quantity: 2, Unit: "cup", IngredientKey: "rice", RecipeID: 0},
		{Quantity: 1, Unit: "tbsp", IngredientKey: "olive oil", RecipeID: 0},
	})
	require.NotEmpty(t, items)

	byName := map[string]string{
		"Eggs": "eggs", "Chicken Breast": "chicken breast",
		"Rice": "rice", "Olive Oil": "olive oil",
	}
	for _, item := range items {
		entry, ok := lexicon.Lookup(byName[item.Name])
		require.True(t, ok, item.Name)
		assert.InDelta(t, round2(item.PurchaseQuantity*entry.CostPerUnit), item.EstimatedCost, 1e-9, item.Name)
		if discreteUnits[item.Unit] {
			assert.GreaterOrEqual(t, item.PurchaseQuantity, 1.0, item.Name)
			assert.InDelta(t, item.PurchaseQuantity, float64(int(item.PurchaseQuantity)), 1e-9, item.Name)
		}
	}
}

func TestAggregateSkipsUnresolved(t *testing.T) {
	agg := NewAggregator(NewLexicon())

	items := agg.Aggregate([]ParsedIngredient{
		{Quantity: 1, Unit: "item", IngredientKey: "", RecipeID: 0},
		{Quantity: 1, Unit: "item", IngredientKey: "not in lexicon", RecipeID: 0},
	})
	assert.Empty(t, items)
}
