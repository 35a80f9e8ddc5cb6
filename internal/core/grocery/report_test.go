package grocery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(name, categoryKey string, cost float64) Item {
	return Item{
		Name:             name,
		Quantity:         "1",
		Unit:             UnitEach,
		Category:         CategoryDisplayName(categoryKey),
		CategoryKey:      categoryKey,
		EstimatedCost:    cost,
		PurchaseQuantity: 1,
	}
}

func TestBuildOrdersByCategoryThenName(t *testing.T) {
	b := NewReportBuilder()

	report := b.Build([]Item{
		testItem("Soy Sauce", CategoryCondiments, 2.99),
		testItem("Banana", CategoryFruits, 1.29),
		testItem("Chicken Breast", CategoryProteins, 6.99),
		testItem("Apple", CategoryFruits, 4.49),
		testItem("Spinach", CategoryVegetables, 2.99),
	}, PlanInfo{Days: 1, MealsPerDay: 1})

	names := make([]string, 0, len(report.GroceryList))
	for _, item := range report.GroceryList {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Chicken Breast", "Spinach", "Apple", "Banana", "Soy Sauce"}, names)
}

func TestBuildCostBreakdown(t *testing.T) {
	b := NewReportBuilder()

	report := b.Build([]Item{
		testItem("Chicken Breast", CategoryProteins, 6.99),
		testItem("Spinach", CategoryVegetables, 2.99),
	}, PlanInfo{Days: 2, MealsPerDay: 3, RecipesCount: 2})

	cb := report.CostBreakdown
	assert.InDelta(t, 9.98, cb.TotalCost, 1e-9)
	assert.InDelta(t, 4.99, cb.CostPerDay, 1e-9)
	assert.InDelta(t, 1.66, cb.CostPerMeal, 1e-9)
	assert.Equal(t, 2, cb.ItemCount)
	assert.Equal(t, []string{}, cb.ExcludedItems)
	assert.InDelta(t, 6.99, cb.CategoryBreakdown["Proteins"], 1e-9)

	assert.Equal(t, 2, report.Summary.TotalItems)
	assert.Equal(t, 1, report.Summary.CategoryCounts["Vegetables"])
}

func TestBuildZeroDaysDoesNotDivideByZero(t *testing.T) {
	b := NewReportBuilder()

	report := b.Build([]Item{testItem("Spinach", CategoryVegetables, 2.99)}, PlanInfo{})
	assert.InDelta(t, 2.99, report.CostBreakdown.CostPerDay, 1e-9)
	assert.InDelta(t, 2.99, report.CostBreakdown.CostPerMeal, 1e-9)
}

func TestShoppingTipsAlwaysIncludeOrganizationTip(t *testing.T) {
	b := NewReportBuilder()

	report := b.Build([]Item{testItem("Spinach", CategoryVegetables, 2.99)}, PlanInfo{Days: 1, MealsPerDay: 1})
	require.NotEmpty(t, report.ShoppingTips)
	assert.Contains(t, report.ShoppingTips[len(report.ShoppingTips)-1], "Check your pantry")
}

func TestShoppingTipsPredicatesAndCap(t *testing.T) {
	b := NewReportBuilder()

	// Build a list that trips every predicate.
	var items []Item
	for _, name := range []string{"Chicken Breast", "Steak", "Salmon", "Shrimp"} {
		items = append(items, testItem(name, CategoryProteins, 10.99))
	}
	for _, name := range []string{"Spinach", "Kale", "Broccoli", "Carrots", "Celery"} {
		items = append(items, testItem(name, CategoryVegetables, 2.49))
	}
	for _, name := range []string{"Apple", "Banana", "Orange", "Grapes", "Mango"} {
		items = append(items, testItem(name, CategoryFruits, 3.49))
	}
	for _, name := range []string{"Olive Oil", "Honey", "Sugar", "Flour", "Rice", "Lentils"} {
		items = append(items, testItem(name, CategoryPantry, 4.99))
	}
	for _, name := range []string{"Milk", "Butter", "Yogurt"} {
		items = append(items, testItem(name, CategoryDairy, 3.79))
	}

	report := b.Build(items, PlanInfo{Days: 7, MealsPerDay: 3})
	assert.Len(t, report.ShoppingTips, 6)
	assert.Contains(t, report.ShoppingTips[len(report.ShoppingTips)-1], "Check your pantry")
}

func TestApplyCheckUpdates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []Item{
		testItem("Spinach", CategoryVegetables, 2.99),
		testItem("Eggs", CategoryProteins, 3.49),
	}

	updated := ApplyCheckUpdates(items, []CheckUpdate{
		{Name: "spinach", IsChecked: true},
		{Name: "No Such Item", IsChecked: true},
	}, now)

	require.Len(t, updated, 2)
	assert.True(t, updated[0].IsChecked)
	require.NotNil(t, updated[0].CheckedAt)
	assert.Equal(t, now, *updated[0].CheckedAt)
	assert.False(t, updated[1].IsChecked)
	assert.Nil(t, updated[1].CheckedAt)

	// Unchecking clears the timestamp.
	updated = ApplyCheckUpdates(updated, []CheckUpdate{{Name: "Spinach", IsChecked: false}}, now)
	assert.False(t, updated[0].IsChecked)
	assert.Nil(t, updated[0].CheckedAt)
}
