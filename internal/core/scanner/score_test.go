package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerServingNutritionScales(t *testing.T) {
	nutriments := map[string]interface{}{
		"energy-kcal_100g": 450.0,
		"sugars_100g":      40.0,
		"sodium_100g":      800.0,
		"fiber_100g":       0.0,
		"proteins_100g":    1.0,
	}

	per := PerServingNutrition(nutriments, 50)
	assert.InDelta(t, 225.0, per["calories"], 1e-9)
	assert.InDelta(t, 20.0, per["sugar"], 1e-9)
	assert.InDelta(t, 400.0, per["sodium"], 1e-9)
	assert.InDelta(t, 0.0, per["fiber"], 1e-9)
	assert.InDelta(t, 0.5, per["protein"], 1e-9)

	_, ok := per["saturated_fat"]
	assert.False(t, ok, "missing nutrients are omitted, not zeroed")
}

func TestPerServingNutritionSodiumGramsToMilligrams(t *testing.T) {
	// Upstream sodium is sometimes reported in grams.
	per := PerServingNutrition(map[string]interface{}{"sodium_100g": 0.8}, 50)
	assert.InDelta(t, 400.0, per["sodium"], 1e-9)
}

func TestPerServingNutritionStringValues(t *testing.T) {
	per := PerServingNutrition(map[string]interface{}{"proteins_100g": "10"}, 100)
	assert.InDelta(t, 10.0, per["protein"], 1e-9)
}

func TestScoreNutrientsUnhealthySnack(t *testing.T) {
	per := map[string]float64{
		"calories": 225,
		"sugar":    20,
		"sodium":   400,
		"fiber":    0,
		"protein":  0.5,
	}
	score := ScoreNutrients(per)
	assert.Equal(t, 10, score)

	grade, desc := Grade(score)
	assert.Equal(t, "F", grade)
	assert.Equal(t, "Best avoided", desc)
}

func TestComputeHealthScoreHealthyProduct(t *testing.T) {
	nutriments := map[string]interface{}{
		"energy-kcal_100g": 80.0,
		"sugars_100g":      1.0,
		"sodium_100g":      50.0,
		"fiber_100g":       6.0,
		"proteins_100g":    10.0,
	}

	per := PerServingNutrition(nutriments, 200)
	score, ultra := ComputeHealthScore(per, "rolled oats, almonds, honey")
	assert.Equal(t, 100, score)
	assert.False(t, ultra)

	grade, desc := Grade(score)
	assert.Equal(t, "A", grade)
	assert.Equal(t, "Excellent choice", desc)
}

func TestAdditivePenalty(t *testing.T) {
	assert.Equal(t, 0, AdditivePenalty("water, salt"))
	assert.Equal(t, 15, AdditivePenalty("pork, sodium nitrite"))
	assert.Equal(t, 8, AdditivePenalty("milk, carrageenan"))
	assert.Equal(t, 5, AdditivePenalty("maltodextrin"))

	// Three high-risk hits would be 45; the cap holds it at 40.
	assert.Equal(t, 40, AdditivePenalty("sodium nitrite, bha, red 40"))
}

func TestProcessingPenalty(t *testing.T) {
	assert.Equal(t, 5, ProcessingPenalty(""))
	assert.Equal(t, 0, ProcessingPenalty("water, salt, sugar"))
	assert.Equal(t, 2, ProcessingPenalty("a, b, c, d, e"))
	assert.Equal(t, 5, ProcessingPenalty("a, b, c, d, e, f, g, h"))
	assert.Equal(t, 8, ProcessingPenalty("a, b, c, d, e, f, g, h, i, j, k, l"))
	assert.Equal(t, 15, ProcessingPenalty("a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p"))
}

func TestIsUltraProcessed(t *testing.T) {
	assert.False(t, IsUltraProcessed("water, salt"))
	assert.True(t, IsUltraProcessed("whey protein isolate, cocoa"))
	assert.True(t, IsUltraProcessed("sugar, artificial vanilla flavor"))

	long := "a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t, u"
	assert.True(t, IsUltraProcessed(long))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 100, ClampScore(150))
	assert.Equal(t, 50, ClampScore(50))
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		grade string
	}{
		{80, "A"}, {79, "B"}, {65, "B"}, {64, "C"},
		{45, "C"}, {44, "D"}, {25, "D"}, {24, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		grade, _ := Grade(tt.score)
		assert.Equalf(t, tt.grade, grade, "score %d", tt.score)
	}
}
