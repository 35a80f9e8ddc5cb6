package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractServingSizeFromText(t *testing.T) {
	tests := []struct {
		name        string
		servingSize string
		wantGrams   float64
	}{
		{"plain grams", "30 g", 30},
		{"grams in parentheses", "2 cookies (about 30 g)", 30},
		{"milliliters", "250 ml", 250},
		{"fluid ounces", "8 fl oz", 236.588},
		{"plain ounces", "2 oz", 56.699},
		{"cup", "1 cup", 240},
		{"piece count", "2 pieces", 60},
		{"bare small number", "3", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractServingSize(&Product{ServingSize: tt.servingSize})
			assert.InDelta(t, tt.wantGrams, info.ServingSizeGrams, 0.01)
			assert.Equal(t, ConfidenceHigh, info.Confidence)
			assert.Equal(t, "serving_size_field", info.Source)
			assert.Equal(t, tt.servingSize, info.RawValue)
		})
	}
}

func TestExtractServingSizeFromQuantity(t *testing.T) {
	// String-typed quantities show up in the upstream data.
	info := ExtractServingSize(&Product{ServingQuantity: "45"})
	assert.InDelta(t, 45.0, info.ServingSizeGrams, 1e-9)
	assert.Equal(t, ConfidenceHigh, info.Confidence)
	assert.Equal(t, "serving_quantity", info.Source)
}

func TestExtractServingSizeFromNutrientRatio(t *testing.T) {
	info := ExtractServingSize(&Product{
		ServingSize: "one portion",
		Nutriments: map[string]interface{}{
			"proteins_serving": 5.0,
			"proteins_100g":    20.0,
		},
	})
	assert.InDelta(t, 25.0, info.ServingSizeGrams, 1e-9)
	assert.Equal(t, ConfidenceHigh, info.Confidence)
	assert.Equal(t, "nutrient_ratio_proteins", info.Source)
}

func TestExtractServingSizeFromCategory(t *testing.T) {
	info := ExtractServingSize(&Product{
		ProductName: "Greek Yogurt",
		Categories:  "dairy",
	})
	assert.InDelta(t, 170.0, info.ServingSizeGrams, 1e-9)
	assert.Equal(t, ConfidenceMedium, info.Confidence)
	assert.Equal(t, "category_estimate", info.Source)
	assert.Equal(t, "yogurt", info.RawValue)
}

func TestExtractServingSizeFallback(t *testing.T) {
	beverage := ExtractServingSize(&Product{ProductName: "Sparkling Water", Categories: "beverages"})
	assert.InDelta(t, 240.0, beverage.ServingSizeGrams, 1e-9)
	assert.Equal(t, ConfidenceLow, beverage.Confidence)
	assert.Equal(t, "default_estimate", beverage.Source)

	unknown := ExtractServingSize(&Product{})
	assert.InDelta(t, 50.0, unknown.ServingSizeGrams, 1e-9)
	assert.Equal(t, ConfidenceLow, unknown.Confidence)
	assert.Equal(t, "default_estimate", unknown.Source)
}

func TestExtractServingSizeRejectsOutOfRange(t *testing.T) {
	// A 3 kg "serving" is a misparse; the cascade falls through to default.
	info := ExtractServingSize(&Product{ServingSize: "3000 g"})
	assert.Equal(t, "default_estimate", info.Source)
	assert.InDelta(t, 50.0, info.ServingSizeGrams, 1e-9)
}

func TestFormatServingSize(t *testing.T) {
	raw := ServingInfo{ServingSizeGrams: 30, Source: "serving_size_field", RawValue: "2 cookies (30 g)"}
	assert.Equal(t, "2 cookies (30 g)", FormatServingSize(raw))

	estimated := ServingInfo{ServingSizeGrams: 170, Source: "category_estimate", RawValue: "yogurt"}
	assert.Equal(t, "170 g", FormatServingSize(estimated))
}
