package scanner

import (
	"math"
	"strings"
)

// The score starts at a neutral baseline and moves with each adjustment.
const baseHealthScore = 60

// nutrientSources lists per-100g nutriment keys per target nutrient, in
// preference order.
var nutrientSources = map[string][]string{
	"calories":      {"energy-kcal_100g", "energy-kcal_value"},
	"sugar":         {"sugars_100g"},
	"sodium":        {"sodium_100g"},
	"saturated_fat": {"saturated-fat_100g"},
	"fiber":         {"fiber_100g"},
	"protein":       {"proteins_100g"},
}

// PerServingNutrition scales per-100g values to the serving size. Missing
// nutrients are omitted rather than zeroed. Sodium values below 10 are
// assumed to be grams and converted to milligrams.
func PerServingNutrition(nutriments map[string]interface{}, servingGrams float64) map[string]float64 {
	result := make(map[string]float64, len(nutrientSources))
	for nutrient, keys := range nutrientSources {
		for _, key := range keys {
			v, ok := nutrimentValue(nutriments, key)
			if !ok {
				continue
			}
			scaled := v * servingGrams / 100
			if nutrient == "sodium" && scaled < 10 {
				scaled *= 1000
			}
			result[nutrient] = round1(scaled)
			break
		}
	}
	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScoreNutrients applies the banded per-serving nutrient adjustments to the
// baseline. Absent nutrients contribute nothing.
func ScoreNutrients(per map[string]float64) int {
	score := baseHealthScore

	if v, ok := per["calories"]; ok {
		switch {
		case v <= 80:
			score += 15
		case v <= 120:
			score += 10
		case v <= 200:
			// neutral band
		case v <= 300:
			score -= 15
		default:
			score -= 25
		}
	}

	if v, ok := per["sugar"]; ok {
		switch {
		case v <= 2:
			score += 10
		case v <= 5:
			score += 5
		case v <= 10:
			score -= 5
		case v <= 18:
			score -= 15
		default:
			score -= 30
		}
	}

	if v, ok := per["sodium"]; ok {
		switch {
		case v <= 100:
			score += 10
		case v <= 200:
			score += 5
		case v <= 400:
			score -= 5
		case v <= 600:
			score -= 15
		default:
			score -= 25
		}
	}

	if v, ok := per["saturated_fat"]; ok {
		switch {
		case v <= 1:
			score += 5
		case v <= 3:
			// neutral band
		case v <= 5:
			score -= 5
		case v <= 8:
			score -= 10
		default:
			score -= 20
		}
	}

	if v, ok := per["fiber"]; ok {
		switch {
		case v >= 5:
			score += 15
		case v >= 3:
			score += 10
		case v >= 1.5:
			score += 5
		}
	}

	if v, ok := per["protein"]; ok {
		switch {
		case v >= 12:
			score += 15
		case v >= 8:
			score += 10
		case v >= 3:
			score += 5
		}
	}

	return score
}

// Additive lists are matched case-insensitively as substrings of the
// ingredient label text.
var (
	highRiskAdditives = []string{
		"sodium nitrite", "sodium nitrate", "potassium bromate", "bha", "bht",
		"tbhq", "azodicarbonamide", "aspartame", "acesulfame",
		"partially hydrogenated", "red 40", "yellow 5", "yellow 6", "blue 1",
	}
	mediumRiskAdditives = []string{
		"carrageenan", "sodium benzoate", "potassium sorbate",
		"monosodium glutamate", "corn syrup", "polysorbate", "sucralose",
		"saccharin", "phosphoric acid", "caramel color",
	}
	processingIndicators = []string{
		"maltodextrin", "dextrose", "hydrogenated", "hydrolyzed",
		"invert sugar", "natural flavor",
	}
	ultraProcessedMarkers = []string{
		"high fructose corn syrup", "hydrolyzed protein", "isolate",
		"concentrate", "modified starch", "artificial", "flavor enhancer",
		"emulsifier", "stabilizer", "thickener", "gelling agent",
	}
)

const (
	highRiskPenalty     = 15
	mediumRiskPenalty   = 8
	processingPenalty   = 5
	maxAdditivePenalty  = 40
	ultraProcessPenalty = 20
	ultraCountThreshold = 20
)

// AdditivePenalty totals additive deductions from the ingredient text,
// capped at the maximum.
func AdditivePenalty(ingredientsText string) int {
	text := strings.ToLower(ingredientsText)
	penalty := 0
	for _, additive := range highRiskAdditives {
		if strings.Contains(text, additive) {
			penalty += highRiskPenalty
		}
	}
	for _, additive := range mediumRiskAdditives {
		if strings.Contains(text, additive) {
			penalty += mediumRiskPenalty
		}
	}
	for _, indicator := range processingIndicators {
		if strings.Contains(text, indicator) {
			penalty += processingPenalty
		}
	}
	if penalty > maxAdditivePenalty {
		penalty = maxAdditivePenalty
	}
	return penalty
}

// ingredientCount counts comma-separated entries in the label text.
func ingredientCount(ingredientsText string) int {
	n := 0
	for _, part := range strings.Split(ingredientsText, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// ProcessingPenalty deducts for long ingredient lists. A missing label is
// penalized lightly because it usually means an unverifiable product.
func ProcessingPenalty(ingredientsText string) int {
	if strings.TrimSpace(ingredientsText) == "" {
		return 5
	}
	switch n := ingredientCount(ingredientsText); {
	case n <= 3:
		return 0
	case n <= 5:
		return 2
	case n <= 10:
		return 5
	case n <= 15:
		return 8
	default:
		return 15
	}
}

// IsUltraProcessed reports whether the label carries an ultra-processing
// marker or an excessive ingredient count.
func IsUltraProcessed(ingredientsText string) bool {
	text := strings.ToLower(ingredientsText)
	for _, marker := range ultraProcessedMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return ingredientCount(ingredientsText) > ultraCountThreshold
}

// ComputeHealthScore combines nutrient bands and label penalties into the
// clamped 0-100 score.
func ComputeHealthScore(per map[string]float64, ingredientsText string) (int, bool) {
	score := ScoreNutrients(per)
	score -= AdditivePenalty(ingredientsText)
	score -= ProcessingPenalty(ingredientsText)

	ultra := IsUltraProcessed(ingredientsText)
	if ultra {
		score -= ultraProcessPenalty
	}

	return ClampScore(score), ultra
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Grade buckets the continuous score into letter grades.
func Grade(score int) (string, string) {
	switch {
	case score >= 80:
		return "A", "Excellent choice"
	case score >= 65:
		return "B", "Good choice"
	case score >= 45:
		return "C", "Okay in moderation"
	case score >= 25:
		return "D", "Poor choice"
	default:
		return "F", "Best avoided"
	}
}
