package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"nutriplan-api/internal/pkg/common"
)

// Serving sizes outside this window are rejected as misparses.
const (
	minServingGrams = 5
	maxServingGrams = 2000
)

// unitConversion is one recognized measurement in serving_size free text.
// Patterns are tried in order, so fluid ounces must precede plain ounces.
type unitConversion struct {
	pattern *regexp.Regexp
	toGrams float64
}

var servingConversions = []unitConversion{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:g|grams?)\b`), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:ml|milliliters?)\b`), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:fl\.?\s*oz|fluid\s+ounces?)\b`), 29.5735},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:oz|ounces?)\b`), 28.3495},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*cups?\b`), 240},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*tbsp\b`), 15},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*tsp\b`), 5},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*slices?\b`), 28},
}

var (
	servingPrefixPattern = regexp.MustCompile(`\b(?:about|approximately|approx|ca)\.?\s*`)
	pieceUnitPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:pieces?|items?|units?)\b`)
	bareNumberPattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	numberPattern        = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// nutrientRatioKeys are nutriment names usable for strategy 3 inversion.
var nutrientRatioKeys = []string{"energy-kcal", "proteins", "carbohydrates", "fat", "sugars", "sodium"}

// ExtractServingSize runs the five-strategy cascade. It always returns a
// usable serving size; gaps only degrade confidence.
func ExtractServingSize(p *Product) ServingInfo {
	// Strategy 1: free-text serving_size field.
	if grams, raw, ok := parseServingText(p.ServingSize); ok {
		return ServingInfo{ServingSizeGrams: grams, Confidence: ConfidenceHigh, Source: "serving_size_field", RawValue: raw}
	}

	// Strategy 2: numeric serving_quantity.
	if v, ok := common.FloatValue(p.ServingQuantity); ok && inServingRange(v) {
		return ServingInfo{ServingSizeGrams: v, Confidence: ConfidenceHigh, Source: "serving_quantity"}
	}

	// Strategy 3: invert per-serving / per-100g nutrient pairs.
	for _, name := range nutrientRatioKeys {
		perServing, okS := nutrimentValue(p.Nutriments, name+"_serving")
		per100, ok100 := nutrimentValue(p.Nutriments, name+"_100g")
		if okS && ok100 && per100 > 0 {
			grams := 100 * perServing / per100
			if inServingRange(grams) {
				return ServingInfo{
					ServingSizeGrams: grams,
					Confidence:       ConfidenceHigh,
					Source:           "nutrient_ratio_" + name,
				}
			}
		}
	}

	// Strategy 4: category table.
	if grams, matched, ok := categoryServingEstimate(p); ok {
		return ServingInfo{ServingSizeGrams: grams, Confidence: ConfidenceMedium, Source: "category_estimate", RawValue: matched}
	}

	// Strategy 5: keyword fallback.
	grams := fallbackServingEstimate(p)
	return ServingInfo{ServingSizeGrams: grams, Confidence: ConfidenceLow, Source: "default_estimate"}
}

// parseServingText extracts a gram value from free text like
// "2 cookies (about 30 g)" or "1 cup (240 ml)".
func parseServingText(text string) (float64, string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, "", false
	}
	s = servingPrefixPattern.ReplaceAllString(s, "")

	for _, conv := range servingConversions {
		if m := conv.pattern.FindStringSubmatch(s); m != nil {
			v, ok := common.FloatValue(m[1])
			if !ok {
				continue
			}
			grams := v * conv.toGrams
			if inServingRange(grams) {
				return grams, text, true
			}
		}
	}

	// Piece counts: a handful of pieces means roughly 30 g each; larger
	// values are taken as grams already.
	if m := pieceUnitPattern.FindStringSubmatch(s); m != nil {
		if v, ok := common.FloatValue(m[1]); ok {
			grams := v
			if v >= 1 && v <= 10 {
				grams = v * 30
			}
			if inServingRange(grams) {
				return grams, text, true
			}
		}
	}

	if m := bareNumberPattern.FindStringSubmatch(s); m != nil {
		if v, ok := common.FloatValue(m[1]); ok {
			switch {
			case inServingRange(v):
				return v, text, true
			case v >= 1 && v <= 10:
				return v * 30, text, true
			}
		}
	}

	return 0, "", false
}

func inServingRange(grams float64) bool {
	return grams >= minServingGrams && grams <= maxServingGrams
}

// nutrimentValue reads a numeric nutriment field, tolerating string-typed
// values.
func nutrimentValue(nutriments map[string]interface{}, key string) (float64, bool) {
	raw, ok := nutriments[key]
	if !ok {
		return 0, false
	}
	return common.FloatValue(raw)
}

// categoryServings maps category keywords to typical serving grams.
var categoryServings = map[string]float64{
	"yogurt":           170,
	"ice cream":        66,
	"cheese":           28,
	"milk":             240,
	"soda":             355,
	"energy drink":     250,
	"juice":            240,
	"coffee":           240,
	"tea":              240,
	"chips":            28,
	"crisps":           28,
	"crackers":         30,
	"cookies":          30,
	"biscuits":         30,
	"chocolate":        40,
	"candy":            40,
	"granola bar":      40,
	"cereal bar":       40,
	"breakfast cereal": 40,
	"cereal":           40,
	"muesli":           45,
	"granola":          45,
	"oatmeal":          40,
	"bread":            50,
	"bagel":            85,
	"tortilla":         45,
	"pasta":            56,
	"rice":             45,
	"soup":             245,
	"peanut butter":    32,
	"jam":              20,
	"honey":            21,
	"ketchup":          17,
	"mayonnaise":       14,
	"salad dressing":   30,
	"butter":           14,
	"margarine":        14,
	"pizza":            140,
	"nuts":             28,
	"trail mix":        30,
	"protein powder":   30,
	"protein bar":      50,
	"frozen meal":      280,
}

// categoryServingEstimate matches the longest category keyword found in
// categories plus product name. A keyword also present in the product name
// gets a tiebreak bonus.
func categoryServingEstimate(p *Product) (float64, string, bool) {
	haystack := strings.ToLower(p.Categories + " " + p.ProductName)
	name := strings.ToLower(p.ProductName)

	bestKey := ""
	bestScore := 0
	for key := range categoryServings {
		if !strings.Contains(haystack, key) {
			continue
		}
		score := len(key)
		if strings.Contains(name, key) {
			score += 10
		}
		if score > bestScore || (score == bestScore && key < bestKey) {
			bestKey = key
			bestScore = score
		}
	}
	if bestKey == "" {
		return 0, "", false
	}
	return categoryServings[bestKey], bestKey, true
}

// fallbackServingEstimate buckets the product by broad keywords when nothing
// else worked.
func fallbackServingEstimate(p *Product) float64 {
	text := strings.ToLower(p.Categories + " " + p.ProductName)
	switch {
	case containsAny(text, "beverage", "drink", "juice", "soda", "water", "cola"):
		return 240
	case containsAny(text, "snack", "chip", "cracker", "pretzel"):
		return 30
	case containsAny(text, "breakfast", "cereal", "muesli"):
		return 40
	case containsAny(text, "dairy", "yogurt", "milk", "cheese"):
		return 100
	case containsAny(text, "condiment", "sauce", "dressing", "ketchup"):
		return 20
	case containsAny(text, "bread", "bakery", "bun", "roll"):
		return 50
	default:
		return 50
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// FormatServingSize renders a serving size for the nutrition-facts response.
func FormatServingSize(info ServingInfo) string {
	if info.RawValue != "" && info.Source == "serving_size_field" {
		return info.RawValue
	}
	return fmt.Sprintf("%.0f g", info.ServingSizeGrams)
}
