package grocery

import (
	"regexp"
	"strings"
)

// MealPlanParser splits an opaque meal-plan blob into recipe records. The
// upstream text comes from an LLM, so the format is only loosely predictable
// and every split strategy is a heuristic.
type MealPlanParser struct{}

// NewMealPlanParser creates a meal-plan text parser.
func NewMealPlanParser() *MealPlanParser {
	return &MealPlanParser{}
}

const minSegmentLength = 20

var (
	equalsRunPattern  = regexp.MustCompile(`={3,}`)
	dashRunPattern    = regexp.MustCompile(`-{3,}`)
	blankRunPattern   = regexp.MustCompile(`(?:\r?\n[ \t]*){3,}`)
	recipeHeadPattern = regexp.MustCompile(`(?i)recipe\s*\d*\s*:`)
	mealHeadPattern   = regexp.MustCompile(`(?im)^(?:breakfast|lunch|dinner|snack)\s*:`)

	numberedLinePattern = regexp.MustCompile(`^\d+\.\s*`)
	mealTypePattern     = regexp.MustCompile(`(?i)\b(breakfast|lunch|dinner|snack)\b`)
)

// Parse splits the blob into recipe records, dropping records with no title
// or no ingredient lines.
func (p *MealPlanParser) Parse(text string) []Recipe {
	var recipes []Recipe
	for _, segment := range splitSegments(text) {
		if r, ok := extractRecipe(segment); ok {
			recipes = append(recipes, r)
		}
	}
	return recipes
}

// splitSegments tries each candidate separator in order and adopts the first
// that produces more segments than the whole blob.
func splitSegments(text string) []string {
	segments := []string{text}

	candidates := []func(string) []string{
		func(s string) []string { return equalsRunPattern.Split(s, -1) },
		func(s string) []string { return dashRunPattern.Split(s, -1) },
		func(s string) []string { return blankRunPattern.Split(s, -1) },
		func(s string) []string { return splitBefore(s, recipeHeadPattern) },
		func(s string) []string { return splitBefore(s, mealHeadPattern) },
	}

	for _, candidate := range candidates {
		if parts := candidate(text); len(parts) > len(segments) {
			segments = parts
			break
		}
	}

	var kept []string
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if len(seg) >= minSegmentLength {
			kept = append(kept, seg)
		}
	}
	return kept
}

// splitBefore cuts the text at the start of every pattern match, keeping the
// match with its following content.
func splitBefore(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, text[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, text[prev:])
	return parts
}

// extractRecipe pulls title, meal type and ingredient lines out of one
// segment.
func extractRecipe(segment string) (Recipe, bool) {
	lines := strings.Split(segment, "\n")

	recipe := Recipe{
		MealType: detectMealType(segment),
		RawText:  segment,
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) <= 3 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "day ") ||
			strings.HasPrefix(lower, "ingredients") ||
			strings.HasPrefix(lower, "instructions") {
			continue
		}
		if numberedLinePattern.MatchString(line) || strings.HasPrefix(line, "•") {
			continue
		}
		recipe.Title = line
		break
	}

	recipe.Ingredients = extractIngredientLines(lines)

	if recipe.Title == "" || len(recipe.Ingredients) == 0 {
		return Recipe{}, false
	}
	return recipe, true
}

// detectMealType returns the first meal keyword anywhere in the segment,
// falling back to the generic tag.
func detectMealType(segment string) string {
	if m := mealTypePattern.FindString(segment); m != "" {
		return strings.ToLower(m)
	}
	return MealGeneric
}

// extractIngredientLines harvests bullet and numbered lines; when a segment
// carries none, any line that looks like a measurement is kept instead.
func extractIngredientLines(lines []string) []string {
	var ingredients []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		stripped := ""
		switch {
		case strings.HasPrefix(line, "•"):
			stripped = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		case strings.HasPrefix(line, "-"):
			stripped = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		case numberedLinePattern.MatchString(line):
			stripped = strings.TrimSpace(numberedLinePattern.ReplaceAllString(line, ""))
		default:
			continue
		}
		if len(stripped) > 2 {
			ingredients = append(ingredients, stripped)
		}
	}

	if len(ingredients) > 0 {
		return ingredients
	}

	// Fallback: harvest measurement-looking lines.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 5 || strings.HasSuffix(line, ":") {
			continue
		}
		if !mentionsUnit(line) {
			continue
		}
		if len(strings.Fields(line)) < 2 {
			continue
		}
		ingredients = append(ingredients, line)
	}
	return ingredients
}

// mentionsUnit reports whether the line contains a recognized measurement
// unit keyword.
func mentionsUnit(line string) bool {
	for _, token := range strings.Fields(strings.ToLower(line)) {
		token = strings.Trim(token, ".,()")
		if _, ok := unitWords[token]; ok {
			return true
		}
	}
	return false
}
