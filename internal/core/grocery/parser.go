package grocery

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser turns a raw ingredient line into a ParsedIngredient resolved against
// the lexicon.
type Parser struct {
	lexicon *Lexicon
}

// NewParser creates an ingredient line parser over the given lexicon.
func NewParser(lexicon *Lexicon) *Parser {
	return &Parser{lexicon: lexicon}
}

// Culinary descriptors carry no purchasing information and are stripped as
// whole-word matches. Multi-word descriptors come first so they win over
// their components.
var descriptorPattern = regexp.MustCompile(
	`\b(?:to taste|for serving|preferably|optional|fresh|dried|chopped|diced|minced|sliced|grated|organic|raw|cooked|frozen|canned|large|medium|small|extra|jumbo)\b`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// unitWords maps recognized recipe-line unit tokens to a normalized form.
var unitWords = map[string]string{
	"cup": "cup", "cups": "cup",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"lb": "lbs", "lbs": "lbs", "pound": "lbs", "pounds": "lbs",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"l": "l", "liter": "l", "liters": "l",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml",
	"piece": "piece", "pieces": "piece",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"head": "head", "heads": "head",
	"bunch": "bunch", "bunches": "bunch",
	"can": "can", "cans": "can",
	"jar": "jar", "jars": "jar",
	"package": "package", "packages": "package",
	"container": "container", "containers": "container",
	"bottle": "bottle", "bottles": "bottle",
	"bag": "bag", "bags": "bag",
	"box": "box", "boxes": "box",
}

var (
	// <number> <unit-word> <rest>
	numberUnitPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\S+)\s+(.+)$`)
	// <fraction-or-mixed-or-range> <unit-word> <rest>
	fractionUnitPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?\s*(?:-|to)\s*\d+(?:\.\d+)?)\s+(\S+)\s+(.+)$`)
	// <number-like> <rest>
	numberRestPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?\s*(?:-|to)\s*\d+(?:\.\d+)?|\d+(?:\.\d+)?)\s+(.+)$`)

	mixedPattern  = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	simplePattern = regexp.MustCompile(`^(\d+)/(\d+)$`)
	rangePattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:-|to)\s*(\d+(?:\.\d+)?)$`)
)

// Parse extracts quantity, unit and canonical key from one ingredient line.
// It returns nil when the line is too short or cannot be resolved.
func (p *Parser) Parse(raw string, recipeID int) *ParsedIngredient {
	if len(strings.Join(strings.Fields(raw), "")) < 2 {
		return nil
	}

	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = descriptorPattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.ReplaceAll(cleaned, ",", " ")
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))

	quantity, unit, name := extractQuantity(cleaned)
	if name == "" {
		return nil
	}

	key := p.findBestMatch(name)
	if key == "" {
		return nil
	}

	return &ParsedIngredient{
		OriginalText:  raw,
		Quantity:      quantity,
		Unit:          unit,
		IngredientKey: key,
		RecipeID:      recipeID,
	}
}

// extractQuantity attempts the quantity patterns in order: number+unit,
// fraction+unit, bare number, bare name.
func extractQuantity(s string) (quantity float64, unit string, name string) {
	if m := numberUnitPattern.FindStringSubmatch(s); m != nil {
		if u, ok := unitWords[m[2]]; ok {
			q, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				q = 1
			}
			return q, u, strings.TrimSpace(m[3])
		}
	}

	if m := fractionUnitPattern.FindStringSubmatch(s); m != nil {
		if u, ok := unitWords[m[2]]; ok {
			return ParseFraction(m[1]), u, strings.TrimSpace(m[3])
		}
	}

	if m := numberRestPattern.FindStringSubmatch(s); m != nil {
		rest := strings.TrimSpace(m[2])
		// The rest may still lead with a unit word ("cups of flour").
		if fields := strings.Fields(rest); len(fields) > 1 {
			if u, ok := unitWords[fields[0]]; ok {
				tail := strings.TrimSpace(strings.TrimPrefix(rest, fields[0]))
				tail = strings.TrimSpace(strings.TrimPrefix(tail, "of "))
				if tail != "" {
					return ParseFraction(m[1]), u, tail
				}
			}
		}
		return ParseFraction(m[1]), "item", rest
	}

	return 1, "item", s
}

// ParseFraction collapses fractions, mixed numbers and ranges to one real.
// Malformed input and division by zero fall back to 1.
func ParseFraction(s string) float64 {
	s = strings.TrimSpace(s)

	if m := mixedPattern.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 1
		}
		return whole + num/den
	}

	if m := simplePattern.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 1
		}
		return num / den
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return (lo + hi) / 2
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	return 1
}

// findBestMatch resolves a cleaned name to a canonical lexicon key. The
// strategies run in order: exact, alias, substring score, token overlap.
func (p *Parser) findBestMatch(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if _, ok := p.lexicon.Lookup(name); ok {
		return name
	}

	if key, ok := p.lexicon.Alias(name); ok {
		return key
	}

	// Substring: score by length of the contained side over the container
	// side, accept the best key scoring at least 0.5.
	bestKey := ""
	bestScore := 0.0
	for _, key := range p.lexicon.Keys() {
		var score float64
		switch {
		case strings.Contains(name, key):
			score = float64(len(key)) / float64(len(name))
		case strings.Contains(key, name):
			score = float64(len(name)) / float64(len(key))
		default:
			continue
		}
		if score >= 0.5 && score > bestScore {
			bestKey = key
			bestScore = score
		}
	}
	if bestKey != "" {
		return bestKey
	}

	// Token overlap: accept a key at least 60% of whose tokens appear in
	// the input.
	nameTokens := map[string]bool{}
	for _, t := range strings.Fields(name) {
		nameTokens[t] = true
	}
	bestKey = ""
	bestRatio := 0.0
	for _, key := range p.lexicon.Keys() {
		keyTokens := strings.Fields(key)
		if len(keyTokens) == 0 {
			continue
		}
		overlap := 0
		for _, t := range keyTokens {
			if nameTokens[t] {
				overlap++
			}
		}
		ratio := float64(overlap) / float64(len(keyTokens))
		if ratio >= 0.6 && ratio > bestRatio {
			bestKey = key
			bestRatio = ratio
		}
	}
	return bestKey
}
