package grocery

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Aggregator consolidates parsed ingredient instances into purchasable
// grocery items. Addition is commutative, so input order never changes the
// result.
type Aggregator struct {
	lexicon *Lexicon
}

// NewAggregator creates a quantity aggregator over the given lexicon.
func NewAggregator(lexicon *Lexicon) *Aggregator {
	return &Aggregator{lexicon: lexicon}
}

type accumulated struct {
	total   float64
	recipes map[int]bool
}

// Aggregate combines instances sharing a canonical key, reconciles units to
// the store unit and rounds to a purchasable quantity. Unresolved instances
// have already been discarded by the parser.
func (a *Aggregator) Aggregate(instances []ParsedIngredient) []Item {
	acc := make(map[string]*accumulated)

	for _, inst := range instances {
		if inst.IngredientKey == "" {
			continue
		}
		entry, ok := a.lexicon.Lookup(inst.IngredientKey)
		if !ok {
			continue
		}

		bucket := acc[inst.IngredientKey]
		if bucket == nil {
			bucket = &accumulated{recipes: make(map[int]bool)}
			acc[inst.IngredientKey] = bucket
		}
		bucket.total += reconcileUnit(inst.IngredientKey, inst.Quantity, inst.Unit, entry)
		bucket.recipes[inst.RecipeID] = true
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		entry, _ := a.lexicon.Lookup(key)
		bucket := acc[key]

		purchaseQty := roundToPurchase(bucket.total, entry)
		items = append(items, Item{
			Name:             titleCase(key),
			Quantity:         FormatQuantity(purchaseQty),
			Unit:             entry.StoreUnit,
			Category:         CategoryDisplayName(entry.Category),
			CategoryKey:      entry.Category,
			Notes:            fmt.Sprintf("Used in %d recipes", len(bucket.recipes)),
			EstimatedCost:    round2(purchaseQty * entry.CostPerUnit),
			PurchaseQuantity: purchaseQty,
		})
	}
	return items
}

// reconcileUnit converts one recipe-line quantity into store-unit terms.
// Coverage is deliberately incomplete; unknown pairs fall through to a
// direct count against the store unit.
func reconcileUnit(key string, quantity float64, unit string, entry Entry) float64 {
	if unit == entry.StoreUnit {
		return quantity
	}

	switch unit {
	case "cup":
		if entry.StoreUnit == UnitBag || entry.StoreUnit == UnitContainer || entry.StoreUnit == UnitBox {
			return quantity * 0.1
		}
	case "tbsp":
		if entry.StoreUnit == UnitBottle {
			return quantity * 0.01
		}
	case "tsp":
		if entry.StoreUnit == UnitContainer {
			return quantity * 0.005
		}
	case "piece", "item", "each":
		switch entry.StoreUnit {
		case UnitEach, "item", "piece":
			return quantity
		case UnitDozen:
			return quantity / 12
		case UnitLbs:
			// A counted piece of a weight-sold item weighs roughly its
			// typical serving share.
			if entry.TypicalServing > 0 {
				return quantity * entry.TypicalServing
			}
		}
	case "clove":
		if key == "garlic" {
			// About ten cloves per head.
			return quantity * 0.1
		}
	}

	return quantity
}

// roundToPurchase rounds a reconciled need up to something a store sells.
func roundToPurchase(need float64, entry Entry) float64 {
	switch {
	case discreteUnits[entry.StoreUnit]:
		return math.Max(1, math.Round(need))
	case entry.StoreUnit == UnitLbs || entry.StoreUnit == "pounds":
		// Nearest half pound, half-pound minimum.
		return math.Max(0.5, math.Round(need*2)/2)
	default:
		return math.Max(1, math.Round(need*10)/10)
	}
}

// FormatQuantity renders a purchase quantity for display: whole numbers
// plainly, common fractions as glyphs, everything else with one decimal.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return fmt.Sprintf("%d", int(q))
	}
	switch {
	case math.Abs(q-0.5) <= 0.1:
		return "½"
	case math.Abs(q-0.25) <= 0.1:
		return "¼"
	case math.Abs(q-0.75) <= 0.1:
		return "¾"
	}
	s := fmt.Sprintf("%.1f", q)
	s = strings.TrimSuffix(s, ".0")
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// titleCase capitalizes each word of a canonical key for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
