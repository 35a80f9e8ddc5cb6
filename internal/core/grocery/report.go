package grocery

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ReportBuilder produces the final categorized, costed grocery report. The
// builder is fully deterministic: same items and plan always produce the
// same report.
type ReportBuilder struct{}

// NewReportBuilder creates a report builder.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

const maxShoppingTips = 6

// Build assembles the report from aggregated items and plan-level counts.
func (b *ReportBuilder) Build(items []Item, plan PlanInfo) Report {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi := categoryOrder[sorted[i].CategoryKey]
		oj := categoryOrder[sorted[j].CategoryKey]
		if oi != oj {
			return oi < oj
		}
		return sorted[i].Name < sorted[j].Name
	})

	total := 0.0
	categoryTotals := make(map[string]float64)
	categoryCounts := make(map[string]int)
	for _, item := range sorted {
		total += item.EstimatedCost
		categoryTotals[item.Category] = round2(categoryTotals[item.Category] + item.EstimatedCost)
		categoryCounts[item.Category]++
	}
	total = round2(total)

	days := plan.Days
	if days < 1 {
		days = 1
	}
	meals := plan.Days * plan.MealsPerDay
	if meals < 1 {
		meals = 1
	}

	return Report{
		GroceryList: sorted,
		CostBreakdown: CostBreakdown{
			TotalCost:         total,
			CostPerDay:        round2(total / float64(days)),
			CostPerMeal:       round2(total / float64(meals)),
			CategoryBreakdown: categoryTotals,
			ItemCount:         len(sorted),
			ExcludedItems:     []string{},
		},
		Summary: Summary{
			TotalItems:     len(sorted),
			TotalCost:      total,
			CategoryCounts: categoryCounts,
		},
		ShoppingTips: buildShoppingTips(sorted, total),
	}
}

// buildShoppingTips selects up to six tips by fixed predicates over the list
// composition. The organization tip is always present.
func buildShoppingTips(items []Item, totalCost float64) []string {
	var tips []string

	if len(items) > 15 {
		tips = append(tips, "Shop the store perimeter first for fresh items, then work through the inner aisles.")
	}
	if totalCost > 100 {
		tips = append(tips, "Consider store brands to bring down the cost of a larger trip like this.")
	}
	if expensive := expensiveItemNames(items); len(expensive) > 0 {
		tips = append(tips, fmt.Sprintf("Keep an eye on prices for: %s.", strings.Join(expensive, ", ")))
	}
	if categoryCount(items, CategoryVegetables)+categoryCount(items, CategoryFruits) > 8 {
		tips = append(tips, "Pick produce at different stages of ripeness so it lasts through the plan.")
	}
	if categoryCount(items, CategoryProteins) > 3 {
		tips = append(tips, "Family packs of meat are usually cheaper per pound; freeze what you won't cook this week.")
	}
	if len(items) > 20 {
		tips = append(tips, "Shop early morning or late evening to avoid crowds with a list this long.")
	}
	if categoryCount(items, CategoryPantry) > 5 {
		tips = append(tips, "Pantry staples are cheaper in bulk; stock up while you're there.")
	}

	if len(tips) > maxShoppingTips-1 {
		tips = tips[:maxShoppingTips-1]
	}
	tips = append(tips, "Check your pantry before heading out to avoid duplicate purchases.")
	return tips
}

const expensiveItemThreshold = 8.0

// expensiveItemNames returns up to three item names costing more than the
// threshold, in list order.
func expensiveItemNames(items []Item) []string {
	var names []string
	for _, item := range items {
		if item.EstimatedCost > expensiveItemThreshold {
			names = append(names, item.Name)
			if len(names) == 3 {
				break
			}
		}
	}
	return names
}

func categoryCount(items []Item, category string) int {
	n := 0
	for _, item := range items {
		if item.CategoryKey == category {
			n++
		}
	}
	return n
}

// CheckUpdate is one is_checked state change for a named list item.
type CheckUpdate struct {
	Name      string `json:"name" binding:"required"`
	IsChecked bool   `json:"is_checked"`
}

// ApplyCheckUpdates marks items checked or unchecked by name and stamps the
// check time. Unknown names are ignored.
func ApplyCheckUpdates(items []Item, updates []CheckUpdate, now time.Time) []Item {
	byName := make(map[string]int, len(items))
	for i, item := range items {
		byName[strings.ToLower(item.Name)] = i
	}

	for _, u := range updates {
		idx, ok := byName[strings.ToLower(u.Name)]
		if !ok {
			continue
		}
		items[idx].IsChecked = u.IsChecked
		if u.IsChecked {
			t := now
			items[idx].CheckedAt = &t
		} else {
			items[idx].CheckedAt = nil
		}
	}
	return items
}
