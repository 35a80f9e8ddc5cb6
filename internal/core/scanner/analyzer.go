package scanner

import (
	"context"
	"fmt"

	"nutriplan-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Analyzer turns fetched product records into analysis records. The analysis
// itself is pure; only the fetch touches the network.
type Analyzer struct {
	client *Client
}

// NewAnalyzer creates an analyzer over the food-facts client.
func NewAnalyzer(client *Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeBarcode fetches and analyzes one product.
func (a *Analyzer) AnalyzeBarcode(ctx context.Context, barcode string) (*Analysis, error) {
	product, err := a.client.GetProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}
	analysis := a.AnalyzeProduct(product)
	analysis.Barcode = barcode
	return analysis, nil
}

// AnalyzeProduct runs the full analysis pipeline on a product record.
// Missing fields degrade confidence; they never abort the analysis.
func (a *Analyzer) AnalyzeProduct(p *Product) *Analysis {
	serving := ExtractServingSize(p)
	perServing := PerServingNutrition(p.Nutriments, serving.ServingSizeGrams)
	score, ultra := ComputeHealthScore(perServing, p.IngredientsText)
	grade, description := Grade(score)

	analysis := &Analysis{
		Barcode:             p.Code,
		ProductName:         p.ProductName,
		Brands:              p.Brands,
		ImageURL:            p.ImageURL,
		ServingInfo:         serving,
		PerServingNutrition: perServing,
		HealthScore:         score,
		Grade:               grade,
		GradeDescription:    description,
		IsUltraProcessed:    ultra,
		Recommendations:     buildRecommendations(perServing, score, ultra),
	}

	common.LogDebug("product analyzed",
		zap.String("barcode", p.Code),
		zap.Int("health_score", score),
		zap.String("grade", grade),
		zap.String("serving_source", serving.Source),
	)

	return analysis
}

// NutritionFacts returns the reduced label-style record for one barcode.
func (a *Analyzer) NutritionFacts(ctx context.Context, barcode string) (*NutritionFacts, error) {
	product, err := a.client.GetProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	serving := ExtractServingSize(product)
	return &NutritionFacts{
		ServingSize:       FormatServingSize(serving),
		NutritionFacts:    PerServingNutrition(product.Nutriments, serving.ServingSizeGrams),
		ServingConfidence: serving.Confidence,
		DataSource:        serving.Source,
	}, nil
}

// Compare analyzes several barcodes and derives comparative insights. Any
// single fetch failure fails the comparison; partial results would mislead.
func (a *Analyzer) Compare(ctx context.Context, barcodes []string) (*Comparison, error) {
	analyses := make([]Analysis, 0, len(barcodes))
	for _, barcode := range barcodes {
		analysis, err := a.AnalyzeBarcode(ctx, barcode)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}

	best := 0
	for i, analysis := range analyses {
		if analysis.HealthScore > analyses[best].HealthScore {
			best = i
		}
	}

	return &Comparison{
		Products:       analyses,
		Insights:       buildComparisonInsights(analyses),
		Recommendation: fmt.Sprintf("%s has the best overall health score (%d)", displayName(analyses[best]), analyses[best].HealthScore),
		TotalCompared:  len(analyses),
	}, nil
}

// buildRecommendations assembles the ordered advice list for one product.
func buildRecommendations(per map[string]float64, score int, ultra bool) []string {
	var recs []string

	if v, ok := per["sugar"]; ok {
		switch {
		case v > 18:
			recs = append(recs, "Very high sugar per serving; look for a lower-sugar alternative.")
		case v > 10:
			recs = append(recs, "High in sugar; keep servings small.")
		}
	}
	if v, ok := per["sodium"]; ok && v > 600 {
		recs = append(recs, "High in sodium; balance with low-sodium meals today.")
	}
	if v, ok := per["saturated_fat"]; ok && v > 5 {
		recs = append(recs, "High in saturated fat.")
	}
	if v, ok := per["fiber"]; ok && v >= 5 {
		recs = append(recs, "Good source of fiber.")
	}
	if v, ok := per["protein"]; ok && v >= 12 {
		recs = append(recs, "Good source of protein.")
	}
	if ultra {
		recs = append(recs, "Ultra-processed: long ingredient list with industrial additives.")
	}
	switch {
	case score >= 80:
		recs = append(recs, "A solid everyday choice.")
	case score < 25:
		recs = append(recs, "Best kept as an occasional treat.")
	}
	return recs
}

// buildComparisonInsights derives per-nutrient winners across the compared
// products.
func buildComparisonInsights(analyses []Analysis) []string {
	var insights []string

	if name, v, ok := extremeBy(analyses, "sugar", false); ok {
		insights = append(insights, fmt.Sprintf("%s has the least sugar per serving (%.1f g)", name, v))
	}
	if name, v, ok := extremeBy(analyses, "sodium", false); ok {
		insights = append(insights, fmt.Sprintf("%s has the least sodium per serving (%.0f mg)", name, v))
	}
	if name, v, ok := extremeBy(analyses, "protein", true); ok {
		insights = append(insights, fmt.Sprintf("%s has the most protein per serving (%.1f g)", name, v))
	}
	if name, v, ok := extremeBy(analyses, "fiber", true); ok {
		insights = append(insights, fmt.Sprintf("%s has the most fiber per serving (%.1f g)", name, v))
	}

	ultraCount := 0
	for _, analysis := range analyses {
		if analysis.IsUltraProcessed {
			ultraCount++
		}
	}
	if ultraCount > 0 {
		insights = append(insights, fmt.Sprintf("%d of %d products are ultra-processed", ultraCount, len(analyses)))
	}

	return insights
}

// extremeBy finds the product with the highest (or lowest) value of one
// nutrient. Products missing the nutrient are skipped.
func extremeBy(analyses []Analysis, nutrient string, highest bool) (string, float64, bool) {
	found := false
	bestVal := 0.0
	bestName := ""
	for _, analysis := range analyses {
		v, ok := analysis.PerServingNutrition[nutrient]
		if !ok {
			continue
		}
		if !found || (highest && v > bestVal) || (!highest && v < bestVal) {
			found = true
			bestVal = v
			bestName = displayName(analysis)
		}
	}
	return bestName, bestVal, found
}

func displayName(a Analysis) string {
	if a.ProductName != "" {
		return a.ProductName
	}
	return a.Barcode
}
