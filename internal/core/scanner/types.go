package scanner

// Product is the subset of a food-facts product record the analyzer reads.
// Nutriments stay loosely typed because the upstream service mixes numbers
// and numeric strings.
type Product struct {
	Code            string                 `json:"code"`
	ProductName     string                 `json:"product_name"`
	Brands          string                 `json:"brands"`
	Categories      string                 `json:"categories"`
	IngredientsText string                 `json:"ingredients_text"`
	ServingSize     string                 `json:"serving_size"`
	ServingQuantity interface{}            `json:"serving_quantity"`
	Nutriments      map[string]interface{} `json:"nutriments"`
	ImageURL        string                 `json:"image_url,omitempty"`
}

// Serving-size confidence labels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ServingInfo records the extracted serving size and its provenance.
type ServingInfo struct {
	ServingSizeGrams float64 `json:"serving_size_grams"`
	Confidence       string  `json:"confidence"`
	Source           string  `json:"source"`
	RawValue         string  `json:"raw_value,omitempty"`
}

// Analysis is the full record returned for one scanned product.
type Analysis struct {
	Barcode             string             `json:"barcode"`
	ProductName         string             `json:"product_name"`
	Brands              string             `json:"brands,omitempty"`
	ImageURL            string             `json:"image_url,omitempty"`
	ServingInfo         ServingInfo        `json:"serving_info"`
	PerServingNutrition map[string]float64 `json:"per_serving_nutrition"`
	HealthScore         int                `json:"health_score"`
	Grade               string             `json:"grade"`
	GradeDescription    string             `json:"grade_description"`
	IsUltraProcessed    bool               `json:"is_ultra_processed"`
	Recommendations     []string           `json:"recommendations"`
}

// NutritionFacts is the reduced label-style response.
type NutritionFacts struct {
	ServingSize       string             `json:"serving_size"`
	NutritionFacts    map[string]float64 `json:"nutrition_facts"`
	ServingConfidence string             `json:"serving_confidence"`
	DataSource        string             `json:"data_source"`
}

// Comparison is the multi-product comparison response.
type Comparison struct {
	Products       []Analysis `json:"products"`
	Insights       []string   `json:"comparison_insights"`
	Recommendation string     `json:"recommendation"`
	TotalCompared  int        `json:"total_compared"`
}
