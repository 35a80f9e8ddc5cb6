package nutrition

import (
	"context"
	"fmt"
	"strings"

	"nutriplan-api/internal/core/ai/service"
	"nutriplan-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Estimate is the model's nutrition guess for a described meal.
type Estimate struct {
	Description    string  `json:"description"`
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	FiberG         float64 `json:"fiber_g"`
	SodiumMg       float64 `json:"sodium_mg"`
	ConfidenceNote string  `json:"confidence_note"`
}

// Service estimates nutrition for free-text meal descriptions via the AI
// service. Estimates are approximate; packaged foods with barcodes go through
// the scanner pipeline instead.
type Service struct {
	aiService *service.Service
}

// NewService creates the nutrition estimation service.
func NewService(aiService *service.Service) *Service {
	return &Service{aiService: aiService}
}

// EstimateMeal asks the model for macro estimates and parses its JSON reply.
func (s *Service) EstimateMeal(ctx context.Context, description string) (*Estimate, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, common.NewValidationError("description is required")
	}

	prompt := fmt.Sprintf(`Estimate the nutrition of this meal: "%s"

Return ONLY a compact JSON object with exactly these fields:
{"calories": number, "protein_g": number, "carbs_g": number, "fat_g": number, "fiber_g": number, "sodium_mg": number, "confidence_note": string}

Rules:
1. All numbers are per the whole described portion
2. sodium_mg is in milligrams, everything else in grams or kcal
3. confidence_note is one short sentence about estimate reliability
4. No markdown, no prose, JSON only`, description)

	resp, err := s.aiService.ProcessRequest(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models wrap JSON in fences or prose often enough that we always strip.
	raw := common.ExtractJSONBlock(resp.Content)
	raw = common.QuoteJSONKeys(raw)

	var estimate Estimate
	if err := common.ParseJSON(raw, &estimate); err != nil {
		common.LogError("Failed to parse nutrition estimate",
			zap.Error(err),
			zap.Int("response_length", len(resp.Content)),
		)
		return nil, common.ErrAIServiceError
	}

	estimate.Description = description
	common.LogInfo("Nutrition estimated",
		zap.Float64("calories", estimate.Calories),
		zap.Float64("protein_g", estimate.ProteinG),
	)
	return &estimate, nil
}
