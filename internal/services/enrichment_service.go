package services

import (
	"context"
	"fmt"
	"strings"

	"tripplanner/internal/schema"
	"tripplanner/pkg/utils"
)

const stageEnrich = "enrich"

type EnrichmentServiceInterface interface {
	// EnrichItinerary converts a free-text itinerary into the
	// structured day list. All-or-nothing: a failed call never yields a
	// partial day list.
	EnrichItinerary(ctx context.Context, itineraryText string) ([]schema.Day, error)
}

type EnrichmentService struct {
	aiClient utils.GenerationClientInterface
}

func NewEnrichmentService(aiClient utils.GenerationClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{aiClient: aiClient}
}

func (s *EnrichmentService) EnrichItinerary(ctx context.Context, itineraryText string) ([]schema.Day, error) {
	if strings.TrimSpace(itineraryText) == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.aiClient.GenerateJSON(ctx, utils.GenerationRequest{
		Stage:  stageEnrich,
		Prompt: buildEnrichPrompt(itineraryText),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrEnrichmentFailed, err)
	}

	days, err := schema.ParseDays([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrEnrichmentFailed, err)
	}

	return days, nil
}

func buildEnrichPrompt(itineraryText string) string {
	var prompt strings.Builder

	prompt.WriteString("Convert the following travel itinerary into structured day-by-day data.\n\n")
	prompt.WriteString("Requirements:\n")
	prompt.WriteString("1. Preserve every piece of information from the source text; do not drop days or activities.\n")
	prompt.WriteString("2. Add an engaging description to each activity.\n")
	prompt.WriteString("3. Only include link and imageUrl values for real, publicly reachable URLs you know. Never invent a URL; omit the field instead.\n")
	prompt.WriteString("4. Return ONLY valid JSON, no extra text.\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "days": [
    {
      "day": 1,
      "title": "Short day title",
      "activities": [
        {
          "title": "Activity title",
          "description": "Engaging description",
          "location": {"lat": 0.0, "lng": 0.0, "address": "Full address"},
          "keynotes": ["short note"]
        }
      ]
    }
  ]
}`)

	prompt.WriteString("\n\nItinerary text:\n")
	prompt.WriteString(itineraryText)

	return prompt.String()
}
