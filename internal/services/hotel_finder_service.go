package services

import (
	"context"
	"fmt"
	"strings"

	"tripplanner/internal/schema"
	"tripplanner/pkg/utils"
)

const stageHotelFinder = "hotel_finder"

// Budget tiers accepted by the hotel-search tool contract.
var hotelBudgetTiers = map[string]bool{
	"budget":   true,
	"moderate": true,
	"luxury":   true,
}

type HotelFinderServiceInterface interface {
	FindHotelForTrip(ctx context.Context, destination, budget string) (schema.HotelSuggestion, error)
}

type HotelFinderService struct {
	aiClient utils.GenerationClientInterface
}

func NewHotelFinderService(aiClient utils.GenerationClientInterface) HotelFinderServiceInterface {
	return &HotelFinderService{aiClient: aiClient}
}

func (s *HotelFinderService) FindHotelForTrip(ctx context.Context, destination, budget string) (schema.HotelSuggestion, error) {
	if strings.TrimSpace(destination) == "" {
		return schema.HotelSuggestion{}, utils.ErrInvalidInput
	}
	budget = sanitizeBudget(budget)

	raw, err := s.aiClient.GenerateWithTool(ctx, utils.GenerationRequest{
		Stage:  stageHotelFinder,
		Prompt: buildHotelFinderPrompt(destination, budget),
	}, hotelSearchTool())
	if err != nil {
		return schema.HotelSuggestion{}, fmt.Errorf("%w: %w", utils.ErrHotelSearchFailed, err)
	}

	suggestion, err := schema.ParseHotelSuggestion([]byte(raw))
	if err != nil {
		return schema.HotelSuggestion{}, fmt.Errorf("%w: %w", utils.ErrHotelSearchFailed, err)
	}

	return suggestion, nil
}

// sanitizeBudget coerces the caller-supplied budget onto the tool's
// tier enum. Unknown values become "moderate" silently; the enum is a
// tool contract, not a user-facing validation.
func sanitizeBudget(budget string) string {
	normalized := strings.ToLower(strings.TrimSpace(budget))
	if !hotelBudgetTiers[normalized] {
		return "moderate"
	}
	return normalized
}

// hotelSearchTool is the single invocable tool of this flow. The
// executor is a placeholder returning a canned result; the gateway's
// obligation to run it and feed the result back is what matters here.
func hotelSearchTool() utils.ToolDefinition {
	return utils.ToolDefinition{
		Name:        "findHotel",
		Description: "Find a hotel for a destination and budget tier",
		Params: []utils.ToolParam{
			{Name: "destination", Description: "City or region to stay in"},
			{Name: "budget", Description: "One of budget, moderate, luxury"},
		},
		Execute: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			destination, _ := args["destination"].(string)
			return map[string]any{
				"hotelName":        fmt.Sprintf("The %s Central", destination),
				"hotelPrice":       "$120 per night",
				"hotelDescription": fmt.Sprintf("A well reviewed stay in the heart of %s.", destination),
			}, nil
		},
	}
}

func buildHotelFinderPrompt(destination, budget string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Find a hotel in %s for a %s budget using the findHotel tool, then present the result.\n\n", destination, budget))
	prompt.WriteString("Return ONLY valid JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "hotelName": "Hotel name",
  "hotelPrice": "Price per night",
  "hotelDescription": "Short description"
}`)

	return prompt.String()
}
