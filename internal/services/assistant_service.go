package services

import (
	"context"
	"fmt"
	"strings"

	"tripplanner/internal/schema"
	"tripplanner/pkg/utils"
)

const stageAssistant = "assistant"

type AssistantServiceInterface interface {
	PersonalTripAssistant(ctx context.Context, tripDetails, liveData, userPreferences string) (schema.AssistantAdvice, error)
}

type AssistantService struct {
	aiClient utils.GenerationClientInterface
}

func NewAssistantService(aiClient utils.GenerationClientInterface) AssistantServiceInterface {
	return &AssistantService{aiClient: aiClient}
}

func (s *AssistantService) PersonalTripAssistant(ctx context.Context, tripDetails, liveData, userPreferences string) (schema.AssistantAdvice, error) {
	if strings.TrimSpace(tripDetails) == "" {
		return schema.AssistantAdvice{}, utils.ErrInvalidInput
	}

	raw, err := s.aiClient.GenerateJSON(ctx, utils.GenerationRequest{
		Stage:  stageAssistant,
		Prompt: buildAssistantPrompt(tripDetails, liveData, userPreferences),
	})
	if err != nil {
		return schema.AssistantAdvice{}, err
	}

	advice, err := schema.ParseAssistantAdvice([]byte(raw))
	if err != nil {
		return schema.AssistantAdvice{}, err
	}
	if strings.TrimSpace(advice.Reminders) == "" && strings.TrimSpace(advice.Recommendations) == "" {
		return schema.AssistantAdvice{}, fmt.Errorf("%w: assistant produced empty advice", utils.ErrAIEmptyOutput)
	}

	return advice, nil
}

func buildAssistantPrompt(tripDetails, liveData, userPreferences string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a personal travel assistant. Based on the trip, current conditions and the traveler's preferences, produce practical reminders and recommendations.\n\n")
	prompt.WriteString(fmt.Sprintf("Trip details:\n%s\n\n", tripDetails))
	if strings.TrimSpace(liveData) != "" {
		prompt.WriteString(fmt.Sprintf("Live data (weather, events, transport):\n%s\n\n", liveData))
	}
	if strings.TrimSpace(userPreferences) != "" {
		prompt.WriteString(fmt.Sprintf("Traveler preferences:\n%s\n\n", userPreferences))
	}

	prompt.WriteString("Return ONLY valid JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "reminders": "Things the traveler should not forget",
  "recommendations": "Suggestions tailored to the trip and preferences"
}`)

	return prompt.String()
}
