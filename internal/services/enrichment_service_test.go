package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/pkg/utils"
)

const sampleItineraryText = `Day 1: Arrive in Lisbon, check in near Baixa, evening walk to the Miradouro.
Day 2: Tram 28 loop, Alfama, Fado dinner.
Day 3: Day trip to Sintra, Pena Palace.`

func TestEnrichItinerary(t *testing.T) {
	client := newFakeClient()
	client.responses[stageEnrich] = `{"days": [
	  {"day": 1, "title": "Arrival in Lisbon", "activities": [{"title": "Miradouro walk", "description": "Sunset over the city"}]},
	  {"day": 2, "title": "Alfama", "activities": [{"title": "Tram 28", "description": "The classic loop"}]},
	  {"day": 3, "title": "Sintra", "activities": [{"title": "Pena Palace", "description": "Hilltop palace"}]}
	]}`

	svc := NewEnrichmentService(client)

	days, err := svc.EnrichItinerary(context.Background(), sampleItineraryText)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "Arrival in Lisbon", days[0].Title)

	require.Len(t, client.calls, 1)
	assert.Equal(t, stageEnrich, client.calls[0].Stage)
	assert.Contains(t, client.calls[0].Prompt, "Tram 28 loop")
}

func TestEnrichItineraryEmptyInput(t *testing.T) {
	svc := NewEnrichmentService(newFakeClient())

	for _, input := range []string{"", "   \n\t"} {
		_, err := svc.EnrichItinerary(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrInvalidInput))
	}
}

func TestEnrichItineraryGenerationFailure(t *testing.T) {
	client := newFakeClient()
	client.errs[stageEnrich] = utils.ErrAIConnection

	svc := NewEnrichmentService(client)

	_, err := svc.EnrichItinerary(context.Background(), sampleItineraryText)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrEnrichmentFailed))
	assert.True(t, errors.Is(err, utils.ErrAIConnection))
}

func TestEnrichItineraryMalformedOutput(t *testing.T) {
	client := newFakeClient()
	client.responses[stageEnrich] = `{"days": [{"title": "missing day number", "activities": []}]}`

	svc := NewEnrichmentService(client)

	_, err := svc.EnrichItinerary(context.Background(), sampleItineraryText)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrEnrichmentFailed))
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
}
