package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/pkg/utils"
)

func TestFindHotelForTrip(t *testing.T) {
	client := newFakeClient()
	client.responses[stageHotelFinder] = `{"hotelName": "The Kyoto Central", "hotelPrice": "$120 per night", "hotelDescription": "Central and quiet"}`

	svc := NewHotelFinderService(client)

	suggestion, err := svc.FindHotelForTrip(context.Background(), "Kyoto", "moderate")
	require.NoError(t, err)
	assert.Equal(t, "The Kyoto Central", suggestion.HotelName)
	assert.Equal(t, "$120 per night", suggestion.HotelPrice)

	require.Len(t, client.toolCalls, 1)
	assert.Equal(t, "findHotel", client.toolCalls[0].Name)
	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0].Prompt, "moderate budget")
}

func TestFindHotelForTripBudgetNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Luxury", "luxury"},
		{" BUDGET ", "budget"},
		{"moderate", "moderate"},
		{"unlimited", "moderate"},
		{"", "moderate"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeBudget(tt.input))
		})
	}
}

func TestFindHotelForTripEmptyDestination(t *testing.T) {
	svc := NewHotelFinderService(newFakeClient())

	_, err := svc.FindHotelForTrip(context.Background(), "  ", "moderate")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestFindHotelForTripGenerationFailure(t *testing.T) {
	client := newFakeClient()
	client.errs[stageHotelFinder] = utils.ErrAIRefusal

	svc := NewHotelFinderService(client)

	_, err := svc.FindHotelForTrip(context.Background(), "Kyoto", "luxury")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrHotelSearchFailed))
	assert.True(t, errors.Is(err, utils.ErrAIRefusal))
}

func TestFindHotelForTripMalformedOutput(t *testing.T) {
	client := newFakeClient()
	client.responses[stageHotelFinder] = `{"hotelName": "x"}`

	svc := NewHotelFinderService(client)

	_, err := svc.FindHotelForTrip(context.Background(), "Kyoto", "budget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrHotelSearchFailed))
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
}

func TestHotelSearchToolExecutor(t *testing.T) {
	tool := hotelSearchTool()

	result, err := tool.Execute(context.Background(), map[string]any{
		"destination": "Kyoto",
		"budget":      "moderate",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Kyoto Central", result["hotelName"])
	assert.NotEmpty(t, result["hotelPrice"])
	assert.NotEmpty(t, result["hotelDescription"])
}
