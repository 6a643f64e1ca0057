package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/pkg/utils"
)

const validDaysJSON = `{
  "days": [
    {
      "day": 1,
      "title": "Arrival",
      "activities": [
        {
          "title": "Check in",
          "description": "Settle in and explore the neighborhood",
          "location": {"lat": 48.8566, "lng": 2.3522, "address": "Paris, France"},
          "keynotes": ["bring passport"]
        }
      ]
    },
    {
      "day": 2,
      "title": "Museums",
      "activities": [
        {"title": "Louvre", "description": "Morning at the Louvre"}
      ]
    }
  ]
}`

func TestParseDays(t *testing.T) {
	days, err := ParseDays([]byte(validDaysJSON))
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Arrival", days[0].Title)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Check in", days[0].Activities[0].Title)
	require.NotNil(t, days[0].Activities[0].Location)
	assert.Equal(t, "Paris, France", days[0].Activities[0].Location.Address)
	assert.Equal(t, []string{"bring passport"}, days[0].Activities[0].Keynotes)

	assert.Nil(t, days[1].Activities[0].Location)
}

func TestParseDaysIgnoresUnknownFields(t *testing.T) {
	payload := `{
	  "days": [
	    {"day": 1, "title": "Arrival", "mood": "excited", "activities": [
	      {"title": "Walk", "description": "A walk", "rating": 4.5}
	    ]}
	  ],
	  "modelNotes": "extra commentary"
	}`

	days, err := ParseDays([]byte(payload))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Arrival", days[0].Title)
}

func TestParseDaysViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{"not an object", `[1, 2]`, ""},
		{"missing days", `{"itinerary": []}`, "days"},
		{"day entry not object", `{"days": ["monday"]}`, "days[0]"},
		{"missing day number", `{"days": [{"title": "x", "activities": []}]}`, "days[0].day"},
		{"fractional day number", `{"days": [{"day": 1.5, "title": "x", "activities": []}]}`, "days[0].day"},
		{"day number below one", `{"days": [{"day": 0, "title": "x", "activities": []}]}`, "days[0].day"},
		{"missing activity description", `{"days": [{"day": 1, "title": "x", "activities": [{"title": "y"}]}]}`, "days[0].activities[0].description"},
		{"keynotes not strings", `{"days": [{"day": 1, "title": "x", "activities": [{"title": "y", "description": "z", "keynotes": [1]}]}]}`, "keynotes[0]"},
		{"location missing address", `{"days": [{"day": 1, "title": "x", "activities": [{"title": "y", "description": "z", "location": {"lat": 1, "lng": 2}}]}]}`, "location.address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDays([]byte(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
			if tt.path != "" {
				assert.Contains(t, err.Error(), tt.path)
			}
		})
	}
}

func TestParseHotelResult(t *testing.T) {
	payload := `{
	  "hotel": {
	    "name": "Hotel Lutetia",
	    "description": "Classic left-bank stay",
	    "location": {"lat": 48.851, "lng": 2.327, "address": "45 Bd Raspail, Paris"}
	  }
	}`

	hotel, err := ParseHotelResult([]byte(payload))
	require.NoError(t, err)
	require.NotNil(t, hotel)
	assert.Equal(t, "Hotel Lutetia", hotel.Name)
	assert.Equal(t, "45 Bd Raspail, Paris", hotel.Location.Address)
}

func TestParseHotelResultAbsentHotel(t *testing.T) {
	for _, payload := range []string{`{}`, `{"hotel": null}`} {
		hotel, err := ParseHotelResult([]byte(payload))
		require.NoError(t, err)
		assert.Nil(t, hotel)
	}
}

func TestParseHotelResultMissingLocation(t *testing.T) {
	_, err := ParseHotelResult([]byte(`{"hotel": {"name": "x", "description": "y"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "hotel.location")
}

func TestParseFlights(t *testing.T) {
	payload := `{
	  "flights": [
	    {
	      "type": "roundTrip",
	      "route": "New York to Paris and back",
	      "description": "Direct flights both ways",
	      "estimatedCost": "$700-$950",
	      "airlines": ["Air France", "Delta"]
	    },
	    {
	      "type": "internal",
	      "route": "Paris to Nice",
	      "description": "Hop to the coast mid-trip"
	    }
	  ]
	}`

	flights, err := ParseFlights([]byte(payload))
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, FlightTypeRoundTrip, flights[0].Type)
	assert.Equal(t, FlightTypeInternal, flights[1].Type)
	assert.Equal(t, []string{"Air France", "Delta"}, flights[0].Airlines)
}

func TestParseFlightsRejectsUnknownType(t *testing.T) {
	tests := []string{"round_trip", "roundtrip", "oneWay", "Internal", ""}

	for _, flightType := range tests {
		t.Run(flightType, func(t *testing.T) {
			payload := `{"flights": [{"type": "` + flightType + `", "route": "A to B", "description": "d"}]}`
			_, err := ParseFlights([]byte(payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
			assert.Contains(t, err.Error(), "flights[0].type")
		})
	}
}

func TestParseHotelSuggestion(t *testing.T) {
	payload := `{"hotelName": "The Kyoto Central", "hotelPrice": "$120 per night", "hotelDescription": "Central and quiet"}`

	suggestion, err := ParseHotelSuggestion([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "The Kyoto Central", suggestion.HotelName)

	_, err = ParseHotelSuggestion([]byte(`{"hotelName": "x", "hotelPrice": "$1"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
	assert.Contains(t, err.Error(), "hotelDescription")
}

func TestParseAssistantAdvice(t *testing.T) {
	payload := `{"reminders": "Pack an umbrella", "recommendations": "Book the museum pass online"}`

	advice, err := ParseAssistantAdvice([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Pack an umbrella", advice.Reminders)

	_, err = ParseAssistantAdvice([]byte(`{"reminders": "x"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
}

func TestValidateSummary(t *testing.T) {
	valid := map[string]any{
		"destination": "Paris",
		"overview":    "A 5-day trip",
		"dayCount":    float64(5),
		"highlights":  []any{"5 days in Paris"},
	}
	require.NoError(t, ValidateSummary(valid, ""))

	missingHighlights := map[string]any{
		"destination": "Paris",
		"overview":    "A 5-day trip",
		"dayCount":    float64(5),
	}
	err := ValidateSummary(missingHighlights, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highlights")

	zeroDays := map[string]any{
		"destination": "Paris",
		"overview":    "o",
		"dayCount":    float64(0),
		"highlights":  []any{},
	}
	err = ValidateSummary(zeroDays, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dayCount")
}

func TestDayNumberIssues(t *testing.T) {
	clean := []Day{{Day: 1}, {Day: 2}, {Day: 3}}
	assert.Empty(t, DayNumberIssues(clean))

	duplicate := []Day{{Day: 1}, {Day: 1}}
	issues := DayNumberIssues(duplicate)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "more than once")

	gap := []Day{{Day: 1}, {Day: 3}}
	issues = DayNumberIssues(gap)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "position 2")
}
