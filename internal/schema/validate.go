package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"tripplanner/pkg/utils"
)

// Validation is structural: required fields must be present with the
// right type, optional fields type-check when present, and unknown
// fields are ignored so that generator output carrying extra keys still
// passes. Every failure wraps utils.ErrSchemaViolation with the path of
// the offending field.

// ParseDays decodes a `{ "days": [...] }` payload.
func ParseDays(data []byte) ([]Day, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	if err := validateDayList(root, ""); err != nil {
		return nil, err
	}

	var payload struct {
		Days []Day `json:"days"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, violation("days", err.Error())
	}
	return payload.Days, nil
}

// ParseHotelResult decodes a `{ "hotel": {...} }` payload. The hotel is
// optional; an absent or null hotel yields nil without error.
func ParseHotelResult(data []byte) (*Hotel, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	raw, ok := root["hotel"]
	if !ok || raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, violation("hotel", "expected an object")
	}
	if err := ValidateHotel(obj, "hotel"); err != nil {
		return nil, err
	}

	var payload struct {
		Hotel *Hotel `json:"hotel"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, violation("hotel", err.Error())
	}
	return payload.Hotel, nil
}

// ParseFlights decodes a `{ "flights": [...] }` payload.
func ParseFlights(data []byte) ([]FlightRecommendation, error) {
	root, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	items, err := requireArray(root, "", "flights")
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, violation(fmt.Sprintf("flights[%d]", i), "expected an object")
		}
		if err := ValidateFlightRecommendation(obj, fmt.Sprintf("flights[%d]", i)); err != nil {
			return nil, err
		}
	}

	var payload struct {
		Flights []FlightRecommendation `json:"flights"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, violation("flights", err.Error())
	}
	return payload.Flights, nil
}

// ParseHotelSuggestion decodes a hotel-finder flow result.
func ParseHotelSuggestion(data []byte) (HotelSuggestion, error) {
	root, err := decodeObject(data)
	if err != nil {
		return HotelSuggestion{}, err
	}

	for _, key := range []string{"hotelName", "hotelPrice", "hotelDescription"} {
		if _, err := requireString(root, "", key); err != nil {
			return HotelSuggestion{}, err
		}
	}

	var out HotelSuggestion
	if err := json.Unmarshal(data, &out); err != nil {
		return HotelSuggestion{}, violation("", err.Error())
	}
	return out, nil
}

// ParseAssistantAdvice decodes a personal-assistant flow result.
func ParseAssistantAdvice(data []byte) (AssistantAdvice, error) {
	root, err := decodeObject(data)
	if err != nil {
		return AssistantAdvice{}, err
	}

	for _, key := range []string{"reminders", "recommendations"} {
		if _, err := requireString(root, "", key); err != nil {
			return AssistantAdvice{}, err
		}
	}

	var out AssistantAdvice
	if err := json.Unmarshal(data, &out); err != nil {
		return AssistantAdvice{}, violation("", err.Error())
	}
	return out, nil
}

// ValidateItinerary checks a full merged itinerary object.
func ValidateItinerary(root map[string]any, path string) error {
	if err := validateDayList(root, path); err != nil {
		return err
	}

	if raw, ok := root["hotel"]; ok && raw != nil {
		obj, ok := raw.(map[string]any)
		if !ok {
			return violation(joinPath(path, "hotel"), "expected an object")
		}
		if err := ValidateHotel(obj, joinPath(path, "hotel")); err != nil {
			return err
		}
	}

	if raw, ok := root["flights"]; ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			return violation(joinPath(path, "flights"), "expected an array")
		}
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return violation(fmt.Sprintf("%s[%d]", joinPath(path, "flights"), i), "expected an object")
			}
			if err := ValidateFlightRecommendation(obj, fmt.Sprintf("%s[%d]", joinPath(path, "flights"), i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func ValidateDay(obj map[string]any, path string) error {
	day, err := requireInt(obj, path, "day")
	if err != nil {
		return err
	}
	if day < 1 {
		return violation(joinPath(path, "day"), "must be >= 1")
	}
	if _, err := requireString(obj, path, "title"); err != nil {
		return err
	}

	items, err := requireArray(obj, path, "activities")
	if err != nil {
		return err
	}
	for i, item := range items {
		activity, ok := item.(map[string]any)
		if !ok {
			return violation(fmt.Sprintf("%s[%d]", joinPath(path, "activities"), i), "expected an object")
		}
		if err := ValidateActivity(activity, fmt.Sprintf("%s[%d]", joinPath(path, "activities"), i)); err != nil {
			return err
		}
	}
	return nil
}

func ValidateActivity(obj map[string]any, path string) error {
	if _, err := requireString(obj, path, "title"); err != nil {
		return err
	}
	if _, err := requireString(obj, path, "description"); err != nil {
		return err
	}
	for _, key := range []string{"link", "imageUrl"} {
		if err := optionalString(obj, path, key); err != nil {
			return err
		}
	}
	for _, key := range []string{"keynotes", "waysToReach", "thingsToDo"} {
		if err := optionalStringArray(obj, path, key); err != nil {
			return err
		}
	}

	if raw, ok := obj["location"]; ok && raw != nil {
		loc, ok := raw.(map[string]any)
		if !ok {
			return violation(joinPath(path, "location"), "expected an object")
		}
		if err := ValidateLocation(loc, joinPath(path, "location")); err != nil {
			return err
		}
	}
	return nil
}

func ValidateLocation(obj map[string]any, path string) error {
	for _, key := range []string{"lat", "lng"} {
		if _, err := requireNumber(obj, path, key); err != nil {
			return err
		}
	}
	_, err := requireString(obj, path, "address")
	return err
}

func ValidateHotel(obj map[string]any, path string) error {
	if _, err := requireString(obj, path, "name"); err != nil {
		return err
	}
	if _, err := requireString(obj, path, "description"); err != nil {
		return err
	}
	if err := optionalString(obj, path, "imageUrl"); err != nil {
		return err
	}

	raw, ok := obj["location"]
	if !ok || raw == nil {
		return violation(joinPath(path, "location"), "missing required field")
	}
	loc, ok := raw.(map[string]any)
	if !ok {
		return violation(joinPath(path, "location"), "expected an object")
	}
	return ValidateLocation(loc, joinPath(path, "location"))
}

func ValidateFlightRecommendation(obj map[string]any, path string) error {
	flightType, err := requireString(obj, path, "type")
	if err != nil {
		return err
	}
	// Exact literal match: no coercion of near-miss values.
	if flightType != FlightTypeRoundTrip && flightType != FlightTypeInternal {
		return violation(joinPath(path, "type"), fmt.Sprintf("must be %q or %q, got %q", FlightTypeRoundTrip, FlightTypeInternal, flightType))
	}

	if _, err := requireString(obj, path, "route"); err != nil {
		return err
	}
	if _, err := requireString(obj, path, "description"); err != nil {
		return err
	}
	for _, key := range []string{"estimatedCost", "bestTimeToBook"} {
		if err := optionalString(obj, path, key); err != nil {
			return err
		}
	}
	return optionalStringArray(obj, path, "airlines")
}

func ValidateSummary(obj map[string]any, path string) error {
	if _, err := requireString(obj, path, "destination"); err != nil {
		return err
	}
	if _, err := requireString(obj, path, "overview"); err != nil {
		return err
	}
	dayCount, err := requireInt(obj, path, "dayCount")
	if err != nil {
		return err
	}
	if dayCount < 1 {
		return violation(joinPath(path, "dayCount"), "must be >= 1")
	}
	if err := optionalString(obj, path, "estimatedBudget"); err != nil {
		return err
	}

	if _, ok := obj["highlights"]; !ok {
		return violation(joinPath(path, "highlights"), "missing required field")
	}
	return optionalStringArray(obj, path, "highlights")
}

// DayNumberIssues reports duplicate or non-consecutive day numbers.
// These are data-quality findings for the caller to log or surface,
// never a validation failure.
func DayNumberIssues(days []Day) []string {
	var issues []string
	seen := make(map[int]bool, len(days))

	for i, day := range days {
		if seen[day.Day] {
			issues = append(issues, fmt.Sprintf("day number %d appears more than once", day.Day))
		}
		seen[day.Day] = true
		if day.Day != i+1 {
			issues = append(issues, fmt.Sprintf("day at position %d is numbered %d", i+1, day.Day))
		}
	}
	return issues
}

func validateDayList(root map[string]any, path string) error {
	items, err := requireArray(root, path, "days")
	if err != nil {
		return err
	}
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return violation(fmt.Sprintf("%s[%d]", joinPath(path, "days"), i), "expected an object")
		}
		if err := ValidateDay(obj, fmt.Sprintf("%s[%d]", joinPath(path, "days"), i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeObject(data []byte) (map[string]any, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, violation("", "expected a JSON object")
	}
	return root, nil
}

func requireString(obj map[string]any, path, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", violation(joinPath(path, key), "missing required field")
	}
	s, ok := raw.(string)
	if !ok {
		return "", violation(joinPath(path, key), "expected a string")
	}
	return s, nil
}

func optionalString(obj map[string]any, path, key string) error {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil
	}
	if _, ok := raw.(string); !ok {
		return violation(joinPath(path, key), "expected a string")
	}
	return nil
}

func requireNumber(obj map[string]any, path, key string) (float64, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return 0, violation(joinPath(path, key), "missing required field")
	}
	n, ok := raw.(float64)
	if !ok {
		return 0, violation(joinPath(path, key), "expected a number")
	}
	return n, nil
}

func requireInt(obj map[string]any, path, key string) (int, error) {
	n, err := requireNumber(obj, path, key)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, violation(joinPath(path, key), "expected an integer")
	}
	return int(n), nil
}

func requireArray(obj map[string]any, path, key string) ([]any, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, violation(joinPath(path, key), "missing required field")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, violation(joinPath(path, key), "expected an array")
	}
	return items, nil
}

func optionalStringArray(obj map[string]any, path, key string) error {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return violation(joinPath(path, key), "expected an array of strings")
	}
	for i, item := range items {
		if _, ok := item.(string); !ok {
			return violation(fmt.Sprintf("%s[%d]", joinPath(path, key), i), "expected a string")
		}
	}
	return nil
}

func violation(path, detail string) error {
	if path == "" {
		return fmt.Errorf("%w: %s", utils.ErrSchemaViolation, detail)
	}
	return fmt.Errorf("%w: %s: %s", utils.ErrSchemaViolation, path, detail)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
