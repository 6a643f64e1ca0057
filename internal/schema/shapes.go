// Package schema defines the structured shapes the generation pipeline
// produces and validates candidate model output against them.
package schema

// Flight recommendation kinds. Any other value is a schema violation.
const (
	FlightTypeRoundTrip = "roundTrip"
	FlightTypeInternal  = "internal"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Activity struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Location    *Location `json:"location,omitempty"`
	Keynotes    []string  `json:"keynotes,omitempty"`
	WaysToReach []string  `json:"waysToReach,omitempty"`
	ThingsToDo  []string  `json:"thingsToDo,omitempty"`
}

type Day struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type Hotel struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Location    Location `json:"location"`
}

type FlightRecommendation struct {
	Type           string   `json:"type"`
	Route          string   `json:"route"`
	Description    string   `json:"description"`
	EstimatedCost  string   `json:"estimatedCost,omitempty"`
	BestTimeToBook string   `json:"bestTimeToBook,omitempty"`
	Airlines       []string `json:"airlines,omitempty"`
}

// Itinerary is the merged artifact of the three concurrent generation
// legs. Immutable once constructed.
type Itinerary struct {
	Days    []Day                  `json:"days"`
	Hotel   *Hotel                 `json:"hotel,omitempty"`
	Flights []FlightRecommendation `json:"flights,omitempty"`
}

// Summary is computed deterministically from trip parameters, never by
// a model call.
type Summary struct {
	Destination     string   `json:"destination"`
	Overview        string   `json:"overview"`
	DayCount        int      `json:"dayCount"`
	Highlights      []string `json:"highlights"`
	EstimatedBudget string   `json:"estimatedBudget,omitempty"`
}

// HotelSuggestion is the hotel-finder tool flow result.
type HotelSuggestion struct {
	HotelName        string `json:"hotelName"`
	HotelPrice       string `json:"hotelPrice"`
	HotelDescription string `json:"hotelDescription"`
}

// AssistantAdvice is the personal assistant flow result. Intentionally
// shallow: two free-text fields.
type AssistantAdvice struct {
	Reminders       string `json:"reminders"`
	Recommendations string `json:"recommendations"`
}
