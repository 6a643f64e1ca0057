package response_models

import "tripplanner/internal/schema"

// TripPlanResponse is the progressive generation result: the summary is
// always present, the itinerary only when all generation legs
// succeeded.
type TripPlanResponse struct {
	Summary   schema.Summary    `json:"summary"`
	Itinerary *schema.Itinerary `json:"itinerary,omitempty"`
}

type TripResponse struct {
	ID            string            `json:"id"`
	StartingPoint string            `json:"starting_point,omitempty"`
	Destination   string            `json:"destination"`
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	Summary       schema.Summary    `json:"summary"`
	Itinerary     *schema.Itinerary `json:"itinerary,omitempty"`
}

type TripListItem struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DayCount    int    `json:"day_count"`
}
