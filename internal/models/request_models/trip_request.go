package request_models

// TripParameters is the caller-supplied input for itinerary
// generation. Dates use the YYYY-MM-DD layout; ordering is the
// caller's responsibility.
type TripParameters struct {
	StartingPoint string `json:"starting_point" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Interests     string `json:"interests"`
	Budget        string `json:"budget"`
}

type EnrichItineraryRequest struct {
	Itinerary string `json:"itinerary" binding:"required"`
}

// ImportTripRequest stores a trip from a free-text itinerary. The
// structured day list is filled in lazily on first read.
type ImportTripRequest struct {
	StartingPoint string `json:"starting_point"`
	Destination   string `json:"destination" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Interests     string `json:"interests"`
	Budget        string `json:"budget"`
	ItineraryText string `json:"itinerary_text" binding:"required"`
}
