package request_models

type HotelFinderRequest struct {
	Destination string `json:"destination" binding:"required"`
	Budget      string `json:"budget"`
}

type AssistantRequest struct {
	TripDetails     string `json:"trip_details" binding:"required"`
	LiveData        string `json:"live_data"`
	UserPreferences string `json:"user_preferences"`
}
