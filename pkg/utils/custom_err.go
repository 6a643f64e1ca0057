package utils

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrTripNotFound = errors.New("trip not found")

	ErrDatabaseError = errors.New("database error")

	// Generation gateway taxonomy. None of these are retried inside the
	// core; callers decide what to surface.
	ErrAIConnection    = errors.New("generation transport failure")
	ErrAIRefusal       = errors.New("model refused to produce output")
	ErrAIEmptyOutput   = errors.New("model returned no content")
	ErrSchemaViolation = errors.New("model output does not match the expected schema")

	// Stage wrappers. Always wrap one of the gateway errors above.
	ErrEnrichmentFailed    = errors.New("itinerary enrichment failed")
	ErrHotelSearchFailed   = errors.New("hotel search failed")
	ErrOrchestrationFailed = errors.New("itinerary generation failed")
)
