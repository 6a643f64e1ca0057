package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/schema"
	"tripplanner/pkg/utils"
)

type TripServiceInterface interface {
	// CreateTrip generates the full itinerary for the parameters and
	// persists the result.
	CreateTrip(ctx context.Context, params request_models.TripParameters) (*response_models.TripResponse, error)

	// ImportTrip stores a trip from a free-text itinerary without
	// calling the model; the structured form is produced on first read.
	ImportTrip(ctx context.Context, req request_models.ImportTripRequest) (string, error)

	// GetTripById loads a trip. A trip imported from free text that has
	// no structured itinerary yet is enriched inline (awaited) and the
	// result persisted before returning.
	GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error)

	ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripListItem, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	planner  PlannerServiceInterface
	enricher EnrichmentServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	planner PlannerServiceInterface,
	enricher EnrichmentServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		planner:  planner,
		enricher: enricher,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, params request_models.TripParameters) (*response_models.TripResponse, error) {
	summary, outcomeCh, err := s.planner.GenerateItineraryProgressive(ctx, params)
	if err != nil {
		return nil, err
	}

	var itinerary *schema.Itinerary
	select {
	case outcome := <-outcomeCh:
		if outcome.Err != nil {
			return nil, outcome.Err
		}
		itinerary = outcome.Itinerary
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", utils.ErrOrchestrationFailed, ctx.Err())
	}

	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	trip, err := tripRecordFromParams(params)
	if err != nil {
		return nil, err
	}
	trip.Overview = summary.Overview
	trip.DayCount = summary.DayCount
	trip.Highlights = summary.Highlights
	trip.ItineraryJSON = itineraryJSON

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := tripResponseFromRecord(trip)
	resp.Itinerary = itinerary
	return resp, nil
}

func (s *TripService) ImportTrip(ctx context.Context, req request_models.ImportTripRequest) (string, error) {
	params := request_models.TripParameters{
		StartingPoint: req.StartingPoint,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Interests:     req.Interests,
		Budget:        req.Budget,
	}

	summary, err := s.planner.BuildTripSummary(params)
	if err != nil {
		return "", err
	}

	trip, err := tripRecordFromParams(params)
	if err != nil {
		return "", err
	}
	trip.Overview = summary.Overview
	trip.DayCount = summary.DayCount
	trip.Highlights = summary.Highlights
	trip.ItineraryText = req.ItineraryText

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}
	return trip.ID.String(), nil
}

func (s *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	resp := tripResponseFromRecord(trip)

	if len(trip.ItineraryJSON) > 0 {
		var itinerary schema.Itinerary
		if err := json.Unmarshal(trip.ItineraryJSON, &itinerary); err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.Itinerary = &itinerary
		return resp, nil
	}

	// Backfill: older imports carry only the free-text itinerary. The
	// enrichment runs inline and the read waits for it; a trip is never
	// handed out with a half-built structured itinerary.
	if trip.ItineraryText != "" {
		days, err := s.enricher.EnrichItinerary(ctx, trip.ItineraryText)
		if err != nil {
			return nil, err
		}

		itinerary := &schema.Itinerary{Days: days}
		itineraryJSON, err := json.Marshal(itinerary)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if err := s.tripRepo.UpdateItineraryJSON(ctx, trip.ID, itineraryJSON); err != nil {
			log.Printf("trip %s: failed to persist enriched itinerary: %v", trip.ID, err)
		}

		resp.Itinerary = itinerary
	}

	return resp, nil
}

func (s *TripService) ListTrips(ctx context.Context, page, pageSize int) ([]response_models.TripListItem, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripListItem, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripListItem{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			StartDate:   utils.FormatTripDate(trip.StartDate),
			EndDate:     utils.FormatTripDate(trip.EndDate),
			DayCount:    trip.DayCount,
		})
	}
	return out, nil
}

func tripRecordFromParams(params request_models.TripParameters) (*db_models.Trip, error) {
	start, err := utils.ParseTripDate(params.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseTripDate(params.EndDate)
	if err != nil {
		return nil, err
	}

	return &db_models.Trip{
		StartingPoint: params.StartingPoint,
		Destination:   params.Destination,
		StartDate:     start,
		EndDate:       end,
		Interests:     params.Interests,
		Budget:        params.Budget,
	}, nil
}

func tripResponseFromRecord(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:            trip.ID.String(),
		StartingPoint: trip.StartingPoint,
		Destination:   trip.Destination,
		StartDate:     utils.FormatTripDate(trip.StartDate),
		EndDate:       utils.FormatTripDate(trip.EndDate),
		Summary: schema.Summary{
			Destination:     trip.Destination,
			Overview:        trip.Overview,
			DayCount:        trip.DayCount,
			Highlights:      trip.Highlights,
			EstimatedBudget: trip.Budget,
		},
	}
}
