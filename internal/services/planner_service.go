package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/schema"
	"tripplanner/pkg/utils"
)

// Leg names, also used as generation stages.
const (
	LegDays    = "days"
	LegHotel   = "hotel"
	LegFlights = "flights"
)

// ItineraryOutcome is the eventual result of the three concurrent
// generation legs: either the merged itinerary or the orchestration
// error, never both.
type ItineraryOutcome struct {
	Itinerary *schema.Itinerary
	Err       error
}

type PlannerServiceInterface interface {
	// BuildTripSummary computes the deterministic trip summary. No
	// model call is involved; only date parsing can fail.
	BuildTripSummary(params request_models.TripParameters) (schema.Summary, error)

	// GenerateItineraryProgressive returns the summary synchronously
	// and delivers the merged itinerary (or failure) on the returned
	// channel once all three generation legs complete.
	GenerateItineraryProgressive(ctx context.Context, params request_models.TripParameters) (schema.Summary, <-chan ItineraryOutcome, error)

	// GenerateItineraryFull awaits the progressive result, discarding
	// the summary.
	GenerateItineraryFull(ctx context.Context, params request_models.TripParameters) (*schema.Itinerary, error)
}

type PlannerService struct {
	aiClient utils.GenerationClientInterface
}

func NewPlannerService(aiClient utils.GenerationClientInterface) PlannerServiceInterface {
	return &PlannerService{aiClient: aiClient}
}

func (s *PlannerService) BuildTripSummary(params request_models.TripParameters) (schema.Summary, error) {
	start, end, err := parseTripDates(params)
	if err != nil {
		return schema.Summary{}, err
	}
	return buildSummary(params, utils.TripLengthInDays(start, end)), nil
}

func (s *PlannerService) GenerateItineraryProgressive(ctx context.Context, params request_models.TripParameters) (schema.Summary, <-chan ItineraryOutcome, error) {
	start, end, err := parseTripDates(params)
	if err != nil {
		return schema.Summary{}, nil, err
	}

	dayCount := utils.TripLengthInDays(start, end)
	summary := buildSummary(params, dayCount)

	resultCh := make(chan legResult, 3)
	var wg sync.WaitGroup
	wg.Add(3)

	go s.daysWorker(ctx, &wg, params, dayCount, resultCh)
	go s.hotelWorker(ctx, &wg, params, resultCh)
	go s.flightsWorker(ctx, &wg, params, resultCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Buffered so the merge goroutine exits even when the caller walks
	// away without reading the outcome.
	outcomeCh := make(chan ItineraryOutcome, 1)
	go func() {
		outcomeCh <- mergeLegResults(resultCh)
	}()

	return summary, outcomeCh, nil
}

func (s *PlannerService) GenerateItineraryFull(ctx context.Context, params request_models.TripParameters) (*schema.Itinerary, error) {
	_, outcomeCh, err := s.GenerateItineraryProgressive(ctx, params)
	if err != nil {
		return nil, err
	}

	select {
	case outcome := <-outcomeCh:
		return outcome.Itinerary, outcome.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", utils.ErrOrchestrationFailed, ctx.Err())
	}
}

type legResult struct {
	leg     string
	days    []schema.Day
	hotel   *schema.Hotel
	flights []schema.FlightRecommendation
	err     error
}

// mergeLegResults drains the result channel and performs the strict
// join: one failed leg fails the merge, the surviving legs' output is
// logged for diagnosis but never returned as a partial itinerary.
func mergeLegResults(resultCh <-chan legResult) ItineraryOutcome {
	var itinerary schema.Itinerary
	var failedLegs []string
	var causes []error

	for res := range resultCh {
		if res.err != nil {
			log.Printf("planner: %s leg failed: %v", res.leg, res.err)
			failedLegs = append(failedLegs, res.leg)
			causes = append(causes, fmt.Errorf("%s leg: %w", res.leg, res.err))
			continue
		}
		switch res.leg {
		case LegDays:
			itinerary.Days = res.days
		case LegHotel:
			itinerary.Hotel = res.hotel
		case LegFlights:
			itinerary.Flights = res.flights
		}
	}

	if len(failedLegs) > 0 {
		return ItineraryOutcome{
			Err: fmt.Errorf("%w (%s): %w", utils.ErrOrchestrationFailed, strings.Join(failedLegs, ", "), errors.Join(causes...)),
		}
	}

	if issues := schema.DayNumberIssues(itinerary.Days); len(issues) > 0 {
		log.Printf("planner: day numbering issues in generated itinerary: %s", strings.Join(issues, "; "))
	}

	return ItineraryOutcome{Itinerary: &itinerary}
}

func (s *PlannerService) daysWorker(ctx context.Context, wg *sync.WaitGroup, params request_models.TripParameters, dayCount int, resultCh chan<- legResult) {
	defer wg.Done()

	raw, err := s.aiClient.GenerateJSON(ctx, utils.GenerationRequest{
		Stage:  LegDays,
		Prompt: buildDaysPrompt(params, dayCount),
	})
	if err != nil {
		resultCh <- legResult{leg: LegDays, err: err}
		return
	}

	days, err := schema.ParseDays([]byte(raw))
	resultCh <- legResult{leg: LegDays, days: days, err: err}
}

func (s *PlannerService) hotelWorker(ctx context.Context, wg *sync.WaitGroup, params request_models.TripParameters, resultCh chan<- legResult) {
	defer wg.Done()

	raw, err := s.aiClient.GenerateJSON(ctx, utils.GenerationRequest{
		Stage:  LegHotel,
		Prompt: buildHotelPrompt(params),
	})
	if err != nil {
		resultCh <- legResult{leg: LegHotel, err: err}
		return
	}

	hotel, err := schema.ParseHotelResult([]byte(raw))
	resultCh <- legResult{leg: LegHotel, hotel: hotel, err: err}
}

func (s *PlannerService) flightsWorker(ctx context.Context, wg *sync.WaitGroup, params request_models.TripParameters, resultCh chan<- legResult) {
	defer wg.Done()

	raw, err := s.aiClient.GenerateJSON(ctx, utils.GenerationRequest{
		Stage:  LegFlights,
		Prompt: buildFlightsPrompt(params),
	})
	if err != nil {
		resultCh <- legResult{leg: LegFlights, err: err}
		return
	}

	flights, err := schema.ParseFlights([]byte(raw))
	resultCh <- legResult{leg: LegFlights, flights: flights, err: err}
}

// buildSummary fills the summary from fixed templated text. An earlier
// iteration asked the model for a quick overview; the deterministic
// template replaced it because the user sees this value first and it
// must never wait on a network call.
func buildSummary(params request_models.TripParameters, dayCount int) schema.Summary {
	interests := strings.TrimSpace(params.Interests)
	if interests == "" {
		interests = "the local highlights"
	}
	budget := strings.TrimSpace(params.Budget)
	if budget == "" {
		budget = "flexible"
	}

	overview := fmt.Sprintf(
		"A %d-day trip from %s to %s, built around %s on a %s budget. "+
			"Your detailed day-by-day plan, hotel pick and flight recommendations are being prepared.",
		dayCount, params.StartingPoint, params.Destination, interests, budget,
	)

	highlights := []string{
		fmt.Sprintf("%d days in %s", dayCount, params.Destination),
		fmt.Sprintf("Activities chosen for %s", interests),
		fmt.Sprintf("A hotel pick matched to a %s budget", budget),
		fmt.Sprintf("Round trip flight options between %s and %s", params.StartingPoint, params.Destination),
	}

	return schema.Summary{
		Destination:     params.Destination,
		Overview:        overview,
		DayCount:        dayCount,
		Highlights:      highlights,
		EstimatedBudget: params.Budget,
	}
}

func buildDaysPrompt(params request_models.TripParameters, dayCount int) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for a trip from %s to %s, %s through %s.\n",
		dayCount, params.StartingPoint, params.Destination, params.StartDate, params.EndDate))
	prompt.WriteString(fmt.Sprintf("Traveler interests: %s. Budget: %s.\n\n", params.Interests, params.Budget))

	prompt.WriteString("Requirements:\n")
	prompt.WriteString(fmt.Sprintf("1. Generate exactly %d days, numbered 1..%d with no gaps.\n", dayCount, dayCount))
	prompt.WriteString("2. Give each day a short title and 2-4 activities.\n")
	prompt.WriteString("3. Only include link and imageUrl values for real, publicly reachable URLs. Never invent a URL; omit the field instead.\n")
	prompt.WriteString("4. Return ONLY valid JSON, no extra text.\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "days": [
    {
      "day": 1,
      "title": "Arrival and old town",
      "activities": [
        {
          "title": "Walk the old town",
          "description": "Engaging description of the activity",
          "link": "https://example.org/real-page",
          "imageUrl": "https://example.org/real-image.jpg",
          "location": {"lat": 48.8566, "lng": 2.3522, "address": "Full address"},
          "keynotes": ["short note"],
          "waysToReach": ["metro line 1"],
          "thingsToDo": ["specific thing to do"]
        }
      ]
    }
  ]
}`)

	return prompt.String()
}

func buildHotelPrompt(params request_models.TripParameters) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Recommend one hotel in %s for a stay from %s to %s on a %s budget.\n\n",
		params.Destination, params.StartDate, params.EndDate, params.Budget))
	prompt.WriteString("Only include imageUrl when you know a real, publicly reachable URL. Return ONLY valid JSON:\n")
	prompt.WriteString(`{
  "hotel": {
    "name": "Hotel name",
    "description": "Why this hotel fits the trip",
    "imageUrl": "https://example.org/real-image.jpg",
    "location": {"lat": 48.8566, "lng": 2.3522, "address": "Full address"}
  }
}`)

	return prompt.String()
}

func buildFlightsPrompt(params request_models.TripParameters) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Recommend flights for a trip from %s to %s, %s through %s, budget %s.\n\n",
		params.StartingPoint, params.Destination, params.StartDate, params.EndDate, params.Budget))
	prompt.WriteString("Requirements:\n")
	prompt.WriteString(fmt.Sprintf("1. Always include exactly one recommendation with type \"roundTrip\" covering %s to %s and back.\n",
		params.StartingPoint, params.Destination))
	prompt.WriteString("2. Add recommendations with type \"internal\" only when the destination is a large country or multi-city region where internal flights genuinely help.\n")
	prompt.WriteString("3. The type field must be exactly \"roundTrip\" or \"internal\".\n")
	prompt.WriteString("4. Return ONLY valid JSON, no extra text.\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "flights": [
    {
      "type": "roundTrip",
      "route": "Origin to Destination and back",
      "description": "Why this routing",
      "estimatedCost": "$600-$900",
      "bestTimeToBook": "6-8 weeks before departure",
      "airlines": ["Airline A", "Airline B"]
    }
  ]
}`)

	return prompt.String()
}

func parseTripDates(params request_models.TripParameters) (time.Time, time.Time, error) {
	start, err := utils.ParseTripDate(params.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", utils.ErrInvalidInput, params.StartDate)
	}
	end, err := utils.ParseTripDate(params.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", utils.ErrInvalidInput, params.EndDate)
	}
	return start, end, nil
}
