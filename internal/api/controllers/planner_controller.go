package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type PlannerController struct {
	plannerService    services.PlannerServiceInterface
	enrichmentService services.EnrichmentServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	enrichmentService services.EnrichmentServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService:    plannerService,
		enrichmentService: enrichmentService,
	}
}

// BuildSummaryHandler returns the deterministic trip summary without
// calling the model.
func (p *PlannerController) BuildSummaryHandler(c *gin.Context) {
	var req request_models.TripParameters
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := p.plannerService.BuildTripSummary(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Trip summary built")
}

func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.TripParameters
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()
	summary, outcomeCh, err := p.plannerService.GenerateItineraryProgressive(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	select {
	case outcome := <-outcomeCh:
		if outcome.Err != nil {
			utils.HandleServiceError(c, outcome.Err)
			return
		}
		utils.RespondSuccess(c, response_models.TripPlanResponse{
			Summary:   summary,
			Itinerary: outcome.Itinerary,
		}, "Itinerary generated")
	case <-ctx.Done():
		utils.RespondError(c, http.StatusGatewayTimeout, "Itinerary generation timed out")
	}
}

func (p *PlannerController) EnrichItineraryHandler(c *gin.Context) {
	var req request_models.EnrichItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "itinerary is required")
		return
	}

	days, err := p.enrichmentService.EnrichItinerary(c.Request.Context(), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"days": days}, "Itinerary enriched")
}
