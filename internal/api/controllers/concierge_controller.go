package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ConciergeController struct {
	hotelFinderService services.HotelFinderServiceInterface
	assistantService   services.AssistantServiceInterface
}

func NewConciergeController(
	hotelFinderService services.HotelFinderServiceInterface,
	assistantService services.AssistantServiceInterface,
) *ConciergeController {
	return &ConciergeController{
		hotelFinderService: hotelFinderService,
		assistantService:   assistantService,
	}
}

func (cc *ConciergeController) FindHotelHandler(c *gin.Context) {
	var req request_models.HotelFinderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	suggestion, err := cc.hotelFinderService.FindHotelForTrip(c.Request.Context(), req.Destination, req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Hotel found")
}

func (cc *ConciergeController) AssistantHandler(c *gin.Context) {
	var req request_models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TripDetails == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip_details is required")
		return
	}

	advice, err := cc.assistantService.PersonalTripAssistant(
		c.Request.Context(), req.TripDetails, req.LiveData, req.UserPreferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, advice, "Assistant advice ready")
}
