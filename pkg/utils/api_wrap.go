package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrAIRefusal):
		RespondError(c, http.StatusUnprocessableEntity, "The model declined to generate content for this request")
	case errors.Is(err, ErrSchemaViolation), errors.Is(err, ErrAIEmptyOutput):
		log.Printf("Generation output error: %v", err)
		RespondError(c, http.StatusBadGateway, "Generated content was unusable, please try again")
	case errors.Is(err, ErrOrchestrationFailed),
		errors.Is(err, ErrEnrichmentFailed),
		errors.Is(err, ErrHotelSearchFailed),
		errors.Is(err, ErrAIConnection):
		log.Printf("Generation error: %v", err)
		RespondError(c, http.StatusBadGateway, "Itinerary generation is temporarily unavailable, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
