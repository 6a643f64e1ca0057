package concierge_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideHotelFinderService,
	provideAssistantService,
	provideConciergeController)

func provideHotelFinderService(aiClient utils.GenerationClientInterface) services.HotelFinderServiceInterface {
	return services.NewHotelFinderService(aiClient)
}

func provideAssistantService(aiClient utils.GenerationClientInterface) services.AssistantServiceInterface {
	return services.NewAssistantService(aiClient)
}

func provideConciergeController(
	hotelFinderService services.HotelFinderServiceInterface,
	assistantService services.AssistantServiceInterface,
) *controllers.ConciergeController {
	return controllers.NewConciergeController(hotelFinderService, assistantService)
}
