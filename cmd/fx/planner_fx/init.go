package planner_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService,
	provideEnrichmentService,
	providePlannerController)

func providePlannerService(aiClient utils.GenerationClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(aiClient)
}

func provideEnrichmentService(aiClient utils.GenerationClientInterface) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(aiClient)
}

func providePlannerController(
	plannerService services.PlannerServiceInterface,
	enrichmentService services.EnrichmentServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, enrichmentService)
}
