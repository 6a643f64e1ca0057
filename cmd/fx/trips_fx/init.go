package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/api/controllers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideTripsController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	planner services.PlannerServiceInterface,
	enricher services.EnrichmentServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner, enricher)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}
