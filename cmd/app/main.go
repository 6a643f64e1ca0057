package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/concierge_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/genai_fx"
	"tripplanner/cmd/fx/planner_fx"
	"tripplanner/cmd/fx/trips_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		genai_fx.Module,
		planner_fx.Module,
		concierge_fx.Module,
		trips_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	conciergeController *controllers.ConciergeController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, conciergeController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	conciergeController *controllers.ConciergeController,
	tripsController *controllers.TripsController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("/summary", plannerController.BuildSummaryHandler)
	plansGroup.POST("", plannerController.GeneratePlanHandler)
	plansGroup.POST("/enrich", plannerController.EnrichItineraryHandler)

	r.POST("/hotels/find", conciergeController.FindHotelHandler)
	r.POST("/assistant", conciergeController.AssistantHandler)

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripsController.CreateTripHandler)
	tripsGroup.POST("/import", tripsController.ImportTripHandler)
	tripsGroup.GET("/:id", tripsController.GetTripHandler)
	tripsGroup.GET("", tripsController.ListTripsHandler)
}
