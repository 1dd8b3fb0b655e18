package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jalanjalan/jalanjalan-backend/config"
	"github.com/jalanjalan/jalanjalan-backend/handlers"
	"github.com/jalanjalan/jalanjalan-backend/middleware"
)

// Dependencies holds everything SetupRouter needs to define routes.
type Dependencies struct {
	Config            *config.Config
	TripHandler       *handlers.TripHandler
	ScheduleHandler   *handlers.ScheduleHandler
	SuggestionHandler *handlers.SuggestionHandler
	ExpenseHandler    *handlers.ExpenseHandler
	POIHandler        *handlers.POIHandler
	HealthHandler     *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(&deps.Config.Server))

	r.GET("/health/liveness", deps.HealthHandler.Liveness)
	r.GET("/health/readiness", deps.HealthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/pois", deps.POIHandler.ListPOIs)
		v1.GET("/pois/:poiId", deps.POIHandler.GetPOI)

		v1.GET("/suggestions", deps.SuggestionHandler.SuggestDayPlan)

		v1.POST("/trips", deps.TripHandler.CreateTrip)
		v1.GET("/trips/:id", deps.TripHandler.GetTrip)
		v1.POST("/trips/:id/finalize", deps.TripHandler.FinalizeTrip)
		v1.GET("/users/:userId/saved-trips", deps.TripHandler.ListSavedTrips)

		v1.POST("/trips/:id/activities", deps.ScheduleHandler.InsertActivity)
		v1.GET("/trips/:id/activities", deps.ScheduleHandler.ListActivities)
		v1.PATCH("/trips/:id/activities/:activityId", deps.ScheduleHandler.UpdateActivity)
		v1.DELETE("/trips/:id/activities/:activityId", deps.ScheduleHandler.RemoveActivity)
		v1.GET("/trips/:id/itinerary", deps.ScheduleHandler.GetItinerary)

		v1.POST("/trips/:id/expenses", deps.ExpenseHandler.CreateBill)
		v1.GET("/trips/:id/expenses", deps.ExpenseHandler.ListBills)
		v1.DELETE("/expenses/:billId", deps.ExpenseHandler.DeleteBill)
		v1.GET("/trips/:id/balances", deps.ExpenseHandler.GetBalances)
		v1.GET("/trips/:id/settlement", deps.ExpenseHandler.GetSettlement)
	}

	return r
}
