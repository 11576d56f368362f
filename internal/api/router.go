// Package api serves itineraries over HTTP with gin.
package api

import (
	"net/http"
	"time"

	"github.com/alexanderramin/itinera/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options configures the server.
type Options struct {
	AllowedOrigins []string
	// Release drops the request logger. The gin mode itself is process-wide
	// and is left to the caller.
	Release        bool
	CurrencySymbol string
}

// Server holds the services the handlers call.
type Server struct {
	itineraries service.ItineraryService
	budgets     service.BudgetService
	imports     service.ImportService
	opts        Options
}

func NewServer(itineraries service.ItineraryService, budgets service.BudgetService, imports service.ImportService, opts Options) *Server {
	return &Server{itineraries: itineraries, budgets: budgets, imports: imports, opts: opts}
}

// Router builds the gin engine with CORS and every /api route.
func (s *Server) Router() *gin.Engine {
	opts := s.opts
	r := gin.New()
	r.Use(gin.Recovery())
	if !opts.Release {
		r.Use(gin.Logger())
	}

	// cors rejects an empty origin list, so no origins means no CORS headers.
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	api := r.Group("/api")
	{
		api.GET("/health", s.health)

		api.GET("/itineraries", s.listItineraries)
		api.POST("/itineraries", s.createItinerary)
		api.POST("/imports", s.importItinerary)

		trip := api.Group("/itineraries/:id")
		trip.GET("", s.getItinerary)
		trip.DELETE("", s.deleteItinerary)
		trip.PUT("/dates", s.rescheduleItinerary)
		trip.GET("/document", s.exportDocument)
		trip.GET("/export.pdf", s.exportPDF)

		trip.POST("/days/:day/activities", s.addActivity)
		trip.PATCH("/activities/:activityID", s.updateActivity)
		trip.DELETE("/activities/:activityID", s.removeActivity)
		trip.POST("/moves", s.moveActivity)

		trip.GET("/budget", s.getBudget)
		trip.PUT("/budget", s.setBudget)
		trip.GET("/budget/report", s.budgetReport)
	}
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "itinera"})
}
