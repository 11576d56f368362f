package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/export"
	"github.com/alexanderramin/itinera/internal/importer"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into dst. Clock and enum decode failures are
// validation errors; anything else is a malformed request.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(c, err)
		} else {
			badRequest(c, err)
		}
		return false
	}
	return true
}

func (s *Server) listItineraries(c *gin.Context) {
	list, err := s.itineraries.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]itineraryView, 0, len(list))
	for _, it := range list {
		out = append(out, toItineraryView(it, false))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createItinerary(c *gin.Context) {
	var req createItineraryRequest
	if !bind(c, &req) {
		return
	}
	start, err := parseDateParam("start_date", req.StartDate)
	if err != nil {
		writeError(c, err)
		return
	}
	end, err := parseDateParam("end_date", req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}

	it, err := s.itineraries.Create(c.Request.Context(), service.CreateItineraryInput{
		Title:         req.Title,
		Destination:   req.Destination,
		StartDate:     start,
		EndDate:       end,
		TravelerCount: req.TravelerCount,
		Budget:        toBudget(req.Budget),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", "/api/itineraries/"+it.ID)
	c.JSON(http.StatusCreated, toItineraryView(it, true))
}

func (s *Server) importItinerary(c *gin.Context) {
	var doc importer.Document
	if !bind(c, &doc) {
		return
	}
	result, err := s.imports.ImportDocument(c.Request.Context(), &doc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toItineraryView(result.Itinerary, true))
}

func (s *Server) getItinerary(c *gin.Context) {
	it, err := s.itineraries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryView(it, true))
}

func (s *Server) deleteItinerary(c *gin.Context) {
	if err := s.itineraries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) rescheduleItinerary(c *gin.Context) {
	var req rescheduleRequest
	if !bind(c, &req) {
		return
	}
	start, err := parseDateParam("start_date", req.StartDate)
	if err != nil {
		writeError(c, err)
		return
	}
	end, err := parseDateParam("end_date", req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}
	it, err := s.itineraries.Reschedule(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryView(it, true))
}

func (s *Server) addActivity(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		badRequest(c, fmt.Errorf("day must be an integer index, got %q", c.Param("day")))
		return
	}
	var req activityRequest
	if !bind(c, &req) {
		return
	}
	_, added, err := s.itineraries.AddActivity(c.Request.Context(), c.Param("id"), day, req.toActivity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toActivityView(*added))
}

func (s *Server) updateActivity(c *gin.Context) {
	var req activityPatchRequest
	if !bind(c, &req) {
		return
	}
	activityID := c.Param("activityID")
	it, err := s.itineraries.UpdateActivity(c.Request.Context(), c.Param("id"), activityID, req.toPatch())
	if err != nil {
		writeError(c, err)
		return
	}
	di, ai, _ := it.FindActivity(activityID)
	c.JSON(http.StatusOK, toActivityView(it.Days[di].Activities[ai]))
}

func (s *Server) removeActivity(c *gin.Context) {
	if _, err := s.itineraries.RemoveActivity(c.Request.Context(), c.Param("id"), c.Param("activityID")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) moveActivity(c *gin.Context) {
	var req moveRequest
	if !bind(c, &req) {
		return
	}
	it, err := s.itineraries.MoveActivity(c.Request.Context(), c.Param("id"), req.toMove())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItineraryView(it, true))
}

func (s *Server) getBudget(c *gin.Context) {
	b, err := s.budgets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgetMap(b))
}

func (s *Server) setBudget(c *gin.Context) {
	var req map[string]float64
	if !bind(c, &req) {
		return
	}
	b, err := s.budgets.Set(c.Request.Context(), c.Param("id"), toBudget(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgetMap(b))
}

func (s *Server) budgetReport(c *gin.Context) {
	r, err := s.budgets.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBudgetReportView(r))
}

func (s *Server) exportDocument(c *gin.Context) {
	doc, err := s.imports.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) exportPDF(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	it, err := s.itineraries.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	report, err := s.budgets.Report(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := export.RenderPDF(it, report, export.Options{CurrencySymbol: s.opts.CurrencySymbol})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", it.ID))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
