package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/require"
)

type services struct {
	db          *sql.DB
	itineraries repository.ItineraryRepo
	budgets     repository.BudgetRepo
	trips       ItineraryService
	budget      BudgetService
	imports     ImportService
	log         *bytes.Buffer
}

func setupServices(t *testing.T) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	itineraries := repository.NewSQLiteItineraryRepo(database)
	budgets := repository.NewSQLiteBudgetRepo(database)
	logBuf := &bytes.Buffer{}
	obs := NewLogUseCaseObserver(logBuf)

	return &services{
		db:          database,
		itineraries: itineraries,
		budgets:     budgets,
		trips:       NewItineraryService(itineraries, uow, obs),
		budget:      NewBudgetService(itineraries, budgets, uow, obs),
		imports:     NewImportService(itineraries, budgets, uow, obs),
		log:         logBuf,
	}
}

var tripStart = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

// createParisTrip creates a three-day trip with a1, a2 on day 0 and a3 on day 1.
func createParisTrip(t *testing.T, s *services) *domain.Itinerary {
	t.Helper()
	ctx := context.Background()

	it, err := s.trips.Create(ctx, CreateItineraryInput{
		Title:         "Paris Weekend",
		Destination:   "Paris",
		StartDate:     tripStart,
		EndDate:       tripStart.AddDate(0, 0, 2),
		TravelerCount: 2,
	})
	require.NoError(t, err)

	add := func(day int, a domain.Activity) {
		_, _, err := s.trips.AddActivity(ctx, it.ID, day, a)
		require.NoError(t, err)
	}
	add(0, testutil.NewTestActivity("Louvre", testutil.WithActivityID("a1"),
		testutil.WithTimes("09:00", "12:00"), testutil.WithCost(17)))
	add(0, testutil.NewTestActivity("Lunch", testutil.WithActivityID("a2"),
		testutil.WithTimes("12:30", "13:30"), testutil.WithCost(45), testutil.WithCategory(domain.CategoryMeals)))
	add(1, testutil.NewTestActivity("Hotel", testutil.WithActivityID("a3"),
		testutil.WithTimes("15:00", "16:00"), testutil.WithCost(180), testutil.WithCategory(domain.CategoryAccommodation)))

	out, err := s.trips.Get(ctx, it.ID)
	require.NoError(t, err)
	return out
}

func dayIDs(d domain.Day) []string {
	var out []string
	for _, a := range d.Activities {
		out = append(out, a.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
