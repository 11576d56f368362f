package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/importer"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/alexanderramin/itinera/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	itineraryRepo := repository.NewSQLiteItineraryRepo(database)
	budgetRepo := repository.NewSQLiteBudgetRepo(database)

	app := &App{
		Itineraries: service.NewItineraryService(itineraryRepo, uow),
		Budgets:     service.NewBudgetService(itineraryRepo, budgetRepo, uow),
		Import:      service.NewImportService(itineraryRepo, budgetRepo, uow),
	}
	app.Config.Server.Release = true
	return app
}

// seedTrip creates a three-day trip starting 2024-09-20: day 1 holds a1
// (activities, 17) and a2 (meals, 40); day 2 holds a3 (accommodation, 180).
func seedTrip(t *testing.T, app *App) string {
	t.Helper()
	ctx := context.Background()

	start := testutil.DefaultTripStart
	it, err := app.Itineraries.Create(ctx, service.CreateItineraryInput{
		Title:         "Paris",
		Destination:   "Paris, France",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 2),
		TravelerCount: 2,
		Budget:        domain.Budget{domain.CategoryMeals: 100, domain.CategoryAccommodation: 500, domain.CategoryActivities: 50},
	})
	require.NoError(t, err)

	for _, seed := range []struct {
		day int
		a   domain.Activity
	}{
		{0, testutil.NewTestActivity("Louvre", testutil.WithActivityID("a1"), testutil.WithTimes("09:00", "12:00"), testutil.WithCost(17))},
		{0, testutil.NewTestActivity("Lunch", testutil.WithActivityID("a2"), testutil.WithTimes("12:30", "13:30"), testutil.WithCost(40), testutil.WithCategory(domain.CategoryMeals))},
		{1, testutil.NewTestActivity("Hotel", testutil.WithActivityID("a3"), testutil.WithTimes("15:00", "16:00"), testutil.WithCost(180), testutil.WithCategory(domain.CategoryAccommodation))},
	} {
		_, _, err := app.Itineraries.AddActivity(ctx, it.ID, seed.day, seed.a)
		require.NoError(t, err)
	}
	return it.ID
}

func dayIDs(d domain.Day) []string {
	ids := make([]string, 0, len(d.Activities))
	for _, a := range d.Activities {
		ids = append(ids, a.ID)
	}
	return ids
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "itinera")
	assert.Contains(t, output, "timeline")
}

// --- itinerary ---

func TestItineraryCreate(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "itinerary", "create",
		"--title", "Lisbon", "--destination", "Lisbon, Portugal",
		"--start", "2025-05-01", "--end", "2025-05-04", "--travelers", "3",
		"--budget", "meals=300,shopping=75.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Created itinerary Lisbon")
	assert.Contains(t, out, "4 days")

	list, err := app.Itineraries.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].TravelerCount)

	b, err := app.Budgets.Get(context.Background(), list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, b[domain.CategoryMeals])
	assert.Equal(t, 75.5, b[domain.CategoryShopping])
	assert.Equal(t, 0.0, b[domain.CategoryAccommodation])
}

func TestItineraryCreate_DefaultBudget(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "trip", "create", "--title", "Oslo", "--destination", "Oslo",
		"--start", "2025-01-10", "--end", "2025-01-10")
	require.NoError(t, err)

	list, err := app.Itineraries.List(context.Background())
	require.NoError(t, err)
	b, err := app.Budgets.Get(context.Background(), list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBudget().Total(), b.Total())
}

func TestItineraryCreate_Errors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "itinerary", "create", "--title", "x", "--destination", "y",
		"--start", "20/09/2024", "--end", "2024-09-22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --start")

	_, err = executeCmd(t, app, "itinerary", "create", "--title", "x", "--destination", "y",
		"--start", "2024-09-22", "--end", "2024-09-20")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = executeCmd(t, app, "itinerary", "create", "--title", "x", "--destination", "y",
		"--start", "2024-09-20", "--end", "2024-09-22", "--budget", "meals=lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid budget amount")

	_, err = executeCmd(t, app, "itinerary", "create", "--title", "x")
	assert.Error(t, err)
}

func TestItineraryListAndShow(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "itinerary", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "$237.00")

	out, err = executeCmd(t, app, "itinerary", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Louvre")
	assert.Contains(t, out, "Hotel")
	assert.Contains(t, out, "09:00-12:00")
	assert.Less(t, bytes.Index([]byte(out), []byte("Louvre")), bytes.Index([]byte(out), []byte("Lunch")))

	_, err = executeCmd(t, app, "itinerary", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestItineraryList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "itinerary", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No itineraries")
}

func TestResolveItineraryID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	for _, id := range []string{"trip-1", "trip-10"} {
		doc := &importer.Document{Itinerary: importer.ItineraryImport{
			ID: id, Title: id, Destination: "Rome", StartDate: "2025-03-01", EndDate: "2025-03-02", TravelerCount: 1,
		}}
		_, err := app.Import.ImportDocument(ctx, doc)
		require.NoError(t, err)
	}

	got, err := resolveItineraryID(ctx, app, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", got, "exact match wins over prefix")

	got, err = resolveItineraryID(ctx, app, "trip-10")
	require.NoError(t, err)
	assert.Equal(t, "trip-10", got)

	_, err = resolveItineraryID(ctx, app, "trip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveItineraryID(ctx, app, "")
	assert.Error(t, err)
}

func TestItineraryDates_ReportsDroppedActivities(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "itinerary", "dates", id, "--start", "2024-09-21", "--end", "2024-09-23")
	require.NoError(t, err)
	assert.Contains(t, out, "Rescheduled Paris")
	assert.Contains(t, out, "Dropped 2 activities")

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, it.Days, 3)
	assert.Equal(t, []string{"a3"}, dayIDs(it.Days[0]))
	assert.Empty(t, it.Days[2].Activities)
}

func TestItineraryRemove(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "itinerary", "remove", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed itinerary")

	_, err = app.Itineraries.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryImportAndExport(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "itinerary", "import", filepath.Join("..", "importer", "testdata", "paris.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Paris Long Weekend: 3 days, 3 activities")

	out, err = executeCmd(t, app, "itinerary", "export", "paris-2024")
	require.NoError(t, err)
	var doc importer.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "paris-2024", doc.Itinerary.ID)
	require.Len(t, doc.Days, 3)
	assert.Equal(t, "louvre", doc.Days[0].Activities[0].ID)
	assert.Equal(t, 300.0, doc.Budget["meals"])

	pdfPath := filepath.Join(t.TempDir(), "paris.pdf")
	out, err = executeCmd(t, app, "itinerary", "export", "paris", "--format", "pdf", "-o", pdfPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+pdfPath)
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = executeCmd(t, app, "itinerary", "export", "paris", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json|pdf")

	_, err = executeCmd(t, app, "itinerary", "import", filepath.Join("..", "importer", "testdata", "paris.json"))
	assert.ErrorIs(t, err, domain.ErrValidation, "same id twice")
}

// --- activity ---

func TestActivityAdd(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "activity", "add", id, "--day", "3",
		"--title", "Seine cruise", "--start", "18:00", "--end", "19:30",
		"--cost", "30", "--category", "Activities", "--crowd", "medium", "--id", "cruise",
		"--type", "Entertainment", "--description", "Evening boat along the river")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Seine cruise on day 3 (18:00-19:30, 1h 30m) cruise")

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, it.Days[2].Activities, 1)
	a := it.Days[2].Activities[0]
	assert.Equal(t, domain.CrowdMedium, a.CrowdLevel)
	assert.Equal(t, domain.StatusPlanned, a.Status)
	assert.Equal(t, 90, a.DurationMin)
	assert.Equal(t, "entertainment", a.Type)
	assert.Equal(t, "Evening boat along the river", a.Description)
}

func TestActivityAdd_ByDate(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	_, err := executeCmd(t, app, "activity", "add", id, "--date", "2024-09-21",
		"--title", "Dinner", "--start", "19:00", "--end", "21:00", "--category", "meals")
	require.NoError(t, err)

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, it.Days[1].Activities, 2)
	assert.Equal(t, "Dinner", it.Days[1].Activities[1].Title, "appended to the end of the day")

	_, err = executeCmd(t, app, "activity", "add", id, "--date", "2024-10-01",
		"--title", "Late", "--start", "09:00", "--end", "10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the trip")
}

func TestActivityAdd_Errors(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing day", []string{"--title", "x", "--start", "09:00", "--end", "10:00"}, "--day or --date"},
		{"missing title", []string{"--day", "1", "--start", "09:00", "--end", "10:00"}, "--title"},
		{"bad category", []string{"--day", "1", "--title", "x", "--start", "09:00", "--end", "10:00", "--category", "souvenirs"}, "must be one of"},
		{"bad type", []string{"--day", "1", "--title", "x", "--start", "09:00", "--end", "10:00", "--type", "museum"}, "must be one of"},
		{"bad clock", []string{"--day", "1", "--title", "x", "--start", "9am", "--end", "10:00"}, "HH:MM"},
		{"end before start", []string{"--day", "1", "--title", "x", "--start", "11:00", "--end", "10:00"}, "must be after"},
		{"duplicate id", []string{"--day", "2", "--id", "a1", "--title", "x", "--start", "09:00", "--end", "10:00"}, "already exists"},
		{"day past end", []string{"--day", "9", "--title", "x", "--start", "09:00", "--end", "10:00"}, "not found"},
		{"interactive without terminal", []string{"--day", "1", "--interactive"}, "needs a terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, append([]string{"activity", "add", id}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestActivityUpdate_OnlyChangedFields(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "activity", "update", id, "a2", "--cost", "55", "--status", "confirmed", "--end", "14:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Lunch (12:30-14:00, $55.00, confirmed)")

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	a := it.Days[0].Activities[1]
	assert.Equal(t, "Lunch", a.Title)
	assert.Equal(t, domain.CategoryMeals, a.Category)
	assert.Equal(t, 90, a.DurationMin)

	_, err = executeCmd(t, app, "activity", "update", id, "a2", "--description", "Set menu", "--type", "restaurant")
	require.NoError(t, err)
	it, err = app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	a = it.Days[0].Activities[1]
	assert.Equal(t, "Set menu", a.Description)
	assert.Equal(t, "restaurant", a.Type)
	assert.Equal(t, 55.0, a.Cost)

	_, err = executeCmd(t, app, "activity", "update", id, "a2")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = executeCmd(t, app, "activity", "update", id, "zzz", "--cost", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityMove(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "activity", "move", id, "--from-day", "1", "--from", "2", "--to", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Lunch to day 1 position 1")

	_, err = executeCmd(t, app, "activity", "move", id, "--from-day", "1", "--from", "1", "--to-day", "2", "--to", "1")
	require.NoError(t, err)

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, dayIDs(it.Days[0]))
	assert.Equal(t, []string{"a2", "a3"}, dayIDs(it.Days[1]))

	_, err = executeCmd(t, app, "activity", "move", id, "--from-day", "3", "--from", "1", "--to", "1")
	assert.ErrorIs(t, err, domain.ErrIndex)
}

func TestActivityRemove(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	_, err := executeCmd(t, app, "activity", "remove", id, "a1")
	require.NoError(t, err)

	it, err := app.Itineraries.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, dayIDs(it.Days[0]))

	_, err = executeCmd(t, app, "activity", "remove", id, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- budget ---

func TestBudgetSetAndShow(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	out, err := executeCmd(t, app, "budget", "set", id, "--meals", "10", "--shopping", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "$500.00", "untouched categories keep their ceiling")

	out, err = executeCmd(t, app, "budget", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "OVERSPENT")
	assert.Contains(t, out, "Over budget: meals")
	assert.Contains(t, out, "$237.00 of $585.00")

	assert.NotContains(t, out, "SAVINGS TIPS")

	out, err = executeCmd(t, app, "budget", "show", id, "--savings")
	require.NoError(t, err)
	assert.Contains(t, out, "SAVINGS TIPS")
	assert.Contains(t, out, "Off-peak dining")
	assert.Contains(t, out, "Potential savings: $40.00")

	out, err = executeCmd(t, app, "budget", "show", id, "--ceilings")
	require.NoError(t, err)
	assert.Contains(t, out, "$585.00")

	_, err = executeCmd(t, app, "budget", "show", id, "--ceilings", "--savings")
	require.Error(t, err)

	_, err = executeCmd(t, app, "budget", "set", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one category")

	_, err = executeCmd(t, app, "budget", "set", id, "--meals", "-5")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- timeline and serve ---

func TestTimelineCmd(t *testing.T) {
	app := testApp(t)
	id := seedTrip(t, app)

	_, err := executeCmd(t, app, "timeline", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")

	var ran tea.Model
	app.IsInteractive = func() bool { return true }
	app.RunProgram = func(m tea.Model) (tea.Model, error) {
		ran = m
		return m, nil
	}
	_, err = executeCmd(t, app, "timeline", id)
	require.NoError(t, err)
	require.IsType(t, &timelineModel{}, ran)
	assert.Equal(t, id, ran.(*timelineModel).it.ID)
}

func TestAPIHandler(t *testing.T) {
	app := testApp(t)
	seedTrip(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/itineraries", nil)
	w := httptest.NewRecorder()
	app.apiHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Paris"`)
}

func TestApp_Currency(t *testing.T) {
	app := &App{}
	assert.Equal(t, "$", app.currency())
	app.Config.UI.CurrencySymbol = "€"
	assert.Equal(t, "€", app.currency())
	assert.False(t, app.interactive())
}
