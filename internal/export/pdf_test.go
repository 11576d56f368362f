package export

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF_ProducesDocument(t *testing.T) {
	it := testutil.NewTestItinerary("Paris Weekend",
		testutil.WithDestination("Paris, France"),
		testutil.WithDayActivities(0,
			testutil.NewTestActivity("Café de Flore", testutil.WithCost(24), testutil.WithCategory(domain.CategoryMeals)),
			testutil.NewTestActivity("Musée d'Orsay", testutil.WithTimes("13:00", "16:30"), testutil.WithCost(16),
				testutil.WithLocation("Rue de la Légion d'Honneur")),
		),
		testutil.WithDayActivities(1,
			testutil.NewTestActivity("Cancelled boat", testutil.WithStatus(domain.StatusCancelled)),
		),
	)
	report := domain.BuildBudgetReport(domain.Budget{domain.CategoryMeals: 20}, *it)

	out, err := RenderPDF(it, &report, Options{CurrencySymbol: "€"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderPDF_WithoutReport(t *testing.T) {
	it := testutil.NewTestItinerary("Empty trip")

	out, err := RenderPDF(it, nil, Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 5))
}
