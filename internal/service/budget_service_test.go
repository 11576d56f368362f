package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetService_SetMergesCeilings(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	merged, err := s.budget.Set(ctx, it.ID, domain.Budget{domain.CategoryMeals: 50, domain.CategoryShopping: 0})
	require.NoError(t, err)
	assert.Equal(t, 50.0, merged[domain.CategoryMeals])
	assert.Equal(t, 0.0, merged[domain.CategoryShopping])
	assert.Equal(t, 1200.0, merged[domain.CategoryAccommodation], "untouched categories keep their ceiling")
}

func TestBudgetService_SetRejectsInvalid(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	_, err := s.budget.Set(ctx, it.ID, domain.Budget{domain.CategoryMeals: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.budget.Set(ctx, "missing", domain.Budget{domain.CategoryMeals: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	b, err := s.budget.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 900.0, b[domain.CategoryMeals])
}

func TestBudgetService_Report(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	_, err := s.budget.Set(ctx, it.ID, domain.Budget{
		domain.CategoryAccommodation: 200,
		domain.CategoryMeals:         50,
		domain.CategoryActivities:    10,
	})
	require.NoError(t, err)

	r, err := s.budget.Report(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 17.0+45.0+180.0, r.TotalSpent)
	assert.Equal(t, []domain.Category{domain.CategoryActivities}, r.Overspent)

	acc, _ := r.Line(domain.CategoryAccommodation)
	assert.Equal(t, 90.0, acc.Percent)
	assert.Equal(t, domain.SpendWarning, acc.Level)

	meals, _ := r.Line(domain.CategoryMeals)
	assert.Equal(t, 90.0, meals.Percent)
	assert.Equal(t, 5.0, meals.Remaining)

	_, err = s.budget.Report(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
