package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryService_CreateStoresDefaultBudget(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	it, err := s.trips.Create(ctx, CreateItineraryInput{
		Title: "Rome", Destination: "Rome, Italy",
		StartDate: tripStart, EndDate: tripStart.AddDate(0, 0, 4), TravelerCount: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.Len(t, it.Days, 5)
	assert.False(t, it.CreatedAt.IsZero())

	b, err := s.budget.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBudget(), b)
}

func TestItineraryService_CreateRejectsInvalidInput(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.trips.Create(ctx, CreateItineraryInput{
		Title: "Backwards", Destination: "Nowhere",
		StartDate: tripStart, EndDate: tripStart.AddDate(0, 0, -1), TravelerCount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.trips.Create(ctx, CreateItineraryInput{
		Title: "Bad budget", Destination: "Nowhere",
		StartDate: tripStart, EndDate: tripStart, TravelerCount: 1,
		Budget: domain.Budget{domain.CategoryMeals: -10},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := s.trips.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is stored on validation failure")
}

func TestItineraryService_AddActivityAssignsIDAndDefaults(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)

	_, added, err := s.trips.AddActivity(context.Background(), it.ID, 2, domain.Activity{
		Title: "Seine cruise",
		Start: domain.MustClock("18:00"),
		End:   domain.MustClock("19:30"),
		Cost:  22,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 90, added.DurationMin)
	assert.Equal(t, domain.CategoryActivities, added.Category)
	assert.Equal(t, domain.StatusPlanned, added.Status)

	stored, err := s.trips.Get(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{added.ID}, dayIDs(stored.Days[2]))
}

func TestItineraryService_AddActivityErrorsWriteNothing(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	cases := []struct {
		name   string
		day    int
		act    domain.Activity
		target error
	}{
		{"duplicate id", 0, domain.Activity{ID: "a1", Title: "Again", Start: 60, End: 120}, domain.ErrValidation},
		{"end before start", 0, domain.Activity{Title: "Bad", Start: 120, End: 60}, domain.ErrValidation},
		{"unknown day", 9, domain.Activity{Title: "Far", Start: 60, End: 120}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.trips.AddActivity(ctx, it.ID, tc.day, tc.act)
			assert.ErrorIs(t, err, tc.target)

			stored, err := s.trips.Get(ctx, it.ID)
			require.NoError(t, err)
			assert.Equal(t, 3, stored.ActivityCount())
		})
	}

	_, _, err := s.trips.AddActivity(ctx, "missing", 0, domain.Activity{Title: "x", Start: 60, End: 120})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_UpdateActivity(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	updated, err := s.trips.UpdateActivity(ctx, it.ID, "a2", domain.ActivityPatch{
		End:    ptr(domain.MustClock("14:30")),
		Status: ptr(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	lunch := updated.Days[0].Activities[1]
	assert.Equal(t, 120, lunch.DurationMin)
	assert.Equal(t, domain.StatusConfirmed, lunch.Status)

	_, err = s.trips.UpdateActivity(ctx, it.ID, "a2", domain.ActivityPatch{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.trips.UpdateActivity(ctx, it.ID, "a2", domain.ActivityPatch{End: ptr(domain.MustClock("12:00"))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.trips.UpdateActivity(ctx, it.ID, "zzz", domain.ActivityPatch{Title: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := s.trips.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MustClock("14:30"), stored.Days[0].Activities[1].End)
}

func TestItineraryService_RemoveActivity(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	out, err := s.trips.RemoveActivity(ctx, it.ID, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, dayIDs(out.Days[0]))

	_, err = s.trips.RemoveActivity(ctx, it.ID, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryService_MoveActivityPersists(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	_, err := s.trips.MoveActivity(ctx, it.ID, domain.Move{SourceDay: 0, SourceIndex: 0, DestDay: 1, DestIndex: 1})
	require.NoError(t, err)

	stored, err := s.trips.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, dayIDs(stored.Days[0]))
	assert.Equal(t, []string{"a3", "a1"}, dayIDs(stored.Days[1]))
}

func TestItineraryService_MoveActivityOutOfBounds(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	_, err := s.trips.MoveActivity(ctx, it.ID, domain.Move{SourceDay: 0, SourceIndex: 5, DestDay: 1, DestIndex: 0})
	assert.ErrorIs(t, err, domain.ErrIndex)

	stored, err := s.trips.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, dayIDs(stored.Days[0]))
}

func TestItineraryService_RescheduleCascades(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	// Shift one day later: day 0 (a1, a2) falls out of range.
	out, err := s.trips.Reschedule(ctx, it.ID, tripStart.AddDate(0, 0, 1), tripStart.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, out.Days, 3)
	assert.Equal(t, []string{"a3"}, dayIDs(out.Days[0]))
	assert.Empty(t, out.Days[2].Activities)

	stored, err := s.trips.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ActivityCount())
	assert.Contains(t, s.log.String(), "dropped_activities=2")
}

func TestItineraryService_DeleteRemovesBudget(t *testing.T) {
	s := setupServices(t)
	it := createParisTrip(t, s)
	ctx := context.Background()

	require.NoError(t, s.trips.Delete(ctx, it.ID))
	_, err := s.trips.Get(ctx, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.budget.Get(ctx, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.trips.Delete(ctx, it.ID), domain.ErrNotFound)
}
