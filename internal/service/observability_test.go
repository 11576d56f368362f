package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "move-activity",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"to": "1/0", "from": "0/2"},
	})
	line := buf.String()
	assert.Contains(t, line, "use_case=move-activity")
	assert.Contains(t, line, "duration_ms=3")
	assert.Contains(t, line, "success=true")
	assert.Less(t, strings.Index(line, "from="), strings.Index(line, "to="))
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "set-budget",
		Err:  errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestItineraryService_ReportsUseCases(t *testing.T) {
	s := setupServices(t)
	rec := &recordingObserver{}
	trips := NewItineraryService(s.itineraries, testutil.NewTestUoW(s.db), rec)
	it, err := trips.Create(context.Background(), CreateItineraryInput{
		Title: "Bergen", Destination: "Bergen", StartDate: tripStart, EndDate: tripStart, TravelerCount: 1,
	})
	require.NoError(t, err)

	_, err = trips.MoveActivity(context.Background(), it.ID, domain.Move{SourceDay: 0, SourceIndex: 0, DestDay: 0, DestIndex: 0})
	require.ErrorIs(t, err, domain.ErrIndex)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "create-itinerary", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, it.ID, rec.events[0].Fields["itinerary_id"])
	assert.Equal(t, "move-activity", rec.events[1].Name)
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, domain.ErrIndex)
}
