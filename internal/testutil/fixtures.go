package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/google/uuid"
)

// DefaultTripStart is the first day of every fixture itinerary unless
// overridden with WithDates.
var DefaultTripStart = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

// Itinerary options
type ItineraryOption func(*itineraryParams)

type itineraryParams struct {
	id          string
	destination string
	start, end  time.Time
	travelers   int
	activities  map[int][]domain.Activity
}

func WithItineraryID(id string) ItineraryOption {
	return func(p *itineraryParams) { p.id = id }
}

func WithDestination(d string) ItineraryOption {
	return func(p *itineraryParams) { p.destination = d }
}

func WithDates(start, end time.Time) ItineraryOption {
	return func(p *itineraryParams) {
		p.start, p.end = start, end
	}
}

func WithTravelers(n int) ItineraryOption {
	return func(p *itineraryParams) { p.travelers = n }
}

// WithDayActivities appends activities to the day at dayIndex.
func WithDayActivities(dayIndex int, acts ...domain.Activity) ItineraryOption {
	return func(p *itineraryParams) {
		p.activities[dayIndex] = append(p.activities[dayIndex], acts...)
	}
}

// NewTestItinerary builds a three-day trip starting at DefaultTripStart.
// It panics on invalid options; fixtures are expected to be valid.
func NewTestItinerary(title string, opts ...ItineraryOption) *domain.Itinerary {
	p := &itineraryParams{
		id:          uuid.New().String(),
		destination: "Paris",
		start:       DefaultTripStart,
		end:         DefaultTripStart.AddDate(0, 0, 2),
		travelers:   2,
		activities:  map[int][]domain.Activity{},
	}
	for _, opt := range opts {
		opt(p)
	}

	it, err := domain.NewItinerary(p.id, title, p.destination, p.start, p.end, p.travelers)
	if err != nil {
		panic(fmt.Sprintf("fixture itinerary: %v", err))
	}
	for day := 0; day < len(it.Days); day++ {
		for _, a := range p.activities[day] {
			it, err = it.AddActivity(day, a)
			if err != nil {
				panic(fmt.Sprintf("fixture activity %s: %v", a.ID, err))
			}
		}
	}
	now := time.Now().UTC().Truncate(time.Second)
	it.CreatedAt, it.UpdatedAt = now, now
	return &it
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithActivityID(id string) ActivityOption {
	return func(a *domain.Activity) { a.ID = id }
}

// WithTimes sets start and end from HH:MM literals.
func WithTimes(start, end string) ActivityOption {
	return func(a *domain.Activity) {
		a.Start = domain.MustClock(start)
		a.End = domain.MustClock(end)
	}
}

func WithCost(c float64) ActivityOption {
	return func(a *domain.Activity) { a.Cost = c }
}

func WithCategory(c domain.Category) ActivityOption {
	return func(a *domain.Activity) { a.Category = c }
}

func WithStatus(s domain.ActivityStatus) ActivityOption {
	return func(a *domain.Activity) { a.Status = s }
}

func WithType(typ string) ActivityOption {
	return func(a *domain.Activity) { a.Type = typ }
}

func WithLocation(l string) ActivityOption {
	return func(a *domain.Activity) { a.Location = l }
}

// NewTestActivity returns a one-hour 09:00 activity with a random id.
func NewTestActivity(title string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:       uuid.New().String(),
		Title:    title,
		Start:    domain.MustClock("09:00"),
		End:      domain.MustClock("10:00"),
		Category: domain.CategoryActivities,
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.Normalize()
	return a
}
