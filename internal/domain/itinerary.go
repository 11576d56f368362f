package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used across storage, import and the CLI.
const DateLayout = "2006-01-02"

// MaxTripDays bounds the day expansion of a single itinerary.
const MaxTripDays = 366

type Day struct {
	Date       time.Time
	Activities []Activity
}

// TotalCost sums the cost of every activity on the day.
func (d Day) TotalCost() float64 {
	var total float64
	for _, a := range d.Activities {
		total += a.Cost
	}
	return total
}

// TotalMinutes sums activity durations; gaps between activities are not counted.
func (d Day) TotalMinutes() int {
	var total int
	for _, a := range d.Activities {
		total += a.DurationMin
	}
	return total
}

type Itinerary struct {
	ID            string
	Title         string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	TravelerCount int
	Days          []Day
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewItinerary validates the trip metadata and expands one empty Day per
// calendar date in [start, end].
func NewItinerary(id, title, destination string, start, end time.Time, travelers int) (Itinerary, error) {
	it := Itinerary{
		ID:            id,
		Title:         strings.TrimSpace(title),
		Destination:   strings.TrimSpace(destination),
		StartDate:     DateOnly(start),
		EndDate:       DateOnly(end),
		TravelerCount: travelers,
	}
	if err := it.validateMeta(); err != nil {
		return Itinerary{}, err
	}
	it.Days = expandDays(it.StartDate, it.EndDate)
	return it, nil
}

func (it *Itinerary) validateMeta() error {
	if it.ID == "" {
		return invalid("id", "is required")
	}
	if it.Title == "" {
		return invalid("title", "is required")
	}
	if it.Destination == "" {
		return invalid("destination", "is required")
	}
	if it.TravelerCount < 1 {
		return invalid("traveler count", "%d must be at least 1", it.TravelerCount)
	}
	return validateRange(it.StartDate, it.EndDate)
}

func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return invalid("end date", "%s is before start date %s", end.Format(DateLayout), start.Format(DateLayout))
	}
	if n := DayCount(start, end); n > MaxTripDays {
		return invalid("date range", "%d days exceeds the %d day limit", n, MaxTripDays)
	}
	return nil
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayCount returns the inclusive number of calendar days between start and end.
func DayCount(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func expandDays(start, end time.Time) []Day {
	n := DayCount(start, end)
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Date: start.AddDate(0, 0, i)}
	}
	return days
}

// Clone returns a deep copy; no slice is shared with the receiver.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		out.Days[i] = Day{Date: d.Date, Activities: append([]Activity(nil), d.Activities...)}
	}
	return out
}

// FindActivity locates an activity by id.
func (it Itinerary) FindActivity(id string) (dayIndex, index int, ok bool) {
	for di, d := range it.Days {
		for ai, a := range d.Activities {
			if a.ID == id {
				return di, ai, true
			}
		}
	}
	return -1, -1, false
}

// ActivityCount counts activities across all days.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Activities)
	}
	return n
}

// DayIndex returns the index of the day holding date, or -1.
func (it Itinerary) DayIndex(date time.Time) int {
	target := DateOnly(date)
	for i, d := range it.Days {
		if d.Date.Equal(target) {
			return i
		}
	}
	return -1
}

// AddActivity appends a to the day at dayIndex. Editor defaults are applied
// before validation. On error the receiver is untouched.
func (it Itinerary) AddActivity(dayIndex int, a Activity) (Itinerary, error) {
	if dayIndex < 0 || dayIndex >= len(it.Days) {
		return Itinerary{}, &NotFoundError{Kind: "day", ID: fmt.Sprintf("#%d", dayIndex)}
	}
	a.Normalize()
	if err := a.Validate(); err != nil {
		return Itinerary{}, err
	}
	if _, _, exists := it.FindActivity(a.ID); exists {
		return Itinerary{}, invalid("id", "activity %q already exists in this itinerary", a.ID)
	}

	next := it.Clone()
	next.Days[dayIndex].Activities = append(next.Days[dayIndex].Activities, a)
	return next, nil
}

// UpdateActivity applies patch to the activity with the given id and
// recomputes its duration.
func (it Itinerary) UpdateActivity(id string, patch ActivityPatch) (Itinerary, error) {
	di, ai, ok := it.FindActivity(id)
	if !ok {
		return Itinerary{}, &NotFoundError{Kind: "activity", ID: id}
	}
	updated := patch.Apply(it.Days[di].Activities[ai])
	if err := updated.Validate(); err != nil {
		return Itinerary{}, err
	}

	next := it.Clone()
	next.Days[di].Activities[ai] = updated
	return next, nil
}

// RemoveActivity deletes the activity with the given id from whichever day holds it.
func (it Itinerary) RemoveActivity(id string) (Itinerary, error) {
	di, ai, ok := it.FindActivity(id)
	if !ok {
		return Itinerary{}, &NotFoundError{Kind: "activity", ID: id}
	}

	next := it.Clone()
	next.Days[di].Activities = slices.Delete(next.Days[di].Activities, ai, ai+1)
	return next, nil
}

// Reschedule changes the trip's date range. Days whose date is still in
// range keep their activities; days that fall outside are dropped together
// with their activities; new dates get empty days.
func (it Itinerary) Reschedule(start, end time.Time) (Itinerary, error) {
	start, end = DateOnly(start), DateOnly(end)
	if err := validateRange(start, end); err != nil {
		return Itinerary{}, err
	}

	byDate := make(map[string][]Activity, len(it.Days))
	for _, d := range it.Days {
		byDate[d.Date.Format(DateLayout)] = d.Activities
	}

	next := it.Clone()
	next.StartDate, next.EndDate = start, end
	next.Days = expandDays(start, end)
	for i := range next.Days {
		if acts, ok := byDate[next.Days[i].Date.Format(DateLayout)]; ok {
			next.Days[i].Activities = append([]Activity(nil), acts...)
		}
	}
	return next, nil
}
