package domain

import (
	"math"
	"strings"
)

type Activity struct {
	ID       string
	Title    string
	Location string

	Start ClockTime
	End   ClockTime
	// DurationMin is derived from Start and End. Every constructor and
	// mutator in this package recomputes it; stored values are ignored.
	DurationMin int

	Cost       float64
	Category   Category
	CrowdLevel CrowdLevel
	Status     ActivityStatus

	// Editor details
	Type        string
	Description string
	BookingURL  string
	Notes       string
}

// Normalize fills the editor defaults for unset enum fields and
// recomputes the derived duration.
func (a *Activity) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	if a.Category == "" {
		a.Category = CategoryActivities
	}
	if a.CrowdLevel == "" {
		a.CrowdLevel = CrowdLow
	}
	if a.Status == "" {
		a.Status = StatusPlanned
	}
	a.Type = CoalesceStr(a.Type, "activity")
	a.recomputeDuration()
}

func (a *Activity) recomputeDuration() {
	a.DurationMin = int(a.End) - int(a.Start)
}

// Validate checks field-level invariants. It does not check id uniqueness,
// which needs the whole itinerary.
func (a *Activity) Validate() error {
	if a.ID == "" {
		return invalid("id", "is required")
	}
	if a.Title == "" {
		return invalid("title", "is required")
	}
	if !a.Start.Valid() {
		return invalid("start", "%d is not a time of day", int(a.Start))
	}
	if !a.End.Valid() {
		return invalid("end", "%d is not a time of day", int(a.End))
	}
	if a.Start >= a.End {
		return invalid("end", "end time %s must be after start time %s", a.End, a.Start)
	}
	if a.Cost < 0 || math.IsNaN(a.Cost) || math.IsInf(a.Cost, 0) {
		return invalid("cost", "%v must be a non-negative amount", a.Cost)
	}
	if !a.Category.Valid() {
		return invalid("category", "unknown category %q", a.Category)
	}
	if !a.CrowdLevel.Valid() {
		return invalid("crowd level", "unknown crowd level %q", a.CrowdLevel)
	}
	if !a.Status.Valid() {
		return invalid("status", "unknown status %q", a.Status)
	}
	if a.Type != "" && !ValidActivityType(a.Type) {
		return invalid("type", "unknown activity type %q", a.Type)
	}
	return nil
}

// ActivityPatch carries the fields to change; nil fields are left as they are.
type ActivityPatch struct {
	Title       *string
	Location    *string
	Start       *ClockTime
	End         *ClockTime
	Cost        *float64
	Category    *Category
	CrowdLevel  *CrowdLevel
	Status      *ActivityStatus
	Type        *string
	Description *string
	BookingURL  *string
	Notes       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p == ActivityPatch{}
}

// Apply returns a patched copy of a with its duration recomputed.
func (p ActivityPatch) Apply(a Activity) Activity {
	a.Title = strings.TrimSpace(valueOr(p.Title, a.Title))
	a.Location = valueOr(p.Location, a.Location)
	a.Start = valueOr(p.Start, a.Start)
	a.End = valueOr(p.End, a.End)
	a.Cost = valueOr(p.Cost, a.Cost)
	a.Category = valueOr(p.Category, a.Category)
	a.CrowdLevel = valueOr(p.CrowdLevel, a.CrowdLevel)
	a.Status = valueOr(p.Status, a.Status)
	a.Type = valueOr(p.Type, a.Type)
	a.Description = valueOr(p.Description, a.Description)
	a.BookingURL = valueOr(p.BookingURL, a.BookingURL)
	a.Notes = valueOr(p.Notes, a.Notes)
	a.recomputeDuration()
	return a
}
