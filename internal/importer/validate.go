package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ValidateDocument checks a document before conversion and returns every
// problem found, not just the first.
func ValidateDocument(doc *Document) []error {
	var errs []error

	start, end, rangeOK := validateItinerary(&doc.Itinerary, &errs)

	seenDates := make(map[string]bool, len(doc.Days))
	seenIDs := make(map[string]string)
	for i, day := range doc.Days {
		path := fmt.Sprintf("days[%d]", i)
		date, err := time.Parse(domain.DateLayout, day.Date)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, day.Date))
		case seenDates[day.Date]:
			errs = append(errs, fmt.Errorf("%s.date: %s is listed more than once", path, day.Date))
		case rangeOK && (date.Before(start) || date.After(end)):
			errs = append(errs, fmt.Errorf("%s.date: %s is outside %s..%s", path, day.Date,
				doc.Itinerary.StartDate, doc.Itinerary.EndDate))
		}
		seenDates[day.Date] = true

		for j, a := range day.Activities {
			apath := fmt.Sprintf("%s.activities[%d]", path, j)
			errs = append(errs, validateActivity(apath, &a)...)
			if a.ID == "" {
				continue
			}
			if prev, dup := seenIDs[a.ID]; dup {
				errs = append(errs, fmt.Errorf("%s.id: %q already used at %s", apath, a.ID, prev))
				continue
			}
			seenIDs[a.ID] = apath
		}
	}

	for c, v := range doc.Budget {
		if !domain.Category(c).Valid() {
			errs = append(errs, fmt.Errorf("budget: unknown category %q", c))
			continue
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("budget.%s: %v must be a non-negative amount", c, v))
		}
	}

	return errs
}

func validateItinerary(it *ItineraryImport, errs *[]error) (start, end time.Time, ok bool) {
	if it.Title == "" {
		*errs = append(*errs, fmt.Errorf("itinerary.title is required"))
	}
	if it.Destination == "" {
		*errs = append(*errs, fmt.Errorf("itinerary.destination is required"))
	}
	if it.TravelerCount < 1 {
		*errs = append(*errs, fmt.Errorf("itinerary.traveler_count must be at least 1, got %d", it.TravelerCount))
	}

	start, startErr := time.Parse(domain.DateLayout, it.StartDate)
	if startErr != nil {
		*errs = append(*errs, fmt.Errorf("itinerary.start_date: invalid date format %q (expected YYYY-MM-DD)", it.StartDate))
	}
	end, endErr := time.Parse(domain.DateLayout, it.EndDate)
	if endErr != nil {
		*errs = append(*errs, fmt.Errorf("itinerary.end_date: invalid date format %q (expected YYYY-MM-DD)", it.EndDate))
	}
	if startErr != nil || endErr != nil {
		return start, end, false
	}
	if end.Before(start) {
		*errs = append(*errs, fmt.Errorf("itinerary.end_date %q must not be before start_date %q", it.EndDate, it.StartDate))
		return start, end, false
	}
	if n := domain.DayCount(start, end); n > domain.MaxTripDays {
		*errs = append(*errs, fmt.Errorf("itinerary: %d days exceeds the %d day limit", n, domain.MaxTripDays))
		return start, end, false
	}
	return start, end, true
}

func validateActivity(path string, a *ActivityImport) []error {
	var errs []error

	if a.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", path))
	}
	startC, startErr := domain.ParseClockTime(a.Start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start: invalid time %q (expected HH:MM)", path, a.Start))
	}
	endC, endErr := domain.ParseClockTime(a.End)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end: invalid time %q (expected HH:MM)", path, a.End))
	}
	if startErr == nil && endErr == nil && endC <= startC {
		errs = append(errs, fmt.Errorf("%s: end time %s must be after start time %s", path, a.End, a.Start))
	}
	if a.Cost < 0 || math.IsNaN(a.Cost) || math.IsInf(a.Cost, 0) {
		errs = append(errs, fmt.Errorf("%s.cost: %v must be a non-negative amount", path, a.Cost))
	}
	if a.Category != "" && !domain.Category(a.Category).Valid() {
		errs = append(errs, fmt.Errorf("%s.category: unknown category %q", path, a.Category))
	}
	if a.CrowdLevel != "" && !domain.CrowdLevel(a.CrowdLevel).Valid() {
		errs = append(errs, fmt.Errorf("%s.crowd_level: unknown crowd level %q", path, a.CrowdLevel))
	}
	if a.Status != "" && !domain.ActivityStatus(a.Status).Valid() {
		errs = append(errs, fmt.Errorf("%s.status: unknown status %q", path, a.Status))
	}
	if a.Type != "" && !domain.ValidActivityType(a.Type) {
		errs = append(errs, fmt.Errorf("%s.type: unknown activity type %q", path, a.Type))
	}
	return errs
}
