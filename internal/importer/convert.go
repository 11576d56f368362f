package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/google/uuid"
)

// ToDomain converts a validated document into an itinerary and its budget.
// Call ValidateDocument first. Missing ids get fresh uuids. A document
// without a budget section gets the default ceilings; a present section
// replaces them, with unlisted categories at 0.
func ToDomain(doc *Document) (*domain.Itinerary, domain.Budget, error) {
	start, err := time.Parse(domain.DateLayout, doc.Itinerary.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing start_date: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, doc.Itinerary.EndDate)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing end_date: %w", err)
	}

	id := doc.Itinerary.ID
	if id == "" {
		id = uuid.New().String()
	}
	it, err := domain.NewItinerary(id, doc.Itinerary.Title, doc.Itinerary.Destination, start, end, doc.Itinerary.TravelerCount)
	if err != nil {
		return nil, nil, err
	}

	for _, day := range doc.Days {
		date, err := time.Parse(domain.DateLayout, day.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing day date: %w", err)
		}
		di := it.DayIndex(date)
		for _, ai := range day.Activities {
			a, err := activityFromImport(ai)
			if err != nil {
				return nil, nil, err
			}
			if it, err = it.AddActivity(di, a); err != nil {
				return nil, nil, fmt.Errorf("day %s: %w", day.Date, err)
			}
		}
	}

	budget := domain.DefaultBudget()
	if doc.Budget != nil {
		budget = make(domain.Budget, len(domain.Categories))
		for _, c := range domain.Categories {
			budget[c] = doc.Budget[string(c)]
		}
	}
	return &it, budget, nil
}

func activityFromImport(ai ActivityImport) (domain.Activity, error) {
	start, err := domain.ParseClockTime(ai.Start)
	if err != nil {
		return domain.Activity{}, err
	}
	end, err := domain.ParseClockTime(ai.End)
	if err != nil {
		return domain.Activity{}, err
	}
	id := ai.ID
	if id == "" {
		id = uuid.New().String()
	}
	return domain.Activity{
		ID:          id,
		Title:       ai.Title,
		Location:    ai.Location,
		Start:       start,
		End:         end,
		Cost:        ai.Cost,
		Category:    domain.Category(ai.Category),
		CrowdLevel:  domain.CrowdLevel(ai.CrowdLevel),
		Status:      domain.ActivityStatus(ai.Status),
		Type:        ai.Type,
		Description: ai.Description,
		BookingURL:  ai.BookingURL,
		Notes:       ai.Notes,
	}, nil
}

// FromDomain is the inverse of ToDomain. Every day in range is listed,
// including empty ones.
func FromDomain(it *domain.Itinerary, budget domain.Budget) *Document {
	doc := &Document{
		Itinerary: ItineraryImport{
			ID:            it.ID,
			Title:         it.Title,
			Destination:   it.Destination,
			StartDate:     it.StartDate.Format(domain.DateLayout),
			EndDate:       it.EndDate.Format(domain.DateLayout),
			TravelerCount: it.TravelerCount,
		},
		Days: make([]DayImport, 0, len(it.Days)),
	}

	for _, d := range it.Days {
		day := DayImport{
			Date:       d.Date.Format(domain.DateLayout),
			Activities: make([]ActivityImport, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, ActivityImport{
				ID:          a.ID,
				Title:       a.Title,
				Location:    a.Location,
				Start:       a.Start.String(),
				End:         a.End.String(),
				Cost:        a.Cost,
				Category:    string(a.Category),
				CrowdLevel:  string(a.CrowdLevel),
				Status:      string(a.Status),
				Type:        a.Type,
				Description: a.Description,
				BookingURL:  a.BookingURL,
				Notes:       a.Notes,
			})
		}
		doc.Days = append(doc.Days, day)
	}

	if budget != nil {
		doc.Budget = make(map[string]float64, len(domain.Categories))
		for _, c := range domain.Categories {
			doc.Budget[string(c)] = budget[c]
		}
	}
	return doc
}
