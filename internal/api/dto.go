package api

import (
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

type itineraryView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Destination   string    `json:"destination"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TravelerCount int       `json:"traveler_count"`
	ActivityCount int       `json:"activity_count"`
	TotalCost     float64   `json:"total_cost"`
	Days          []dayView `json:"days,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type dayView struct {
	Index        int            `json:"index"`
	Date         string         `json:"date"`
	TotalCost    float64        `json:"total_cost"`
	TotalMinutes int            `json:"total_minutes"`
	Activities   []activityView `json:"activities"`
}

type activityView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Location    string           `json:"location,omitempty"`
	Start       domain.ClockTime `json:"start"`
	End         domain.ClockTime `json:"end"`
	DurationMin int              `json:"duration_min"`
	Cost        float64          `json:"cost"`
	Category    string           `json:"category"`
	CrowdLevel  string           `json:"crowd_level"`
	Status      string           `json:"status"`
	Type        string           `json:"type"`
	Description string           `json:"description,omitempty"`
	BookingURL  string           `json:"booking_url,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// toItineraryView renders it; withDays=false gives the list summary.
func toItineraryView(it *domain.Itinerary, withDays bool) itineraryView {
	v := itineraryView{
		ID:            it.ID,
		Title:         it.Title,
		Destination:   it.Destination,
		StartDate:     it.StartDate.Format(domain.DateLayout),
		EndDate:       it.EndDate.Format(domain.DateLayout),
		TravelerCount: it.TravelerCount,
		ActivityCount: it.ActivityCount(),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
	for i, d := range it.Days {
		v.TotalCost += d.TotalCost()
		if !withDays {
			continue
		}
		dv := dayView{
			Index:        i,
			Date:         d.Date.Format(domain.DateLayout),
			TotalCost:    d.TotalCost(),
			TotalMinutes: d.TotalMinutes(),
			Activities:   make([]activityView, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			dv.Activities = append(dv.Activities, toActivityView(a))
		}
		v.Days = append(v.Days, dv)
	}
	return v
}

func toActivityView(a domain.Activity) activityView {
	return activityView{
		ID:          a.ID,
		Title:       a.Title,
		Location:    a.Location,
		Start:       a.Start,
		End:         a.End,
		DurationMin: a.DurationMin,
		Cost:        a.Cost,
		Category:    string(a.Category),
		CrowdLevel:  string(a.CrowdLevel),
		Status:      string(a.Status),
		Type:        a.Type,
		Description: a.Description,
		BookingURL:  a.BookingURL,
		Notes:       a.Notes,
	}
}

type budgetLineView struct {
	Category  string  `json:"category"`
	Ceiling   float64 `json:"ceiling"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
	Level     string  `json:"level"`
	Overspent bool    `json:"overspent"`
}

type budgetReportView struct {
	Lines            []budgetLineView `json:"lines"`
	TotalBudget      float64          `json:"total_budget"`
	TotalSpent       float64          `json:"total_spent"`
	TotalRemaining   float64          `json:"total_remaining"`
	TotalPercent     float64          `json:"total_percent"`
	Overspent        []string         `json:"overspent"`
	Savings          []savingsTipView `json:"savings"`
	PotentialSavings float64          `json:"potential_savings"`
}

type savingsTipView struct {
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Savings     float64 `json:"savings"`
	Difficulty  string  `json:"difficulty"`
}

func toBudgetReportView(r *domain.BudgetReport) budgetReportView {
	v := budgetReportView{
		Lines:            make([]budgetLineView, 0, len(r.Lines)),
		TotalBudget:      r.TotalBudget,
		TotalSpent:       r.TotalSpent,
		TotalRemaining:   r.TotalRemaining,
		TotalPercent:     r.TotalPercent,
		Overspent:        make([]string, 0, len(r.Overspent)),
		Savings:          make([]savingsTipView, 0, len(r.Savings)),
		PotentialSavings: domain.PotentialSavings(r.Savings),
	}
	for _, l := range r.Lines {
		v.Lines = append(v.Lines, budgetLineView{
			Category:  string(l.Category),
			Ceiling:   l.Ceiling,
			Spent:     l.Spent,
			Remaining: l.Remaining,
			Percent:   l.Percent,
			Level:     string(l.Level),
			Overspent: l.Overspent,
		})
	}
	for _, c := range r.Overspent {
		v.Overspent = append(v.Overspent, string(c))
	}
	for _, t := range r.Savings {
		v.Savings = append(v.Savings, savingsTipView{
			Category:    string(t.Category),
			Title:       t.Title,
			Description: t.Description,
			Savings:     t.Savings,
			Difficulty:  string(t.Difficulty),
		})
	}
	return v
}

func budgetMap(b domain.Budget) map[string]float64 {
	out := make(map[string]float64, len(domain.Categories))
	for _, c := range domain.Categories {
		out[string(c)] = b[c]
	}
	return out
}

func toBudget(m map[string]float64) domain.Budget {
	if m == nil {
		return nil
	}
	b := make(domain.Budget, len(m))
	for k, v := range m {
		b[domain.Category(k)] = v
	}
	return b
}

type createItineraryRequest struct {
	Title         string             `json:"title"`
	Destination   string             `json:"destination"`
	StartDate     string             `json:"start_date" binding:"required"`
	EndDate       string             `json:"end_date" binding:"required"`
	TravelerCount int                `json:"traveler_count"`
	Budget        map[string]float64 `json:"budget"`
}

type rescheduleRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type activityRequest struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Location    string            `json:"location"`
	Start       *domain.ClockTime `json:"start" binding:"required"`
	End         *domain.ClockTime `json:"end" binding:"required"`
	Cost        float64           `json:"cost"`
	Category    string            `json:"category"`
	CrowdLevel  string            `json:"crowd_level"`
	Status      string            `json:"status"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	BookingURL  string            `json:"booking_url"`
	Notes       string            `json:"notes"`
}

func (r activityRequest) toActivity() domain.Activity {
	return domain.Activity{
		ID:          r.ID,
		Title:       r.Title,
		Location:    r.Location,
		Start:       *r.Start,
		End:         *r.End,
		Cost:        r.Cost,
		Category:    domain.Category(r.Category),
		CrowdLevel:  domain.CrowdLevel(r.CrowdLevel),
		Status:      domain.ActivityStatus(r.Status),
		Type:        r.Type,
		Description: r.Description,
		BookingURL:  r.BookingURL,
		Notes:       r.Notes,
	}
}

// activityPatchRequest has pointer fields so absent keys stay unchanged.
type activityPatchRequest struct {
	Title       *string           `json:"title"`
	Location    *string           `json:"location"`
	Start       *domain.ClockTime `json:"start"`
	End         *domain.ClockTime `json:"end"`
	Cost        *float64          `json:"cost"`
	Category    *string           `json:"category"`
	CrowdLevel  *string           `json:"crowd_level"`
	Status      *string           `json:"status"`
	Type        *string           `json:"type"`
	Description *string           `json:"description"`
	BookingURL  *string           `json:"booking_url"`
	Notes       *string           `json:"notes"`
}

func (r activityPatchRequest) toPatch() domain.ActivityPatch {
	p := domain.ActivityPatch{
		Title:       r.Title,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		Cost:        r.Cost,
		Type:        r.Type,
		Description: r.Description,
		BookingURL:  r.BookingURL,
		Notes:       r.Notes,
	}
	if r.Category != nil {
		c := domain.Category(*r.Category)
		p.Category = &c
	}
	if r.CrowdLevel != nil {
		c := domain.CrowdLevel(*r.CrowdLevel)
		p.CrowdLevel = &c
	}
	if r.Status != nil {
		s := domain.ActivityStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type moveRequest struct {
	SourceDay   *int `json:"source_day" binding:"required"`
	SourceIndex *int `json:"source_index" binding:"required"`
	DestDay     *int `json:"dest_day" binding:"required"`
	DestIndex   *int `json:"dest_index" binding:"required"`
}

func (r moveRequest) toMove() domain.Move {
	return domain.Move{
		SourceDay:   *r.SourceDay,
		SourceIndex: *r.SourceIndex,
		DestDay:     *r.DestDay,
		DestIndex:   *r.DestIndex,
	}
}

func parseDateParam(field, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
	}
	return t, nil
}
