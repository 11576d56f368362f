package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
)

// FormatItineraryList renders the trip list table.
func FormatItineraryList(list []*domain.Itinerary, currency string) string {
	if len(list) == 0 {
		return Dim("No itineraries yet. Create one with: itinera itinerary create") + "\n"
	}

	headers := []string{"ID", "TITLE", "DESTINATION", "DATES", "DAYS", "ACTIVITIES", "COST"}
	rows := make([][]string, 0, len(list))
	for _, it := range list {
		var cost float64
		for _, d := range it.Days {
			cost += d.TotalCost()
		}
		rows = append(rows, []string{
			TruncID(it.ID),
			Bold(it.Title),
			it.Destination,
			DateRange(it.StartDate, it.EndDate),
			strconv.Itoa(len(it.Days)),
			strconv.Itoa(it.ActivityCount()),
			Money(currency, cost),
		})
	}
	return RenderTable(headers, rows)
}

// FormatItinerary renders a trip with one table per day. Activities keep
// their stored order.
func FormatItinerary(it *domain.Itinerary, currency string) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s\n%s  %s  %s\n%s",
		Bold(it.Title),
		StyleBlue.Render(it.Destination),
		DateRange(it.StartDate, it.EndDate),
		Dim(domain.Plural(it.TravelerCount, "traveler")),
		Dim("id "+it.ID),
	)
	b.WriteString(RenderBox("Itinerary", summary))
	b.WriteString("\n\n")

	var total float64
	for i, d := range it.Days {
		total += d.TotalCost()
		title := fmt.Sprintf("Day %d  %s", i+1, DayLabel(d.Date))
		b.WriteString(Header(title))
		b.WriteString("\n")

		if len(d.Activities) == 0 {
			b.WriteString(Dim("  Nothing planned") + "\n\n")
			continue
		}
		b.WriteString(formatDayTable(d, currency))
		b.WriteString(Dim(fmt.Sprintf("%s  ·  %s",
			domain.FormatDuration(d.TotalMinutes()), Money(currency, d.TotalCost()))))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Total cost:"), Money(currency, total)))
	return b.String()
}

func formatDayTable(d domain.Day, currency string) string {
	headers := []string{"#", "TIME", "ACTIVITY", "CATEGORY", "COST", "STATUS", "CROWD"}
	rows := make([][]string, 0, len(d.Activities))
	for i, a := range d.Activities {
		title := a.Title
		if a.Location != "" {
			title += Dim(" @ " + a.Location)
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			fmt.Sprintf("%s-%s", a.Start, a.End),
			title,
			CategoryBadge(a.Category),
			Money(currency, a.Cost),
			StatusPill(a.Status),
			CrowdBadge(a.CrowdLevel),
		})
	}
	return RenderTable(headers, rows)
}
