package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Add, edit, remove and reorder activities",
		Long: "Add, edit, remove and reorder activities.\n\n" +
			"Days and positions are 1-based, matching the numbers shown by 'itinerary show'.",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityUpdateCmd(app),
		newActivityRemoveCmd(app),
		newActivityMoveCmd(app),
	)

	return cmd
}

// resolveDayIndex turns a 1-based --day or a --date into a day index.
func resolveDayIndex(ctx context.Context, app *App, itineraryID string, day int, date string) (int, error) {
	if date == "" {
		if day < 1 {
			return 0, fmt.Errorf("--day or --date is required")
		}
		return day - 1, nil
	}
	d, err := parseDate("date", date)
	if err != nil {
		return 0, err
	}
	it, err := app.Itineraries.Get(ctx, itineraryID)
	if err != nil {
		return 0, err
	}
	idx := it.DayIndex(d)
	if idx < 0 {
		return 0, fmt.Errorf("%s is outside the trip (%s)", date, formatter.DateRange(it.StartDate, it.EndDate))
	}
	return idx, nil
}

func newActivityAddCmd(app *App) *cobra.Command {
	var (
		a           domain.Activity
		day         int
		date        string
		start, end  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "add ITINERARY",
		Short: "Append an activity to the end of a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dayIndex, err := resolveDayIndex(ctx, app, id, day, date)
			if err != nil {
				return err
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				values := activityFormValues{
					Title: a.Title, Location: a.Location, Start: start, End: end,
					Category: domain.Category(domain.CoalesceStr(string(a.Category), string(domain.CategoryActivities))),
					Status:   domain.ActivityStatus(domain.CoalesceStr(string(a.Status), string(domain.StatusPlanned))),
					Crowd:    domain.CrowdLevel(domain.CoalesceStr(string(a.CrowdLevel), string(domain.CrowdLow))),
				}
				if a.Cost > 0 {
					values.Cost = fmt.Sprintf("%.2f", a.Cost)
				}
				if err := activityForm(&values).Run(); err != nil {
					return err
				}
				if err := values.apply(&a); err != nil {
					return err
				}
			} else {
				if a.Title == "" || start == "" || end == "" {
					return fmt.Errorf("--title, --start and --end are required (or use --interactive)")
				}
				if a.Start, err = domain.ParseClockTime(start); err != nil {
					return err
				}
				if a.End, err = domain.ParseClockTime(end); err != nil {
					return err
				}
			}

			_, added, err := app.Itineraries.AddActivity(ctx, id, dayIndex, a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s on day %d (%s-%s, %s) %s\n",
				added.Title, dayIndex+1, added.Start, added.End,
				domain.FormatDuration(added.DurationMin), added.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&day, "day", 0, "Day number (1-based)")
	f.StringVar(&date, "date", "", "Day by date (YYYY-MM-DD) instead of --day")
	f.StringVar(&a.ID, "id", "", "Activity ID (generated when empty)")
	f.StringVar(&a.Title, "title", "", "Activity title")
	f.StringVar(&a.Location, "location", "", "Location")
	f.StringVar(&start, "start", "", "Start time (HH:MM)")
	f.StringVar(&end, "end", "", "End time (HH:MM)")
	f.Float64Var(&a.Cost, "cost", 0, "Cost for the whole party")
	categoryFlag(f, &a.Category, "category", "Budget category (default activities)")
	statusFlag(f, &a.Status, "status", "Booking status (default planned)")
	crowdFlag(f, &a.CrowdLevel, "crowd", "Expected crowd level (default low)")
	activityTypeFlag(f, &a.Type, "type", "Activity type (default activity)")
	f.StringVar(&a.Description, "description", "", "Short description")
	f.StringVar(&a.BookingURL, "booking-url", "", "Booking link")
	f.StringVar(&a.Notes, "notes", "", "Free-form notes")
	f.BoolVarP(&interactive, "interactive", "i", false, "Fill in the activity with a form")
	cmd.MarkFlagsMutuallyExclusive("day", "date")

	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var (
		title, location, start, end string
		typ, description            string
		bookingURL, notes           string
		cost                        float64
		category                    domain.Category
		status                      domain.ActivityStatus
		crowd                       domain.CrowdLevel
	)

	cmd := &cobra.Command{
		Use:   "update ITINERARY ACTIVITY",
		Short: "Change fields of an activity; only the flags given are applied",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			changed := cmd.Flags().Changed
			var patch domain.ActivityPatch
			if changed("title") {
				patch.Title = &title
			}
			if changed("location") {
				patch.Location = &location
			}
			if changed("start") {
				c, err := domain.ParseClockTime(start)
				if err != nil {
					return err
				}
				patch.Start = &c
			}
			if changed("end") {
				c, err := domain.ParseClockTime(end)
				if err != nil {
					return err
				}
				patch.End = &c
			}
			if changed("cost") {
				patch.Cost = &cost
			}
			if changed("category") {
				patch.Category = &category
			}
			if changed("status") {
				patch.Status = &status
			}
			if changed("crowd") {
				patch.CrowdLevel = &crowd
			}
			if changed("type") {
				patch.Type = &typ
			}
			if changed("description") {
				patch.Description = &description
			}
			if changed("booking-url") {
				patch.BookingURL = &bookingURL
			}
			if changed("notes") {
				patch.Notes = &notes
			}

			it, err := app.Itineraries.UpdateActivity(ctx, id, args[1], patch)
			if err != nil {
				return err
			}
			di, ai, _ := it.FindActivity(args[1])
			a := it.Days[di].Activities[ai]
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s-%s, %s, %s)\n",
				a.Title, a.Start, a.End, formatter.Money(app.currency(), a.Cost), a.Status)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&title, "title", "", "Activity title")
	f.StringVar(&location, "location", "", "Location")
	f.StringVar(&start, "start", "", "Start time (HH:MM)")
	f.StringVar(&end, "end", "", "End time (HH:MM)")
	f.Float64Var(&cost, "cost", 0, "Cost for the whole party")
	categoryFlag(f, &category, "category", "Budget category")
	statusFlag(f, &status, "status", "Booking status")
	crowdFlag(f, &crowd, "crowd", "Expected crowd level")
	activityTypeFlag(f, &typ, "type", "Activity type")
	f.StringVar(&description, "description", "", "Short description")
	f.StringVar(&bookingURL, "booking-url", "", "Booking link")
	f.StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITINERARY ACTIVITY",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Itineraries.RemoveActivity(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed activity %s\n", args[1])
			return nil
		},
	}
}

func newActivityMoveCmd(app *App) *cobra.Command {
	var fromDay, fromPos, toDay, toPos int

	cmd := &cobra.Command{
		Use:   "move ITINERARY",
		Short: "Move an activity to a position within its day or on another day",
		Long: "Move an activity to a position within its day or on another day.\n\n" +
			"Positions are 1-based. The destination position is where the activity ends up;\n" +
			"the order is kept as given and never re-sorted by start time.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if toDay == 0 {
				toDay = fromDay
			}

			m := domain.Move{
				SourceDay:   fromDay - 1,
				SourceIndex: fromPos - 1,
				DestDay:     toDay - 1,
				DestIndex:   toPos - 1,
			}
			it, err := app.Itineraries.MoveActivity(cmd.Context(), id, m)
			if err != nil {
				return err
			}
			moved := it.Days[m.DestDay].Activities[m.DestIndex]
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to day %d position %d\n", moved.Title, toDay, toPos)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&fromDay, "from-day", 0, "Source day")
	f.IntVar(&fromPos, "from", 0, "Source position")
	f.IntVar(&toDay, "to-day", 0, "Destination day (defaults to the source day)")
	f.IntVar(&toPos, "to", 0, "Destination position")
	_ = cmd.MarkFlagRequired("from-day")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
