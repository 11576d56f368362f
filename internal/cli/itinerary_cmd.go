package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/export"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/spf13/cobra"
)

func newItineraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "itinerary",
		Aliases: []string{"trip"},
		Short:   "Manage itineraries",
	}

	cmd.AddCommand(
		newItineraryCreateCmd(app),
		newItineraryListCmd(app),
		newItineraryShowCmd(app),
		newItineraryDatesCmd(app),
		newItineraryRemoveCmd(app),
		newItineraryImportCmd(app),
		newItineraryExportCmd(app),
	)

	return cmd
}

func newItineraryCreateCmd(app *App) *cobra.Command {
	var title, destination, start, end string
	var travelers int
	var budget map[string]string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new itinerary with one empty day per date",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDate("end", end)
			if err != nil {
				return err
			}
			b, err := parseBudgetPairs(budget)
			if err != nil {
				return err
			}

			it, err := app.Itineraries.Create(cmd.Context(), service.CreateItineraryInput{
				Title:         title,
				Destination:   destination,
				StartDate:     startDate,
				EndDate:       endDate,
				TravelerCount: travelers,
				Budget:        b,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created itinerary %s (%s, %s) %s\n",
				it.Title, it.Destination, domain.Plural(len(it.Days), "day"), it.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Itinerary title")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination")
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "Number of travelers")
	cmd.Flags().StringToStringVar(&budget, "budget", nil, "Category ceilings, e.g. meals=300,shopping=100 (default budget when omitted)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newItineraryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List itineraries by start date",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Itineraries.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItineraryList(list, app.currency()))
			return nil
		},
	}
}

func newItineraryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an itinerary day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(it, app.currency()))
			return nil
		},
	}
}

func newItineraryDatesCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "dates ID",
		Short: "Change trip dates; days outside the new range are dropped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			startDate, err := parseDate("start", start)
			if err != nil {
				return err
			}
			endDate, err := parseDate("end", end)
			if err != nil {
				return err
			}

			before, err := app.Itineraries.Get(ctx, id)
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Reschedule(ctx, id, startDate, endDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rescheduled %s to %s\n", it.Title, formatter.DateRange(it.StartDate, it.EndDate))
			if dropped := before.ActivityCount() - it.ActivityCount(); dropped > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Dropped %s on dates outside the new range", domain.Plural(dropped, "activity"))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New last day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newItineraryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an itinerary with its activities and budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Itineraries.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed itinerary %s\n", id)
			return nil
		},
	}
}

func newItineraryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import an itinerary from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			it := result.Itinerary
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %s, %s (%s)\n",
				it.Title,
				domain.Plural(len(it.Days), "day"),
				domain.Plural(result.ActivityCount, "activity"),
				it.ID,
			)
			return nil
		},
	}
}

func newItineraryExportCmd(app *App) *cobra.Command {
	format := formatJSON
	var output string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export an itinerary as a JSON document or a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatPDF:
				it, err := app.Itineraries.Get(ctx, id)
				if err != nil {
					return err
				}
				report, err := app.Budgets.Report(ctx, id)
				if err != nil {
					return err
				}
				data, err = export.RenderPDF(it, report, export.Options{CurrencySymbol: app.currency()})
				if err != nil {
					return err
				}
				if output == "" {
					output = fmt.Sprintf("itinerary-%s.pdf", id)
				}
			default:
				doc, err := app.Import.Export(ctx, id)
				if err != nil {
					return err
				}
				data, err = json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding document: %w", err)
				}
				data = append(data, '\n')
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().VarP(newEnumValue(&format, "format", []exportFormat{formatJSON, formatPDF}), "format", "f", "Output format: json|pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (JSON defaults to stdout)")

	return cmd
}
