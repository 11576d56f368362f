package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set category ceilings and compare them with planned spend",
	}

	cmd.AddCommand(
		newBudgetSetCmd(app),
		newBudgetShowCmd(app),
	)

	return cmd
}

func newBudgetSetCmd(app *App) *cobra.Command {
	ceilings := make(map[domain.Category]*float64, len(domain.Categories))

	cmd := &cobra.Command{
		Use:   "set ITINERARY",
		Short: "Set ceilings for the given categories; others keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			b := domain.Budget{}
			for _, c := range domain.Categories {
				if cmd.Flags().Changed(string(c)) {
					b[c] = *ceilings[c]
				}
			}
			if len(b) == 0 {
				return fmt.Errorf("set at least one category, e.g. --meals 300")
			}

			merged, err := app.Budgets.Set(cmd.Context(), id, b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBudget(merged, app.currency()))
			return nil
		},
	}

	for _, c := range domain.Categories {
		ceilings[c] = cmd.Flags().Float64(string(c), 0, fmt.Sprintf("Ceiling for %s", c))
	}

	return cmd
}

func newBudgetShowCmd(app *App) *cobra.Command {
	var ceilingsOnly, savings bool

	cmd := &cobra.Command{
		Use:   "show ITINERARY",
		Short: "Show spend against each category ceiling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if ceilingsOnly {
				b, err := app.Budgets.Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBudget(b, app.currency()))
				return nil
			}

			it, err := app.Itineraries.Get(ctx, id)
			if err != nil {
				return err
			}
			report, err := app.Budgets.Report(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBudgetReport(it.Title, report, app.currency()))
			if savings {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSavingsTips(report.Savings, app.currency()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ceilingsOnly, "ceilings", false, "Only print the ceilings")
	cmd.Flags().BoolVar(&savings, "savings", false, "List savings tips for categories near or over their ceiling")
	cmd.MarkFlagsMutuallyExclusive("ceilings", "savings")

	return cmd
}
