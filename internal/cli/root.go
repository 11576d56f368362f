package cli

import (
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Itineraries service.ItineraryService
	Budgets     service.BudgetService
	Import      service.ImportService
	Config      config.Config

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// timeline refuse to start when it returns false.
	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion. Nil uses a
	// full-screen tea.Program.
	RunProgram func(tea.Model) (tea.Model, error)
}

func (a *App) currency() string {
	return domain.CoalesceStr(a.Config.UI.CurrencySymbol, "$")
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// NewRootCmd creates the top-level "itinera" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "itinera",
		Short:         "Trip itinerary planner with per-category budgets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newItineraryCmd(app),
		newActivityCmd(app),
		newBudgetCmd(app),
		newTimelineCmd(app),
		newServeCmd(app),
	)

	return root
}
