package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/itinera/internal/cli"
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory is optional; real env vars win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itineraryRepo := repository.NewSQLiteItineraryRepo(database)
	budgetRepo := repository.NewSQLiteBudgetRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Itineraries: service.NewItineraryService(itineraryRepo, uow, observers...),
		Budgets:     service.NewBudgetService(itineraryRepo, budgetRepo, uow, observers...),
		Import:      service.NewImportService(itineraryRepo, budgetRepo, uow, observers...),
		Config:      cfg,
	}

	// Detect interactive terminal for forms and the timeline.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
