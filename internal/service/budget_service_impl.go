package service

import (
	"context"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
)

type budgetService struct {
	itineraries repository.ItineraryRepo
	budgets     repository.BudgetRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewBudgetService(
	itineraries repository.ItineraryRepo,
	budgets repository.BudgetRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) BudgetService {
	return &budgetService{
		itineraries: itineraries,
		budgets:     budgets,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Get returns the ceilings of an existing itinerary.
func (s *budgetService) Get(ctx context.Context, itineraryID string) (domain.Budget, error) {
	if _, err := s.itineraries.GetByID(ctx, itineraryID); err != nil {
		return nil, err
	}
	return s.budgets.Get(ctx, itineraryID)
}

func (s *budgetService) Set(ctx context.Context, itineraryID string, b domain.Budget) (merged domain.Budget, err error) {
	fields := map[string]any{"itinerary_id": itineraryID, "categories": len(b)}
	defer observeUseCase(ctx, s.observer, "set-budget", time.Now().UTC(), &err, fields)

	if err = b.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteItineraryRepo(tx).GetByID(ctx, itineraryID); err != nil {
			return err
		}
		budgets := repository.NewSQLiteBudgetRepo(tx)
		if err := budgets.Upsert(ctx, itineraryID, b); err != nil {
			return err
		}
		merged, err = budgets.Get(ctx, itineraryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Report aggregates the itinerary's activity costs against its budget.
func (s *budgetService) Report(ctx context.Context, itineraryID string) (*domain.BudgetReport, error) {
	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	b, err := s.budgets.Get(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	report := domain.BuildBudgetReport(b, *it)
	return &report, nil
}
