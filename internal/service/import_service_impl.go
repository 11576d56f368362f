package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/importer"
	"github.com/alexanderramin/itinera/internal/repository"
)

type importService struct {
	itineraries repository.ItineraryRepo
	budgets     repository.BudgetRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewImportService(
	itineraries repository.ItineraryRepo,
	budgets repository.BudgetRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		itineraries: itineraries,
		budgets:     budgets,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	doc, err := importer.LoadDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDocument(ctx, doc)
}

// ImportDocument validates and stores a whole document atomically. An
// itinerary id that already exists is rejected rather than overwritten.
func (s *importService) ImportDocument(ctx context.Context, doc *importer.Document) (result *ImportResult, err error) {
	fields := map[string]any{"days": len(doc.Days)}
	defer observeUseCase(ctx, s.observer, "import-itinerary", time.Now().UTC(), &err, fields)

	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	it, budget, err := importer.ToDomain(doc)
	if err != nil {
		return nil, fmt.Errorf("converting import document: %w", err)
	}
	fields["itinerary_id"] = it.ID
	fields["activities"] = it.ActivityCount()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItineraryRepo(tx)
		if _, err := repo.GetByID(ctx, it.ID); err == nil {
			return &domain.ValidationError{Field: "itinerary.id", Reason: fmt.Sprintf("%q already exists", it.ID)}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := repo.Create(ctx, it); err != nil {
			return fmt.Errorf("creating itinerary: %w", err)
		}
		if err := repository.NewSQLiteBudgetRepo(tx).Upsert(ctx, it.ID, budget); err != nil {
			return fmt.Errorf("storing budget: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Itinerary:     it,
		Budget:        budget,
		ActivityCount: it.ActivityCount(),
	}, nil
}

// Export returns the stored itinerary and budget as a document that
// ImportDocument accepts.
func (s *importService) Export(ctx context.Context, itineraryID string) (*importer.Document, error) {
	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	b, err := s.budgets.Get(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	return importer.FromDomain(it, b), nil
}

// formatValidationErrors folds every document problem into one
// validation error, one problem per line.
func formatValidationErrors(errs []error) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "import document has %d problem(s):", len(errs))
	for _, e := range errs {
		sb.WriteString("\n  - ")
		sb.WriteString(e.Error())
	}
	return &domain.ValidationError{Reason: sb.String()}
}
