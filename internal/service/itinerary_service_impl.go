package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/google/uuid"
)

type itineraryService struct {
	itineraries repository.ItineraryRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewItineraryService(
	itineraries repository.ItineraryRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ItineraryService {
	return &itineraryService{
		itineraries: itineraries,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *itineraryService) Create(ctx context.Context, in CreateItineraryInput) (created *domain.Itinerary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"destination": in.Destination}
	defer observeUseCase(ctx, s.observer, "create-itinerary", startedAt, &err, fields)

	budget := in.Budget
	if budget == nil {
		budget = domain.DefaultBudget()
	}
	if err = budget.Validate(); err != nil {
		return nil, err
	}

	it, err := domain.NewItinerary(uuid.New().String(), in.Title, in.Destination, in.StartDate, in.EndDate, in.TravelerCount)
	if err != nil {
		return nil, err
	}
	fields["itinerary_id"] = it.ID
	fields["days"] = len(it.Days)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteItineraryRepo(tx).Create(ctx, &it); err != nil {
			return err
		}
		return repository.NewSQLiteBudgetRepo(tx).Upsert(ctx, it.ID, budget)
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *itineraryService) Get(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, id)
}

func (s *itineraryService) List(ctx context.Context) ([]*domain.Itinerary, error) {
	return s.itineraries.List(ctx)
}

func (s *itineraryService) Delete(ctx context.Context, id string) (err error) {
	defer observeUseCase(ctx, s.observer, "delete-itinerary", time.Now().UTC(), &err, map[string]any{"itinerary_id": id})

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteItineraryRepo(tx).Delete(ctx, id)
	})
}

func (s *itineraryService) Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Itinerary, error) {
	fields := map[string]any{
		"start_date": start.Format(domain.DateLayout),
		"end_date":   end.Format(domain.DateLayout),
	}
	return s.mutate(ctx, "reschedule-itinerary", id, fields, func(it domain.Itinerary) (domain.Itinerary, error) {
		next, err := it.Reschedule(start, end)
		if err != nil {
			return domain.Itinerary{}, err
		}
		fields["dropped_activities"] = it.ActivityCount() - next.ActivityCount()
		return next, nil
	})
}

// AddActivity appends a to the day at dayIndex. An empty activity id is
// replaced with a uuid. The stored activity is returned with its defaults
// applied.
func (s *itineraryService) AddActivity(ctx context.Context, id string, dayIndex int, a domain.Activity) (*domain.Itinerary, *domain.Activity, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	fields := map[string]any{"activity_id": a.ID, "day": dayIndex}

	it, err := s.mutate(ctx, "add-activity", id, fields, func(it domain.Itinerary) (domain.Itinerary, error) {
		return it.AddActivity(dayIndex, a)
	})
	if err != nil {
		return nil, nil, err
	}
	added := it.Days[dayIndex].Activities[len(it.Days[dayIndex].Activities)-1]
	return it, &added, nil
}

func (s *itineraryService) UpdateActivity(ctx context.Context, id, activityID string, patch domain.ActivityPatch) (*domain.Itinerary, error) {
	fields := map[string]any{"activity_id": activityID}
	return s.mutate(ctx, "update-activity", id, fields, func(it domain.Itinerary) (domain.Itinerary, error) {
		if patch.IsEmpty() {
			return domain.Itinerary{}, &domain.ValidationError{Reason: "no fields to update"}
		}
		return it.UpdateActivity(activityID, patch)
	})
}

func (s *itineraryService) RemoveActivity(ctx context.Context, id, activityID string) (*domain.Itinerary, error) {
	fields := map[string]any{"activity_id": activityID}
	return s.mutate(ctx, "remove-activity", id, fields, func(it domain.Itinerary) (domain.Itinerary, error) {
		return it.RemoveActivity(activityID)
	})
}

func (s *itineraryService) MoveActivity(ctx context.Context, id string, m domain.Move) (*domain.Itinerary, error) {
	fields := map[string]any{
		"from": fmt.Sprintf("%d/%d", m.SourceDay, m.SourceIndex),
		"to":   fmt.Sprintf("%d/%d", m.DestDay, m.DestIndex),
	}
	return s.mutate(ctx, "move-activity", id, fields, func(it domain.Itinerary) (domain.Itinerary, error) {
		return it.MoveActivity(m)
	})
}

// mutate runs load, apply and save for one itinerary inside a transaction.
func (s *itineraryService) mutate(
	ctx context.Context,
	name, id string,
	fields map[string]any,
	apply func(domain.Itinerary) (domain.Itinerary, error),
) (result *domain.Itinerary, err error) {
	fields["itinerary_id"] = id
	defer observeUseCase(ctx, s.observer, name, time.Now().UTC(), &err, fields)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItineraryRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		next, err := apply(*current)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, &next); err != nil {
			return fmt.Errorf("saving itinerary: %w", err)
		}
		result = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
