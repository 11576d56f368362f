package repository

import (
	"context"

	"github.com/alexanderramin/itinera/internal/domain"
)

// ItineraryRepo persists whole itineraries. Activities are stored as
// positioned rows and are always read and written together with their trip.
type ItineraryRepo interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	Update(ctx context.Context, it *domain.Itinerary) error
	Delete(ctx context.Context, id string) error
}

type BudgetRepo interface {
	Get(ctx context.Context, itineraryID string) (domain.Budget, error)
	Upsert(ctx context.Context, itineraryID string, b domain.Budget) error
}
