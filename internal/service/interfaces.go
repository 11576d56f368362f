package service

import (
	"context"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/importer"
)

// CreateItineraryInput carries the fields of a new trip. A nil Budget
// starts the trip with domain.DefaultBudget.
type CreateItineraryInput struct {
	Title         string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	TravelerCount int
	Budget        domain.Budget
}

// ItineraryService exposes the itinerary operations. Every mutation loads
// the trip, applies the domain operation and saves the result in one
// transaction; on error nothing is written.
type ItineraryService interface {
	Create(ctx context.Context, in CreateItineraryInput) (*domain.Itinerary, error)
	Get(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	Delete(ctx context.Context, id string) error
	Reschedule(ctx context.Context, id string, start, end time.Time) (*domain.Itinerary, error)
	AddActivity(ctx context.Context, id string, dayIndex int, a domain.Activity) (*domain.Itinerary, *domain.Activity, error)
	UpdateActivity(ctx context.Context, id, activityID string, patch domain.ActivityPatch) (*domain.Itinerary, error)
	RemoveActivity(ctx context.Context, id, activityID string) (*domain.Itinerary, error)
	MoveActivity(ctx context.Context, id string, m domain.Move) (*domain.Itinerary, error)
}

type BudgetService interface {
	Get(ctx context.Context, itineraryID string) (domain.Budget, error)
	// Set merges the given ceilings into the stored budget; categories not
	// in b keep their value. It returns the full budget after the merge.
	Set(ctx context.Context, itineraryID string, b domain.Budget) (domain.Budget, error)
	Report(ctx context.Context, itineraryID string) (*domain.BudgetReport, error)
}

// ImportResult holds the outcome of an itinerary import.
type ImportResult struct {
	Itinerary     *domain.Itinerary
	Budget        domain.Budget
	ActivityCount int
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportDocument(ctx context.Context, doc *importer.Document) (*ImportResult, error)
	Export(ctx context.Context, itineraryID string) (*importer.Document, error)
}
