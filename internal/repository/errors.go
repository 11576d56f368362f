package repository

import "github.com/alexanderramin/itinera/internal/domain"

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = domain.ErrNotFound

func itineraryNotFound(id string) error {
	return &domain.NotFoundError{Kind: "itinerary", ID: id}
}
