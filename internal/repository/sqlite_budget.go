package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

type SQLiteBudgetRepo struct {
	db db.DBTX
}

func NewSQLiteBudgetRepo(conn db.DBTX) *SQLiteBudgetRepo {
	return &SQLiteBudgetRepo{db: conn}
}

// Get returns the ceilings stored for an itinerary. Categories without a
// row are present with 0.
func (r *SQLiteBudgetRepo) Get(ctx context.Context, itineraryID string) (domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, ceiling FROM budgets WHERE itinerary_id = ?`, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("reading budget: %w", err)
	}
	defer rows.Close()

	b := make(domain.Budget, len(domain.Categories))
	for _, c := range domain.Categories {
		b[c] = 0
	}
	for rows.Next() {
		var (
			category string
			ceiling  float64
		)
		if err := rows.Scan(&category, &ceiling); err != nil {
			return nil, fmt.Errorf("scanning budget row: %w", err)
		}
		b[domain.Category(category)] = ceiling
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}
	return b, nil
}

// Upsert writes one row per category in b. Categories absent from b keep
// their stored ceiling.
func (r *SQLiteBudgetRepo) Upsert(ctx context.Context, itineraryID string, b domain.Budget) error {
	query := `INSERT INTO budgets (itinerary_id, category, ceiling) VALUES (?, ?, ?)
		ON CONFLICT(itinerary_id, category) DO UPDATE SET ceiling = excluded.ceiling`
	for _, c := range domain.Categories {
		v, ok := b[c]
		if !ok {
			continue
		}
		if _, err := r.db.ExecContext(ctx, query, itineraryID, string(c), v); err != nil {
			return fmt.Errorf("upserting %s ceiling: %w", c, err)
		}
	}
	return nil
}
