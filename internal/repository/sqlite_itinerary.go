package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/domain"
)

// SQLiteItineraryRepo implements ItineraryRepo on top of the itineraries
// and activities tables.
type SQLiteItineraryRepo struct {
	db db.DBTX
}

// NewSQLiteItineraryRepo accepts a *sql.DB or a *sql.Tx.
func NewSQLiteItineraryRepo(conn db.DBTX) *SQLiteItineraryRepo {
	return &SQLiteItineraryRepo{db: conn}
}

const itineraryColumns = `id, title, destination, start_date, end_date, traveler_count, created_at, updated_at`

const activityColumns = `id, day_date, title, location, start_min, end_min, cost, category,
	crowd_level, status, type, description, booking_url, notes`

// Create inserts the itinerary row and its activities. Zero timestamps are
// filled with the current time on the passed value.
func (r *SQLiteItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	now := nowUTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	if it.UpdatedAt.IsZero() {
		it.UpdatedAt = it.CreatedAt
	}

	query := `INSERT INTO itineraries (` + itineraryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.Title,
		it.Destination,
		formatDate(it.StartDate),
		formatDate(it.EndDate),
		it.TravelerCount,
		formatTimestamp(it.CreatedAt),
		formatTimestamp(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting itinerary: %w", err)
	}
	return r.insertActivities(ctx, it)
}

func (r *SQLiteItineraryRepo) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = ?`
	it, err := scanItinerary(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, itineraryNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// List returns every itinerary ordered by start date, each with its days
// and activities loaded.
func (r *SQLiteItineraryRepo) List(ctx context.Context) ([]*domain.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries ORDER BY start_date, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}

	var out []*domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating itineraries: %w", err)
	}
	// Close before loading activities: an in-memory store has one connection.
	rows.Close()

	for _, it := range out {
		if err := r.loadDays(ctx, it); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update writes the metadata and replaces the activity rows so stored
// positions match the in-memory order. UpdatedAt is refreshed on the
// passed value.
func (r *SQLiteItineraryRepo) Update(ctx context.Context, it *domain.Itinerary) error {
	it.UpdatedAt = nowUTC()
	query := `UPDATE itineraries SET title = ?, destination = ?, start_date = ?, end_date = ?,
		traveler_count = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Title,
		it.Destination,
		formatDate(it.StartDate),
		formatDate(it.EndDate),
		it.TravelerCount,
		formatTimestamp(it.UpdatedAt),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating itinerary: %w", err)
	}
	if err := requireOneRow(res, it.ID); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE itinerary_id = ?`, it.ID); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	return r.insertActivities(ctx, it)
}

func (r *SQLiteItineraryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting itinerary: %w", err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return itineraryNotFound(id)
	}
	return nil
}

func (r *SQLiteItineraryRepo) insertActivities(ctx context.Context, it *domain.Itinerary) error {
	query := `INSERT INTO activities (itinerary_id, position, ` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, day := range it.Days {
		date := formatDate(day.Date)
		for pos, a := range day.Activities {
			_, err := r.db.ExecContext(ctx, query,
				it.ID, pos,
				a.ID, date, a.Title, a.Location,
				int(a.Start), int(a.End), a.Cost,
				string(a.Category), string(a.CrowdLevel), string(a.Status),
				a.Type, a.Description, a.BookingURL, a.Notes,
			)
			if err != nil {
				return fmt.Errorf("inserting activity %s: %w", a.ID, err)
			}
		}
	}
	return nil
}

// loadDays expands the itinerary's date range and fills each day from the
// activity rows in position order. Rows dated outside the range are skipped.
func (r *SQLiteItineraryRepo) loadDays(ctx context.Context, it *domain.Itinerary) error {
	shell, err := domain.NewItinerary(it.ID, it.Title, it.Destination, it.StartDate, it.EndDate, it.TravelerCount)
	if err != nil {
		return fmt.Errorf("loading itinerary %s: %w", it.ID, err)
	}
	it.Days = shell.Days

	byDate := make(map[string]int, len(it.Days))
	for i, d := range it.Days {
		byDate[formatDate(d.Date)] = i
	}

	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE itinerary_id = ? ORDER BY day_date, position`
	rows, err := r.db.QueryContext(ctx, query, it.ID)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a                       domain.Activity
			date                    string
			startMin, endMin        int
			category, crowd, status string
		)
		err := rows.Scan(
			&a.ID, &date, &a.Title, &a.Location,
			&startMin, &endMin, &a.Cost,
			&category, &crowd, &status,
			&a.Type, &a.Description, &a.BookingURL, &a.Notes,
		)
		if err != nil {
			return fmt.Errorf("scanning activity row: %w", err)
		}
		a.Start, a.End = domain.ClockTime(startMin), domain.ClockTime(endMin)
		a.Category = domain.Category(category)
		a.CrowdLevel = domain.CrowdLevel(crowd)
		a.Status = domain.ActivityStatus(status)
		a.DurationMin = endMin - startMin

		di, ok := byDate[date]
		if !ok {
			continue
		}
		it.Days[di].Activities = append(it.Days[di].Activities, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating activities: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItinerary(row rowScanner) (*domain.Itinerary, error) {
	var (
		it                   domain.Itinerary
		start, end           string
		createdAt, updatedAt string
	)
	err := row.Scan(&it.ID, &it.Title, &it.Destination, &start, &end, &it.TravelerCount, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning itinerary: %w", err)
	}

	if it.StartDate, err = parseDate("start_date", start); err != nil {
		return nil, err
	}
	if it.EndDate, err = parseDate("end_date", end); err != nil {
		return nil, err
	}
	if it.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if it.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
