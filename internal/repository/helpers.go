package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
)

// formatDate stores a calendar date as YYYY-MM-DD.
func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseDate(column, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(column, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current time truncated to the stored precision, so a
// value written and read back compares equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
