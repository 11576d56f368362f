package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Document is the plain-data form of an itinerary with its budget. Dates are
// YYYY-MM-DD and times are HH:MM.
type Document struct {
	Itinerary ItineraryImport    `json:"itinerary"`
	Days      []DayImport        `json:"days"`
	Budget    map[string]float64 `json:"budget,omitempty"`
}

// ItineraryImport holds the trip-level fields. An empty ID is assigned on
// conversion.
type ItineraryImport struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Destination   string `json:"destination"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TravelerCount int    `json:"traveler_count"`
}

// DayImport lists the activities of one date in display order. Dates in
// range that have no entry become empty days.
type DayImport struct {
	Date       string           `json:"date"`
	Activities []ActivityImport `json:"activities"`
}

type ActivityImport struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Location    string  `json:"location,omitempty"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Cost        float64 `json:"cost"`
	Category    string  `json:"category,omitempty"`
	CrowdLevel  string  `json:"crowd_level,omitempty"`
	Status      string  `json:"status,omitempty"`
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	BookingURL  string  `json:"booking_url,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// LoadDocument reads and parses an itinerary JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument decodes a JSON document. Unknown fields are rejected so
// typos surface instead of being dropped.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing itinerary document: %w", err)
	}
	return &doc, nil
}
