package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItineraryID accepts a full id or a unique id prefix.
func resolveItineraryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("itinerary ID is required")
	}

	list, err := app.Itineraries.List(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range list {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range list {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("itinerary not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("itinerary ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
