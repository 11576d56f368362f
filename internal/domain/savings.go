package domain

import "math"

// Difficulty rates how much effort a savings tip takes.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SavingsTip is a fixed suggestion for cutting spend in one category.
type SavingsTip struct {
	Category    Category
	Title       string
	Description string
	// Savings is the estimated amount saved, never more than the
	// category's current spend.
	Savings    float64
	Difficulty Difficulty
}

var savingsCatalog = map[Category]SavingsTip{
	CategoryAccommodation: {
		Title:       "Shared accommodation",
		Description: "Switch to a hostel or shared flat for part of the stay",
		Savings:     150,
		Difficulty:  DifficultyHard,
	},
	CategoryActivities: {
		Title:       "Free walking tours",
		Description: "Replace paid tours with free alternatives",
		Savings:     200,
		Difficulty:  DifficultyMedium,
	},
	CategoryTransportation: {
		Title:       "Public transportation",
		Description: "Use the metro instead of taxis for city travel",
		Savings:     85,
		Difficulty:  DifficultyEasy,
	},
	CategoryMeals: {
		Title:       "Off-peak dining",
		Description: "Eat the main meal at lunch instead of dinner",
		Savings:     120,
		Difficulty:  DifficultyEasy,
	},
	CategoryShopping: {
		Title:       "Local markets",
		Description: "Buy gifts at markets rather than shops near the sights",
		Savings:     60,
		Difficulty:  DifficultyEasy,
	},
	CategoryMiscellaneous: {
		Title:       "City pass",
		Description: "Bundle entry fees and transit into a city pass",
		Savings:     50,
		Difficulty:  DifficultyMedium,
	},
}

// SavingsTips returns one tip per report line at warning level or worse,
// in the lines' order. Categories with nothing spent get no tip.
func SavingsTips(lines []BudgetLine) []SavingsTip {
	var tips []SavingsTip
	for _, l := range lines {
		if l.Level == SpendOK || l.Spent <= 0 {
			continue
		}
		tip, ok := savingsCatalog[l.Category]
		if !ok {
			continue
		}
		tip.Category = l.Category
		tip.Savings = math.Min(tip.Savings, l.Spent)
		tips = append(tips, tip)
	}
	return tips
}

// PotentialSavings sums the estimated savings of tips.
func PotentialSavings(tips []SavingsTip) float64 {
	var total float64
	for _, t := range tips {
		total += t.Savings
	}
	return total
}
