package domain

import "math"

// Budget maps each category to a spending ceiling. Missing categories read as 0.
type Budget map[Category]float64

// Spend maps each category to the summed activity cost.
type Spend map[Category]float64

// DefaultBudget returns the ceilings a new trip starts with.
func DefaultBudget() Budget {
	return Budget{
		CategoryAccommodation:  1200,
		CategoryActivities:     800,
		CategoryTransportation: 600,
		CategoryMeals:          900,
		CategoryShopping:       400,
		CategoryMiscellaneous:  300,
	}
}

// Validate rejects unknown categories and negative or non-finite ceilings.
func (b Budget) Validate() error {
	for c, v := range b {
		if !c.Valid() {
			return invalid("budget category", "unknown category %q", c)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("budget", "%s ceiling %v must be a non-negative amount", c, v)
		}
	}
	return nil
}

// Total sums the ceilings of all categories.
func (b Budget) Total() float64 {
	var total float64
	for _, c := range Categories {
		total += b[c]
	}
	return total
}

// Aggregate sums activity costs per category across every day. Every
// category is present in the result, with 0 when nothing uses it.
// Activities without a known category count as activities.
func Aggregate(it Itinerary) Spend {
	spend := make(Spend, len(Categories))
	for _, c := range Categories {
		spend[c] = 0
	}
	for _, d := range it.Days {
		for _, a := range d.Activities {
			c := a.Category
			if !c.Valid() {
				c = CategoryActivities
			}
			spend[c] += a.Cost
		}
	}
	return spend
}

// Remaining returns ceiling minus spend per category. Negative values mean
// overspend and are not an error.
func Remaining(b Budget, s Spend) map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		out[c] = b[c] - s[c]
	}
	return out
}

// TotalSpent sums spend across all categories.
func TotalSpent(s Spend) float64 {
	var total float64
	for _, c := range Categories {
		total += s[c]
	}
	return total
}

// PercentUsed returns spend/ceiling*100 per category. A zero ceiling yields 0
// regardless of spend; use Overspent to detect spend against a zero ceiling.
func PercentUsed(b Budget, s Spend) map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		if b[c] == 0 {
			out[c] = 0
			continue
		}
		out[c] = s[c] / b[c] * 100
	}
	return out
}

// Overspent lists, in canonical order, the categories whose spend exceeds
// the ceiling. This includes any nonzero spend against a zero ceiling.
func Overspent(b Budget, s Spend) []Category {
	var over []Category
	for _, c := range Categories {
		if s[c] > b[c] {
			over = append(over, c)
		}
	}
	return over
}

// SpendLevelFor maps a percent-used value to a level: above 90 is critical,
// above 75 is a warning.
func SpendLevelFor(percent float64) SpendLevel {
	switch {
	case percent > 90:
		return SpendCritical
	case percent > 75:
		return SpendWarning
	default:
		return SpendOK
	}
}

// BudgetLine is one category row of a BudgetReport.
type BudgetLine struct {
	Category  Category
	Ceiling   float64
	Spent     float64
	Remaining float64
	Percent   float64
	Level     SpendLevel
	Overspent bool
}

// BudgetReport is a read-only snapshot of spend against a budget.
type BudgetReport struct {
	Lines          []BudgetLine
	TotalBudget    float64
	TotalSpent     float64
	TotalRemaining float64
	TotalPercent   float64
	Overspent      []Category
	// Savings holds tips for the categories at warning level or worse.
	Savings []SavingsTip
}

// BuildBudgetReport aggregates it and compares the result against b.
func BuildBudgetReport(b Budget, it Itinerary) BudgetReport {
	spend := Aggregate(it)
	remaining := Remaining(b, spend)
	percent := PercentUsed(b, spend)

	r := BudgetReport{
		TotalBudget: b.Total(),
		TotalSpent:  TotalSpent(spend),
		Overspent:   Overspent(b, spend),
	}
	r.TotalRemaining = r.TotalBudget - r.TotalSpent
	if r.TotalBudget > 0 {
		r.TotalPercent = r.TotalSpent / r.TotalBudget * 100
	}

	for _, c := range Categories {
		line := BudgetLine{
			Category:  c,
			Ceiling:   b[c],
			Spent:     spend[c],
			Remaining: remaining[c],
			Percent:   percent[c],
			Level:     SpendLevelFor(percent[c]),
			Overspent: spend[c] > b[c],
		}
		if line.Overspent {
			line.Level = SpendCritical
		}
		r.Lines = append(r.Lines, line)
	}
	r.Savings = SavingsTips(r.Lines)
	return r
}

// Line returns the report row for c.
func (r BudgetReport) Line(c Category) (BudgetLine, bool) {
	for _, l := range r.Lines {
		if l.Category == c {
			return l, true
		}
	}
	return BudgetLine{}, false
}
