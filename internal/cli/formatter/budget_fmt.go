package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
)

const usageBarWidth = 10

// FormatBudgetReport renders spend against ceilings per category, in the
// report's canonical order.
func FormatBudgetReport(title string, r *domain.BudgetReport, currency string) string {
	var b strings.Builder
	b.WriteString(Header("Budget: " + title))
	b.WriteString("\n")

	headers := []string{"CATEGORY", "BUDGET", "SPENT", "REMAINING", "USED", "LEVEL"}
	rows := make([][]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		remaining := Money(currency, l.Remaining)
		level := SpendIndicator(l.Level)
		if l.Overspent {
			remaining = StyleRed.Render(remaining)
			level = StyleRed.Render("▲ OVERSPENT")
		}
		rows = append(rows, []string{
			CategoryBadge(l.Category),
			Money(currency, l.Ceiling),
			Money(currency, l.Spent),
			remaining,
			RenderUsage(l.Percent, usageBarWidth, SpendColor(l.Level).Render),
			level,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s of %s (%.0f%%)\n",
		Bold("Total spent:"),
		Money(currency, r.TotalSpent),
		Money(currency, r.TotalBudget),
		r.TotalPercent,
	))
	remaining := Money(currency, r.TotalRemaining)
	if r.TotalRemaining < 0 {
		remaining = StyleRed.Render(remaining)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Remaining:  "), remaining))

	if len(r.Overspent) > 0 {
		names := make([]string, 0, len(r.Overspent))
		for _, c := range r.Overspent {
			names = append(names, string(c))
		}
		b.WriteString(StyleRed.Render("Over budget: "+strings.Join(names, ", ")) + "\n")
	}
	return b.String()
}

// FormatSavingsTips lists the report's savings tips with the potential total.
func FormatSavingsTips(tips []domain.SavingsTip, currency string) string {
	if len(tips) == 0 {
		return Dim("No savings tips: every category is comfortably within budget.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Savings tips"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(tips))
	for _, t := range tips {
		rows = append(rows, []string{
			CategoryBadge(t.Category),
			Bold(t.Title),
			t.Description,
			StyleGreen.Render("save " + Money(currency, t.Savings)),
			DifficultyBadge(t.Difficulty),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "TIP", "HOW", "SAVINGS", "EFFORT"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Potential savings:"), Money(currency, domain.PotentialSavings(tips))))
	return b.String()
}

// FormatBudget renders the raw ceilings, one line per category.
func FormatBudget(b domain.Budget, currency string) string {
	rows := make([][]string, 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		rows = append(rows, []string{CategoryBadge(c), Money(currency, b[c])})
	}
	rows = append(rows, []string{Bold("Total"), Bold(Money(currency, b.Total()))})
	return RenderTable([]string{"CATEGORY", "BUDGET"}, rows)
}
