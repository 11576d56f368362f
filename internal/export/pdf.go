// Package export renders itineraries into shareable documents.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// Options controls PDF rendering.
type Options struct {
	// CurrencySymbol prefixes every amount. Defaults to "$".
	CurrencySymbol string
}

const (
	pageWidth    = 210.0
	marginX      = 20.0
	contentWidth = pageWidth - 2*marginX
)

// RenderPDF lays out the trip summary, one timeline table per day and the
// budget report on A4 pages.
func RenderPDF(it *domain.Itinerary, report *domain.BudgetReport, opts Options) ([]byte, error) {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 20, marginX)
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetTitle(it.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := func(v float64) string {
		return tr(fmt.Sprintf("%s%.2f", opts.CurrencySymbol, v))
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(marginX, pdf.GetY(), pageWidth-marginX, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s  |  page %d", tr(it.Title), pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(40, 40, 40)
	pdf.Rect(0, 0, pageWidth, 28, "F")
	pdf.SetTextColor(251, 241, 199)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginX, 7)
	pdf.CellFormat(contentWidth, 10, tr(it.Title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(250, 189, 47)
	pdf.SetXY(marginX, 17)
	pdf.CellFormat(contentWidth, 6, tr(it.Destination), "", 1, "L", false, 0, "")
	pdf.SetY(35)

	sectionHeader := func(title string) {
		pdf.SetFillColor(40, 40, 40)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth-50, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Dates", fmt.Sprintf("%s - %s", readableDate(it.StartDate), readableDate(it.EndDate)))
	row("Length", domain.Plural(len(it.Days), "day"))
	row("Travelers", fmt.Sprintf("%d", it.TravelerCount))
	row("Activities", fmt.Sprintf("%d", it.ActivityCount()))
	if report != nil {
		row("Planned spend", money(report.TotalSpent))
	}
	pdf.Ln(4)

	cols := []struct {
		title string
		width float64
		align string
	}{
		{"Time", 28, "L"},
		{"Activity", 62, "L"},
		{"Category", 30, "L"},
		{"Status", 24, "L"},
		{"Cost", 26, "R"},
	}
	for i, d := range it.Days {
		sectionHeader(fmt.Sprintf("Day %d  %s", i+1, readableDate(d.Date)))
		if len(d.Activities) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(130, 130, 130)
			pdf.CellFormat(contentWidth, 7, "Nothing planned", "", 1, "L", false, 0, "")
			pdf.Ln(3)
			continue
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 219, 178)
		pdf.SetTextColor(40, 40, 40)
		for _, c := range cols {
			pdf.CellFormat(c.width, 7, c.title, "B", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, a := range d.Activities {
			title := a.Title
			if a.Location != "" {
				title += " @ " + a.Location
			}
			cells := []string{
				fmt.Sprintf("%s-%s", a.Start, a.End),
				tr(truncate(title, 40)),
				string(a.Category),
				string(a.Status),
				money(a.Cost),
			}
			if a.Status == domain.StatusCancelled {
				pdf.SetTextColor(150, 150, 150)
			} else {
				pdf.SetTextColor(20, 20, 20)
			}
			for j, c := range cols {
				pdf.CellFormat(c.width, 6, cells[j], "", 0, c.align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(contentWidth-26, 7, fmt.Sprintf("%s scheduled", domain.FormatDuration(d.TotalMinutes())), "T", 0, "R", false, 0, "")
		pdf.CellFormat(26, 7, money(d.TotalCost()), "T", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	if report != nil {
		sectionHeader("Budget")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 219, 178)
		for _, h := range []string{"Category", "Budget", "Spent", "Remaining", "Used"} {
			pdf.CellFormat(contentWidth/5, 7, h, "B", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, l := range report.Lines {
			used := fmt.Sprintf("%.0f%%", l.Percent)
			if l.Overspent {
				used = "OVER"
			}
			r, g, b := levelColor(l.Level)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(contentWidth/5, 6, string(l.Category), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentWidth/5, 6, money(l.Ceiling), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentWidth/5, 6, money(l.Spent), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentWidth/5, 6, money(l.Remaining), "", 0, "L", false, 0, "")
			pdf.SetTextColor(r, g, b)
			pdf.CellFormat(contentWidth/5, 6, used, "", 1, "L", false, 0, "")
		}

		pdf.SetFillColor(250, 189, 47)
		pdf.SetTextColor(40, 40, 40)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth/5, 8, "TOTAL", "", 0, "L", true, 0, "")
		pdf.CellFormat(contentWidth/5, 8, money(report.TotalBudget), "", 0, "L", true, 0, "")
		pdf.CellFormat(contentWidth/5, 8, money(report.TotalSpent), "", 0, "L", true, 0, "")
		pdf.CellFormat(contentWidth/5, 8, money(report.TotalRemaining), "", 0, "L", true, 0, "")
		pdf.CellFormat(contentWidth/5, 8, fmt.Sprintf("%.0f%%", report.TotalPercent), "", 1, "L", true, 0, "")

		if len(report.Savings) > 0 {
			pdf.Ln(4)
			sectionHeader("Savings tips")
			for _, t := range report.Savings {
				pdf.SetFont("Helvetica", "B", 9)
				pdf.SetTextColor(20, 20, 20)
				pdf.CellFormat(contentWidth-50, 6, tr(fmt.Sprintf("%s (%s)", t.Title, t.Category)), "", 0, "L", false, 0, "")
				pdf.SetTextColor(152, 151, 26)
				pdf.CellFormat(30, 6, "save "+money(t.Savings), "", 0, "R", false, 0, "")
				pdf.SetTextColor(100, 100, 100)
				pdf.CellFormat(20, 6, string(t.Difficulty), "", 1, "R", false, 0, "")
				pdf.SetFont("Helvetica", "", 9)
				pdf.MultiCell(contentWidth, 5, tr(t.Description), "", "L", false)
			}
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetTextColor(40, 40, 40)
			pdf.CellFormat(contentWidth, 7, "Potential savings: "+money(domain.PotentialSavings(report.Savings)), "T", 1, "R", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func levelColor(l domain.SpendLevel) (r, g, b int) {
	switch l {
	case domain.SpendCritical:
		return 204, 36, 29
	case domain.SpendWarning:
		return 215, 153, 33
	default:
		return 152, 151, 26
	}
}

func readableDate(t time.Time) string {
	return t.Format("Mon 02 Jan 2006")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "..."
}
