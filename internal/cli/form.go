package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itineraHuhTheme returns a huh theme using the Gruvbox palette.
func itineraHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// activityFormValues backs the interactive add form. Text inputs stay
// strings until the form is submitted.
type activityFormValues struct {
	Title    string
	Location string
	Start    string
	End      string
	Cost     string
	Category domain.Category
	Status   domain.ActivityStatus
	Crowd    domain.CrowdLevel
}

func activityForm(v *activityFormValues) *huh.Form {
	categories := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, huh.NewOption(string(c), c))
	}
	statuses := make([]huh.Option[domain.ActivityStatus], 0, len(domain.ActivityStatuses))
	for _, s := range domain.ActivityStatuses {
		statuses = append(statuses, huh.NewOption(string(s), s))
	}
	crowds := make([]huh.Option[domain.CrowdLevel], 0, len(domain.CrowdLevels))
	for _, c := range domain.CrowdLevels {
		crowds = append(crowds, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&v.Title).Validate(validateRequired),
			huh.NewInput().Title("Location").Placeholder("optional").Value(&v.Location),
			huh.NewInput().Title("Start (HH:MM)").Placeholder("09:00").Value(&v.Start).Validate(validateClock),
			huh.NewInput().Title("End (HH:MM)").Placeholder("10:00").Value(&v.End).Validate(validateClock),
			huh.NewInput().Title("Cost").Placeholder("0").Value(&v.Cost).Validate(validateCost),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Category]().Title("Category").Options(categories...).Value(&v.Category),
			huh.NewSelect[domain.ActivityStatus]().Title("Status").Options(statuses...).Value(&v.Status),
			huh.NewSelect[domain.CrowdLevel]().Title("Crowd level").Options(crowds...).Value(&v.Crowd),
		),
	).WithTheme(itineraHuhTheme()).WithShowHelp(false)
}

// apply copies the submitted form values onto a.
func (v activityFormValues) apply(a *domain.Activity) error {
	a.Title = v.Title
	a.Location = v.Location
	a.Category = v.Category
	a.Status = v.Status
	a.CrowdLevel = v.Crowd

	var err error
	if a.Start, err = domain.ParseClockTime(v.Start); err != nil {
		return err
	}
	if a.End, err = domain.ParseClockTime(v.End); err != nil {
		return err
	}
	if strings.TrimSpace(v.Cost) != "" {
		if a.Cost, err = strconv.ParseFloat(strings.TrimSpace(v.Cost), 64); err != nil {
			return fmt.Errorf("invalid cost %q", v.Cost)
		}
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := domain.ParseClockTime(s); err != nil {
		return fmt.Errorf("use HH:MM, 00:00 to 23:59")
	}
	return nil
}

// validateCost accepts empty or a non-negative amount.
func validateCost(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}
