package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type timelineKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Grab  key.Binding
	Quit  key.Binding
}

func (k timelineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Grab, k.Quit}
}

func (k timelineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultTimelineKeys() timelineKeyMap {
	return timelineKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Grab:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "grab/drop")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// movedMsg carries the saved itinerary after a move and where the moved
// activity landed.
type movedMsg struct {
	it       *domain.Itinerary
	day, idx int
}

type timelineErrMsg struct{ err error }

// timelineModel shows one column per day. Grabbing an activity and pressing
// a direction key moves it; each move is saved immediately.
type timelineModel struct {
	ctx      context.Context
	svc      service.ItineraryService
	it       *domain.Itinerary
	currency string

	day, idx int
	holding  bool
	// moving is set while a saved move has not come back yet; the cursor
	// is stale until it does.
	moving bool
	err    error

	keys  timelineKeyMap
	help  help.Model
	width int
}

func newTimelineModel(ctx context.Context, svc service.ItineraryService, it *domain.Itinerary, currency string) *timelineModel {
	return &timelineModel{
		ctx:      ctx,
		svc:      svc,
		it:       it,
		currency: currency,
		keys:     defaultTimelineKeys(),
		help:     help.New(),
	}
}

func (m *timelineModel) Init() tea.Cmd { return nil }

func (m *timelineModel) dayLen(day int) int {
	return len(m.it.Days[day].Activities)
}

func (m *timelineModel) clampCursor() {
	m.idx = max(min(m.idx, m.dayLen(m.day)-1), 0)
}

func (m *timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case movedMsg:
		m.it = msg.it
		m.day, m.idx = msg.day, msg.idx
		m.moving = false
		m.err = nil
		return m, nil

	case timelineErrMsg:
		m.err = msg.err
		m.holding = false
		m.moving = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *timelineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Grab):
		if m.dayLen(m.day) > 0 {
			m.holding = !m.holding
		}
		return m, nil
	}

	if m.holding {
		if m.moving {
			return m, nil
		}
		cmd := m.moveHeld(msg)
		m.moving = cmd != nil
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.idx < m.dayLen(m.day)-1 {
			m.idx++
		}
	case key.Matches(msg, m.keys.Left):
		if m.day > 0 {
			m.day--
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Right):
		if m.day < len(m.it.Days)-1 {
			m.day++
			m.clampCursor()
		}
	}
	return m, nil
}

// moveHeld turns a direction key into a Move for the held activity. Moving
// to another day appends it to the end of that day.
func (m *timelineModel) moveHeld(msg tea.KeyMsg) tea.Cmd {
	mv := domain.Move{SourceDay: m.day, SourceIndex: m.idx, DestDay: m.day}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.idx == 0 {
			return nil
		}
		mv.DestIndex = m.idx - 1
	case key.Matches(msg, m.keys.Down):
		if m.idx >= m.dayLen(m.day)-1 {
			return nil
		}
		mv.DestIndex = m.idx + 1
	case key.Matches(msg, m.keys.Left):
		if m.day == 0 {
			return nil
		}
		mv.DestDay = m.day - 1
		mv.DestIndex = m.dayLen(mv.DestDay)
	case key.Matches(msg, m.keys.Right):
		if m.day == len(m.it.Days)-1 {
			return nil
		}
		mv.DestDay = m.day + 1
		mv.DestIndex = m.dayLen(mv.DestDay)
	default:
		return nil
	}

	ctx, svc, id := m.ctx, m.svc, m.it.ID
	return func() tea.Msg {
		it, err := svc.MoveActivity(ctx, id, mv)
		if err != nil {
			return timelineErrMsg{err: err}
		}
		return movedMsg{it: it, day: mv.DestDay, idx: mv.DestIndex}
	}
}

var (
	timelineColumn = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1).
			Width(26)
	timelineActiveColumn = timelineColumn.BorderForeground(formatter.ColorHeader)
	timelineCursor       = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	timelineHeld         = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Bold(true)
)

func (m *timelineModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Bold(m.it.Title))
	b.WriteString(formatter.Dim("  " + formatter.DateRange(m.it.StartDate, m.it.EndDate)))
	b.WriteString("\n\n")

	cols := make([]string, 0, len(m.it.Days))
	for di, d := range m.it.Days {
		var c strings.Builder
		c.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("Day %d", di+1)))
		c.WriteString(formatter.Dim(" " + formatter.DayLabel(d.Date)))
		c.WriteString("\n")
		if len(d.Activities) == 0 {
			c.WriteString(formatter.Dim("(empty)"))
		}
		for ai, a := range d.Activities {
			line := fmt.Sprintf("%s %s", a.Start, a.Title)
			switch {
			case di == m.day && ai == m.idx && m.holding:
				line = timelineHeld.Render("≡ " + line)
			case di == m.day && ai == m.idx:
				line = timelineCursor.Render("▸ " + line)
			default:
				line = "  " + line
			}
			c.WriteString(line + "\n")
		}
		c.WriteString(formatter.Dim(formatter.Money(m.currency, d.TotalCost())))

		style := timelineColumn
		if di == m.day {
			style = timelineActiveColumn
		}
		cols = append(cols, style.Render(c.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline ITINERARY",
		Short: "Reorder activities across days interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timeline needs a terminal; use 'activity move' instead")
			}
			ctx := cmd.Context()
			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Itineraries.Get(ctx, id)
			if err != nil {
				return err
			}
			_, err = app.runProgram(newTimelineModel(ctx, app.Itineraries, it, app.currency()))
			return err
		},
	}
}
