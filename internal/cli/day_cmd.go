package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDayCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Browse days: targets, food log and weigh-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateArg(date, a.today())
			if err != nil {
				return err
			}
			m := newDayModel(a, start)

			if !a.IsInteractive {
				view, err := m.load(m.date)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderDay(view, m.today))
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to open (YYYY-MM-DD, today, yesterday, or -N days)")

	return cmd
}

// dayKeyMap is the navigator's key bindings.
type dayKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k dayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Help, k.Quit}
}

func (k dayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Today}, {k.Help, k.Quit}}
}

func newDayKeyMap() dayKeyMap {
	return dayKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dayLoadedMsg carries a loaded day back to the model.
type dayLoadedMsg struct {
	date time.Time
	view *app.DayView
	err  error
}

// dayModel navigates between calendar days. The selected date is the only
// state it keeps; targets are recomputed on every load.
type dayModel struct {
	app   *App
	today time.Time
	date  time.Time

	view    *app.DayView
	err     error
	loading bool

	keys dayKeyMap
	help help.Model
}

func newDayModel(a *App, start time.Time) dayModel {
	today := a.today()
	date := domain.Day(start)
	if date.After(today) {
		date = today
	}
	return dayModel{
		app:     a,
		today:   today,
		date:    date,
		loading: true,
		keys:    newDayKeyMap(),
		help:    help.New(),
	}
}

func (m dayModel) load(date time.Time) (*app.DayView, error) {
	return m.app.Day.Day(context.Background(), app.TargetsRequest{UserID: m.app.DefaultUser, Date: date})
}

func (m dayModel) loadCmd() tea.Cmd {
	date := m.date
	return func() tea.Msg {
		view, err := m.load(date)
		return dayLoadedMsg{date: date, view: view, err: err}
	}
}

func (m dayModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		// Drop results for a day the user already navigated away from.
		if !msg.date.Equal(m.date) {
			return m, nil
		}
		m.loading = false
		m.view, m.err = msg.view, msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			return m.moveTo(m.date.AddDate(0, 0, -1))
		case key.Matches(msg, m.keys.Next):
			return m.moveTo(m.date.AddDate(0, 0, 1))
		case key.Matches(msg, m.keys.Today):
			return m.moveTo(m.today)
		}
	}
	return m, nil
}

// moveTo selects date and reloads. Days after today are not reachable.
func (m dayModel) moveTo(date time.Time) (tea.Model, tea.Cmd) {
	if date.After(m.today) || date.Equal(m.date) {
		return m, nil
	}
	m.date = date
	m.loading = true
	return m, m.loadCmd()
}

func (m dayModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading " + m.date.Format(domain.DateLayout) + "..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	default:
		b.WriteString(renderDay(m.view, m.today))
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func renderDay(view *app.DayView, today time.Time) string {
	return formatter.RenderBox("Targets", formatter.FormatTargets(view, today)) + "\n" +
		formatter.RenderBox("Food", formatter.FormatFoodLog(view.Entries, view.ByMeal)) + "\n"
}
