package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/domain"
)

type weekKeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Quit     key.Binding
}

func defaultWeekKeys() weekKeyMap {
	return weekKeyMap{
		PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// weekModel is a read-only pager over one stored schedule, one week at a time.
type weekModel struct {
	schedule *app.Schedule
	horizon  domain.Horizon
	week     int
	keys     weekKeyMap
	viewport viewport.Model
	ready    bool
}

func newWeekModel(s *app.Schedule) *weekModel {
	return &weekModel{
		schedule: s,
		horizon:  domain.Horizon{Start: s.HorizonStart, End: s.HorizonEnd},
		keys:     defaultWeekKeys(),
	}
}

func (m *weekModel) Init() tea.Cmd {
	return nil
}

func (m *weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevWeek):
			if m.week > 0 {
				m.week--
				m.viewport.SetContent(m.weekContent())
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextWeek):
			if m.week < m.horizon.Weeks()-1 {
				m.week++
				m.viewport.SetContent(m.weekContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.weekContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *weekModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m *weekModel) headerView() string {
	week := m.horizon.Week(m.week)
	title := fmt.Sprintf("Week %d of %d  %s to %s",
		m.week+1, m.horizon.Weeks(),
		week.Start.Format("Jan 2"),
		week.End.AddDate(0, 0, -1).Format("Jan 2"))
	return formatter.Header(title) + "\n"
}

func (m *weekModel) footerView() string {
	return formatter.Dim("←/→ week  ↑/↓ scroll  q quit")
}

// weekContent renders the sessions and unplaced requests of the current week.
func (m *weekModel) weekContent() string {
	week := m.horizon.Week(m.week)
	var b strings.Builder

	var lastDay string
	count := 0
	for _, sess := range m.schedule.Sessions {
		if sess.Start.Before(week.Start) || !sess.Start.Before(week.End) {
			continue
		}
		count++
		day := sess.Start.Format("Monday, Jan 2")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(formatter.StyleBlue.Render(day) + "\n")
			lastDay = day
		}
		b.WriteString(fmt.Sprintf("  %s-%s  %s %s\n",
			sess.Start.Format("15:04"),
			sess.End.Format("15:04"),
			sess.ClientName,
			formatter.Dim(fmt.Sprintf("(%s)", formatter.FormatMinutes(sess.DurationMin())))))
	}
	if count == 0 {
		b.WriteString(formatter.Dim("No sessions this week.") + "\n")
	}

	first := true
	for _, u := range m.schedule.Unplaced {
		if u.WeekIndex != m.week {
			continue
		}
		if first {
			b.WriteString("\n" + formatter.StyleRed.Render("Unplaced") + "\n")
			first = false
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", u.ClientName, formatter.ReasonPill(string(u.Reason))))
	}

	return b.String()
}
