package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

type view int

const (
	viewDashboard view = iota
	viewAnalytics
	viewCalendar
	viewCount
)

var viewNames = [...]string{"Dashboard", "Analytics", "Calendar"}

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	keys boardKeys
	help help.Model
	bar  progress.Model

	width  int
	height int

	view  view
	year  int
	month time.Month

	dash     *engine.Dashboard
	analytic *engine.Analytics
	cal      *engine.CalendarMonth

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	dash     engine.Dashboard
	analytic engine.Analytics
	cal      engine.CalendarMonth
	err      error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	now := svc.Now()
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		keys:    newBoardKeys(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		year:    now.Year(),
		month:   now.Month(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	year, month := m.year, m.month
	return func() tea.Msg {
		dash, err := m.svc.Dashboard(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		an, err := m.svc.Analytics(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		cal, err := m.svc.Calendar(m.ctx, year, month)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{dash: dash, analytic: an, cal: cal}
	}
}

// shiftMonth moves the calendar by delta months, normalizing the year.
func (m *boardModel) shiftMonth(delta int) {
	t := time.Date(m.year, m.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	m.year, m.month = t.Year(), t.Month()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.dash, m.analytic, m.cal = &msg.dash, &msg.analytic, &msg.cal
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Next):
			m.view = (m.view + 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.view = (m.view + viewCount - 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.PrevMon), key.Matches(msg, m.keys.NextMon):
			delta := 1
			if key.Matches(msg, m.keys.PrevMon) {
				delta = -1
			}
			m.shiftMonth(delta)
			m.view = viewCalendar
			m.loading = true
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var body string
	switch {
	case m.loading && m.dash == nil:
		body = "Loading…"
	case m.view == viewAnalytics:
		body = m.renderAnalytics()
	case m.view == viewCalendar:
		body = m.renderCalendar()
	default:
		body = m.renderDashboard()
	}
	return m.renderHeader() + "\n\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	tabs := make([]string, 0, viewCount)
	for i, name := range viewNames {
		if view(i) == m.view {
			tabs = append(tabs, ui.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, ui.Tab.Render(name))
		}
	}
	title := ui.Heading(ui.IconBook, "Progress Tracker")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, " "))
}

func (m boardModel) renderDashboard() string {
	d := m.dash
	stats := []string{
		ui.PanelTitle.Render("Overview"),
		ui.LabelValue("Total hours", ui.Hours(d.Totals.Hours)),
		ui.LabelValue("This week", ui.Hours(d.WeekHours)),
		ui.LabelValue("Streak", fmt.Sprintf("%d days %s", d.Streak, ui.IconFire)),
		ui.LabelValue("Avg per log", ui.Hours(d.AvgHours)),
		ui.LabelValue("Problems", d.Totals.Problems),
		ui.LabelValue("Mock tests", d.Totals.MockTests),
	}
	for _, c := range d.Countdowns {
		stats = append(stats, ui.LabelValue(c.Exam, countdownText(c.Countdown)))
	}

	goals := []string{ui.PanelTitle.Render(fmt.Sprintf("Monthly goals (%d%%)", d.Goals.OverallPercent()))}
	for _, g := range d.Goals.Metrics {
		goals = append(goals, fmt.Sprintf("%-16s %s %g/%g", g.Label, m.bar.ViewAs(clampRatio(g.Percent/100)), g.Actual, g.Target))
	}

	week := []string{ui.PanelTitle.Render("Last 7 days")}
	for _, p := range d.WeeklyHours {
		week = append(week, fmt.Sprintf("%s %s %s", p.Date, ui.Bar(p.Hours/12, 20), ui.Hours(p.Hours)))
	}

	recent := []string{ui.PanelTitle.Render("Recent activity")}
	if len(d.Recent) == 0 {
		recent = append(recent, ui.Muted.Render("(no logs yet)"))
	}
	for _, l := range d.Recent {
		subject := l.Subject
		if subject == "" {
			subject = "-"
		}
		recent = append(recent, fmt.Sprintf("%s %s %s", l.Date, ui.Hours(l.StudyHours), subject))
	}

	badges := []string{ui.PanelTitle.Render("Achievements")}
	for _, a := range d.Achievements {
		badges = append(badges, ui.AchievementText(a))
	}

	left := ui.Panel.Render(strings.Join(stats, "\n"))
	right := ui.Panel.Render(strings.Join(goals, "\n"))
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Render(strings.Join(week, "\n")), " ",
		ui.Panel.Render(strings.Join(recent, "\n")))
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2,
		ui.Panel.Render(strings.Join(badges, "\n")),
		ui.Muted.Render("“"+d.Quote+"”"))
}

func (m boardModel) renderAnalytics() string {
	a := m.analytic
	summary := []string{
		ui.PanelTitle.Render("Consistency"),
		ui.LabelValue("Current streak", a.Consistency.CurrentStreak),
		ui.LabelValue("Longest streak", a.Consistency.LongestStreak),
		ui.LabelValue("Study days this month", fmt.Sprintf("%d (%d%%)", a.Consistency.MonthStudyDays, a.Consistency.MonthPercent)),
		ui.LabelValue("Avg per study day", ui.Hours(a.AvgPerStudyDay)),
	}

	subjects := []string{ui.PanelTitle.Render("Subjects")}
	if len(a.Subjects) == 0 {
		subjects = append(subjects, ui.Muted.Render("(no subjects)"))
	}
	for _, s := range a.Subjects {
		subjects = append(subjects, fmt.Sprintf("%-20s %3d%% %s %s", s.Name, s.Completion, ui.Hours(s.HoursSpent), ui.StatusText(s.Status)))
	}

	weekday := []string{ui.PanelTitle.Render("By weekday")}
	for _, w := range a.Weekday {
		weekday = append(weekday, fmt.Sprintf("%-3s %s %s", w.Day.String()[:3], ui.Bar(w.Average/12, 16), ui.Hours(w.Average)))
	}

	insights := []string{ui.PanelTitle.Render("Insights")}
	if len(a.Insights) == 0 {
		insights = append(insights, ui.Muted.Render("Keep logging to unlock insights."))
	}
	for _, in := range a.Insights {
		insights = append(insights, ui.InsightText(in))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Render(strings.Join(summary, "\n")), " ",
		ui.Panel.Render(strings.Join(weekday, "\n")))
	return lipgloss.JoinVertical(lipgloss.Left, row,
		ui.Panel.Render(strings.Join(subjects, "\n")),
		ui.Panel.Render(strings.Join(insights, "\n")))
}

func (m boardModel) renderCalendar() string {
	if m.cal == nil {
		return "Loading…"
	}
	st := m.cal.Stats
	stats := strings.Join([]string{
		ui.PanelTitle.Render("Month"),
		ui.LabelValue("Hours", ui.Hours(st.Hours)),
		ui.LabelValue("Study days", st.StudyDays),
		ui.LabelValue("Avg per study day", ui.Hours(st.AvgPerStudyDay)),
		ui.LabelValue("Longest streak", st.LongestStreak),
		ui.LabelValue("Mock tests", st.MockTests),
	}, "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Render(ui.Calendar(*m.cal)), " ", ui.Panel.Render(stats))
}

func (m boardModel) renderFooter() string {
	return "\n" + ui.Muted.Render(m.lastLog) + "\n" + m.help.View(m.keys)
}

func countdownText(c engine.Countdown) string {
	if c.Passed {
		return "passed"
	}
	return fmt.Sprintf("%dd %dh %dm", c.Days, c.Hours, c.Minutes)
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
