package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
)

// Progress Tracker theme (CLI + TUI).

const (
	IconBook     = "📚"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconClock    = "⏱️"
	IconCalendar = "📅"
	IconChart    = "📊"
	IconTarget   = "🎯"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconLock     = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold

	cLight  = lipgloss.AdaptiveColor{Light: "#c6e48b", Dark: "#0e4429"}
	cMedium = lipgloss.AdaptiveColor{Light: "#7bc96f", Dark: "#006d32"}
	cHeavy  = lipgloss.AdaptiveColor{Light: "#239a3b", Dark: "#39d353"}
	cEmpty  = lipgloss.AdaptiveColor{Light: "#ebedf0", Dark: "#161b22"}
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	ActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary).Padding(0, 1)
	Tab        = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)

	cell      = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	todayCell = cell.Copy().Bold(true).Underline(true)
)

// SetDarkMode tells lipgloss which palette the adaptive colors should use.
func SetDarkMode(on bool) {
	lipgloss.SetHasDarkBackground(on)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Hours formats an hour total without a trailing .0.
func Hours(h float64) string {
	return fmt.Sprintf("%gh", engine.Round1(h))
}

func StatusText(status engine.StatusLevel) string {
	switch status {
	case engine.StatusHigh:
		return Good.Render("🟢 High")
	case engine.StatusMedium:
		return Warn.Render("🟡 Medium")
	default:
		return Bad.Render("🔴 Low")
	}
}

func InsightText(in engine.Insight) string {
	style := Good
	if in.Kind == engine.InsightWarning {
		style = Warn
	}
	return fmt.Sprintf("%s %s\n   %s", in.Icon, style.Render(in.Title), Muted.Render(in.Description))
}

func AchievementText(a engine.Achievement) string {
	if a.Earned {
		return fmt.Sprintf("%s %s %s", a.Icon, Gold.Render(a.Name), Muted.Render(a.Description))
	}
	return fmt.Sprintf("%s %s %s", IconLock, Muted.Render(a.Name), Muted.Render(a.Description))
}

func intensityStyle(i engine.Intensity, base lipgloss.Style) lipgloss.Style {
	switch i {
	case engine.IntensityLight:
		return base.Copy().Background(cLight)
	case engine.IntensityMedium:
		return base.Copy().Background(cMedium)
	case engine.IntensityHeavy:
		return base.Copy().Background(cHeavy).Foreground(lipgloss.Color("0"))
	default:
		return base.Copy().Background(cEmpty)
	}
}

// Calendar renders a month grid, Sunday first, colored by study intensity.
func Calendar(c engine.CalendarMonth) string {
	var b strings.Builder
	b.WriteString(H2.Render(fmt.Sprintf("%s %s %d", IconCalendar, c.Grid.Month, c.Grid.Year)))
	b.WriteString("\n")
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(cell.Render(Muted.Render(d)))
	}
	b.WriteString("\n")
	for _, week := range c.Weeks() {
		for _, d := range week {
			if d == nil {
				b.WriteString(cell.Render(""))
				continue
			}
			base := cell
			if d.IsToday {
				base = todayCell
			}
			b.WriteString(intensityStyle(d.Intensity, base).Render(fmt.Sprint(d.Day)))
		}
		b.WriteString("\n")
	}
	b.WriteString(Muted.Render("legend: ") +
		intensityStyle(engine.IntensityNone, lipgloss.NewStyle()).Render(" 0h ") + " " +
		intensityStyle(engine.IntensityLight, lipgloss.NewStyle()).Render(" <5h ") + " " +
		intensityStyle(engine.IntensityMedium, lipgloss.NewStyle()).Render(" 5-8h ") + " " +
		intensityStyle(engine.IntensityHeavy, lipgloss.NewStyle()).Render(" 8h+ "))
	return b.String()
}

// Bar is a plain text bar for CLI output; ratio is clamped to [0,1].
func Bar(ratio float64, width int) string {
	if width < 3 {
		width = 3
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
