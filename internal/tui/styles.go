package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/model"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorSecondary = lipgloss.Color("#2EC4B6")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Dashboard cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 2).
			Align(lipgloss.Center)

	cardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Calendar cells
	dayCellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Right)

	weekendDayStyle = dayCellStyle.
			Foreground(colorMuted)

	holidayDayStyle = dayCellStyle.
			Foreground(colorAccent)

	customDayStyle = dayCellStyle.
			Foreground(colorWarning)

	workingDayStyle = dayCellStyle.
			Foreground(colorFg)

	selectedDayStyle = dayCellStyle.
				Bold(true).
				Reverse(true)
)

func alertStyle(level aggregate.AlertLevel) lipgloss.Style {
	switch level {
	case aggregate.AlertOver:
		return errorStyle
	case aggregate.AlertWarning:
		return warningStyle
	}
	return successStyle
}

func dayStyle(kind calendar.Kind) lipgloss.Style {
	switch kind {
	case calendar.KindWeekend:
		return weekendDayStyle
	case calendar.KindHoliday:
		return holidayDayStyle
	case calendar.KindCustomNonWorking:
		return customDayStyle
	}
	return workingDayStyle
}

func entryStatusStyle(s model.EntryStatus) lipgloss.Style {
	switch s {
	case model.EntryValidated:
		return successStyle
	case model.EntryRejected:
		return errorStyle
	}
	return warningStyle
}

func statusStyle(active bool) lipgloss.Style {
	if active {
		return successStyle
	}
	return mutedStyle
}
