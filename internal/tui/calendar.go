package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
)

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type calendarModel struct {
	env    *env
	width  int
	height int

	snap model.Snapshot
	ix   *model.Index

	year         int
	month        time.Month
	day          int // selected day of month, 1-based
	collaborator string
}

func newCalendarModel(e *env) calendarModel {
	now := e.now()
	return calendarModel{
		env:   e,
		ix:    model.NewIndex(model.Snapshot{}),
		year:  now.Year(),
		month: now.Month(),
		day:   now.Day(),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c *calendarModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	c.snap = snap
	c.ix = ix
}

func (c calendarModel) first() time.Time {
	return time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC)
}

func (c calendarModel) daysInMonth() int {
	return c.first().AddDate(0, 1, -1).Day()
}

func (c calendarModel) selectedDate() string {
	return model.FormatDate(time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC))
}

// move shifts the selection by days, crossing month boundaries.
func (c *calendarModel) move(days int) {
	t := time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	c.year, c.month, c.day = t.Year(), t.Month(), t.Day()
}

func (c *calendarModel) shiftMonth(delta int) {
	t := c.first().AddDate(0, delta, 0)
	c.year, c.month = t.Year(), t.Month()
	c.day = min(c.day, c.daysInMonth())
}

func (c calendarModel) build() calendar.Month {
	cal := calendar.New(c.env.holidays, c.snap.Overrides)
	entries := filter.TimeEntries(c.ix, c.snap.TimeEntries, filter.Criteria{CollaboratorID: c.collaborator})
	return cal.BuildMonth(c.year, c.month, entries)
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(km, keys.Left):
		c.move(-1)
	case key.Matches(km, keys.Right):
		c.move(1)
	case key.Matches(km, keys.Up):
		c.move(-7)
	case key.Matches(km, keys.Down):
		c.move(7)
	case key.Matches(km, keys.PrevMonth):
		c.shiftMonth(-1)
	case key.Matches(km, keys.NextMonth):
		c.shiftMonth(1)
	case key.Matches(km, keys.FilterCol):
		ids := []string{""}
		for _, col := range c.snap.Collaborators {
			ids = append(ids, idString(col.ID))
		}
		c.collaborator = nextString(ids, c.collaborator)
	case key.Matches(km, keys.Toggle):
		date := c.selectedDate()
		s := c.env.store
		return c, mutate(s, "Toggled "+date, func() error {
			_, err := s.ToggleWorkingDay(date)
			return err
		})
	case key.Matches(km, keys.Clear):
		date := c.selectedDate()
		s := c.env.store
		return c, mutate(s, "Cleared override on "+date, func() error {
			return s.ClearWorkingDay(date)
		})
	}
	return c, nil
}

func (c calendarModel) view() string {
	w := c.width - 4
	m := c.build()
	stats := m.Stats()

	collaborator := "everyone"
	if c.collaborator != "" {
		collaborator = c.ix.CollaboratorName(parseID(c.collaborator))
	}
	header := titleStyle.Render(fmt.Sprintf("%s %d", c.month, c.year)) + "  " +
		mutedStyle.Render("entries of: ") + highlightStyle.Render(collaborator)

	var head []string
	for _, name := range weekdayNames {
		head = append(head, dayCellStyle.Foreground(colorMuted).Render(name))
	}
	grid := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}

	cells := make([]string, 0, 42)
	for range m.Lead {
		cells = append(cells, dayCellStyle.Render(""))
	}
	for _, d := range m.Days {
		label := fmt.Sprint(d.Day)
		if len(d.Entries) > 0 {
			label = "•" + label
		}
		style := dayStyle(d.Status.Kind)
		if d.Day == c.day {
			style = selectedDayStyle
		}
		cells = append(cells, style.Render(label))
	}
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}

	legend := strings.Join([]string{
		workingDayStyle.Width(0).Render("working"),
		weekendDayStyle.Width(0).Render("weekend"),
		holidayDayStyle.Width(0).Render("holiday"),
		customDayStyle.Width(0).Render("non-working"),
		mutedStyle.Render("• has entries"),
	}, "  ")

	summary := []string{
		titleStyle.Render("Month"),
		fmt.Sprintf("  %-18s %d", "Working days", stats.WorkingDays),
		fmt.Sprintf("  %-18s %d", "Non-working days", stats.NonWorkingDays),
		fmt.Sprintf("  %-18s %s", "Hours logged", formatHours(stats.HoursLogged)),
		fmt.Sprintf("  %-18s %d", "Days with entries", stats.DaysWithEntries),
	}

	var sel calendar.Day
	if c.day >= 1 && c.day <= len(m.Days) {
		sel = m.Days[c.day-1]
	}
	dayInfo := []string{
		titleStyle.Render(sel.Date),
		"  " + dayStyle(sel.Status.Kind).Width(0).Render(dayLabel(sel.Status)),
		fmt.Sprintf("  %s logged", formatHours(sel.Hours)),
		entryTable(c.ix, sel.Entries, 6),
	}

	side := lipgloss.JoinVertical(lipgloss.Left, joinRows(summary), "", joinRows(dayInfo))
	body := lipgloss.JoinHorizontal(lipgloss.Top, joinRows(grid), "    ", side)

	nav := mutedStyle.Render("  ←/→/↑/↓: day  [ ]: month  t: toggle working day  z: clear override  c: collaborator")
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", legend, "", nav))
}

func dayLabel(s calendar.DayStatus) string {
	switch s.Kind {
	case calendar.KindWorking:
		return "Working day"
	case calendar.KindWeekend:
		return "Weekend"
	case calendar.KindHoliday:
		return "Holiday: " + s.Label
	}
	return "Non-working day"
}
