package calendar

import (
	"time"

	"github.com/sadopc/staffr/internal/model"
)

type Day struct {
	Date    string
	Day     int
	Status  DayStatus
	Entries []model.TimeEntry
	Hours   float64
}

type Month struct {
	Year  int
	Month time.Month
	// Lead is the number of blank cells before the first day in a
	// Monday-first week grid.
	Lead int
	Days []Day
}

type MonthStats struct {
	WorkingDays     int
	NonWorkingDays  int
	HoursLogged     float64
	DaysWithEntries int
}

// BuildMonth lays out every day of the month with its status and the given
// (already filtered) entries that fall on it.
func (c *Classifier) BuildMonth(year int, month time.Month, entries []model.TimeEntry) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	byDate := make(map[string][]model.TimeEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	m := Month{
		Year:  year,
		Month: month,
		Lead:  (int(first.Weekday()) + 6) % 7,
	}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := model.FormatDate(d)
		day := Day{
			Date:    date,
			Day:     d.Day(),
			Status:  c.Classify(date),
			Entries: byDate[date],
		}
		for _, e := range day.Entries {
			day.Hours += e.Hours
		}
		m.Days = append(m.Days, day)
	}
	return m
}

func (m Month) Stats() MonthStats {
	var s MonthStats
	for _, d := range m.Days {
		if d.Status.Working() {
			s.WorkingDays++
		} else {
			s.NonWorkingDays++
		}
		s.HoursLogged += d.Hours
		if len(d.Entries) > 0 {
			s.DaysWithEntries++
		}
	}
	return s
}

// WorkingDaysBetween counts working days in [from, to], both ISO dates.
// An inverted or unparseable range counts zero.
func (c *Classifier) WorkingDaysBetween(from, to string) int {
	start, err := model.ParseDate(from)
	if err != nil {
		return 0
	}
	end, err := model.ParseDate(to)
	if err != nil {
		return 0
	}
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.ClassifyTime(d).Working() {
			n++
		}
	}
	return n
}
