package aggregate

import (
	"math"
	"time"

	"github.com/sadopc/staffr/internal/model"
)

// DefaultHoursPerDay applies to collaborators saved without a working day
// length.
const DefaultHoursPerDay = 7

// HRMonth is one month of a collaborator's activity. Fill is the month's
// hours against 22 working days at the collaborator's day length, capped
// at 100.
type HRMonth struct {
	Month string
	Hours float64
	Fill  float64
}

type HR struct {
	TotalHours    float64
	WorkedDays    float64
	DaysSinceHire int
	ActiveMonths  int
	HoursPerDay   float64
	Months        []HRMonth
}

// CollaboratorHR summarises the collaborator's own entries among entries.
// DaysSinceHire is 0 without a parseable start date. Months holds the six
// most recent months.
func (c Config) CollaboratorHR(col model.Collaborator, entries []model.TimeEntry, now time.Time) HR {
	c = c.withDefaults()
	hpd := col.HoursPerDay
	if hpd <= 0 {
		hpd = DefaultHoursPerDay
	}

	var own []model.TimeEntry
	for _, e := range entries {
		if e.CollaboratorID == col.ID {
			own = append(own, e)
		}
	}
	total := TotalHours(own)

	hr := HR{
		TotalHours:  total,
		WorkedDays:  Round(total / hpd),
		HoursPerDay: hpd,
	}
	if start, err := model.ParseDate(col.StartDate); err == nil {
		hr.DaysSinceHire = int(math.Floor(now.Sub(start).Hours() / 24))
	}

	all := MonthlyHours(own, 0)
	hr.ActiveMonths = len(all)
	capacity := c.OccupationDays * hpd
	for i, m := range all {
		if i == 6 {
			break
		}
		hr.Months = append(hr.Months, HRMonth{
			Month: m.Month,
			Hours: m.Hours,
			Fill:  math.Min(percent(m.Hours, capacity), 100),
		})
	}
	return hr
}

func CollaboratorHR(col model.Collaborator, entries []model.TimeEntry, now time.Time) HR {
	return DefaultConfig().CollaboratorHR(col, entries, now)
}
