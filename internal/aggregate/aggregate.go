// Package aggregate derives totals, revenue, budget consumption and
// occupancy from snapshot collections.
//
// All functions are total: empty input yields zeros, a zero denominator
// yields 0 instead of NaN or Inf, and entries whose foreign keys dangle still
// count toward the totals they are summed into.
package aggregate

import (
	"cmp"
	"math"
	"slices"

	"github.com/sadopc/staffr/internal/model"
)

// Config holds the capacity constants used by revenue and occupancy
// figures. RevenueHoursPerDay converts a project's daily rate into an hourly
// one and is independent of any collaborator's HoursPerDay.
type Config struct {
	OccupationDays        float64
	OccupationHoursPerDay float64
	RevenueHoursPerDay    float64
}

func DefaultConfig() Config {
	return Config{
		OccupationDays:        22,
		OccupationHoursPerDay: 8,
		RevenueHoursPerDay:    8,
	}
}

// withDefaults replaces non-positive fields with their default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.OccupationDays <= 0 {
		c.OccupationDays = d.OccupationDays
	}
	if c.OccupationHoursPerDay <= 0 {
		c.OccupationHoursPerDay = d.OccupationHoursPerDay
	}
	if c.RevenueHoursPerDay <= 0 {
		c.RevenueHoursPerDay = d.RevenueHoursPerDay
	}
	return c
}

// Capacity is the number of hours that count as 100% occupation.
func (c Config) Capacity() float64 {
	c = c.withDefaults()
	return c.OccupationDays * c.OccupationHoursPerDay
}

// Round rounds half up: 2.5 becomes 3 and -2.5 becomes -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

func TotalHours(entries []model.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// Progress is the rounded share of allocated days already consumed, 0 when
// nothing is allocated.
func Progress(p model.Project) float64 {
	return Round(percent(float64(p.DaysConsumed), float64(p.DaysAllocated)))
}

// Occupation is hours as a rounded percentage of one month's capacity.
func (c Config) Occupation(hours float64) float64 {
	return Round(percent(hours, c.Capacity()))
}

// Occupation uses the default capacity of 22 days of 8 hours.
func Occupation(hours float64) float64 {
	return DefaultConfig().Occupation(hours)
}

type CollaboratorTotal struct {
	Hours   float64
	Revenue float64
}

// CollaboratorTotals sums the collaborator's hours in entries and bills them
// at the collaborator's hourly rate.
func CollaboratorTotals(c model.Collaborator, entries []model.TimeEntry) CollaboratorTotal {
	var hours float64
	for _, e := range entries {
		if e.CollaboratorID == c.ID {
			hours += e.Hours
		}
	}
	return CollaboratorTotal{Hours: hours, Revenue: hours * c.HourlyRate}
}

type MonthHours struct {
	Month string
	Hours float64
}

// MonthlyHours buckets entries by YYYY-MM, most recent month first, keeping
// at most limit buckets. A limit <= 0 keeps all of them.
func MonthlyHours(entries []model.TimeEntry, limit int) []MonthHours {
	byMonth := make(map[string]float64)
	for _, e := range entries {
		byMonth[e.Month()] += e.Hours
	}
	out := make([]MonthHours, 0, len(byMonth))
	for m, h := range byMonth {
		out = append(out, MonthHours{Month: m, Hours: h})
	}
	sortMonthsDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortMonthsDesc(months []MonthHours) {
	slices.SortFunc(months, func(a, b MonthHours) int { return cmp.Compare(b.Month, a.Month) })
}
