// Package calendar classifies calendar days as working or non-working.
//
// Rules apply in order: weekends, then the fixed holiday table, then the
// per-date overrides kept by the store. An override of true never lifts a
// weekend or a holiday.
package calendar

import (
	"time"

	"github.com/sadopc/staffr/internal/model"
)

type Kind string

const (
	KindWeekend          Kind = "weekend"
	KindHoliday          Kind = "holiday"
	KindCustomNonWorking Kind = "custom-non-working"
	KindWorking          Kind = "working"
)

type DayStatus struct {
	Kind  Kind
	Label string
}

func (d DayStatus) Working() bool { return d.Kind == KindWorking }

// Holidays maps an ISO date to its display name.
type Holidays map[string]string

// DefaultHolidays are the French public holidays of the reference year.
func DefaultHolidays() Holidays {
	return Holidays{
		"2024-01-01": "Jour de l'An",
		"2024-05-01": "Fête du Travail",
		"2024-05-08": "Fête de la Victoire",
		"2024-07-14": "Fête Nationale",
		"2024-08-15": "Assomption",
		"2024-11-01": "Toussaint",
		"2024-11-11": "Armistice",
		"2024-12-25": "Noël",
	}
}

type Classifier struct {
	holidays  Holidays
	overrides map[string]bool
}

// New builds a classifier over a holiday table and the store's overrides.
// Neither map is copied or mutated.
func New(holidays Holidays, overrides map[string]bool) *Classifier {
	return &Classifier{holidays: holidays, overrides: overrides}
}

// Classify returns the status of an ISO date. Unparseable dates fall through
// the weekday rule and are otherwise classified like any other string key.
func (c *Classifier) Classify(date string) DayStatus {
	if t, err := model.ParseDate(date); err == nil {
		switch t.Weekday() {
		case time.Saturday, time.Sunday:
			return DayStatus{Kind: KindWeekend, Label: "Weekend"}
		}
	}
	if name, ok := c.holidays[date]; ok {
		return DayStatus{Kind: KindHoliday, Label: name}
	}
	if v, ok := c.overrides[date]; ok && !v {
		return DayStatus{Kind: KindCustomNonWorking, Label: "Non-working day"}
	}
	return DayStatus{Kind: KindWorking, Label: "Working day"}
}

func (c *Classifier) ClassifyTime(t time.Time) DayStatus {
	return c.Classify(model.FormatDate(t))
}

// NextOverride is the value a toggle writes for a date whose current override
// is cur (nil when unset): false flips to true, anything else becomes false.
func NextOverride(cur *bool) bool {
	if cur != nil && !*cur {
		return true
	}
	return false
}

// Toggle flips the override for date in place.
func Toggle(overrides map[string]bool, date string) bool {
	var cur *bool
	if v, ok := overrides[date]; ok {
		cur = &v
	}
	next := NextOverride(cur)
	overrides[date] = next
	return next
}
