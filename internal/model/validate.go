package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for every date field.
// Fixed width and zero padding make string order equal chronological order.
const DateLayout = "2006-01-02"

var ErrInvalid = errors.New("invalid record")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// ParseDate parses an ISO date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// onStep reports whether v is a multiple of step, tolerating float noise.
func onStep(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

func (c Collaborator) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("collaborator name is required")
	}
	if c.HourlyRate < 0 {
		return invalid("hourly rate must be >= 0, got %v", c.HourlyRate)
	}
	if !c.Status.Valid() {
		return invalid("unknown collaborator status %q", c.Status)
	}
	if !c.ContractType.Valid() {
		return invalid("unknown contract type %q", c.ContractType)
	}
	if c.HoursPerDay < 1 || c.HoursPerDay > 11 || !onStep(c.HoursPerDay, 0.5) {
		return invalid("hours per day must be within 1-11 in steps of 0.5, got %v", c.HoursPerDay)
	}
	if c.StartDate != "" && !validDate(c.StartDate) {
		return invalid("start date %q is not YYYY-MM-DD", c.StartDate)
	}
	if c.ContractType != ContractCDI {
		if c.EndDate == "" {
			return invalid("end date is required for %s contracts", c.ContractType)
		}
	}
	if c.EndDate != "" && !validDate(c.EndDate) {
		return invalid("end date %q is not YYYY-MM-DD", c.EndDate)
	}
	return nil
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("client name is required")
	}
	if !c.Status.Valid() {
		return invalid("unknown client status %q", c.Status)
	}
	return nil
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("project name is required")
	}
	if p.Budget < 0 {
		return invalid("budget must be >= 0, got %v", p.Budget)
	}
	if p.DailyRate < 0 {
		return invalid("daily rate must be >= 0, got %v", p.DailyRate)
	}
	if !p.Status.Valid() {
		return invalid("unknown project status %q", p.Status)
	}
	if p.DaysAllocated < 0 || p.DaysConsumed < 0 {
		return invalid("day counts must be >= 0")
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d != "" && !validDate(d) {
			return invalid("date %q is not YYYY-MM-DD", d)
		}
	}
	return nil
}

func (e TimeEntry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return invalid("description is required")
	}
	if e.Hours < 0 || e.Hours > 24 || !onStep(e.Hours, 0.5) {
		return invalid("hours must be within 0-24 in steps of 0.5, got %v", e.Hours)
	}
	if !validDate(e.Date) {
		return invalid("date %q is not YYYY-MM-DD", e.Date)
	}
	if !e.Status.Valid() {
		return invalid("unknown entry status %q", e.Status)
	}
	return nil
}
