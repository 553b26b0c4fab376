package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/model"
)

func checkDate(date string) error {
	if _, err := model.ParseDate(date); err != nil {
		return fmt.Errorf("%w: date %q", model.ErrInvalid, date)
	}
	return nil
}

// Overrides returns the working-day overrides keyed by ISO date. Dates
// without an override are absent.
func (s *Store) Overrides() (map[string]bool, error) {
	return listOverrides(s.db)
}

func listOverrides(q querier) (map[string]bool, error) {
	rows, err := q.Query(`SELECT date, working FROM working_days`)
	if err != nil {
		return nil, fmt.Errorf("list working days: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var date string
		var working int
		if err := rows.Scan(&date, &working); err != nil {
			return nil, err
		}
		out[date] = working == 1
	}
	return out, rows.Err()
}

func (s *Store) SetWorkingDay(date string, working bool) error {
	if err := checkDate(date); err != nil {
		return err
	}
	w := 0
	if working {
		w = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO working_days (date, working) VALUES (?, ?) ON CONFLICT(date) DO UPDATE SET working = excluded.working`,
		date, w,
	)
	if err != nil {
		return fmt.Errorf("set working day %s: %w", date, err)
	}
	s.log.Debug("working day set", "date", date, "working", working)
	return nil
}

// ToggleWorkingDay flips the override of date and returns the value
// written. An unset date becomes non-working. Weekends and holidays can be
// toggled but still classify as such.
func (s *Store) ToggleWorkingDay(date string) (bool, error) {
	if err := checkDate(date); err != nil {
		return false, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin toggle: %w", err)
	}
	defer tx.Rollback()

	var cur *bool
	var working int
	switch err := tx.QueryRow(`SELECT working FROM working_days WHERE date = ?`, date).Scan(&working); {
	case err == nil:
		v := working == 1
		cur = &v
	case errors.Is(err, sql.ErrNoRows):
	default:
		return false, fmt.Errorf("read working day %s: %w", date, err)
	}

	next := calendar.NextOverride(cur)
	w := 0
	if next {
		w = 1
	}
	if _, err := tx.Exec(
		`INSERT INTO working_days (date, working) VALUES (?, ?) ON CONFLICT(date) DO UPDATE SET working = excluded.working`,
		date, w,
	); err != nil {
		return false, fmt.Errorf("toggle working day %s: %w", date, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle: %w", err)
	}
	s.log.Debug("working day toggled", "date", date, "working", next)
	return next, nil
}

// ClearWorkingDay removes the override of date.
func (s *Store) ClearWorkingDay(date string) error {
	if _, err := s.db.Exec(`DELETE FROM working_days WHERE date = ?`, date); err != nil {
		return fmt.Errorf("clear working day %s: %w", date, err)
	}
	s.log.Debug("working day cleared", "date", date)
	return nil
}
