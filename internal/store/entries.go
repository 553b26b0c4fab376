package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

const entryColumns = `id, collaborator_id, project_id, date, hours, description, status`

func scanEntry(sc scanner) (model.TimeEntry, error) {
	var e model.TimeEntry
	err := sc.Scan(&e.ID, &e.CollaboratorID, &e.ProjectID, &e.Date, &e.Hours, &e.Description, &e.Status)
	return e, err
}

func (s *Store) CreateEntry(e model.TimeEntry) (*model.TimeEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		`INSERT INTO time_entries (collaborator_id, project_id, date, hours, description, status) VALUES (?, ?, ?, ?, ?, ?)`,
		e.CollaboratorID, e.ProjectID, e.Date, e.Hours, e.Description, string(e.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Debug("entry created", "id", id, "date", e.Date, "hours", e.Hours)
	return s.GetEntry(id)
}

func (s *Store) GetEntry(id int64) (*model.TimeEntry, error) {
	e, err := scanEntry(s.db.QueryRow(`SELECT `+entryColumns+` FROM time_entries WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "entry", id)
	}
	return &e, nil
}

// ListEntries returns every entry in insertion order.
func (s *Store) ListEntries() ([]model.TimeEntry, error) {
	return listEntries(s.db)
}

func listEntries(q querier) ([]model.TimeEntry, error) {
	rows, err := q.Query(`SELECT ` + entryColumns + ` FROM time_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateEntry(e model.TimeEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(
		`UPDATE time_entries SET collaborator_id = ?, project_id = ?, date = ?, hours = ?, description = ?, status = ? WHERE id = ?`,
		e.CollaboratorID, e.ProjectID, e.Date, e.Hours, e.Description, string(e.Status), e.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", e.ID, err)
	}
	if err := affected(res, "entry", e.ID); err != nil {
		return err
	}
	s.log.Debug("entry updated", "id", e.ID)
	return nil
}

func (s *Store) DeleteEntry(id int64) error {
	res, err := s.db.Exec(`DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	if err := affected(res, "entry", id); err != nil {
		return err
	}
	s.log.Debug("entry deleted", "id", id)
	return nil
}

// SetEntryStatus validates or rejects an entry without touching its other
// fields.
func (s *Store) SetEntryStatus(id int64, status model.EntryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("entry status %q: %w", status, model.ErrInvalid)
	}
	res, err := s.db.Exec(`UPDATE time_entries SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("set entry %d status: %w", id, err)
	}
	if err := affected(res, "entry", id); err != nil {
		return err
	}
	s.log.Debug("entry status changed", "id", id, "status", status)
	return nil
}
