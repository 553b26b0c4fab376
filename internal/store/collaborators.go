package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

const collaboratorColumns = `id, name, email, role, hourly_rate, status, contract_type, start_date, end_date, hours_per_day, daily_rate`

func scanCollaborator(sc scanner) (model.Collaborator, error) {
	var c model.Collaborator
	err := sc.Scan(&c.ID, &c.Name, &c.Email, &c.Role, &c.HourlyRate, &c.Status, &c.ContractType,
		&c.StartDate, &c.EndDate, &c.HoursPerDay, &c.DailyRate)
	return c, err
}

// CreateCollaborator validates c, derives its daily rate and inserts it. The
// returned record carries the assigned id.
func (s *Store) CreateCollaborator(c model.Collaborator) (*model.Collaborator, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		`INSERT INTO collaborators (name, email, role, hourly_rate, status, contract_type, start_date, end_date, hours_per_day, daily_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Role, c.HourlyRate, string(c.Status), string(c.ContractType), c.StartDate, c.EndDate, c.HoursPerDay, c.DailyRate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert collaborator: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Debug("collaborator created", "id", id, "name", c.Name)
	return s.GetCollaborator(id)
}

func (s *Store) GetCollaborator(id int64) (*model.Collaborator, error) {
	c, err := scanCollaborator(s.db.QueryRow(`SELECT `+collaboratorColumns+` FROM collaborators WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "collaborator", id)
	}
	return &c, nil
}

func (s *Store) ListCollaborators() ([]model.Collaborator, error) {
	return listCollaborators(s.db)
}

func listCollaborators(q querier) ([]model.Collaborator, error) {
	rows, err := q.Query(`SELECT ` + collaboratorColumns + ` FROM collaborators ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()

	var out []model.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCollaborator replaces the record with c.ID. The daily rate is
// recomputed from the new hourly rate and day length.
func (s *Store) UpdateCollaborator(c model.Collaborator) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(
		`UPDATE collaborators SET name = ?, email = ?, role = ?, hourly_rate = ?, status = ?, contract_type = ?,
		 start_date = ?, end_date = ?, hours_per_day = ?, daily_rate = ? WHERE id = ?`,
		c.Name, c.Email, c.Role, c.HourlyRate, string(c.Status), string(c.ContractType), c.StartDate, c.EndDate, c.HoursPerDay, c.DailyRate, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update collaborator %d: %w", c.ID, err)
	}
	if err := affected(res, "collaborator", c.ID); err != nil {
		return err
	}
	s.log.Debug("collaborator updated", "id", c.ID)
	return nil
}

// DeleteCollaborator removes the collaborator. Their time entries are kept.
func (s *Store) DeleteCollaborator(id int64) error {
	res, err := s.db.Exec(`DELETE FROM collaborators WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete collaborator %d: %w", id, err)
	}
	if err := affected(res, "collaborator", id); err != nil {
		return err
	}
	s.log.Debug("collaborator deleted", "id", id)
	return nil
}
