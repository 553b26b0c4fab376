package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

const projectColumns = `id, name, client_id, start_date, end_date, budget, daily_rate, status, days_allocated, days_consumed, days_remaining`

func scanProject(sc scanner) (model.Project, error) {
	var p model.Project
	err := sc.Scan(&p.ID, &p.Name, &p.ClientID, &p.StartDate, &p.EndDate, &p.Budget, &p.DailyRate,
		&p.Status, &p.DaysAllocated, &p.DaysConsumed, &p.DaysRemaining)
	return p, err
}

// CreateProject inserts p with its remaining days derived. The client id is
// not checked against the clients table.
func (s *Store) CreateProject(p model.Project) (*model.Project, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		`INSERT INTO projects (name, client_id, start_date, end_date, budget, daily_rate, status, days_allocated, days_consumed, days_remaining)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.ClientID, p.StartDate, p.EndDate, p.Budget, p.DailyRate, string(p.Status), p.DaysAllocated, p.DaysConsumed, p.DaysRemaining,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Debug("project created", "id", id, "name", p.Name)
	return s.GetProject(id)
}

func (s *Store) GetProject(id int64) (*model.Project, error) {
	p, err := scanProject(s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "project", id)
	}
	return &p, nil
}

func (s *Store) ListProjects() ([]model.Project, error) {
	return listProjects(s.db)
}

func listProjects(q querier) ([]model.Project, error) {
	rows, err := q.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) UpdateProject(p model.Project) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(
		`UPDATE projects SET name = ?, client_id = ?, start_date = ?, end_date = ?, budget = ?, daily_rate = ?, status = ?,
		 days_allocated = ?, days_consumed = ?, days_remaining = ? WHERE id = ?`,
		p.Name, p.ClientID, p.StartDate, p.EndDate, p.Budget, p.DailyRate, string(p.Status), p.DaysAllocated, p.DaysConsumed, p.DaysRemaining, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project %d: %w", p.ID, err)
	}
	if err := affected(res, "project", p.ID); err != nil {
		return err
	}
	s.log.Debug("project updated", "id", p.ID)
	return nil
}

// DeleteProject removes the project. Entries logged on it are kept and keep
// pointing at the deleted id.
func (s *Store) DeleteProject(id int64) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if err := affected(res, "project", id); err != nil {
		return err
	}
	s.log.Debug("project deleted", "id", id)
	return nil
}
