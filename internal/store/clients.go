package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

const clientColumns = `id, name, contact, phone, status`

func scanClient(sc scanner) (model.Client, error) {
	var c model.Client
	err := sc.Scan(&c.ID, &c.Name, &c.Contact, &c.Phone, &c.Status)
	return c, err
}

func (s *Store) CreateClient(c model.Client) (*model.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		`INSERT INTO clients (name, contact, phone, status) VALUES (?, ?, ?, ?)`,
		c.Name, c.Contact, c.Phone, string(c.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	id, _ := res.LastInsertId()
	s.log.Debug("client created", "id", id, "name", c.Name)
	return s.GetClient(id)
}

func (s *Store) GetClient(id int64) (*model.Client, error) {
	c, err := scanClient(s.db.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "client", id)
	}
	return &c, nil
}

func (s *Store) ListClients() ([]model.Client, error) {
	return listClients(s.db)
}

func listClients(q querier) ([]model.Client, error) {
	rows, err := q.Query(`SELECT ` + clientColumns + ` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateClient(c model.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(
		`UPDATE clients SET name = ?, contact = ?, phone = ?, status = ? WHERE id = ?`,
		c.Name, c.Contact, c.Phone, string(c.Status), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update client %d: %w", c.ID, err)
	}
	if err := affected(res, "client", c.ID); err != nil {
		return err
	}
	s.log.Debug("client updated", "id", c.ID)
	return nil
}

// DeleteClient removes the client only. Its projects keep their client id.
func (s *Store) DeleteClient(id int64) error {
	res, err := s.db.Exec(`DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if err := affected(res, "client", id); err != nil {
		return err
	}
	s.log.Debug("client deleted", "id", id)
	return nil
}
