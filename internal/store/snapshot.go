package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

// Snapshot reads every collection and the working-day overrides in one
// read transaction, so the result never mixes states from before and after a
// concurrent mutation.
func (s *Store) Snapshot() (model.Snapshot, error) {
	var snap model.Snapshot

	tx, err := s.db.Begin()
	if err != nil {
		return snap, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if snap.Collaborators, err = listCollaborators(tx); err != nil {
		return snap, err
	}
	if snap.Clients, err = listClients(tx); err != nil {
		return snap, err
	}
	if snap.Projects, err = listProjects(tx); err != nil {
		return snap, err
	}
	if snap.TimeEntries, err = listEntries(tx); err != nil {
		return snap, err
	}
	if snap.Overrides, err = listOverrides(tx); err != nil {
		return snap, err
	}
	return snap, nil
}
