package store

import (
	"fmt"

	"github.com/sadopc/staffr/internal/model"
)

// Seed loads the reference data set: three collaborators, three clients,
// two projects, two time entries and four working-day overrides.
func (s *Store) Seed() error {
	collaborators := []model.Collaborator{
		{Name: "Jean Dupont", Email: "jean.dupont@example.com", Role: "Développeur Senior", HourlyRate: 65, Status: model.StatusActive, ContractType: model.ContractCDI, StartDate: "2022-01-15", HoursPerDay: 7},
		{Name: "Marie Martin", Email: "marie.martin@example.com", Role: "Chef de Projet", HourlyRate: 75, Status: model.StatusActive, ContractType: model.ContractCDI, StartDate: "2021-06-01", HoursPerDay: 8},
		{Name: "Pierre Durand", Email: "pierre.durand@example.com", Role: "Designer UX/UI", HourlyRate: 60, Status: model.StatusActive, ContractType: model.ContractCDD, StartDate: "2023-03-15", EndDate: "2024-12-31", HoursPerDay: 7.5},
	}
	clients := []model.Client{
		{Name: "TechCorp", Contact: "contact@techcorp.com", Phone: "01 23 45 67 89", Status: model.StatusActive},
		{Name: "StartupXYZ", Contact: "hello@startupxyz.com", Phone: "01 98 76 54 32", Status: model.StatusActive},
		{Name: "Enterprise Solutions", Contact: "info@enterprise.com", Phone: "01 11 22 33 44", Status: model.StatusActive},
	}

	var collabIDs, clientIDs []int64
	for _, c := range collaborators {
		created, err := s.CreateCollaborator(c)
		if err != nil {
			return fmt.Errorf("seed collaborator %q: %w", c.Name, err)
		}
		collabIDs = append(collabIDs, created.ID)
	}
	for _, c := range clients {
		created, err := s.CreateClient(c)
		if err != nil {
			return fmt.Errorf("seed client %q: %w", c.Name, err)
		}
		clientIDs = append(clientIDs, created.ID)
	}

	projects := []model.Project{
		{Name: "Refonte Site Web", ClientID: clientIDs[0], StartDate: "2024-01-15", EndDate: "2024-03-15", Budget: 25000, DailyRate: 500, Status: model.ProjectInProgress, DaysAllocated: 50, DaysConsumed: 23},
		{Name: "Application Mobile", ClientID: clientIDs[1], StartDate: "2024-02-01", EndDate: "2024-05-31", Budget: 45000, DailyRate: 600, Status: model.ProjectInProgress, DaysAllocated: 75, DaysConsumed: 15},
	}
	var projectIDs []int64
	for _, p := range projects {
		created, err := s.CreateProject(p)
		if err != nil {
			return fmt.Errorf("seed project %q: %w", p.Name, err)
		}
		projectIDs = append(projectIDs, created.ID)
	}

	entries := []model.TimeEntry{
		{CollaboratorID: collabIDs[0], ProjectID: projectIDs[0], Date: "2024-01-30", Hours: 8, Description: "Développement frontend", Status: model.EntryValidated},
		{CollaboratorID: collabIDs[1], ProjectID: projectIDs[0], Date: "2024-01-30", Hours: 6, Description: "Gestion de projet", Status: model.EntryPending},
	}
	for _, e := range entries {
		if _, err := s.CreateEntry(e); err != nil {
			return fmt.Errorf("seed entry %q: %w", e.Description, err)
		}
	}

	for _, date := range []string{"2024-01-01", "2024-05-01", "2024-07-14", "2024-12-25"} {
		if err := s.SetWorkingDay(date, false); err != nil {
			return fmt.Errorf("seed working day: %w", err)
		}
	}

	s.log.Info("reference data loaded",
		"collaborators", len(collaborators),
		"clients", len(clients),
		"projects", len(projects),
		"entries", len(entries))
	return nil
}
