package aggregate

import "github.com/sadopc/staffr/internal/model"

type ProjectDays struct {
	ID        int64
	Name      string
	Consumed  int
	Remaining int
}

// Stats is the dashboard summary of a snapshot.
type Stats struct {
	ActiveCollaborators int
	ProjectsInProgress  int
	TotalHours          float64
	Revenue             float64
	Projects            []ProjectDays
	Recent              []model.TimeEntry
}

// RecentEntries is the number of latest entries shown on the dashboard,
// newest (highest id) first.
const RecentEntries = 5

// Dashboard summarises snap. Revenue bills every entry through its project's
// daily rate; entries with a dangling project add hours but no revenue.
func (c Config) Dashboard(snap model.Snapshot) Stats {
	var st Stats
	for _, col := range snap.Collaborators {
		if col.Status == model.StatusActive {
			st.ActiveCollaborators++
		}
	}
	for _, p := range snap.Projects {
		if p.Status == model.ProjectInProgress {
			st.ProjectsInProgress++
		}
		st.Projects = append(st.Projects, ProjectDays{
			ID:        p.ID,
			Name:      p.Name,
			Consumed:  p.DaysConsumed,
			Remaining: p.DaysRemaining,
		})
		st.Revenue += c.ProjectFinance(p, snap.TimeEntries).Revenue
	}
	st.TotalHours = TotalHours(snap.TimeEntries)

	for i := len(snap.TimeEntries) - 1; i >= 0 && len(st.Recent) < RecentEntries; i-- {
		st.Recent = append(st.Recent, snap.TimeEntries[i])
	}
	return st
}

func Dashboard(snap model.Snapshot) Stats {
	return DefaultConfig().Dashboard(snap)
}
