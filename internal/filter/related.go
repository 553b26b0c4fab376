package filter

import (
	"strings"

	"github.com/sadopc/staffr/internal/model"
)

// RelatedTimeEntries returns the entries attached to one entity (its own
// entries for a collaborator or project, the entries of all its projects for
// a client) narrowed by c.
func RelatedTimeEntries(snap model.Snapshot, ix *model.Index, scope Scope, id int64, c Criteria) []model.TimeEntry {
	var related []model.TimeEntry
	switch scope {
	case ScopeCollaborator:
		for _, e := range snap.TimeEntries {
			if e.CollaboratorID == id {
				related = append(related, e)
			}
		}
	case ScopeProject:
		for _, e := range snap.TimeEntries {
			if e.ProjectID == id {
				related = append(related, e)
			}
		}
	case ScopeClient:
		for _, e := range snap.TimeEntries {
			if cid, ok := ix.ProjectClientID(e.ProjectID); ok && cid == id {
				related = append(related, e)
			}
		}
	default:
		related = snap.TimeEntries
	}
	return timeEntries(ix, related, c, scope)
}

// RelatedProjects returns the projects of a client, or the projects a
// collaborator has logged time on, narrowed by search, status and span.
func RelatedProjects(snap model.Snapshot, ix *model.Index, scope Scope, id int64, c Criteria) []model.Project {
	var related []model.Project
	switch scope {
	case ScopeClient:
		for _, p := range snap.Projects {
			if p.ClientID == id {
				related = append(related, p)
			}
		}
	case ScopeCollaborator:
		worked := make(map[int64]bool)
		for _, e := range snap.TimeEntries {
			if e.CollaboratorID == id {
				worked[e.ProjectID] = true
			}
		}
		for _, p := range snap.Projects {
			if worked[p.ID] {
				related = append(related, p)
			}
		}
	default:
		related = snap.Projects
	}

	// Detail views search on the project's own name only.
	search := strings.ToLower(c.Search)
	var out []model.Project
	for _, p := range Projects(ix, related, Criteria{Status: c.Status, StartDate: c.StartDate, EndDate: c.EndDate}) {
		if search != "" && !contains(p.Name, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
