// Package filter applies view filter criteria to snapshot collections.
//
// Every criterion is optional: an empty field places no constraint, and
// present fields are combined with AND. Output keeps input order; sorting is
// a separate stage (see package order).
package filter

import (
	"strconv"
	"strings"

	"github.com/sadopc/staffr/internal/model"
)

// Criteria mirrors the filter bar of a view. Foreign-key fields hold the raw
// string the presentation layer selected; they are parsed at match time and
// an unparseable id matches nothing.
type Criteria struct {
	Search         string
	StartDate      string
	EndDate        string
	Status         string
	ContractType   string
	ProjectID      string
	ClientID       string
	CollaboratorID string
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Scope names the entity a detail view is centred on. The id filter for the
// scope's own type is redundant there and is ignored.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeCollaborator
	ScopeClient
	ScopeProject
)

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

// idMatches reports whether raw (a filter value) names id.
func idMatches(raw string, id int64) bool {
	want, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return false
	}
	return want == id
}

func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

func Collaborators(list []model.Collaborator, c Criteria) []model.Collaborator {
	search := strings.ToLower(c.Search)
	var out []model.Collaborator
	for _, col := range list {
		if search != "" && !(contains(col.Name, search) || contains(col.Email, search) || contains(col.Role, search)) {
			continue
		}
		if c.Status != "" && string(col.Status) != c.Status {
			continue
		}
		if c.ContractType != "" && string(col.ContractType) != c.ContractType {
			continue
		}
		out = append(out, col)
	}
	return out
}

func Clients(list []model.Client, c Criteria) []model.Client {
	search := strings.ToLower(c.Search)
	var out []model.Client
	for _, cl := range list {
		if search != "" && !(contains(cl.Name, search) || contains(cl.Contact, search) || contains(cl.Phone, search)) {
			continue
		}
		if c.Status != "" && string(cl.Status) != c.Status {
			continue
		}
		out = append(out, cl)
	}
	return out
}

// Projects filters a project list. The date range bounds the project's own
// span: StartDate >= filter start and EndDate <= filter end.
func Projects(ix *model.Index, list []model.Project, c Criteria) []model.Project {
	search := strings.ToLower(c.Search)
	var out []model.Project
	for _, p := range list {
		if search != "" && !(contains(p.Name, search) || contains(ix.ClientName(p.ClientID), search)) {
			continue
		}
		if c.Status != "" && string(p.Status) != c.Status {
			continue
		}
		if c.StartDate != "" && p.StartDate < c.StartDate {
			continue
		}
		if c.EndDate != "" && p.EndDate > c.EndDate {
			continue
		}
		if c.ClientID != "" && !idMatches(c.ClientID, p.ClientID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TimeEntries filters entries with no scope.
func TimeEntries(ix *model.Index, list []model.TimeEntry, c Criteria) []model.TimeEntry {
	return timeEntries(ix, list, c, ScopeNone)
}

func timeEntries(ix *model.Index, list []model.TimeEntry, c Criteria, scope Scope) []model.TimeEntry {
	search := strings.ToLower(c.Search)
	var out []model.TimeEntry
	for _, e := range list {
		if search != "" && !entrySearch(ix, e, search) {
			continue
		}
		if c.Status != "" && string(e.Status) != c.Status {
			continue
		}
		if !inRange(e.Date, c.StartDate, c.EndDate) {
			continue
		}
		if c.ProjectID != "" && scope != ScopeProject && !idMatches(c.ProjectID, e.ProjectID) {
			continue
		}
		if c.CollaboratorID != "" && scope != ScopeCollaborator && !idMatches(c.CollaboratorID, e.CollaboratorID) {
			continue
		}
		if c.ClientID != "" && scope != ScopeClient {
			cid, ok := ix.ProjectClientID(e.ProjectID)
			if !ok || !idMatches(c.ClientID, cid) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func entrySearch(ix *model.Index, e model.TimeEntry, search string) bool {
	if contains(e.Description, search) {
		return true
	}
	if p, ok := ix.Project(e.ProjectID); ok && contains(p.Name, search) {
		return true
	}
	if col, ok := ix.Collaborator(e.CollaboratorID); ok && contains(col.Name, search) {
		return true
	}
	return false
}
