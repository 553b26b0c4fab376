package order

import (
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/model"
)

// Default keys per view.
const (
	DefaultCollaboratorKey = "name"
	DefaultClientKey       = "name"
	DefaultProjectKey      = "startDate"
	DefaultTimeEntryKey    = "date"
)

func collaboratorKeys(snap model.Snapshot) Keys[model.Collaborator] {
	hours := make(map[int64]float64)
	for _, e := range snap.TimeEntries {
		hours[e.CollaboratorID] += e.Hours
	}
	return Keys[model.Collaborator]{
		"name":         ByString(func(c model.Collaborator) string { return c.Name }),
		"role":         ByString(func(c model.Collaborator) string { return c.Role }),
		"hourlyRate":   ByNumber(func(c model.Collaborator) float64 { return c.HourlyRate }),
		"contractType": ByString(func(c model.Collaborator) string { return string(c.ContractType) }),
		"startDate":    ByString(func(c model.Collaborator) string { return c.StartDate }),
		"hours":        ByNumber(func(c model.Collaborator) float64 { return hours[c.ID] }),
	}
}

func clientKeys(snap model.Snapshot) Keys[model.Client] {
	count := make(map[int64]float64)
	for _, p := range snap.Projects {
		count[p.ClientID]++
	}
	return Keys[model.Client]{
		"name":     ByString(func(c model.Client) string { return c.Name }),
		"contact":  ByString(func(c model.Client) string { return c.Contact }),
		"projects": ByNumber(func(c model.Client) float64 { return count[c.ID] }),
	}
}

func projectKeys(snap model.Snapshot, ix *model.Index) Keys[model.Project] {
	hours := make(map[int64]float64)
	for _, e := range snap.TimeEntries {
		hours[e.ProjectID] += e.Hours
	}
	return Keys[model.Project]{
		"startDate":     ByString(func(p model.Project) string { return p.StartDate }),
		"name":          ByString(func(p model.Project) string { return p.Name }),
		"endDate":       ByString(func(p model.Project) string { return p.EndDate }),
		"budget":        ByNumber(func(p model.Project) float64 { return p.Budget }),
		"client":        ByString(func(p model.Project) string { return ix.ClientName(p.ClientID) }),
		"progress":      ByNumber(func(p model.Project) float64 { return aggregate.Progress(p) }),
		"daysRemaining": ByNumber(func(p model.Project) float64 { return float64(p.DaysRemaining) }),
		"hours":         ByNumber(func(p model.Project) float64 { return hours[p.ID] }),
	}
}

func timeEntryKeys(ix *model.Index) Keys[model.TimeEntry] {
	return Keys[model.TimeEntry]{
		"date":         ByString(func(e model.TimeEntry) string { return e.Date }),
		"hours":        ByNumber(func(e model.TimeEntry) float64 { return e.Hours }),
		"collaborator": ByString(func(e model.TimeEntry) string { return ix.CollaboratorName(e.CollaboratorID) }),
		"project":      ByString(func(e model.TimeEntry) string { return ix.ProjectName(e.ProjectID) }),
		"status":       ByString(func(e model.TimeEntry) string { return string(e.Status) }),
	}
}

// Collaborators sorts list. The hours key sums snap's entries per
// collaborator.
func Collaborators(snap model.Snapshot, list []model.Collaborator, cfg Config) []model.Collaborator {
	return Sort(list, cfg, DefaultCollaboratorKey, collaboratorKeys(snap))
}

func Clients(snap model.Snapshot, list []model.Client, cfg Config) []model.Client {
	return Sort(list, cfg, DefaultClientKey, clientKeys(snap))
}

func Projects(snap model.Snapshot, ix *model.Index, list []model.Project, cfg Config) []model.Project {
	return Sort(list, cfg, DefaultProjectKey, projectKeys(snap, ix))
}

func TimeEntries(ix *model.Index, list []model.TimeEntry, cfg Config) []model.TimeEntry {
	return Sort(list, cfg, DefaultTimeEntryKey, timeEntryKeys(ix))
}

// Key names per view, default first, in the order the sort select cycles.
var (
	CollaboratorKeys = []string{"name", "role", "hourlyRate", "contractType", "startDate", "hours"}
	ClientKeys       = []string{"name", "contact", "projects"}
	ProjectKeys      = []string{"startDate", "name", "endDate", "budget", "client", "progress", "daysRemaining", "hours"}
	TimeEntryKeys    = []string{"date", "hours", "collaborator", "project", "status"}
	ReportKeys       = []string{"hours", "revenue", "name", "occupation", "progress"}
)

// NextKey returns the key after cur in keys, wrapping around. An unknown cur
// restarts at the first key.
func NextKey(keys []string, cur string) string {
	for i, k := range keys {
		if k == cur {
			return keys[(i+1)%len(keys)]
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
