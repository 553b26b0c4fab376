// Package report composes the reports view: filtered time entries rolled up
// per collaborator and per project, occupation rates, KPIs and a monthly
// trend.
package report

import (
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

// TrendMonths is the number of months kept in the trend.
const TrendMonths = 6

type CollaboratorRow struct {
	ID      int64
	Name    string
	Hours   float64
	Revenue float64
}

type ProjectRow struct {
	ID       int64
	Name     string
	Client   string
	Hours    float64
	Revenue  float64
	Budget   float64
	Progress float64
	Status   model.ProjectStatus
}

type OccupationRow struct {
	ID         int64
	Name       string
	Hours      float64
	Occupation float64
}

type KPIs struct {
	TotalHours     float64
	TotalRevenue   float64
	MeanOccupation float64
	ActiveProjects int
}

type TrendPoint struct {
	Month   string
	Hours   float64
	Revenue float64
}

type Report struct {
	Entries       []model.TimeEntry
	Collaborators []CollaboratorRow
	Projects      []ProjectRow
	Occupation    []OccupationRow
	KPIs          KPIs
	Trend         []TrendPoint
}

// Criteria keeps the filters the reports view honours: collaborator,
// project, client and date range.
func Criteria(c filter.Criteria) filter.Criteria {
	return filter.Criteria{
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		ProjectID:      c.ProjectID,
		ClientID:       c.ClientID,
		CollaboratorID: c.CollaboratorID,
	}
}

// Compose builds the report of snap under criteria. Entities with no hours
// in the filtered entries get no row. All three tables are sorted by the
// same sort config; a key a table does not carry leaves its order as is.
func Compose(snap model.Snapshot, criteria filter.Criteria, sortCfg order.Config, cfg aggregate.Config) Report {
	ix := model.NewIndex(snap)
	entries := filter.TimeEntries(ix, snap.TimeEntries, Criteria(criteria))

	var r Report
	r.Entries = entries

	byCollab := make(map[int64]float64)
	byProject := make(map[int64]float64)
	for _, e := range entries {
		byCollab[e.CollaboratorID] += e.Hours
		byProject[e.ProjectID] += e.Hours
	}

	for _, col := range snap.Collaborators {
		h := byCollab[col.ID]
		if h <= 0 {
			continue
		}
		r.Collaborators = append(r.Collaborators, CollaboratorRow{
			ID:      col.ID,
			Name:    col.Name,
			Hours:   h,
			Revenue: h * col.HourlyRate,
		})
		r.Occupation = append(r.Occupation, OccupationRow{
			ID:         col.ID,
			Name:       col.Name,
			Hours:      h,
			Occupation: cfg.Occupation(h),
		})
	}

	for _, p := range snap.Projects {
		h := byProject[p.ID]
		if h <= 0 {
			continue
		}
		r.Projects = append(r.Projects, ProjectRow{
			ID:       p.ID,
			Name:     p.Name,
			Client:   ix.ClientName(p.ClientID),
			Hours:    h,
			Revenue:  cfg.ProjectRevenue(p, h),
			Budget:   p.Budget,
			Progress: aggregate.Progress(p),
			Status:   p.Status,
		})
	}

	r.Collaborators = order.Sort(r.Collaborators, sortCfg, DefaultKey, collaboratorKeys)
	r.Projects = order.Sort(r.Projects, sortCfg, DefaultKey, projectKeys)
	r.Occupation = order.Sort(r.Occupation, sortCfg, DefaultKey, occupationKeys)

	r.KPIs = kpis(r)
	r.Trend = trend(ix, entries)
	return r
}

// kpis totals the report. Hours include entries whose collaborator or
// project no longer exists; a project counts as active when it has hours in
// the filtered range.
func kpis(r Report) KPIs {
	var k KPIs
	k.TotalHours = aggregate.TotalHours(r.Entries)
	for _, row := range r.Collaborators {
		k.TotalRevenue += row.Revenue
	}
	if len(r.Occupation) > 0 {
		var sum float64
		for _, row := range r.Occupation {
			sum += row.Occupation
		}
		k.MeanOccupation = aggregate.Round(sum / float64(len(r.Occupation)))
	}
	k.ActiveProjects = len(r.Projects)
	return k
}

// trend buckets the filtered entries per month, oldest first, billing each
// entry at its collaborator's hourly rate.
func trend(ix *model.Index, entries []model.TimeEntry) []TrendPoint {
	revenue := make(map[string]float64)
	for _, e := range entries {
		if col, ok := ix.Collaborator(e.CollaboratorID); ok {
			revenue[e.Month()] += e.Hours * col.HourlyRate
		}
	}
	months := aggregate.MonthlyHours(entries, TrendMonths)
	out := make([]TrendPoint, len(months))
	for i, m := range months {
		out[len(months)-1-i] = TrendPoint{Month: m.Month, Hours: m.Hours, Revenue: revenue[m.Month]}
	}
	return out
}
