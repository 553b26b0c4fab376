package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/report"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	TotalHours float64     `json:"total_hours"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	CollaboratorID int64   `json:"collaborator_id"`
	Collaborator   string  `json:"collaborator"`
	ProjectID      int64   `json:"project_id"`
	Project        string  `json:"project"`
	Client         string  `json:"client,omitempty"`
	Hours          float64 `json:"hours"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
}

// ToJSON writes entries to a new JSON file at path.
func ToJSON(entries []model.TimeEntry, ix *model.Index, path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, entries, ix, now); err != nil {
		return err
	}
	return f.Close()
}

func WriteJSON(w io.Writer, entries []model.TimeEntry, ix *model.Index, now time.Time) error {
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(entries),
		Entries:    make([]jsonEntry, 0, len(entries)),
	}

	for _, e := range entries {
		var client string
		if cid, ok := ix.ProjectClientID(e.ProjectID); ok {
			client = ix.ClientName(cid)
		}
		export.TotalHours += e.Hours
		export.Entries = append(export.Entries, jsonEntry{
			ID:             e.ID,
			Date:           e.Date,
			CollaboratorID: e.CollaboratorID,
			Collaborator:   ix.CollaboratorName(e.CollaboratorID),
			ProjectID:      e.ProjectID,
			Project:        ix.ProjectName(e.ProjectID),
			Client:         client,
			Hours:          e.Hours,
			Description:    e.Description,
			Status:         string(e.Status),
		})
	}

	return encode(w, export)
}

type jsonReport struct {
	KPIs          jsonKPIs         `json:"kpis"`
	Collaborators []jsonCollabRow  `json:"collaborators"`
	Projects      []jsonProjectRow `json:"projects"`
	Occupation    []jsonOccupRow   `json:"occupation"`
	Trend         []jsonTrendPoint `json:"trend"`
}

type jsonKPIs struct {
	TotalHours     float64 `json:"total_hours"`
	TotalRevenue   float64 `json:"total_revenue"`
	MeanOccupation float64 `json:"mean_occupation"`
	ActiveProjects int     `json:"active_projects"`
}

type jsonCollabRow struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Revenue float64 `json:"revenue"`
}

type jsonProjectRow struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Client   string  `json:"client"`
	Hours    float64 `json:"hours"`
	Revenue  float64 `json:"revenue"`
	Budget   float64 `json:"budget"`
	Progress float64 `json:"progress"`
}

type jsonOccupRow struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Occupation float64 `json:"occupation"`
}

type jsonTrendPoint struct {
	Month   string  `json:"month"`
	Hours   float64 `json:"hours"`
	Revenue float64 `json:"revenue"`
}

// WriteReportJSON encodes a composed report. Empty tables encode as [].
func WriteReportJSON(w io.Writer, r report.Report) error {
	out := jsonReport{
		KPIs: jsonKPIs{
			TotalHours:     r.KPIs.TotalHours,
			TotalRevenue:   r.KPIs.TotalRevenue,
			MeanOccupation: r.KPIs.MeanOccupation,
			ActiveProjects: r.KPIs.ActiveProjects,
		},
		Collaborators: make([]jsonCollabRow, 0, len(r.Collaborators)),
		Projects:      make([]jsonProjectRow, 0, len(r.Projects)),
		Occupation:    make([]jsonOccupRow, 0, len(r.Occupation)),
		Trend:         make([]jsonTrendPoint, 0, len(r.Trend)),
	}
	for _, row := range r.Collaborators {
		out.Collaborators = append(out.Collaborators, jsonCollabRow(row))
	}
	for _, row := range r.Projects {
		out.Projects = append(out.Projects, jsonProjectRow{
			ID:       row.ID,
			Name:     row.Name,
			Client:   row.Client,
			Hours:    row.Hours,
			Revenue:  row.Revenue,
			Budget:   row.Budget,
			Progress: row.Progress,
		})
	}
	for _, row := range r.Occupation {
		out.Occupation = append(out.Occupation, jsonOccupRow(row))
	}
	for _, p := range r.Trend {
		out.Trend = append(out.Trend, jsonTrendPoint(p))
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
