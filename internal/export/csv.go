package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/report"
)

var entryHeader = []string{"ID", "Date", "Collaborator", "Project", "Client", "Hours", "Description", "Status"}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ToCSV writes entries to a new CSV file at path. Names are resolved through
// ix; a dangling reference exports an empty cell.
func ToCSV(entries []model.TimeEntry, ix *model.Index, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, entries, ix); err != nil {
		return err
	}
	return f.Close()
}

func WriteCSV(out io.Writer, entries []model.TimeEntry, ix *model.Index) error {
	w := csv.NewWriter(out)

	if err := w.Write(entryHeader); err != nil {
		return err
	}
	for _, e := range entries {
		var client string
		if cid, ok := ix.ProjectClientID(e.ProjectID); ok {
			client = ix.ClientName(cid)
		}
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			ix.CollaboratorName(e.CollaboratorID),
			ix.ProjectName(e.ProjectID),
			client,
			formatHours(e.Hours),
			e.Description,
			string(e.Status),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteReportCSV writes the three report tables one after the other, each
// preceded by a title row and its header.
func WriteReportCSV(out io.Writer, r report.Report) error {
	w := csv.NewWriter(out)

	write := func(rows ...[]string) {
		for _, row := range rows {
			if w.Error() == nil {
				w.Write(row)
			}
		}
	}

	write([]string{"# collaborators"}, []string{"Name", "Hours", "Revenue"})
	for _, row := range r.Collaborators {
		write([]string{row.Name, formatHours(row.Hours), formatMoney(row.Revenue)})
	}

	write([]string{"# projects"}, []string{"Name", "Client", "Hours", "Revenue", "Budget", "Progress"})
	for _, row := range r.Projects {
		write([]string{row.Name, row.Client, formatHours(row.Hours), formatMoney(row.Revenue), formatMoney(row.Budget), formatHours(row.Progress)})
	}

	write([]string{"# occupation"}, []string{"Name", "Hours", "Occupation"})
	for _, row := range r.Occupation {
		write([]string{row.Name, formatHours(row.Hours), formatHours(row.Occupation)})
	}

	w.Flush()
	return w.Error()
}
