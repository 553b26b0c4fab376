package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

type entryFields struct {
	collaborator, project, date, hours, description, status string
}

type timeModel struct {
	env    *env
	width  int
	height int

	snap         model.Snapshot
	ix           *model.Index
	rows         []model.TimeEntry
	list         listState
	collaborator string
	project      string
	month        string // YYYY-MM, empty for all time

	formActive bool
	form       *huh.Form
	editingID  int64
	fields     *entryFields
}

func newTimeModel(e *env) timeModel {
	statuses := make([]string, len(model.EntryStatuses))
	for i, s := range model.EntryStatuses {
		statuses[i] = string(s)
	}
	return timeModel{
		env:    e,
		ix:     model.NewIndex(model.Snapshot{}),
		list:   newListState(statuses, order.TimeEntryKeys, order.Config{Key: order.DefaultTimeEntryKey, Direction: order.Desc}),
		fields: &entryFields{},
	}
}

func (t *timeModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *timeModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	t.snap = snap
	t.ix = ix
	t.rebuild()
}

// monthRange returns the first and last ISO date of a YYYY-MM month.
func monthRange(ym string) (string, string) {
	start, err := time.Parse("2006-01", ym)
	if err != nil {
		return "", ""
	}
	return model.FormatDate(start), model.FormatDate(start.AddDate(0, 1, -1))
}

func shiftMonth(ym string, delta int) string {
	t, err := time.Parse("2006-01", ym)
	if err != nil {
		return ym
	}
	return t.AddDate(0, delta, 0).Format("2006-01")
}

func (t timeModel) criteria() filter.Criteria {
	c := t.list.criteria()
	c.CollaboratorID = t.collaborator
	c.ProjectID = t.project
	c.StartDate, c.EndDate = monthRange(t.month)
	return c
}

func (t *timeModel) rebuild() {
	rows := filter.TimeEntries(t.ix, t.snap.TimeEntries, t.criteria())
	t.rows = order.TimeEntries(t.ix, rows, t.list.sort)
	t.list.cursor = clampCursor(t.list.cursor, len(t.rows))
}

// filtered is what the export picker writes.
func (t timeModel) filtered() []model.TimeEntry {
	return t.rows
}

func (t timeModel) selected() (model.TimeEntry, bool) {
	if t.list.cursor >= len(t.rows) {
		return model.TimeEntry{}, false
	}
	return t.rows[t.list.cursor], true
}

func (t timeModel) capturing() bool {
	return t.formActive || t.list.capturing()
}

func (t timeModel) update(msg tea.Msg) (timeModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		form, cmd, res := updateForm(t.form, msg)
		t.form = form
		switch res {
		case formAborted:
			t.formActive = false
			t.form = nil
			return t, nil
		case formDone:
			t.formActive = false
			t.form = nil
			return t, t.save()
		}
		return t, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.list.confirmed(km) {
		t.list.confirm = false
		if e, ok := t.selected(); ok {
			return t, mutate(t.env.store, "Deleted entry", func() error {
				return t.env.store.DeleteEntry(e.ID)
			})
		}
		return t, nil
	}

	list, cmd, changed, handled := t.list.update(km, len(t.rows))
	t.list = list
	if changed {
		t.rebuild()
	}
	if handled {
		return t, cmd
	}

	switch {
	case key.Matches(km, keys.FilterCol):
		ids := []string{""}
		for _, c := range t.snap.Collaborators {
			ids = append(ids, idString(c.ID))
		}
		t.collaborator = nextString(ids, t.collaborator)
		t.rebuild()
	case key.Matches(km, keys.FilterPrj):
		ids := []string{""}
		for _, p := range t.snap.Projects {
			ids = append(ids, idString(p.ID))
		}
		t.project = nextString(ids, t.project)
		t.rebuild()
	case key.Matches(km, keys.Period):
		if t.month == "" {
			t.month = t.env.now().Format("2006-01")
		} else {
			t.month = ""
		}
		t.rebuild()
	case key.Matches(km, keys.PrevMonth), key.Matches(km, keys.NextMonth):
		if t.month == "" {
			t.month = t.env.now().Format("2006-01")
		}
		delta := 1
		if key.Matches(km, keys.PrevMonth) {
			delta = -1
		}
		t.month = shiftMonth(t.month, delta)
		t.rebuild()
	case key.Matches(km, keys.Validate), key.Matches(km, keys.Reject):
		e, ok := t.selected()
		if !ok {
			return t, nil
		}
		status := model.EntryValidated
		if key.Matches(km, keys.Reject) {
			status = model.EntryRejected
		}
		return t, mutate(t.env.store, "Entry "+strings.ToLower(status.Label()), func() error {
			return t.env.store.SetEntryStatus(e.ID, status)
		})
	case key.Matches(km, keys.New):
		if len(t.snap.Collaborators) == 0 || len(t.snap.Projects) == 0 {
			return t, statusCmd("Create a collaborator and a project first", true)
		}
		return t.showForm(nil)
	case key.Matches(km, keys.Edit):
		if e, ok := t.selected(); ok {
			return t.showForm(&e)
		}
	}
	return t, nil
}

func (t timeModel) showForm(e *model.TimeEntry) (timeModel, tea.Cmd) {
	f := t.fields
	*f = entryFields{
		date:   model.FormatDate(t.env.now()),
		hours:  "8",
		status: string(model.EntryPending),
	}
	if len(t.snap.Collaborators) > 0 {
		f.collaborator = idString(t.snap.Collaborators[0].ID)
	}
	if len(t.snap.Projects) > 0 {
		f.project = idString(t.snap.Projects[0].ID)
	}
	t.editingID = 0
	if e != nil {
		t.editingID = e.ID
		*f = entryFields{
			collaborator: idString(e.CollaboratorID),
			project:      idString(e.ProjectID),
			date:         e.Date,
			hours:        formatFloat(e.Hours),
			description:  e.Description,
			status:       string(e.Status),
		}
	}

	collaborators := make([]huh.Option[string], len(t.snap.Collaborators))
	for i, c := range t.snap.Collaborators {
		collaborators[i] = huh.NewOption(c.Name, idString(c.ID))
	}
	projects := make([]huh.Option[string], len(t.snap.Projects))
	for i, p := range t.snap.Projects {
		projects[i] = huh.NewOption(p.Name, idString(p.ID))
	}

	t.form = newForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Collaborator").Options(collaborators...).Value(&f.collaborator),
			huh.NewSelect[string]().Title("Project").Options(projects...).Value(&f.project),
			huh.NewInput().Title("Date").Value(&f.date).Validate(validateDate),
			huh.NewInput().Title("Hours (0.5 steps, max 24)").Value(&f.hours).Validate(validateNumber),
			huh.NewText().Title("Description").Value(&f.description),
			huh.NewSelect[string]().Title("Status").
				Options(stringOptions(model.EntryStatuses, model.EntryStatus.Label)...).Value(&f.status),
		),
	)
	t.formActive = true
	return t, t.form.Init()
}

func (t timeModel) save() tea.Cmd {
	f := *t.fields
	e := model.TimeEntry{
		ID:             t.editingID,
		CollaboratorID: parseID(f.collaborator),
		ProjectID:      parseID(f.project),
		Date:           f.date,
		Hours:          parseFloat(f.hours),
		Description:    strings.TrimSpace(f.description),
		Status:         model.EntryStatus(f.status),
	}
	s := t.env.store
	if e.ID == 0 {
		return mutate(s, "Entry added", func() error {
			_, err := s.CreateEntry(e)
			return err
		})
	}
	return mutate(s, "Entry updated", func() error {
		return s.UpdateEntry(e)
	})
}

func (t timeModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Entry")
		if t.editingID != 0 {
			title = titleStyle.Render("Edit Entry")
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()))
	}

	collaborator, project, month := "all", "all", "all time"
	if t.collaborator != "" {
		collaborator = t.ix.CollaboratorName(parseID(t.collaborator))
	}
	if t.project != "" {
		project = t.ix.ProjectName(parseID(t.project))
	}
	if t.month != "" {
		month = t.month
	}

	rows := []string{
		titleStyle.Render("Time") + mutedStyle.Render(fmt.Sprintf("  %d of %d  %s total", len(t.rows), len(t.snap.TimeEntries), formatHours(aggregate.TotalHours(t.rows)))),
		t.list.filterBar(func(s string) string { return model.EntryStatus(s).Label() }),
		fmt.Sprintf("%s %s  %s %s  %s %s",
			mutedStyle.Render("collaborator:"), highlightStyle.Render(collaborator),
			mutedStyle.Render("project:"), highlightStyle.Render(project),
			mutedStyle.Render("period:"), highlightStyle.Render(month)),
		"",
	}

	if len(t.rows) == 0 {
		rows = append(rows, mutedStyle.Render("No entries match. Press n to log time."))
		return panelStyle.Width(w).Render(joinRows(rows))
	}

	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-10s %-20s %-22s %7s  %-28s %s", "Date", "Collaborator", "Project", "Hours", "Description", "Status")))
	limit := max(t.height-12, 5)
	start := 0
	if t.list.cursor >= limit {
		start = t.list.cursor - limit + 1
	}
	for i := start; i < len(t.rows) && i < start+limit; i++ {
		e := t.rows[i]
		prefix, render := cursorPrefix(i, t.list.cursor)
		line := render(fmt.Sprintf("%s%-10s %-20s %-22s %7s  %-28s ",
			prefix, e.Date, truncate(t.ix.CollaboratorName(e.CollaboratorID), 20),
			truncate(t.ix.ProjectName(e.ProjectID), 22), formatHours(e.Hours), truncate(e.Description, 28)))
		rows = append(rows, line+entryStatusStyle(e.Status).Render(e.Status.Label()))
	}

	rows = append(rows, "", t.list.confirmLine("entry"))
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  v/r: validate/reject  c/p: collaborator/project  a [ ]: period  x: export"))
	return panelStyle.Width(w).Render(joinRows(rows))
}

// entryTable renders at most limit entries as plain rows for detail panes.
func entryTable(ix *model.Index, entries []model.TimeEntry, limit int) string {
	if len(entries) == 0 {
		return mutedStyle.Render("  No entries")
	}
	var rows []string
	for i, e := range entries {
		if i == limit {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(entries)-limit)))
			break
		}
		rows = append(rows, fmt.Sprintf("  %-10s %-20s %-22s %7s %s",
			e.Date, truncate(ix.CollaboratorName(e.CollaboratorID), 20), truncate(ix.ProjectName(e.ProjectID), 22),
			formatHours(e.Hours), entryStatusStyle(e.Status).Render(e.Status.Label())))
	}
	return joinRows(rows)
}
