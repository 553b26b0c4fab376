package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

type collaboratorFields struct {
	name, email, role, rate, hoursPerDay string
	status, contract, start, end         string
}

type collaboratorsModel struct {
	env    *env
	width  int
	height int

	snap     model.Snapshot
	ix       *model.Index
	rows     []model.Collaborator
	list     listState
	contract string

	formActive bool
	form       *huh.Form
	editingID  int64
	fields     *collaboratorFields
}

func newCollaboratorsModel(e *env) collaboratorsModel {
	statuses := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		statuses[i] = string(s)
	}
	return collaboratorsModel{
		env:    e,
		ix:     model.NewIndex(model.Snapshot{}),
		list:   newListState(statuses, order.CollaboratorKeys, order.Config{Key: order.DefaultCollaboratorKey, Direction: order.Asc}),
		fields: &collaboratorFields{},
	}
}

func (v *collaboratorsModel) setSize(w, h int) {
	v.width = w
	v.height = h
}

func (v *collaboratorsModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	v.snap = snap
	v.ix = ix
	v.rebuild()
}

func (v collaboratorsModel) criteria() filter.Criteria {
	c := v.list.criteria()
	c.ContractType = v.contract
	return c
}

func (v *collaboratorsModel) rebuild() {
	rows := filter.Collaborators(v.snap.Collaborators, v.criteria())
	v.rows = order.Collaborators(v.snap, rows, v.list.sort)
	v.list.cursor = clampCursor(v.list.cursor, len(v.rows))
}

func (v collaboratorsModel) selected() (model.Collaborator, bool) {
	if v.list.cursor >= len(v.rows) {
		return model.Collaborator{}, false
	}
	return v.rows[v.list.cursor], true
}

func (v collaboratorsModel) capturing() bool {
	return v.formActive || v.list.capturing()
}

func (v collaboratorsModel) update(msg tea.Msg) (collaboratorsModel, tea.Cmd) {
	if v.formActive && v.form != nil {
		return v.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.list.confirmed(km) {
		v.list.confirm = false
		if c, ok := v.selected(); ok {
			return v, mutate(v.env.store, "Deleted "+c.Name, func() error {
				return v.env.store.DeleteCollaborator(c.ID)
			})
		}
		return v, nil
	}

	list, cmd, changed, handled := v.list.update(km, len(v.rows))
	v.list = list
	if changed {
		v.rebuild()
	}
	if handled {
		return v, cmd
	}

	switch {
	case key.Matches(km, keys.FilterCol):
		contracts := make([]string, 0, len(model.ContractTypes)+1)
		contracts = append(contracts, "")
		for _, c := range model.ContractTypes {
			contracts = append(contracts, string(c))
		}
		v.contract = nextString(contracts, v.contract)
		v.rebuild()
	case key.Matches(km, keys.New):
		return v.showForm(nil)
	case key.Matches(km, keys.Edit):
		if c, ok := v.selected(); ok {
			return v.showForm(&c)
		}
	}
	return v, nil
}

func (v collaboratorsModel) showForm(c *model.Collaborator) (collaboratorsModel, tea.Cmd) {
	f := v.fields
	*f = collaboratorFields{
		status:      string(model.StatusActive),
		contract:    string(model.ContractCDI),
		hoursPerDay: formatFloat(aggregate.DefaultHoursPerDay),
		start:       model.FormatDate(v.env.now()),
	}
	v.editingID = 0
	if c != nil {
		v.editingID = c.ID
		*f = collaboratorFields{
			name:        c.Name,
			email:       c.Email,
			role:        c.Role,
			rate:        formatFloat(c.HourlyRate),
			hoursPerDay: formatFloat(c.HoursPerDay),
			status:      string(c.Status),
			contract:    string(c.ContractType),
			start:       c.StartDate,
			end:         c.EndDate,
		}
	}

	v.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Email").Value(&f.email).Validate(validateRequired),
			huh.NewInput().Title("Role").Value(&f.role).Validate(validateRequired),
			huh.NewInput().Title("Hourly rate").Value(&f.rate).Validate(validateNumber),
			huh.NewInput().Title("Hours per day").Value(&f.hoursPerDay).Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Status").
				Options(stringOptions(model.Statuses, model.Status.Label)...).Value(&f.status),
			huh.NewSelect[string]().Title("Contract").
				Options(stringOptions(model.ContractTypes, func(c model.ContractType) string { return string(c) })...).
				Value(&f.contract),
			huh.NewInput().Title("Start date").Value(&f.start).Validate(validateDate),
			huh.NewInput().Title("End date (empty for CDI)").Value(&f.end).Validate(validateDate),
		),
	)
	v.formActive = true
	return v, v.form.Init()
}

func (v collaboratorsModel) updateForm(msg tea.Msg) (collaboratorsModel, tea.Cmd) {
	form, cmd, res := updateForm(v.form, msg)
	v.form = form
	switch res {
	case formAborted:
		v.formActive = false
		v.form = nil
		return v, nil
	case formDone:
		v.formActive = false
		v.form = nil
		return v, v.save()
	}
	return v, cmd
}

func (v collaboratorsModel) save() tea.Cmd {
	f := *v.fields
	c := model.Collaborator{
		ID:           v.editingID,
		Name:         strings.TrimSpace(f.name),
		Email:        strings.TrimSpace(f.email),
		Role:         strings.TrimSpace(f.role),
		HourlyRate:   parseFloat(f.rate),
		HoursPerDay:  parseFloat(f.hoursPerDay),
		Status:       model.Status(f.status),
		ContractType: model.ContractType(f.contract),
		StartDate:    f.start,
		EndDate:      f.end,
	}
	s := v.env.store
	if c.ID == 0 {
		return mutate(s, "Created "+c.Name, func() error {
			_, err := s.CreateCollaborator(c)
			return err
		})
	}
	return mutate(s, "Updated "+c.Name, func() error {
		return s.UpdateCollaborator(c)
	})
}

func (v collaboratorsModel) view() string {
	w := v.width - 4

	if v.formActive && v.form != nil {
		title := titleStyle.Render("New Collaborator")
		if v.editingID != 0 {
			title = titleStyle.Render("Edit Collaborator")
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", v.form.View()))
	}

	if v.list.detail {
		if c, ok := v.selected(); ok {
			return v.renderDetail(c, w)
		}
	}
	return v.renderList(w)
}

func (v collaboratorsModel) renderList(w int) string {
	contract := "all"
	if v.contract != "" {
		contract = v.contract
	}
	rows := []string{
		titleStyle.Render("Collaborators") + mutedStyle.Render(fmt.Sprintf("  %d of %d", len(v.rows), len(v.snap.Collaborators))),
		v.list.filterBar(func(s string) string { return model.Status(s).Label() }) +
			"  " + mutedStyle.Render("contract:") + " " + highlightStyle.Render(contract),
		"",
	}

	if len(v.rows) == 0 {
		rows = append(rows, mutedStyle.Render("No collaborators match. Press n to create one."))
		return panelStyle.Width(w).Render(joinRows(rows))
	}

	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-22s %-20s %-10s %10s %10s %-10s", "Name", "Role", "Contract", "Rate/h", "Hours", "Status")))
	for i, c := range v.rows {
		prefix, render := cursorPrefix(i, v.list.cursor)
		hours := aggregate.CollaboratorTotals(c, v.snap.TimeEntries).Hours
		line := render(fmt.Sprintf("%s%-22s %-20s %-10s %10s %10s ",
			prefix, truncate(c.Name, 22), truncate(c.Role, 20), c.ContractType,
			formatFloat(c.HourlyRate), formatHours(hours)))
		rows = append(rows, line+statusStyle(c.Status == model.StatusActive).Render(c.Status.Label()))
	}

	rows = append(rows, "", v.list.confirmLine("collaborator"))
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  enter: details  c: contract  f: status  o/O: sort"))
	return panelStyle.Width(w).Render(joinRows(rows))
}

func (v collaboratorsModel) renderDetail(c model.Collaborator, w int) string {
	entries := filter.RelatedTimeEntries(v.snap, v.ix, filter.ScopeCollaborator, c.ID, filter.Criteria{})
	hr := v.env.agg.CollaboratorHR(c, entries, v.env.now())
	totals := aggregate.CollaboratorTotals(c, entries)

	end := c.EndDate
	if end == "" {
		end = "-"
	}
	info := []string{
		titleStyle.Render(c.Name) + "  " + subtitleStyle.Render(c.Role),
		"",
		fmt.Sprintf("  %-16s %s", "Email", c.Email),
		fmt.Sprintf("  %-16s %s  (%s → %s)", "Contract", c.ContractType, c.StartDate, end),
		fmt.Sprintf("  %-16s %s/h  %s/day", "Rates", formatMoney(c.HourlyRate, v.env.currency), formatMoney(c.DailyRate, v.env.currency)),
		"",
		fmt.Sprintf("  %-16s %s", "Total hours", highlightStyle.Render(formatHours(hr.TotalHours))),
		fmt.Sprintf("  %-16s %s", "Revenue", highlightStyle.Render(formatMoney(totals.Revenue, v.env.currency))),
		fmt.Sprintf("  %-16s %s", "Worked days", formatFloat(hr.WorkedDays)),
		fmt.Sprintf("  %-16s %d", "Days since hire", hr.DaysSinceHire),
		fmt.Sprintf("  %-16s %d", "Active months", hr.ActiveMonths),
		fmt.Sprintf("  %-16s %s", "Hours per day", formatFloat(hr.HoursPerDay)),
		"",
		titleStyle.Render("Recent months"),
	}
	if len(hr.Months) == 0 {
		info = append(info, mutedStyle.Render("  No time logged"))
	}
	for _, m := range hr.Months {
		info = append(info, fmt.Sprintf("  %s %8s %s %s", m.Month, formatHours(m.Hours), bar(m.Fill, 20), formatPercent(m.Fill)))
	}

	projects := filter.RelatedProjects(v.snap, v.ix, filter.ScopeCollaborator, c.ID, filter.Criteria{})
	info = append(info, "", titleStyle.Render("Projects"))
	if len(projects) == 0 {
		info = append(info, mutedStyle.Render("  None"))
	}
	for _, p := range projects {
		info = append(info, fmt.Sprintf("  %s  %s", p.Name, mutedStyle.Render(v.ix.ClientName(p.ClientID))))
	}

	info = append(info, "", titleStyle.Render("Entries"), entryTable(v.ix, order.TimeEntries(v.ix, entries, order.Config{Key: "date", Direction: order.Desc}), 8))
	info = append(info, "", mutedStyle.Render("  esc: back"))
	return activePanelStyle.Width(w).Render(joinRows(info))
}
