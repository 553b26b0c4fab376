package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

type projectFields struct {
	name, client, start, end, budget, dailyRate string
	status, allocated, consumed                 string
}

type projectsModel struct {
	env    *env
	width  int
	height int

	snap   model.Snapshot
	ix     *model.Index
	rows   []model.Project
	list   listState
	client string

	formActive bool
	form       *huh.Form
	editingID  int64
	fields     *projectFields
}

func newProjectsModel(e *env) projectsModel {
	statuses := make([]string, len(model.ProjectStatuses))
	for i, s := range model.ProjectStatuses {
		statuses[i] = string(s)
	}
	return projectsModel{
		env:    e,
		ix:     model.NewIndex(model.Snapshot{}),
		list:   newListState(statuses, order.ProjectKeys, order.Config{Key: order.DefaultProjectKey, Direction: order.Desc}),
		fields: &projectFields{},
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *projectsModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	p.snap = snap
	p.ix = ix
	p.rebuild()
}

func (p projectsModel) criteria() filter.Criteria {
	c := p.list.criteria()
	c.ClientID = p.client
	return c
}

func (p *projectsModel) rebuild() {
	rows := filter.Projects(p.ix, p.snap.Projects, p.criteria())
	p.rows = order.Projects(p.snap, p.ix, rows, p.list.sort)
	p.list.cursor = clampCursor(p.list.cursor, len(p.rows))
}

func (p projectsModel) selected() (model.Project, bool) {
	if p.list.cursor >= len(p.rows) {
		return model.Project{}, false
	}
	return p.rows[p.list.cursor], true
}

func (p projectsModel) capturing() bool {
	return p.formActive || p.list.capturing()
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		form, cmd, res := updateForm(p.form, msg)
		p.form = form
		switch res {
		case formAborted:
			p.formActive = false
			p.form = nil
			return p, nil
		case formDone:
			p.formActive = false
			p.form = nil
			return p, p.save()
		}
		return p, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.list.confirmed(km) {
		p.list.confirm = false
		if proj, ok := p.selected(); ok {
			return p, mutate(p.env.store, "Deleted "+proj.Name, func() error {
				return p.env.store.DeleteProject(proj.ID)
			})
		}
		return p, nil
	}

	list, cmd, changed, handled := p.list.update(km, len(p.rows))
	p.list = list
	if changed {
		p.rebuild()
	}
	if handled {
		return p, cmd
	}

	switch {
	case key.Matches(km, keys.FilterCol):
		ids := []string{""}
		for _, c := range p.snap.Clients {
			ids = append(ids, idString(c.ID))
		}
		p.client = nextString(ids, p.client)
		p.rebuild()
	case key.Matches(km, keys.New):
		if len(p.snap.Clients) == 0 {
			return p, statusCmd("Create a client first", true)
		}
		return p.showForm(nil)
	case key.Matches(km, keys.Edit):
		if proj, ok := p.selected(); ok {
			return p.showForm(&proj)
		}
	}
	return p, nil
}

func (p projectsModel) showForm(proj *model.Project) (projectsModel, tea.Cmd) {
	f := p.fields
	*f = projectFields{
		status: string(model.ProjectInProgress),
		start:  model.FormatDate(p.env.now()),
	}
	if len(p.snap.Clients) > 0 {
		f.client = idString(p.snap.Clients[0].ID)
	}
	p.editingID = 0
	if proj != nil {
		p.editingID = proj.ID
		*f = projectFields{
			name:      proj.Name,
			client:    idString(proj.ClientID),
			start:     proj.StartDate,
			end:       proj.EndDate,
			budget:    formatFloat(proj.Budget),
			dailyRate: formatFloat(proj.DailyRate),
			status:    string(proj.Status),
			allocated: fmt.Sprint(proj.DaysAllocated),
			consumed:  fmt.Sprint(proj.DaysConsumed),
		}
	}

	clients := make([]huh.Option[string], len(p.snap.Clients))
	for i, c := range p.snap.Clients {
		clients[i] = huh.NewOption(c.Name, idString(c.ID))
	}

	p.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Project name").Value(&f.name).Validate(validateRequired),
			huh.NewSelect[string]().Title("Client").Options(clients...).Value(&f.client),
			huh.NewInput().Title("Start date").Value(&f.start).Validate(validateDate),
			huh.NewInput().Title("End date").Value(&f.end).Validate(validateDate),
			huh.NewSelect[string]().Title("Status").
				Options(stringOptions(model.ProjectStatuses, model.ProjectStatus.Label)...).Value(&f.status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Budget").Value(&f.budget).Validate(validateNumber),
			huh.NewInput().Title("Daily rate").Value(&f.dailyRate).Validate(validateNumber),
			dayCountInput("Days allocated", &f.allocated),
			dayCountInput("Days consumed", &f.consumed),
		).Title("Budget"),
	)
	p.formActive = true
	return p, p.form.Init()
}

func dayCountInput(title string, v *string) *huh.Input {
	return huh.NewInput().Title(title).Value(v).Validate(validateCount)
}

func (p projectsModel) save() tea.Cmd {
	f := *p.fields
	allocated, err := parseCount(f.allocated)
	if err != nil {
		return statusCmd("Days allocated: "+err.Error(), true)
	}
	consumed, err := parseCount(f.consumed)
	if err != nil {
		return statusCmd("Days consumed: "+err.Error(), true)
	}
	proj := model.Project{
		ID:            p.editingID,
		Name:          strings.TrimSpace(f.name),
		ClientID:      parseID(f.client),
		StartDate:     f.start,
		EndDate:       f.end,
		Budget:        parseFloat(f.budget),
		DailyRate:     parseFloat(f.dailyRate),
		Status:        model.ProjectStatus(f.status),
		DaysAllocated: allocated,
		DaysConsumed:  consumed,
	}
	s := p.env.store
	if proj.ID == 0 {
		return mutate(s, "Created "+proj.Name, func() error {
			_, err := s.CreateProject(proj)
			return err
		})
	}
	return mutate(s, "Updated "+proj.Name, func() error {
		return s.UpdateProject(proj)
	})
}

func (p projectsModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Project")
		if p.editingID != 0 {
			title = titleStyle.Render("Edit Project")
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()))
	}

	if p.list.detail {
		if proj, ok := p.selected(); ok {
			return p.renderDetail(proj, w)
		}
	}
	return p.renderProjectList(w)
}

func (p projectsModel) renderProjectList(w int) string {
	client := "all"
	if p.client != "" {
		client = p.ix.ClientName(parseID(p.client))
	}
	rows := []string{
		titleStyle.Render("Projects") + mutedStyle.Render(fmt.Sprintf("  %d of %d", len(p.rows), len(p.snap.Projects))),
		p.list.filterBar(func(s string) string { return model.ProjectStatus(s).Label() }) +
			"  " + mutedStyle.Render("client:") + " " + highlightStyle.Render(client),
		"",
	}

	if len(p.rows) == 0 {
		rows = append(rows, mutedStyle.Render("No projects match. Press n to create one."))
		return panelStyle.Width(w).Render(joinRows(rows))
	}

	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-24s %-16s %-10s %-10s %12s %-20s %6s", "Name", "Client", "Start", "End", "Budget", "Progress", "Left")))
	for i, proj := range p.rows {
		prefix, render := cursorPrefix(i, p.list.cursor)
		progress := aggregate.Progress(proj)
		left := fmt.Sprintf("%6d", proj.DaysRemaining)
		if proj.DaysRemaining < 0 {
			left = errorStyle.Render(left)
		}
		line := render(fmt.Sprintf("%s%-24s %-16s %-10s %-10s %12s ",
			prefix, truncate(proj.Name, 24), truncate(p.ix.ClientName(proj.ClientID), 16),
			proj.StartDate, proj.EndDate, formatFloat(proj.Budget)))
		rows = append(rows, line+fmt.Sprintf("%s %-5s %s", bar(progress, 14), formatPercent(progress), left))
	}

	rows = append(rows, "", p.list.confirmLine("project"))
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  enter: details  c: client  f: status  o/O: sort"))
	return panelStyle.Width(w).Render(joinRows(rows))
}

func (p projectsModel) renderDetail(proj model.Project, w int) string {
	entries := filter.RelatedTimeEntries(p.snap, p.ix, filter.ScopeProject, proj.ID, filter.Criteria{})
	fin := p.env.agg.ProjectFinance(proj, entries)
	cur := p.env.currency
	cal := calendar.New(p.env.holidays, p.snap.Overrides)

	info := []string{
		titleStyle.Render(proj.Name) + "  " + subtitleStyle.Render(p.ix.ClientName(proj.ClientID)+" · "+proj.Status.Label()),
		"",
		fmt.Sprintf("  %-16s %s → %s  (%d working days)", "Period", proj.StartDate, proj.EndDate,
			cal.WorkingDaysBetween(proj.StartDate, proj.EndDate)),
		fmt.Sprintf("  %-16s %d allocated, %d consumed, %d remaining", "Days", proj.DaysAllocated, proj.DaysConsumed, proj.DaysRemaining),
		fmt.Sprintf("  %-16s %s %s", "Progress", bar(aggregate.Progress(proj), 20), formatPercent(aggregate.Progress(proj))),
		"",
		fmt.Sprintf("  %-16s %s", "Hours", highlightStyle.Render(formatHours(fin.Hours))),
		fmt.Sprintf("  %-16s %s", "Days worked", formatFloat(fin.DaysWorked)),
		fmt.Sprintf("  %-16s %s/day", "Daily rate", formatMoney(proj.DailyRate, cur)),
		fmt.Sprintf("  %-16s %s", "Revenue", highlightStyle.Render(formatMoney(fin.Revenue, cur))),
		fmt.Sprintf("  %-16s %s", "Budget", formatMoney(fin.Budget, cur)),
		fmt.Sprintf("  %-16s %s", "Remaining", formatMoney(fin.Remaining, cur)),
		fmt.Sprintf("  %-16s %s %s", "Consumed", bar(fin.Percent, 20), alertStyle(fin.Alert).Render(formatPercent(fin.Percent))),
	}
	switch fin.Alert {
	case aggregate.AlertOver:
		info = append(info, errorStyle.Render("  Budget exceeded"))
	case aggregate.AlertWarning:
		info = append(info, warningStyle.Render(fmt.Sprintf("  Over %d%% of budget consumed", aggregate.WarningThreshold)))
	}

	info = append(info, "", titleStyle.Render("Entries"), entryTable(p.ix, order.TimeEntries(p.ix, entries, order.Config{Key: "date", Direction: order.Desc}), 8))
	info = append(info, "", mutedStyle.Render("  esc: back"))
	return activePanelStyle.Width(w).Render(joinRows(info))
}
