package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

type clientFields struct {
	name, contact, phone, status string
}

type clientsModel struct {
	env    *env
	width  int
	height int

	snap model.Snapshot
	ix   *model.Index
	rows []model.Client
	list listState

	formActive bool
	form       *huh.Form
	editingID  int64
	fields     *clientFields
}

func newClientsModel(e *env) clientsModel {
	statuses := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		statuses[i] = string(s)
	}
	return clientsModel{
		env:    e,
		ix:     model.NewIndex(model.Snapshot{}),
		list:   newListState(statuses, order.ClientKeys, order.Config{Key: order.DefaultClientKey, Direction: order.Asc}),
		fields: &clientFields{},
	}
}

func (v *clientsModel) setSize(w, h int) {
	v.width = w
	v.height = h
}

func (v *clientsModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	v.snap = snap
	v.ix = ix
	v.rebuild()
}

func (v *clientsModel) rebuild() {
	rows := filter.Clients(v.snap.Clients, v.list.criteria())
	v.rows = order.Clients(v.snap, rows, v.list.sort)
	v.list.cursor = clampCursor(v.list.cursor, len(v.rows))
}

func (v clientsModel) selected() (model.Client, bool) {
	if v.list.cursor >= len(v.rows) {
		return model.Client{}, false
	}
	return v.rows[v.list.cursor], true
}

func (v clientsModel) capturing() bool {
	return v.formActive || v.list.capturing()
}

func (v clientsModel) update(msg tea.Msg) (clientsModel, tea.Cmd) {
	if v.formActive && v.form != nil {
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

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.list.confirmed(km) {
		v.list.confirm = false
		if c, ok := v.selected(); ok {
			return v, mutate(v.env.store, "Deleted "+c.Name, func() error {
				return v.env.store.DeleteClient(c.ID)
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
	case key.Matches(km, keys.New):
		return v.showForm(nil)
	case key.Matches(km, keys.Edit):
		if c, ok := v.selected(); ok {
			return v.showForm(&c)
		}
	}
	return v, nil
}

func (v clientsModel) showForm(c *model.Client) (clientsModel, tea.Cmd) {
	f := v.fields
	*f = clientFields{status: string(model.StatusActive)}
	v.editingID = 0
	if c != nil {
		v.editingID = c.ID
		*f = clientFields{name: c.Name, contact: c.Contact, phone: c.Phone, status: string(c.Status)}
	}

	v.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Contact email").Value(&f.contact),
			huh.NewInput().Title("Phone").Value(&f.phone),
			huh.NewSelect[string]().Title("Status").
				Options(stringOptions(model.Statuses, model.Status.Label)...).Value(&f.status),
		),
	)
	v.formActive = true
	return v, v.form.Init()
}

func (v clientsModel) save() tea.Cmd {
	f := *v.fields
	c := model.Client{
		ID:      v.editingID,
		Name:    strings.TrimSpace(f.name),
		Contact: strings.TrimSpace(f.contact),
		Phone:   strings.TrimSpace(f.phone),
		Status:  model.Status(f.status),
	}
	s := v.env.store
	if c.ID == 0 {
		return mutate(s, "Created "+c.Name, func() error {
			_, err := s.CreateClient(c)
			return err
		})
	}
	return mutate(s, "Updated "+c.Name, func() error {
		return s.UpdateClient(c)
	})
}

func (v clientsModel) view() string {
	w := v.width - 4

	if v.formActive && v.form != nil {
		title := titleStyle.Render("New Client")
		if v.editingID != 0 {
			title = titleStyle.Render("Edit Client")
		}
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", v.form.View()))
	}

	if v.list.detail {
		if c, ok := v.selected(); ok {
			return v.renderDetail(c, w)
		}
	}

	rows := []string{
		titleStyle.Render("Clients") + mutedStyle.Render(fmt.Sprintf("  %d of %d", len(v.rows), len(v.snap.Clients))),
		v.list.filterBar(func(s string) string { return model.Status(s).Label() }),
		"",
	}
	if len(v.rows) == 0 {
		rows = append(rows, mutedStyle.Render("No clients match. Press n to create one."))
		return panelStyle.Width(w).Render(joinRows(rows))
	}

	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-26s %-28s %-16s %8s %-10s", "Name", "Contact", "Phone", "Projects", "Status")))
	for i, c := range v.rows {
		prefix, render := cursorPrefix(i, v.list.cursor)
		projects := filter.RelatedProjects(v.snap, v.ix, filter.ScopeClient, c.ID, filter.Criteria{})
		line := render(fmt.Sprintf("%s%-26s %-28s %-16s %8d ",
			prefix, truncate(c.Name, 26), truncate(c.Contact, 28), truncate(c.Phone, 16), len(projects)))
		rows = append(rows, line+statusStyle(c.Status == model.StatusActive).Render(c.Status.Label()))
	}

	rows = append(rows, "", v.list.confirmLine("client"))
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  enter: details  f: status  o/O: sort"))
	return panelStyle.Width(w).Render(joinRows(rows))
}

func (v clientsModel) renderDetail(c model.Client, w int) string {
	projects := filter.RelatedProjects(v.snap, v.ix, filter.ScopeClient, c.ID, filter.Criteria{})
	entries := filter.RelatedTimeEntries(v.snap, v.ix, filter.ScopeClient, c.ID, filter.Criteria{})
	fin := v.env.agg.ClientFinance(c, projects, entries)
	cur := v.env.currency

	info := []string{
		titleStyle.Render(c.Name) + "  " + subtitleStyle.Render(c.Contact+" "+c.Phone),
		"",
		fmt.Sprintf("  %-12s %s", "Hours", highlightStyle.Render(formatHours(fin.Hours))),
		fmt.Sprintf("  %-12s %s", "Revenue", highlightStyle.Render(formatMoney(fin.Revenue, cur))),
		fmt.Sprintf("  %-12s %s", "Budget", formatMoney(fin.Budget, cur)),
		fmt.Sprintf("  %-12s %s", "Remaining", formatMoney(fin.Remaining, cur)),
		fmt.Sprintf("  %-12s %s %s", "Consumed", bar(fin.Percent, 20), alertStyle(fin.Alert).Render(formatPercent(fin.Percent))),
		fmt.Sprintf("  %-12s %s", "Days worked", formatFloat(fin.DaysWorked)),
		"",
		titleStyle.Render("Projects"),
	}
	if len(projects) == 0 {
		info = append(info, mutedStyle.Render("  None"))
	}
	for _, p := range projects {
		pf := v.env.agg.ProjectFinance(p, entries)
		info = append(info, fmt.Sprintf("  %-26s %-12s %10s %s",
			truncate(p.Name, 26), p.Status.Label(), formatHours(pf.Hours), alertStyle(pf.Alert).Render(formatPercent(pf.Percent))))
	}

	info = append(info, "", titleStyle.Render("Entries"), entryTable(v.ix, order.TimeEntries(v.ix, entries, order.Config{Key: "date", Direction: order.Desc}), 8))
	info = append(info, "", mutedStyle.Render("  esc: back"))
	return activePanelStyle.Width(w).Render(joinRows(info))
}
