package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/config"
	"github.com/sadopc/staffr/internal/export"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/store"
)

// env is what every view reads besides the snapshot. It is only written from
// App.Update.
type env struct {
	store     *store.Store
	agg       aggregate.Config
	holidays  calendar.Holidays
	company   string
	currency  string
	exportDir string
	now       func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	env    *env
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	snap model.Snapshot
	ix   *model.Index

	dashboard     dashboardModel
	collaborators collaboratorsModel
	clients       clientsModel
	projects      projectsModel
	time          timeModel
	reports       reportsModel
	calendar      calendarModel
	settings      settingsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store, cfg *config.Config) App {
	if cfg == nil {
		cfg = config.Default()
	}
	home, _ := os.UserHomeDir()
	e := &env{
		store:     s,
		agg:       cfg.Aggregate(),
		holidays:  cfg.Holidays,
		company:   cfg.General.Company,
		currency:  cfg.General.Currency,
		exportDir: home,
		now:       time.Now,
	}

	h := help.New()
	h.ShowAll = false

	return App{
		env:           e,
		activeView:    viewDashboard,
		ix:            model.NewIndex(model.Snapshot{}),
		dashboard:     newDashboardModel(e),
		collaborators: newCollaboratorsModel(e),
		clients:       newClientsModel(e),
		projects:      newProjectsModel(e),
		time:          newTimeModel(e),
		reports:       newReportsModel(e),
		calendar:      newCalendarModel(e),
		settings:      newSettingsModel(e),
		help:          h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadSnapshot(a.env.store),
		tea.Sequence(a.applyGeneral(), a.settings.refresh()),
	)
}

// applyGeneral copies the config file's company and currency into the store
// so the settings view starts from them.
func (a App) applyGeneral() tea.Cmd {
	s, company, currency := a.env.store, a.env.company, a.env.currency
	return func() tea.Msg {
		if err := s.SetSetting(store.SettingCompany, company); err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		if err := s.SetSetting(store.SettingCurrency, currency); err != nil {
			return statusMsg{text: err.Error(), isError: true}
		}
		return nil
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.collaborators.setSize(a.width, contentHeight)
		a.clients.setSize(a.width, contentHeight)
		a.projects.setSize(a.width, contentHeight)
		a.time.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A form or search box in the active view takes every key.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewCollaborators)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewClients)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewProjects)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewTime)
		case key.Matches(msg, keys.Tab6):
			return a.switchTo(viewReports)
		case key.Matches(msg, keys.Tab7):
			return a.switchTo(viewCalendar)
		case key.Matches(msg, keys.Tab8):
			return a.switchTo(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}

	case snapshotMsg:
		a.applySnapshot(msg.snap)
		return a, nil

	case mutationMsg:
		if msg.snap != nil {
			a.applySnapshot(*msg.snap)
		}
		if msg.err != nil {
			a.status, a.statusErr = "Error: "+msg.err.Error(), true
		} else {
			a.status, a.statusErr = msg.status, false
		}
		return a, nil

	case settingsDataMsg:
		for _, st := range msg.settings {
			switch st.Key {
			case store.SettingCompany:
				a.env.company = st.Value
			case store.SettingCurrency:
				a.env.currency = st.Value
			}
		}
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case statusMsg:
		a.status, a.statusErr = msg.text, msg.isError
		return a, nil

	case exportDoneMsg:
		a.status, a.statusErr = "Exported to "+msg.path, false
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	if v == viewSettings {
		return a, a.settings.refresh()
	}
	return a, nil
}

// applySnapshot hands a fresh snapshot to every view so derived rows never
// lag behind the store.
func (a *App) applySnapshot(snap model.Snapshot) {
	a.snap = snap
	a.ix = model.NewIndex(snap)
	a.dashboard.setSnapshot(snap, a.ix)
	a.collaborators.setSnapshot(snap, a.ix)
	a.clients.setSnapshot(snap, a.ix)
	a.projects.setSnapshot(snap, a.ix)
	a.time.setSnapshot(snap, a.ix)
	a.reports.setSnapshot(snap, a.ix)
	a.calendar.setSnapshot(snap, a.ix)
	a.settings.setSnapshot(snap, a.ix)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewCollaborators:
		a.collaborators, cmd = a.collaborators.update(msg)
	case viewClients:
		a.clients, cmd = a.clients.update(msg)
	case viewProjects:
		a.projects, cmd = a.projects.update(msg)
	case viewTime:
		a.time, cmd = a.time.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCollaborators:
		return a.collaborators.capturing()
	case viewClients:
		return a.clients.capturing()
	case viewProjects:
		return a.projects.capturing()
	case viewTime:
		return a.time.capturing()
	case viewSettings:
		return a.settings.capturing()
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewCollaborators:
		content = a.collaborators.view()
	case viewClients:
		content = a.clients.view()
	case viewProjects:
		content = a.projects.view()
	case viewTime:
		content = a.time.view()
	case viewReports:
		content = a.reports.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewSettings:
		content = a.settings.view()
	}

	contentHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("staffr")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(status)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

var exportFormats = []string{"CSV", "JSON"}

func (a App) renderExportPicker() string {
	rows := []string{
		titleStyle.Render("Export Format"),
		mutedStyle.Render(fmt.Sprintf("%d entries from the Time view filters", len(a.time.filtered()))),
		"",
	}
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	entries := a.time.filtered()
	ix := a.ix
	dir := a.env.exportDir
	now := a.env.now()
	return func() tea.Msg {
		base := filepath.Join(dir, "staffr-export-"+model.FormatDate(now))
		if format == 0 {
			path := base + ".csv"
			if err := export.ToCSV(entries, ix, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
			return exportDoneMsg{path: path}
		}
		path := base + ".json"
		if err := export.ToJSON(entries, ix, path, now); err != nil {
			return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
