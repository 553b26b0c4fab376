package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
	"github.com/sadopc/staffr/internal/report"
)

type reportsModel struct {
	env    *env
	width  int
	height int

	snap model.Snapshot
	ix   *model.Index

	month        string // YYYY-MM, empty for all time
	collaborator string
	project      string
	sort         order.Config

	report report.Report
	chart  barchart.Model
}

func newReportsModel(e *env) reportsModel {
	return reportsModel{
		env:   e,
		ix:    model.NewIndex(model.Snapshot{}),
		sort:  order.Config{Key: report.DefaultKey, Direction: order.Desc},
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.buildChart()
}

func (r *reportsModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	r.snap = snap
	r.ix = ix
	r.compose()
}

func (r reportsModel) criteria() filter.Criteria {
	c := filter.Criteria{CollaboratorID: r.collaborator, ProjectID: r.project}
	c.StartDate, c.EndDate = monthRange(r.month)
	return c
}

func (r *reportsModel) compose() {
	r.report = report.Compose(r.snap, r.criteria(), r.sort, r.env.agg)
	r.buildChart()
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(km, keys.Left), key.Matches(km, keys.PrevMonth):
		if r.month == "" {
			r.month = r.env.now().Format("2006-01")
		}
		r.month = shiftMonth(r.month, -1)
	case key.Matches(km, keys.Right), key.Matches(km, keys.NextMonth):
		if r.month == "" {
			r.month = r.env.now().Format("2006-01")
		}
		r.month = shiftMonth(r.month, 1)
	case key.Matches(km, keys.Period):
		if r.month == "" {
			r.month = r.env.now().Format("2006-01")
		} else {
			r.month = ""
		}
	case key.Matches(km, keys.Sort):
		r.sort.Key = order.NextKey(order.ReportKeys, r.sort.Key)
	case key.Matches(km, keys.SortDir):
		r.sort = r.sort.Reverse()
	case key.Matches(km, keys.FilterCol):
		ids := []string{""}
		for _, c := range r.snap.Collaborators {
			ids = append(ids, idString(c.ID))
		}
		r.collaborator = nextString(ids, r.collaborator)
	case key.Matches(km, keys.FilterPrj):
		ids := []string{""}
		for _, p := range r.snap.Projects {
			ids = append(ids, idString(p.ID))
		}
		r.project = nextString(ids, r.project)
	default:
		return r, nil
	}
	r.compose()
	return r, nil
}

// buildChart draws the collaborator hours of the current report.
func (r *reportsModel) buildChart() {
	chartWidth := max(r.width/2-6, 20)
	chartHeight := 10
	if r.height > 40 {
		chartHeight = 14
	}
	r.chart = barchart.New(chartWidth, chartHeight)

	palette := []lipgloss.Color{colorPrimary, colorSecondary, colorAccent, colorWarning, colorSuccess, colorHighlight}
	var bars []barchart.BarData
	for i, row := range r.report.Collaborators {
		style := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
		bars = append(bars, barchart.BarData{
			Label:  truncate(firstName(row.Name), 10),
			Values: []barchart.BarValue{{Name: row.Name, Value: row.Hours, Style: style}},
		})
	}
	if len(bars) == 0 {
		return
	}
	r.chart.PushAll(bars)
	r.chart.Draw()
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

func (r reportsModel) view() string {
	w := r.width - 4
	cur := r.env.currency
	k := r.report.KPIs

	period, collaborator, project := "all time", "all", "all"
	if r.month != "" {
		period = r.month
	}
	if r.collaborator != "" {
		collaborator = r.ix.CollaboratorName(parseID(r.collaborator))
	}
	if r.project != "" {
		project = r.ix.ProjectName(parseID(r.project))
	}
	arrow := "↑"
	if r.sort.Direction == order.Desc {
		arrow = "↓"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		mutedStyle.Render("period: ")+highlightStyle.Render(period), "  ",
		mutedStyle.Render("collaborator: ")+highlightStyle.Render(collaborator), "  ",
		mutedStyle.Render("project: ")+highlightStyle.Render(project), "  ",
		mutedStyle.Render("sort: ")+highlightStyle.Render(r.sort.Key)+" "+arrow,
	)

	kpis := fmt.Sprintf("  %s %s   %s %s   %s %s   %s %d",
		mutedStyle.Render("Hours"), highlightStyle.Render(formatHours(k.TotalHours)),
		mutedStyle.Render("Revenue"), highlightStyle.Render(formatMoney(k.TotalRevenue, cur)),
		mutedStyle.Render("Mean occupation"), highlightStyle.Render(formatPercent(k.MeanOccupation)),
		mutedStyle.Render("Active projects"), k.ActiveProjects,
	)

	chart := mutedStyle.Render("  No data for this period")
	if len(r.report.Collaborators) > 0 {
		chart = r.chart.View()
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Hours per collaborator"), chart),
		"   ",
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Occupation"), r.renderOccupation()),
	)

	nav := mutedStyle.Render("  ←/→: month  a: all time/month  c/p: collaborator/project  o/O: sort")

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", kpis, "", top, "",
		titleStyle.Render("Collaborators"), r.renderCollaborators(), "",
		titleStyle.Render("Projects"), r.renderProjects(), "",
		titleStyle.Render("Trend"), r.renderTrend(), "",
		nav,
	))
}

func (r reportsModel) renderCollaborators() string {
	if len(r.report.Collaborators) == 0 {
		return mutedStyle.Render("  No entries")
	}
	rows := []string{mutedStyle.Render(fmt.Sprintf("  %-24s %10s %14s", "Name", "Hours", "Revenue"))}
	for _, row := range r.report.Collaborators {
		rows = append(rows, fmt.Sprintf("  %-24s %10s %14s", truncate(row.Name, 24), formatHours(row.Hours), formatMoney(row.Revenue, r.env.currency)))
	}
	return joinRows(rows)
}

func (r reportsModel) renderProjects() string {
	if len(r.report.Projects) == 0 {
		return mutedStyle.Render("  No entries")
	}
	rows := []string{mutedStyle.Render(fmt.Sprintf("  %-24s %-16s %10s %14s %14s %s", "Name", "Client", "Hours", "Revenue", "Budget", "Progress"))}
	for _, row := range r.report.Projects {
		rows = append(rows, fmt.Sprintf("  %-24s %-16s %10s %14s %14s %s %s",
			truncate(row.Name, 24), truncate(row.Client, 16), formatHours(row.Hours),
			formatMoney(row.Revenue, r.env.currency), formatMoney(row.Budget, r.env.currency),
			bar(row.Progress, 10), formatPercent(row.Progress)))
	}
	return joinRows(rows)
}

func (r reportsModel) renderOccupation() string {
	if len(r.report.Occupation) == 0 {
		return mutedStyle.Render("  No entries")
	}
	var rows []string
	for _, row := range r.report.Occupation {
		style := successStyle
		switch {
		case row.Occupation > 100:
			style = errorStyle
		case row.Occupation >= aggregate.WarningThreshold:
			style = warningStyle
		}
		rows = append(rows, fmt.Sprintf("  %-18s %s %s", truncate(row.Name, 18), bar(row.Occupation, 20), style.Render(formatPercent(row.Occupation))))
	}
	return joinRows(rows)
}

func (r reportsModel) renderTrend() string {
	if len(r.report.Trend) == 0 {
		return mutedStyle.Render("  No entries")
	}
	var peak float64
	for _, p := range r.report.Trend {
		peak = max(peak, p.Hours)
	}
	var rows []string
	for _, p := range r.report.Trend {
		pct := 0.0
		if peak > 0 {
			pct = p.Hours / peak * 100
		}
		rows = append(rows, fmt.Sprintf("  %s %s %8s %14s", p.Month, bar(pct, 24), formatHours(p.Hours), formatMoney(p.Revenue, r.env.currency)))
	}
	return joinRows(rows)
}
