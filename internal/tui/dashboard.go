package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/model"
)

type dashboardModel struct {
	env    *env
	width  int
	height int

	snap  model.Snapshot
	ix    *model.Index
	stats aggregate.Stats
	chart barchart.Model
}

func newDashboardModel(e *env) dashboardModel {
	return dashboardModel{
		env:   e,
		ix:    model.NewIndex(model.Snapshot{}),
		chart: barchart.New(60, 10),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.buildChart()
}

func (d *dashboardModel) setSnapshot(snap model.Snapshot, ix *model.Index) {
	d.snap = snap
	d.ix = ix
	d.stats = d.env.agg.Dashboard(snap)
	d.buildChart()
}

// buildChart stacks consumed and remaining days per project.
func (d *dashboardModel) buildChart() {
	chartWidth := max(d.width-8, 20)
	d.chart = barchart.New(chartWidth, 10)

	consumed := lipgloss.NewStyle().Foreground(colorPrimary)
	remaining := lipgloss.NewStyle().Foreground(colorSecondary)

	var bars []barchart.BarData
	for _, p := range d.stats.Projects {
		bars = append(bars, barchart.BarData{
			Label: truncate(p.Name, 12),
			Values: []barchart.BarValue{
				{Name: "Consumed", Value: float64(p.Consumed), Style: consumed},
				{Name: "Remaining", Value: float64(max(p.Remaining, 0)), Style: remaining},
			},
		})
	}
	if len(bars) == 0 {
		return
	}
	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	w := d.width - 4
	cur := d.env.currency

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		d.card("Active collaborators", fmt.Sprint(d.stats.ActiveCollaborators)),
		d.card("Projects in progress", fmt.Sprint(d.stats.ProjectsInProgress)),
		d.card("Hours logged", formatHours(d.stats.TotalHours)),
		d.card("Revenue", formatMoney(d.stats.Revenue, cur)),
	)

	title := titleStyle.Render(d.env.company) + "  " + subtitleStyle.Render("Dashboard")

	chart := mutedStyle.Render("  No projects in progress")
	if len(d.stats.Projects) > 0 {
		legend := lipgloss.NewStyle().Foreground(colorPrimary).Render("●") + " consumed  " +
			lipgloss.NewStyle().Foreground(colorSecondary).Render("●") + " remaining days"
		chart = lipgloss.JoinVertical(lipgloss.Left, d.chart.View(), "  "+legend)
	}

	recent := []string{titleStyle.Render("Recent entries")}
	if len(d.stats.Recent) == 0 {
		recent = append(recent, mutedStyle.Render("  No time logged yet. Press 5 to open Time."))
	} else {
		recent = append(recent, entryTable(d.ix, d.stats.Recent, aggregate.RecentEntries))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		title, "", cards, "",
		titleStyle.Render("Project days"), chart, "",
		joinRows(recent),
	))
}

func (d dashboardModel) card(label, value string) string {
	width := max((d.width-12)/4, 16)
	return cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		cardValueStyle.Render(value),
		mutedStyle.Render(label),
	))
}
