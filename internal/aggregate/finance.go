package aggregate

import "github.com/sadopc/staffr/internal/model"

type AlertLevel string

const (
	AlertOK      AlertLevel = "ok"
	AlertWarning AlertLevel = "warning"
	AlertOver    AlertLevel = "over"
)

// Budget alert thresholds, as percentages of the budget consumed.
const (
	WarningThreshold = 80
	OverThreshold    = 100
)

// Finance is the budget picture of a project or of all of a client's
// projects. Consumed is the revenue billed so far.
type Finance struct {
	Hours      float64
	Revenue    float64
	Budget     float64
	Consumed   float64
	Remaining  float64
	Percent    float64
	DaysWorked float64
	Alert      AlertLevel
}

func alertFor(pct float64) AlertLevel {
	switch {
	case pct >= OverThreshold:
		return AlertOver
	case pct >= WarningThreshold:
		return AlertWarning
	default:
		return AlertOK
	}
}

func (c Config) finance(hours, revenue, budget float64) Finance {
	c = c.withDefaults()
	pct := percent(revenue, budget)
	return Finance{
		Hours:      hours,
		Revenue:    revenue,
		Budget:     budget,
		Consumed:   revenue,
		Remaining:  budget - revenue,
		Percent:    pct,
		DaysWorked: Round(hours / c.RevenueHoursPerDay),
		Alert:      alertFor(pct),
	}
}

// ProjectRevenue bills hours at the project's daily rate spread over
// RevenueHoursPerDay.
func (c Config) ProjectRevenue(p model.Project, hours float64) float64 {
	c = c.withDefaults()
	return hours * p.DailyRate / c.RevenueHoursPerDay
}

// ProjectFinance sums the project's entries among entries and compares the
// resulting revenue to its budget.
func (c Config) ProjectFinance(p model.Project, entries []model.TimeEntry) Finance {
	var hours float64
	for _, e := range entries {
		if e.ProjectID == p.ID {
			hours += e.Hours
		}
	}
	return c.finance(hours, c.ProjectRevenue(p, hours), p.Budget)
}

// ClientFinance sums ProjectFinance over every project of the client.
func (c Config) ClientFinance(client model.Client, projects []model.Project, entries []model.TimeEntry) Finance {
	var hours, revenue, budget float64
	for _, p := range projects {
		if p.ClientID != client.ID {
			continue
		}
		f := c.ProjectFinance(p, entries)
		hours += f.Hours
		revenue += f.Revenue
		budget += p.Budget
	}
	return c.finance(hours, revenue, budget)
}

func ProjectFinance(p model.Project, entries []model.TimeEntry) Finance {
	return DefaultConfig().ProjectFinance(p, entries)
}

func ClientFinance(client model.Client, projects []model.Project, entries []model.TimeEntry) Finance {
	return DefaultConfig().ClientFinance(client, projects, entries)
}
