package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
)

// criteriaFlags are the time-entry filters shared by report and export.
type criteriaFlags struct {
	month        string
	from         string
	to           string
	collaborator string
	project      string
	client       string
	status       string
	search       string
}

func (c *criteriaFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.month, "month", "", "restrict to one month (YYYY-MM), overrides --from/--to")
	fs.StringVar(&c.from, "from", "", "first date included (YYYY-MM-DD)")
	fs.StringVar(&c.to, "to", "", "last date included (YYYY-MM-DD)")
	fs.StringVar(&c.collaborator, "collaborator", "", "collaborator id")
	fs.StringVar(&c.project, "project", "", "project id")
	fs.StringVar(&c.client, "client", "", "client id")
	fs.StringVar(&c.status, "status", "", "entry status (pending, validated, rejected)")
	fs.StringVar(&c.search, "search", "", "case-insensitive text search")
}

func (c criteriaFlags) criteria() (filter.Criteria, error) {
	cr := filter.Criteria{
		Search:         c.search,
		StartDate:      c.from,
		EndDate:        c.to,
		Status:         c.status,
		ProjectID:      c.project,
		ClientID:       c.client,
		CollaboratorID: c.collaborator,
	}
	if c.month != "" {
		start, end, err := monthBounds(c.month)
		if err != nil {
			return filter.Criteria{}, err
		}
		cr.StartDate, cr.EndDate = start, end
	}
	for _, d := range []string{cr.StartDate, cr.EndDate} {
		if d == "" {
			continue
		}
		if _, err := model.ParseDate(d); err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid date %q: %w", d, err)
		}
	}
	if c.status != "" && !model.EntryStatus(c.status).Valid() {
		return filter.Criteria{}, fmt.Errorf("unknown entry status %q", c.status)
	}
	return cr, nil
}

func parseMonth(ym string) (time.Time, error) {
	t, err := time.Parse("2006-01", ym)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", ym)
	}
	return t, nil
}

// monthBounds returns the first and last ISO dates of ym.
func monthBounds(ym string) (string, string, error) {
	first, err := parseMonth(ym)
	if err != nil {
		return "", "", err
	}
	return model.FormatDate(first), model.FormatDate(first.AddDate(0, 1, -1)), nil
}
