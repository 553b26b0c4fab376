package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sadopc/staffr/internal/export"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/order"
	"github.com/sadopc/staffr/internal/report"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

var reportOpts struct {
	criteria criteriaFlags
	sort     string
	json     bool
	csv      bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the activity report",
	Long: `Compose the activity report over the filtered time entries: KPIs, hours and
revenue per collaborator and per project, occupation rates and the monthly
trend.

Examples:
  staffr report                               # All entries
  staffr report --month 2024-01               # One month
  staffr report --collaborator 2 --json       # One collaborator as JSON
  staffr report --sort revenue-desc --csv     # Tables as CSV`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if reportOpts.json && reportOpts.csv {
			return fmt.Errorf("--json and --csv are mutually exclusive")
		}
		cr, err := reportOpts.criteria.criteria()
		if err != nil {
			return err
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		format := "text"
		switch {
		case reportOpts.json:
			format = "json"
		case reportOpts.csv:
			format = "csv"
		}
		return writeReport(cmd.OutOrStdout(), sess, cr, order.ParseConfig(reportOpts.sort), format)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	fs := reportCmd.Flags()
	reportOpts.criteria.register(fs)
	fs.StringVar(&reportOpts.sort, "sort", report.DefaultKey+"-desc", "sort as key-direction (hours, revenue, name, occupation, progress)")
	fs.BoolVar(&reportOpts.json, "json", false, "output as JSON")
	fs.BoolVar(&reportOpts.csv, "csv", false, "output as CSV")
}

func writeReport(w io.Writer, sess *session, cr filter.Criteria, sortCfg order.Config, format string) error {
	snap, err := sess.store.Snapshot()
	if err != nil {
		return err
	}
	r := report.Compose(snap, cr, sortCfg, sess.cfg.Aggregate())
	slog.Debug("report composed", "entries", len(r.Entries), "sort", sortCfg.String())

	switch format {
	case "json":
		return export.WriteReportJSON(w, r)
	case "csv":
		return export.WriteReportCSV(w, r)
	}
	return printReport(w, r, sess.cfg.General.Currency)
}

func printReport(w io.Writer, r report.Report, currency string) error {
	money := func(v float64) string { return fmt.Sprintf("%.2f %s", v, currency) }
	num := formatNumber

	_, _ = fmt.Fprintln(w, sectionStyle.Render("KPIs"))
	kpis := [][2]string{
		{"Total hours", num(r.KPIs.TotalHours) + "h"},
		{"Revenue", money(r.KPIs.TotalRevenue)},
		{"Mean occupation", num(r.KPIs.MeanOccupation) + "%"},
		{"Active projects", strconv.Itoa(r.KPIs.ActiveProjects)},
	}
	for _, kv := range kpis {
		_, _ = fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", kv[0])), valueStyle.Render(kv[1]))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	table := func(title, header string, rows func()) {
		_ = tw.Flush()
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, sectionStyle.Render(title))
		_, _ = fmt.Fprintln(tw, header)
		rows()
	}

	table("Collaborators", "NAME\tHOURS\tREVENUE", func() {
		for _, row := range r.Collaborators {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, num(row.Hours), money(row.Revenue))
		}
	})
	table("Projects", "NAME\tCLIENT\tHOURS\tREVENUE\tBUDGET\tPROGRESS", func() {
		for _, row := range r.Projects {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s%%\n",
				row.Name, row.Client, num(row.Hours), money(row.Revenue), money(row.Budget), num(row.Progress))
		}
	})
	table("Occupation", "NAME\tHOURS\tOCCUPATION", func() {
		for _, row := range r.Occupation {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s%%\n", row.Name, num(row.Hours), num(row.Occupation))
		}
	})
	table("Trend", "MONTH\tHOURS\tREVENUE", func() {
		for _, p := range r.Trend {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Month, num(p.Hours), money(p.Revenue))
		}
	})
	return tw.Flush()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
