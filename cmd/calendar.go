package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sadopc/staffr/internal/calendar"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
)

var (
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	customStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var calendarOpts struct {
	month        string
	collaborator string
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the working-day calendar of a month",
	Long: `Print a Monday-first month grid with weekends, public holidays and
non-working overrides, followed by the month's statistics. Days carrying time
entries are marked with '*'.

Examples:
  staffr calendar                             # Current month
  staffr calendar --month 2024-05             # May 2024
  staffr calendar --collaborator 1            # Only one collaborator's entries`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		ym := calendarOpts.month
		if ym == "" {
			ym = sess.now.Format("2006-01")
		}
		first, err := parseMonth(ym)
		if err != nil {
			return err
		}
		return printCalendar(cmd.OutOrStdout(), sess, first.Year(), first.Month(), calendarOpts.collaborator)
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarOpts.month, "month", "", "month to show (YYYY-MM, default current)")
	calendarCmd.Flags().StringVar(&calendarOpts.collaborator, "collaborator", "", "only count this collaborator's entries")
}

func printCalendar(w io.Writer, sess *session, year int, month time.Month, collaborator string) error {
	snap, err := sess.store.Snapshot()
	if err != nil {
		return err
	}
	ix := model.NewIndex(snap)
	cal := calendar.New(sess.cfg.Holidays, snap.Overrides)
	entries := filter.TimeEntries(ix, snap.TimeEntries, filter.Criteria{CollaboratorID: collaborator})
	m := cal.BuildMonth(year, month, entries)

	_, _ = fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%s %d", month, year)))
	_, _ = fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	var line strings.Builder
	line.WriteString(strings.Repeat("    ", m.Lead))
	col := m.Lead
	var notes []string
	for _, d := range m.Days {
		mark := " "
		if len(d.Entries) > 0 {
			mark = "*"
		}
		cell := fmt.Sprintf("%3d%s", d.Day, mark)
		switch d.Status.Kind {
		case calendar.KindWeekend:
			cell = weekendStyle.Render(cell)
		case calendar.KindHoliday:
			cell = holidayStyle.Render(cell)
			notes = append(notes, fmt.Sprintf("%s  %s", d.Date, d.Status.Label))
		case calendar.KindCustomNonWorking:
			cell = customStyle.Render(cell)
			notes = append(notes, fmt.Sprintf("%s  %s", d.Date, d.Status.Label))
		}
		line.WriteString(cell)
		col++
		if col == 7 {
			_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
			col = 0
		}
	}
	if line.Len() > 0 {
		_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	st := m.Stats()
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Working days:     "), st.WorkingDays)
	_, _ = fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Non-working days: "), st.NonWorkingDays)
	_, _ = fmt.Fprintf(w, "%s %sh\n", labelStyle.Render("Hours logged:     "), formatNumber(st.HoursLogged))
	_, _ = fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Days with entries:"), st.DaysWithEntries)

	if len(notes) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, n := range notes {
			_, _ = fmt.Fprintln(w, "  "+n)
		}
	}
	return nil
}
