package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/staffr/internal/export"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

var exportOpts struct {
	criteria criteriaFlags
	format   string
	out      string
	sort     string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time entries as CSV or JSON",
	Long: `Write the filtered time entries with their collaborator, project and client
names resolved.

Examples:
  staffr export                               # CSV on stdout
  staffr export --format json --out t.json    # JSON file
  staffr export --month 2024-01 --status validated`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if exportOpts.format != "csv" && exportOpts.format != "json" {
			return fmt.Errorf("unknown format %q, want csv or json", exportOpts.format)
		}
		cr, err := exportOpts.criteria.criteria()
		if err != nil {
			return err
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		var w io.Writer = cmd.OutOrStdout()
		if exportOpts.out != "" {
			f, err := os.Create(exportOpts.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOpts.out, err)
			}
			defer f.Close()
			w = f
		}

		if err := writeExport(w, sess, cr, order.ParseConfig(exportOpts.sort), exportOpts.format); err != nil {
			return err
		}
		if exportOpts.out != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", exportOpts.out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	fs := exportCmd.Flags()
	exportOpts.criteria.register(fs)
	fs.StringVar(&exportOpts.format, "format", "csv", "output format (csv, json)")
	fs.StringVarP(&exportOpts.out, "out", "o", "", "write to this file instead of stdout")
	fs.StringVar(&exportOpts.sort, "sort", order.DefaultTimeEntryKey+"-desc", "sort as key-direction (date, hours, collaborator, project, status)")
}

func writeExport(w io.Writer, sess *session, cr filter.Criteria, sortCfg order.Config, format string) error {
	snap, err := sess.store.Snapshot()
	if err != nil {
		return err
	}
	ix := model.NewIndex(snap)
	entries := order.TimeEntries(ix, filter.TimeEntries(ix, snap.TimeEntries, cr), sortCfg)
	slog.Info("exporting entries", "format", format, "count", len(entries))

	if format == "json" {
		return export.WriteJSON(w, entries, ix, sess.now)
	}
	return export.WriteCSV(w, entries, ix)
}
