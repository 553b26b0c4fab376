package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/sadopc/staffr/internal/reminder"
)

var reminderOpts struct {
	sender   string
	deadline string
	json     bool
}

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Render the monthly timesheet reminder for every active collaborator",
	Long: `Fill the stored reminder template for each active collaborator. Nothing is
sent: the messages are printed so they can be pasted or piped to a mailer.

Examples:
  staffr reminder                             # Deadline is the end of this month
  staffr reminder --deadline 05/02/2024 --sender "Marie Martin"
  staffr reminder --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		return writeReminders(cmd.OutOrStdout(), sess, reminderOpts.sender, reminderOpts.deadline, reminderOpts.json)
	},
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	fs := reminderCmd.Flags()
	fs.StringVar(&reminderOpts.sender, "sender", "", "sender name (default the configured company)")
	fs.StringVar(&reminderOpts.deadline, "deadline", "", "deadline as dd/mm/yyyy (default last day of the month)")
	fs.BoolVar(&reminderOpts.json, "json", false, "output as JSON")
}

func writeReminders(w io.Writer, sess *session, sender, deadline string, asJSON bool) error {
	if sender == "" {
		sender = sess.cfg.General.Company
	}
	if deadline == "" {
		deadline = reminder.Deadline(sess.now)
	}

	snap, err := sess.store.Snapshot()
	if err != nil {
		return err
	}
	tpl, err := sess.store.ReminderTemplate()
	if err != nil {
		return err
	}
	msgs := reminder.ForActive(snap, tpl, deadline, sender)

	if asJSON {
		type jsonMessage struct {
			To      string `json:"to"`
			Subject string `json:"subject"`
			Body    string `json:"body"`
		}
		out := make([]jsonMessage, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, jsonMessage{To: m.To, Subject: m.Subject, Body: m.Body})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, m := range msgs {
		if i > 0 {
			_, _ = fmt.Fprintln(w, "----")
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("To:     "), m.To)
		_, _ = fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Subject:"), m.Subject)
		_, _ = fmt.Fprintln(w, m.Body)
	}
	if len(msgs) == 0 {
		_, _ = fmt.Fprintln(w, "No active collaborators.")
	}
	return nil
}
