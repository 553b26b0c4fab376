// Package reminder renders the monthly timesheet reminder for collaborators.
// Rendering only: nothing is sent.
package reminder

import (
	"strings"
	"time"

	"github.com/sadopc/staffr/internal/model"
)

// Placeholders recognised in the subject and body.
const (
	PlaceholderName     = "{collaborator_name}"
	PlaceholderDeadline = "{deadline}"
	PlaceholderSender   = "{sender_name}"
)

type Vars struct {
	CollaboratorName string
	Deadline         string
	SenderName       string
}

type Message struct {
	CollaboratorID int64
	To             string
	Subject        string
	Body           string
}

// Render substitutes every occurrence of the placeholders. Unknown braces are
// left as they are.
func Render(tpl model.ReminderTemplate, v Vars) (subject, body string) {
	r := strings.NewReplacer(
		PlaceholderName, v.CollaboratorName,
		PlaceholderDeadline, v.Deadline,
		PlaceholderSender, v.SenderName,
	)
	return r.Replace(tpl.Subject), r.Replace(tpl.Body)
}

// Deadline is the last day of now's month in the dd/mm/yyyy form the
// default body is written for.
func Deadline(now time.Time) string {
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	return last.Format("02/01/2006")
}

// ForActive renders one message per active collaborator, in snapshot order.
func ForActive(snap model.Snapshot, tpl model.ReminderTemplate, deadline, sender string) []Message {
	var out []Message
	for _, c := range snap.Collaborators {
		if c.Status != model.StatusActive {
			continue
		}
		subject, body := Render(tpl, Vars{CollaboratorName: c.Name, Deadline: deadline, SenderName: sender})
		out = append(out, Message{
			CollaboratorID: c.ID,
			To:             c.Email,
			Subject:        subject,
			Body:           body,
		})
	}
	return out
}
