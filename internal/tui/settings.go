package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/reminder"
	"github.com/sadopc/staffr/internal/store"
)

type settingsFields struct {
	subject, body, company, currency string
}

type settingsModel struct {
	env    *env
	width  int
	height int

	snap     model.Snapshot
	settings []model.Setting
	template model.ReminderTemplate

	formActive bool
	form       *huh.Form
	fields     *settingsFields
}

func newSettingsModel(e *env) settingsModel {
	return settingsModel{
		env:    e,
		fields: &settingsFields{},
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *settingsModel) setSnapshot(snap model.Snapshot, _ *model.Index) {
	s.snap = snap
}

type settingsDataMsg struct {
	settings []model.Setting
	template model.ReminderTemplate
}

func (s settingsModel) refresh() tea.Cmd {
	st := s.env.store
	return func() tea.Msg {
		settings, err := st.GetAllSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		tpl, err := st.ReminderTemplate()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings, template: tpl}
	}
}

func (s settingsModel) capturing() bool {
	return s.formActive
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		form, cmd, res := updateForm(s.form, msg)
		s.form = form
		switch res {
		case formAborted:
			s.formActive = false
			s.form = nil
			return s, nil
		case formDone:
			s.formActive = false
			s.form = nil
			return s, s.save()
		}
		return s, cmd
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		s.template = msg.template
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) value(k string) string {
	for _, st := range s.settings {
		if st.Key == k {
			return st.Value
		}
	}
	return ""
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	f := s.fields
	*f = settingsFields{
		subject:  s.template.Subject,
		body:     s.template.Body,
		company:  s.value(store.SettingCompany),
		currency: s.value(store.SettingCurrency),
	}

	s.form = newForm(
		huh.NewGroup(
			huh.NewInput().Title("Company").Value(&f.company).Validate(validateRequired),
			huh.NewInput().Title("Currency").Value(&f.currency).Validate(validateRequired),
		).Title("General"),
		huh.NewGroup(
			huh.NewInput().Title("Subject").Value(&f.subject).Validate(validateRequired),
			huh.NewText().Title("Body").
				Description("Placeholders: "+strings.Join([]string{reminder.PlaceholderName, reminder.PlaceholderDeadline, reminder.PlaceholderSender}, " ")).
				Lines(12).
				Value(&f.body),
		).Title("Monthly reminder"),
	)
	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) save() tea.Cmd {
	return tea.Sequence(s.write(), s.refresh())
}

func (s settingsModel) write() tea.Cmd {
	f := *s.fields
	st := s.env.store
	tpl := model.ReminderTemplate{Subject: strings.TrimSpace(f.subject), Body: f.body}
	company, currency := strings.TrimSpace(f.company), strings.TrimSpace(f.currency)
	return mutate(st, "Settings saved", func() error {
		if err := st.SetReminderTemplate(tpl); err != nil {
			return err
		}
		if err := st.SetSetting(store.SettingCompany, company); err != nil {
			return err
		}
		return st.SetSetting(store.SettingCurrency, currency)
	})
}

// preview renders the reminder for the first active collaborator.
func (s settingsModel) preview() (string, string, bool) {
	msgs := reminder.ForActive(s.snap, s.template, reminder.Deadline(s.env.now()), s.value(store.SettingCompany))
	if len(msgs) == 0 {
		return "", "", false
	}
	return msgs[0].To, msgs[0].Subject + "\n\n" + msgs[0].Body, true
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()))
	}

	rows := []string{title, ""}
	for _, st := range s.settings {
		if st.Key == store.SettingReminderBody {
			continue
		}
		label := lipgloss.NewStyle().Width(20).Render(st.Key)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(st.Value)))
	}

	agg := s.env.agg
	rows = append(rows, "",
		titleStyle.Render("Capacity"),
		fmt.Sprintf("  %-20s %s days × %sh", "Occupation", formatFloat(agg.OccupationDays), formatFloat(agg.OccupationHoursPerDay)),
		fmt.Sprintf("  %-20s %sh per billed day", "Revenue", formatFloat(agg.RevenueHoursPerDay)),
		fmt.Sprintf("  %-20s %d", "Holidays", len(s.env.holidays)),
	)

	rows = append(rows, "", titleStyle.Render("Reminder preview"))
	if to, text, ok := s.preview(); ok {
		rows = append(rows, mutedStyle.Render("  to: "+to))
		for _, line := range strings.Split(text, "\n") {
			rows = append(rows, "  "+line)
		}
	} else {
		rows = append(rows, mutedStyle.Render("  No active collaborators"))
	}

	rows = append(rows, "", mutedStyle.Render("  enter: edit settings"))
	return panelStyle.Width(w).Render(joinRows(rows))
}
