package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sadopc/staffr/internal/filter"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
)

// listState is the filter bar and cursor shared by the entity views.
type listState struct {
	search    textinput.Model
	searching bool

	// statuses is the cycle order of the status filter; "" means all.
	statuses []string
	status   string

	sortKeys []string
	sort     order.Config

	cursor  int
	detail  bool
	confirm bool
}

func newListState(statuses, sortKeys []string, sort order.Config) listState {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.PromptStyle = highlightStyle
	return listState{
		search:   ti,
		statuses: append([]string{""}, statuses...),
		sortKeys: sortKeys,
		sort:     sort,
	}
}

func (l listState) criteria() filter.Criteria {
	return filter.Criteria{Search: l.search.Value(), Status: l.status}
}

// update handles the keys every list view shares. changed reports that the
// criteria or the sort moved and rows must be rebuilt; handled reports the
// key was consumed.
func (l listState) update(msg tea.KeyMsg, n int) (ls listState, cmd tea.Cmd, changed, handled bool) {
	if l.searching {
		switch msg.String() {
		case "esc":
			l.search.SetValue("")
			l.searching = false
			l.search.Blur()
			return l, nil, true, true
		case "enter":
			l.searching = false
			l.search.Blur()
			return l, nil, false, true
		}
		before := l.search.Value()
		l.search, cmd = l.search.Update(msg)
		return l, cmd, l.search.Value() != before, true
	}

	if l.confirm {
		l.confirm = false
		return l, nil, false, true
	}

	switch {
	case key.Matches(msg, keys.Search):
		l.searching = true
		return l, l.search.Focus(), false, true
	case key.Matches(msg, keys.Status):
		l.status = nextString(l.statuses, l.status)
		return l, nil, true, true
	case key.Matches(msg, keys.Sort):
		l.sort.Key = order.NextKey(l.sortKeys, l.sort.Key)
		return l, nil, true, true
	case key.Matches(msg, keys.SortDir):
		l.sort = l.sort.Reverse()
		return l, nil, true, true
	case key.Matches(msg, keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
		return l, nil, false, true
	case key.Matches(msg, keys.Down):
		if l.cursor < n-1 {
			l.cursor++
		}
		return l, nil, false, true
	case key.Matches(msg, keys.Enter):
		if n > 0 {
			l.detail = !l.detail
		}
		return l, nil, false, true
	case key.Matches(msg, keys.Back):
		if l.detail {
			l.detail = false
		} else if l.search.Value() != "" {
			l.search.SetValue("")
			return l, nil, true, true
		}
		return l, nil, false, true
	case key.Matches(msg, keys.Delete):
		if n > 0 {
			l.confirm = true
		}
		return l, nil, false, true
	}
	return l, nil, false, false
}

// confirmed reports whether msg answers a pending delete with yes. Views
// check it before update, which clears the pending state.
func (l listState) confirmed(msg tea.KeyMsg) bool {
	return l.confirm && !l.searching && msg.String() == "y"
}

func (l listState) capturing() bool {
	return l.searching
}

// filterBar renders the search box, active status filter and sort config.
func (l listState) filterBar(statusLabel func(string) string) string {
	search := l.search.View()
	if !l.searching && l.search.Value() == "" {
		search = mutedStyle.Render("/ search")
	}
	status := "all"
	if l.status != "" {
		status = statusLabel(l.status)
	}
	arrow := "↑"
	if l.sort.Direction == order.Desc {
		arrow = "↓"
	}
	return fmt.Sprintf("%s  %s %s  %s %s %s",
		search,
		mutedStyle.Render("status:"), highlightStyle.Render(status),
		mutedStyle.Render("sort:"), highlightStyle.Render(l.sort.Key), arrow,
	)
}

func (l listState) confirmLine(what string) string {
	if !l.confirm {
		return ""
	}
	return warningStyle.Render(fmt.Sprintf("  Delete %s? y to confirm, any other key to cancel", what))
}

func nextString(list []string, cur string) string {
	for i, s := range list {
		if s == cur {
			return list[(i+1)%len(list)]
		}
	}
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// cursorPrefix returns the row marker and style for row i.
func cursorPrefix(i, cursor int) (string, func(...string) string) {
	if i == cursor {
		return "> ", selectedItemStyle.Render
	}
	return "  ", normalItemStyle.Render
}

func joinRows(rows []string) string {
	return strings.Join(rows, "\n")
}

// --- Forms ---

type formResult int

const (
	formRunning formResult = iota
	formDone
	formAborted
)

// updateForm forwards msg to f. Esc aborts the form.
func updateForm(f *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd, formResult) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return f, nil, formAborted
	}

	form, cmd := f.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f = hf
	}

	switch f.State {
	case huh.StateCompleted:
		return f, nil, formDone
	case huh.StateAborted:
		return f, nil, formAborted
	}
	return f, cmd, formRunning
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithShowHelp(true).WithShowErrors(true)
}

func validateNumber(s string) error {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("not a positive number")
	}
	return nil
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := model.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func stringOptions[T ~string](values []T, label func(T) string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(label(v), string(v))
	}
	return opts
}
