package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewCollaborators
	viewClients
	viewProjects
	viewTime
	viewReports
	viewCalendar
	viewSettings
)

var viewNames = []string{"Dashboard", "Collaborators", "Clients", "Projects", "Time", "Reports", "Calendar", "Settings"}

// --- Messages ---

// snapshotMsg carries a fresh copy of the store. Every view re-derives its
// rows from it.
type snapshotMsg struct {
	snap model.Snapshot
}

// mutationMsg reports the outcome of a store write along with the snapshot
// taken right after it. snap is nil when the reload itself failed.
type mutationMsg struct {
	snap   *model.Snapshot
	status string
	err    error
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Commands ---

func loadSnapshot(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		snap, err := s.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return snapshotMsg{snap: snap}
	}
}

// mutate runs fn against the store and reloads the snapshot whether or not
// fn failed, so the views never show stale rows.
func mutate(s *store.Store, done string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		err := fn()
		snap, serr := s.Snapshot()
		if serr != nil {
			if err == nil {
				err = serr
			}
			return mutationMsg{status: done, err: err}
		}
		return mutationMsg{snap: &snap, status: done, err: err}
	}
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

// --- Helpers ---

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

func formatMoney(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// bar renders pct (0..100) as a fixed-width gauge.
func bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	return v
}

// parseCount reads a whole, non-negative day count. Blank is 0.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not a whole number of days", s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func idString(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func parseID(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// clampCursor keeps a list cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	return max(cursor, 0)
}
