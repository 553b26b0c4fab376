package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/staffr/internal/aggregate"
	"github.com/sadopc/staffr/internal/config"
	"github.com/sadopc/staffr/internal/model"
	"github.com/sadopc/staffr/internal/order"
	"github.com/sadopc/staffr/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testNow = time.Date(2024, time.January, 30, 9, 0, 0, 0, time.UTC)

// newTestApp returns a sized App over the reference data set.
func newTestApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := NewApp(s, config.Default())
	app.env.now = func() time.Time { return testNow }
	app.env.exportDir = t.TempDir()

	m, _ := app.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	app = m.(App)

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	m, _ = app.Update(snapshotMsg{snap: snap})
	return m.(App)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to the app one by one and returns the last command.
func press(t *testing.T, app App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = app.Update(keyPress(k))
		app = m.(App)
	}
	return app, cmd
}

// run executes cmd and feeds its message back into the app.
func run(t *testing.T, app App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ := app.Update(cmd())
	return m.(App)
}

func collaboratorNames(rows []model.Collaborator) []string {
	names := make([]string, len(rows))
	for i, c := range rows {
		names[i] = c.Name
	}
	return names
}

// ============================================================
// Helpers
// ============================================================

func TestFormatHours(t *testing.T) {
	tests := []struct {
		h    float64
		want string
	}{
		{0, "0h"},
		{7.5, "7.5h"},
		{8, "8h"},
		{176, "176h"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.h); got != tt.want {
			t.Fatalf("formatHours(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(1250.5, "EUR"); got != "1250.50 EUR" {
		t.Fatalf("formatMoney = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Refonte Site Web", 7); got != "Refont…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("Développeur", 4); got != "Dév…" {
		t.Fatalf("truncate should count runes, got %q", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "░░░░"},
		{50, "██░░"},
		{100, "████"},
		{150, "████"},
		{-10, "░░░░"},
	}
	for _, tt := range tests {
		if got := bar(tt.pct, 4); got != tt.want {
			t.Fatalf("bar(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
	if bar(50, 0) != "" {
		t.Fatal("zero-width bar should be empty")
	}
}

func TestClampCursor(t *testing.T) {
	if clampCursor(5, 3) != 2 {
		t.Fatal("cursor past the end should move to the last row")
	}
	if clampCursor(1, 0) != 0 {
		t.Fatal("empty list should clamp to 0")
	}
	if clampCursor(1, 3) != 1 {
		t.Fatal("cursor in range should be kept")
	}
}

func TestNextString(t *testing.T) {
	list := []string{"", "active", "inactive"}
	if nextString(list, "") != "active" {
		t.Fatal("expected active")
	}
	if nextString(list, "inactive") != "" {
		t.Fatal("expected wrap to all")
	}
	if nextString(list, "bogus") != "" {
		t.Fatal("unknown value should restart the cycle")
	}
}

func TestMonthRange(t *testing.T) {
	start, end := monthRange("2024-02")
	if start != "2024-02-01" || end != "2024-02-29" {
		t.Fatalf("monthRange = %s..%s", start, end)
	}
	if s, e := monthRange(""); s != "" || e != "" {
		t.Fatal("empty month should not bound the range")
	}
	if shiftMonth("2024-01", -1) != "2023-12" {
		t.Fatal("shiftMonth should cross the year")
	}
}

func TestValidators(t *testing.T) {
	if validateNumber("12,5") != nil || validateNumber("") != nil {
		t.Fatal("valid numbers rejected")
	}
	if validateNumber("abc") == nil || validateNumber("-1") == nil {
		t.Fatal("invalid numbers accepted")
	}
	if validateDate("2024-02-30") == nil {
		t.Fatal("impossible date accepted")
	}
	if validateDate("") != nil || validateDate("2024-02-29") != nil {
		t.Fatal("valid dates rejected")
	}
	if validateRequired("  ") == nil {
		t.Fatal("blank value accepted")
	}
	if validateCount("7") != nil || validateCount("") != nil {
		t.Fatal("valid day counts rejected")
	}
	if validateCount("7.5") == nil || validateCount("-1") == nil {
		t.Fatal("invalid day counts accepted")
	}
}

// ============================================================
// App model
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 8 {
		t.Fatalf("expected 8 view names, got %d", len(viewNames))
	}
	if viewNames[viewSettings] != "Settings" || viewNames[viewTime] != "Time" {
		t.Fatal("view names out of order")
	}
}

func TestNewApp(t *testing.T) {
	app := NewApp(newTestStore(t), nil)

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("help and export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
	if app.env.currency != "EUR" {
		t.Fatalf("currency = %q, want default", app.env.currency)
	}
}

func TestAppLoadingState(t *testing.T) {
	app := NewApp(newTestStore(t), nil)
	if out := app.View(); out != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", out)
	}
}

func TestAppSnapshotReachesViews(t *testing.T) {
	app := newTestApp(t)

	if len(app.collaborators.rows) != 3 || len(app.clients.rows) != 3 || len(app.projects.rows) != 2 || len(app.time.rows) != 2 {
		t.Fatalf("rows: %d collaborators, %d clients, %d projects, %d entries",
			len(app.collaborators.rows), len(app.clients.rows), len(app.projects.rows), len(app.time.rows))
	}
	if app.dashboard.stats.ActiveCollaborators != 3 || app.dashboard.stats.TotalHours != 14 {
		t.Fatalf("dashboard stats = %+v", app.dashboard.stats)
	}
	if app.reports.report.KPIs.TotalHours != 14 {
		t.Fatalf("report hours = %v", app.reports.report.KPIs.TotalHours)
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)

	for v := range viewNames {
		app.activeView = viewState(v)
		if out := app.View(); out == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)

	app, _ = press(t, app, "4")
	if app.activeView != viewProjects {
		t.Fatalf("activeView = %d, want projects", app.activeView)
	}
	app, _ = press(t, app, "tab")
	if app.activeView != viewTime {
		t.Fatalf("activeView = %d, want time", app.activeView)
	}
	app, cmd := press(t, app, "8")
	if app.activeView != viewSettings || cmd == nil {
		t.Fatal("settings tab should load settings")
	}
	app.activeView = viewSettings
	app, _ = press(t, app, "tab")
	if app.activeView != viewDashboard {
		t.Fatal("tab should wrap to the dashboard")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(statusMsg{text: "test status"})
	app = m.(App)
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppMutationError(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(mutationMsg{status: "ignored", err: model.ErrInvalid})
	app = m.(App)
	if !app.statusErr || !strings.Contains(app.status, "invalid") {
		t.Fatalf("status = %q, err = %v", app.status, app.statusErr)
	}
	if len(app.collaborators.rows) != 3 {
		t.Fatal("a failed reload should keep the previous rows")
	}
}

func TestSearchCapturesGlobalKeys(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "2", "/")

	if !app.isFormActive() {
		t.Fatal("search box should capture input")
	}
	app, _ = press(t, app, "q", "8")
	if app.activeView != viewCollaborators {
		t.Fatal("keys typed into search must not switch views")
	}
	if got := app.collaborators.list.search.Value(); got != "q8" {
		t.Fatalf("search = %q", got)
	}
}

// ============================================================
// List views
// ============================================================

func TestCollaboratorSearch(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "2", "/", "m", "a", "r", "i", "e", "enter")

	names := collaboratorNames(app.collaborators.rows)
	if len(names) != 1 || names[0] != "Marie Martin" {
		t.Fatalf("rows = %v", names)
	}
	if app.isFormActive() {
		t.Fatal("enter should leave the search box")
	}

	app, _ = press(t, app, "esc")
	if len(app.collaborators.rows) != 3 {
		t.Fatal("esc should clear the search")
	}
}

func TestCollaboratorSortCycle(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "2")

	got := collaboratorNames(app.collaborators.rows)
	if strings.Join(got, ",") != "Jean Dupont,Marie Martin,Pierre Durand" {
		t.Fatalf("default order = %v", got)
	}

	app, _ = press(t, app, "O")
	got = collaboratorNames(app.collaborators.rows)
	if got[0] != "Pierre Durand" {
		t.Fatalf("desc order = %v", got)
	}

	app, _ = press(t, app, "o", "o", "O")
	if app.collaborators.list.sort != (order.Config{Key: "hourlyRate", Direction: order.Asc}) {
		t.Fatalf("sort = %+v", app.collaborators.list.sort)
	}
	if got := collaboratorNames(app.collaborators.rows); got[0] != "Pierre Durand" || got[2] != "Marie Martin" {
		t.Fatalf("rate order = %v", got)
	}
}

func TestCollaboratorContractFilter(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "2", "c", "c")

	if app.collaborators.contract != string(model.ContractCDD) {
		t.Fatalf("contract = %q", app.collaborators.contract)
	}
	if names := collaboratorNames(app.collaborators.rows); len(names) != 1 || names[0] != "Pierre Durand" {
		t.Fatalf("rows = %v", names)
	}
}

func TestStatusFilterCycle(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "3", "f")

	if app.clients.list.status != string(model.StatusActive) || len(app.clients.rows) != 3 {
		t.Fatalf("active: status %q, %d rows", app.clients.list.status, len(app.clients.rows))
	}
	app, _ = press(t, app, "f")
	if len(app.clients.rows) != 0 {
		t.Fatalf("inactive filter kept %d rows", len(app.clients.rows))
	}
	app, _ = press(t, app, "f", "f")
	if app.clients.list.status != "" || len(app.clients.rows) != 3 {
		t.Fatal("cycle should return to all")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "3", "d")
	if !app.clients.list.confirm {
		t.Fatal("d should ask for confirmation")
	}

	app, cmd := press(t, app, "n")
	if cmd != nil || app.clients.list.confirm {
		t.Fatal("any key other than y should cancel")
	}

	app, cmd = press(t, app, "d", "y")
	app = run(t, app, cmd)
	if len(app.clients.rows) != 2 {
		t.Fatalf("expected 2 clients after delete, got %d", len(app.clients.rows))
	}
	if app.status != "Deleted Enterprise Solutions" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestDetailToggle(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "4", "enter")
	if !app.projects.list.detail {
		t.Fatal("enter should open the detail pane")
	}
	if out := app.View(); !strings.Contains(out, "allocated") {
		t.Fatal("project detail should show its finance")
	}
	app, _ = press(t, app, "esc")
	if app.projects.list.detail {
		t.Fatal("esc should close the detail pane")
	}
}

func TestProjectClientFilter(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "4", "c")

	if len(app.projects.rows) != 1 || app.projects.rows[0].Name != "Refonte Site Web" {
		t.Fatalf("rows = %+v", app.projects.rows)
	}
}

func TestFormOpensAndAborts(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "2", "n")
	if !app.collaborators.formActive || !app.isFormActive() {
		t.Fatal("n should open the form")
	}
	app, _ = press(t, app, "esc")
	if app.collaborators.formActive {
		t.Fatal("esc should abort the form")
	}
}

func TestCollaboratorSaveCreates(t *testing.T) {
	app := newTestApp(t)
	app.collaborators.editingID = 0
	*app.collaborators.fields = collaboratorFields{
		name: "Luc Bernard", email: "luc@example.com", role: "Dev", rate: "50",
		hoursPerDay: "7", status: "active", contract: "CDI", start: "2024-01-02",
	}

	app = run(t, app, app.collaborators.save())
	if app.statusErr {
		t.Fatalf("save failed: %s", app.status)
	}
	if len(app.collaborators.rows) != 4 {
		t.Fatalf("expected 4 collaborators, got %d", len(app.collaborators.rows))
	}
}

func TestEntrySaveRejectsInvalid(t *testing.T) {
	app := newTestApp(t)
	*app.time.fields = entryFields{collaborator: "1", project: "1", date: "2024-01-31", hours: "0.3", status: "pending"}

	app = run(t, app, app.time.save())
	if !app.statusErr {
		t.Fatal("hours off the half-hour step should be rejected")
	}
	if len(app.time.rows) != 2 {
		t.Fatal("no entry should be created")
	}
}

func TestDayCountInputRejectsFractions(t *testing.T) {
	for _, typed := range []string{"10.5", "12,5", "1e2", "-3"} {
		var v string
		in := dayCountInput("Days allocated", &v)
		in.Focus()
		in.Update(keyPress(typed))
		in.Blur()
		if in.Error() == nil {
			t.Fatalf("%q accepted as a day count", typed)
		}
	}

	var v string
	in := dayCountInput("Days allocated", &v)
	in.Focus()
	in.Update(keyPress("12"))
	in.Blur()
	if in.Error() != nil || v != "12" {
		t.Fatalf("12 rejected: err %v, value %q", in.Error(), v)
	}
}

func TestProjectSaveKeepsAllocationOnBadCount(t *testing.T) {
	app := newTestApp(t)
	proj := app.projects.snap.Projects[0]
	app.projects.editingID = proj.ID
	*app.projects.fields = projectFields{
		name: proj.Name, client: idString(proj.ClientID), start: proj.StartDate, end: proj.EndDate,
		budget: "25000", dailyRate: "500", status: string(proj.Status), allocated: "10.5", consumed: "23",
	}

	app = run(t, app, app.projects.save())
	if !app.statusErr {
		t.Fatal("fractional day count should be refused")
	}
	got, err := app.env.store.GetProject(proj.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.DaysAllocated != 50 {
		t.Fatalf("DaysAllocated = %d, want 50", got.DaysAllocated)
	}
}

// ============================================================
// Time view
// ============================================================

func TestTimeValidateEntry(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "5")

	// Default sort is date desc with stable ties, so the cursor starts on
	// the first entry.
	if app.time.rows[0].Status != model.EntryValidated {
		t.Fatalf("first row status = %s", app.time.rows[0].Status)
	}
	app, cmd := press(t, app, "j", "v")
	app = run(t, app, cmd)
	for _, e := range app.time.rows {
		if e.Status != model.EntryValidated {
			t.Fatalf("entry %d status = %s", e.ID, e.Status)
		}
	}
}

func TestTimePeriodFilter(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "5", "a")
	if app.time.month != "2024-01" || len(app.time.rows) != 2 {
		t.Fatalf("month %q, %d rows", app.time.month, len(app.time.rows))
	}
	app, _ = press(t, app, "]")
	if app.time.month != "2024-02" || len(app.time.rows) != 0 {
		t.Fatalf("month %q, %d rows", app.time.month, len(app.time.rows))
	}
	app, _ = press(t, app, "a")
	if app.time.month != "" || len(app.time.rows) != 2 {
		t.Fatal("a should return to all time")
	}
}

func TestTimeCollaboratorFilter(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "5", "c", "c")

	if len(app.time.rows) != 1 || app.time.rows[0].Hours != 6 {
		t.Fatalf("rows = %+v", app.time.rows)
	}
}

// ============================================================
// Export
// ============================================================

func TestExportUsesTimeFilters(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "5", "c")

	app, _ = press(t, app, "x")
	if !app.exportPicking {
		t.Fatal("x should open the export picker")
	}
	app, cmd := press(t, app, "enter")
	app = run(t, app, cmd)

	if !strings.HasPrefix(app.status, "Exported to ") {
		t.Fatalf("status = %q", app.status)
	}
	path := strings.TrimPrefix(app.status, "Exported to ")
	if !strings.HasSuffix(path, "staffr-export-2024-01-30.csv") {
		t.Fatalf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Fatalf("expected header and one row, got %d lines:\n%s", lines, data)
	}
}

func TestExportPickerJSON(t *testing.T) {
	app := newTestApp(t)
	app, cmd := press(t, app, "x", "j", "enter")
	app = run(t, app, cmd)

	if !strings.HasSuffix(app.status, ".json") {
		t.Fatalf("status = %q", app.status)
	}
}

// ============================================================
// Reports
// ============================================================

func TestReportsKeys(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "6")

	if len(app.reports.report.Collaborators) != 2 {
		t.Fatalf("expected 2 collaborator rows, got %d", len(app.reports.report.Collaborators))
	}
	app, _ = press(t, app, "l")
	if app.reports.month != "2024-02" || len(app.reports.report.Collaborators) != 0 {
		t.Fatalf("month %q, rows %d", app.reports.month, len(app.reports.report.Collaborators))
	}
	app, _ = press(t, app, "a", "o")
	if app.reports.month != "" || app.reports.sort.Key != "revenue" {
		t.Fatalf("month %q, sort %+v", app.reports.month, app.reports.sort)
	}
	if app.reports.report.Collaborators[0].Name != "Jean Dupont" {
		t.Fatalf("revenue desc should put Jean first, got %s", app.reports.report.Collaborators[0].Name)
	}
}

// ============================================================
// Calendar
// ============================================================

func TestCalendarMoveCrossesMonths(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "7")
	app.calendar.year, app.calendar.month, app.calendar.day = 2024, time.January, 31

	app, _ = press(t, app, "l")
	if app.calendar.month != time.February || app.calendar.day != 1 {
		t.Fatalf("selected %s %d", app.calendar.month, app.calendar.day)
	}
	app, _ = press(t, app, "]")
	if app.calendar.month != time.March || app.calendar.day != 1 {
		t.Fatalf("selected %s %d", app.calendar.month, app.calendar.day)
	}

	app.calendar.day = 31
	app, _ = press(t, app, "[")
	if app.calendar.month != time.February || app.calendar.day != 29 {
		t.Fatalf("day should clamp to the month length, got %s %d", app.calendar.month, app.calendar.day)
	}
}

func TestCalendarToggle(t *testing.T) {
	app := newTestApp(t)
	app, _ = press(t, app, "7")
	app.calendar.year, app.calendar.month, app.calendar.day = 2024, time.January, 2

	app, cmd := press(t, app, "t")
	app = run(t, app, cmd)
	if v, ok := app.calendar.snap.Overrides["2024-01-02"]; !ok || v {
		t.Fatalf("override = %v, %v; want false", v, ok)
	}
	if st := app.calendar.build().Stats(); st.WorkingDays != 21 {
		t.Fatalf("working days = %d, want 21", st.WorkingDays)
	}

	app, cmd = press(t, app, "z")
	app = run(t, app, cmd)
	if _, ok := app.calendar.snap.Overrides["2024-01-02"]; ok {
		t.Fatal("z should clear the override")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsLoadAndPreview(t *testing.T) {
	app := newTestApp(t)
	app, cmd := press(t, app, "8")
	app = run(t, app, cmd)

	if app.settings.template.Subject == "" {
		t.Fatal("reminder template should be loaded")
	}
	to, text, ok := app.settings.preview()
	if !ok || to != "jean.dupont@example.com" {
		t.Fatalf("preview to %q", to)
	}
	if !strings.Contains(text, "Bonjour Jean Dupont") || !strings.Contains(text, "31/01/2024") {
		t.Fatalf("preview = %q", text)
	}
}

func TestSettingsSave(t *testing.T) {
	app := newTestApp(t)
	*app.settings.fields = settingsFields{subject: "Pointage", body: "Hello {collaborator_name}", company: "Acme", currency: "USD"}

	if app.settings.save() == nil {
		t.Fatal("save should return a command")
	}
	app = run(t, app, app.settings.write())
	if app.status != "Settings saved" {
		t.Fatalf("status = %q", app.status)
	}
	app = run(t, app, app.settings.refresh())

	if app.env.currency != "USD" || app.env.company != "Acme" {
		t.Fatalf("company %q, currency %q", app.env.company, app.env.currency)
	}
	if app.settings.template.Subject != "Pointage" {
		t.Fatalf("subject = %q", app.settings.template.Subject)
	}
	if _, text, ok := app.settings.preview(); !ok || !strings.Contains(text, "Hello Jean Dupont") {
		t.Fatalf("preview = %q", text)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"card", func() string { return cardStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedDay", func() string { return selectedDayStyle.Render("test") }},
		{"alert", func() string { return alertStyle(aggregate.AlertOver).Render("test") }},
		{"entryStatus", func() string { return entryStatusStyle(model.EntryRejected).Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
