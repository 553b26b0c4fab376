package store

import (
	"errors"
	"testing"

	"github.com/sadopc/staffr/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newCollaborator() model.Collaborator {
	return model.Collaborator{
		Name:         "Jean Dupont",
		Email:        "jean.dupont@example.com",
		Role:         "Développeur Senior",
		HourlyRate:   65,
		Status:       model.StatusActive,
		ContractType: model.ContractCDI,
		StartDate:    "2022-01-15",
		HoursPerDay:  7,
	}
}

func newProject(clientID int64) model.Project {
	return model.Project{
		Name:          "Refonte Site Web",
		ClientID:      clientID,
		StartDate:     "2024-01-15",
		EndDate:       "2024-03-15",
		Budget:        25000,
		DailyRate:     500,
		Status:        model.ProjectInProgress,
		DaysAllocated: 50,
		DaysConsumed:  23,
	}
}

func newEntry(collabID, projectID int64) model.TimeEntry {
	return model.TimeEntry{
		CollaboratorID: collabID,
		ProjectID:      projectID,
		Date:           "2024-01-30",
		Hours:          8,
		Description:    "Développement frontend",
		Status:         model.EntryPending,
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNew(t *testing.T) {
	s := newTestStore(t)

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewIsEmpty(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Collaborators)+len(snap.Clients)+len(snap.Projects)+len(snap.TimeEntries) != 0 {
		t.Fatalf("expected empty store, got %+v", snap)
	}
	if len(snap.Overrides) != 0 {
		t.Fatalf("expected no overrides, got %v", snap.Overrides)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)
	if _, err := a.CreateClient(model.Client{Name: "TechCorp", Status: model.StatusActive}); err != nil {
		t.Fatal(err)
	}
	clients, _ := b.ListClients()
	if len(clients) != 0 {
		t.Fatal("in-memory stores should not share data")
	}
}

func TestForeignKeysOff(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 0 {
		t.Fatalf("expected foreign_keys=0, got %d", fk)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Seed
// ============================================================

func TestSeed(t *testing.T) {
	s, err := New(WithSeed())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Collaborators) != 3 || len(snap.Clients) != 3 || len(snap.Projects) != 2 || len(snap.TimeEntries) != 2 {
		t.Fatalf("unexpected seed sizes: %d/%d/%d/%d",
			len(snap.Collaborators), len(snap.Clients), len(snap.Projects), len(snap.TimeEntries))
	}
	if snap.Collaborators[0].DailyRate != 455 {
		t.Fatalf("Jean's daily rate = %v, want 455", snap.Collaborators[0].DailyRate)
	}
	if snap.Collaborators[2].DailyRate != 450 {
		t.Fatalf("Pierre's daily rate = %v, want 450", snap.Collaborators[2].DailyRate)
	}
	if snap.Projects[1].DaysRemaining != 60 {
		t.Fatalf("Application Mobile remaining = %d, want 60", snap.Projects[1].DaysRemaining)
	}
	if len(snap.Overrides) != 4 || snap.Overrides["2024-07-14"] {
		t.Fatalf("unexpected overrides: %v", snap.Overrides)
	}
}

// ============================================================
// Collaborators
// ============================================================

func TestCreateAndGetCollaborator(t *testing.T) {
	s := newTestStore(t)
	c, err := s.CreateCollaborator(newCollaborator())
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if c.DailyRate != 455 {
		t.Fatalf("daily rate = %v, want 455", c.DailyRate)
	}

	got, err := s.GetCollaborator(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *c {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestDailyRateCannotBeSetDirectly(t *testing.T) {
	s := newTestStore(t)
	in := newCollaborator()
	in.DailyRate = 9999
	c, err := s.CreateCollaborator(in)
	if err != nil {
		t.Fatal(err)
	}
	if c.DailyRate != 455 {
		t.Fatalf("daily rate = %v, want 455", c.DailyRate)
	}
}

func TestDailyRateStableAcrossUnrelatedEdit(t *testing.T) {
	s := newTestStore(t)
	c, _ := s.CreateCollaborator(newCollaborator())

	c.Role = "Lead Developer"
	c.Email = "jean@example.com"
	if err := s.UpdateCollaborator(*c); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetCollaborator(c.ID)
	if got.DailyRate != 455 || got.Role != "Lead Developer" {
		t.Fatalf("after edit: %+v", got)
	}

	got.HourlyRate = 70
	if err := s.UpdateCollaborator(*got); err != nil {
		t.Fatal(err)
	}
	got, _ = s.GetCollaborator(c.ID)
	if got.DailyRate != 490 {
		t.Fatalf("daily rate after rate change = %v, want 490", got.DailyRate)
	}
}

func TestCreateCollaboratorInvalid(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(*model.Collaborator)
	}{
		{"empty name", func(c *model.Collaborator) { c.Name = "" }},
		{"negative rate", func(c *model.Collaborator) { c.HourlyRate = -1 }},
		{"bad step", func(c *model.Collaborator) { c.HoursPerDay = 7.3 }},
		{"CDD without end", func(c *model.Collaborator) { c.ContractType = model.ContractCDD }},
		{"unknown status", func(c *model.Collaborator) { c.Status = "gone" }},
	}
	for _, tt := range tests {
		c := newCollaborator()
		tt.mutate(&c)
		_, err := s.CreateCollaborator(c)
		if !errors.Is(err, model.ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}

	list, _ := s.ListCollaborators()
	if len(list) != 0 {
		t.Fatalf("invalid records were stored: %d", len(list))
	}
}

func TestCollaboratorNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetCollaborator(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	c := newCollaborator()
	c.ID = 999
	if err := s.UpdateCollaborator(c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteCollaborator(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCollaboratorKeepsEntries(t *testing.T) {
	s := newTestStore(t)
	c, _ := s.CreateCollaborator(newCollaborator())
	if _, err := s.CreateEntry(newEntry(c.ID, 1)); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteCollaborator(c.ID); err != nil {
		t.Fatal(err)
	}
	entries, _ := s.ListEntries()
	if len(entries) != 1 || entries[0].CollaboratorID != c.ID {
		t.Fatalf("entries after delete: %+v", entries)
	}
}

// ============================================================
// Clients and projects
// ============================================================

func TestClientCRUD(t *testing.T) {
	s := newTestStore(t)
	c, err := s.CreateClient(model.Client{Name: "TechCorp", Contact: "contact@techcorp.com", Status: model.StatusActive})
	if err != nil {
		t.Fatal(err)
	}

	c.Phone = "01 23 45 67 89"
	c.Status = model.StatusArchived
	if err := s.UpdateClient(*c); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetClient(c.ID)
	if got.Phone != "01 23 45 67 89" || got.Status != model.StatusArchived {
		t.Fatalf("after update: %+v", got)
	}

	if err := s.DeleteClient(c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetClient(c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteClientDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	cl, _ := s.CreateClient(model.Client{Name: "TechCorp", Status: model.StatusActive})
	p, err := s.CreateProject(newProject(cl.ID))
	if err != nil {
		t.Fatal(err)
	}

	s.DeleteClient(cl.ID)

	got, err := s.GetProject(p.ID)
	if err != nil {
		t.Fatalf("project should survive its client: %v", err)
	}
	if got.ClientID != cl.ID {
		t.Fatalf("client id changed to %d", got.ClientID)
	}
}

func TestProjectDaysRemaining(t *testing.T) {
	s := newTestStore(t)
	in := newProject(1)
	in.DaysRemaining = 1000
	p, err := s.CreateProject(in)
	if err != nil {
		t.Fatal(err)
	}
	if p.DaysRemaining != 27 {
		t.Fatalf("remaining = %d, want 27", p.DaysRemaining)
	}

	p.DaysConsumed = 60
	if err := s.UpdateProject(*p); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetProject(p.ID)
	if got.DaysRemaining != -10 {
		t.Fatalf("over-consumed remaining = %d, want -10", got.DaysRemaining)
	}
}

func TestProjectNotFound(t *testing.T) {
	s := newTestStore(t)
	p := newProject(1)
	p.ID = 42
	if err := s.UpdateProject(p); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ============================================================
// Time entries
// ============================================================

func TestEntryCRUD(t *testing.T) {
	s := newTestStore(t)
	e, err := s.CreateEntry(newEntry(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == 0 || e.Hours != 8 {
		t.Fatalf("unexpected entry: %+v", e)
	}

	e.Hours = 7.5
	if err := s.UpdateEntry(*e); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEntryStatus(e.ID, model.EntryValidated); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetEntry(e.ID)
	if got.Hours != 7.5 || got.Status != model.EntryValidated {
		t.Fatalf("after update: %+v", got)
	}

	if err := s.SetEntryStatus(e.ID, "approved"); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown status, got %v", err)
	}

	if err := s.DeleteEntry(e.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestEntryValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(*model.TimeEntry)
	}{
		{"too many hours", func(e *model.TimeEntry) { e.Hours = 24.5 }},
		{"quarter hour", func(e *model.TimeEntry) { e.Hours = 1.25 }},
		{"no description", func(e *model.TimeEntry) { e.Description = "" }},
		{"bad date", func(e *model.TimeEntry) { e.Date = "30/01/2024" }},
	}
	for _, tt := range tests {
		e := newEntry(1, 1)
		tt.mutate(&e)
		if _, err := s.CreateEntry(e); !errors.Is(err, model.ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestListEntriesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	for _, date := range []string{"2024-02-01", "2024-01-01", "2024-03-01"} {
		e := newEntry(1, 1)
		e.Date = date
		s.CreateEntry(e)
	}
	entries, err := s.ListEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Date != "2024-02-01" || entries[2].Date != "2024-03-01" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

// ============================================================
// Working days
// ============================================================

func TestToggleWorkingDay(t *testing.T) {
	s := newTestStore(t)

	want := []bool{false, true, false}
	for i, w := range want {
		got, err := s.ToggleWorkingDay("2024-02-14")
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Fatalf("toggle %d wrote %v, want %v", i+1, got, w)
		}
	}

	overrides, _ := s.Overrides()
	if len(overrides) != 1 || overrides["2024-02-14"] != false {
		t.Fatalf("unexpected overrides: %v", overrides)
	}
}

func TestSetAndClearWorkingDay(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetWorkingDay("2024-02-15", true); err != nil {
		t.Fatal(err)
	}
	overrides, _ := s.Overrides()
	if v, ok := overrides["2024-02-15"]; !ok || !v {
		t.Fatalf("override not stored: %v", overrides)
	}

	if err := s.ClearWorkingDay("2024-02-15"); err != nil {
		t.Fatal(err)
	}
	overrides, _ = s.Overrides()
	if len(overrides) != 0 {
		t.Fatalf("override not cleared: %v", overrides)
	}
}

func TestWorkingDayRejectsBadDate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ToggleWorkingDay("tomorrow"); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err := s.SetWorkingDay("2024-13-01", false); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)
	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 4 {
		t.Fatalf("expected 4 default settings, got %d", len(settings))
	}

	cur, err := s.GetSetting(SettingCurrency)
	if err != nil {
		t.Fatal(err)
	}
	if cur != "EUR" {
		t.Fatalf("currency = %q", cur)
	}
}

func TestSetSetting(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting(SettingCompany, "Acme"); err != nil {
		t.Fatal(err)
	}
	v, _ := s.GetSetting(SettingCompany)
	if v != "Acme" {
		t.Fatalf("expected Acme, got %s", v)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetSetting("nonexistent"); err == nil {
		t.Fatal("expected error for missing setting")
	}
}

func TestReminderTemplate(t *testing.T) {
	s := newTestStore(t)
	tpl, err := s.ReminderTemplate()
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Subject == "" || tpl.Body == "" {
		t.Fatalf("default template is empty: %+v", tpl)
	}

	want := model.ReminderTemplate{Subject: "Timesheet", Body: "Hi {collaborator_name}"}
	if err := s.SetReminderTemplate(want); err != nil {
		t.Fatal(err)
	}
	got, _ := s.ReminderTemplate()
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// ============================================================
// Snapshot
// ============================================================

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t)
	c, _ := s.CreateCollaborator(newCollaborator())
	s.SetWorkingDay("2024-02-14", false)

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	snap.Collaborators[0].Name = "changed"
	snap.Overrides["2024-02-15"] = false

	got, _ := s.GetCollaborator(c.ID)
	if got.Name != "Jean Dupont" {
		t.Fatal("mutating a snapshot changed the store")
	}
	overrides, _ := s.Overrides()
	if len(overrides) != 1 {
		t.Fatalf("overrides = %v", overrides)
	}
}
