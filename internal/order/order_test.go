package order

import (
	"reflect"
	"slices"
	"testing"

	"github.com/sadopc/staffr/internal/model"
)

func fixture() model.Snapshot {
	return model.Snapshot{
		Collaborators: []model.Collaborator{
			{ID: 1, Name: "Jean Dupont", Role: "Développeur Senior", HourlyRate: 65, ContractType: model.ContractCDI, StartDate: "2023-01-15"},
			{ID: 2, Name: "Marie Martin", Role: "Chef de Projet", HourlyRate: 75, ContractType: model.ContractCDI, StartDate: "2022-06-01"},
			{ID: 3, Name: "Pierre Durand", Role: "Designer UX/UI", HourlyRate: 55, ContractType: model.ContractCDD, StartDate: "2023-09-01"},
		},
		Clients: []model.Client{
			{ID: 1, Name: "TechCorp", Contact: "contact@techcorp.com"},
			{ID: 2, Name: "StartupXYZ", Contact: "hello@startupxyz.com"},
			{ID: 3, Name: "Industrie Plus", Contact: "info@industrieplus.fr"},
		},
		Projects: []model.Project{
			{ID: 1, Name: "Refonte Site Web", ClientID: 1, StartDate: "2024-01-15", EndDate: "2024-03-15", Budget: 25000, DaysAllocated: 50, DaysConsumed: 23},
			{ID: 2, Name: "Application Mobile", ClientID: 2, StartDate: "2024-02-01", EndDate: "2024-05-31", Budget: 45000, DaysAllocated: 80, DaysConsumed: 15},
			{ID: 3, Name: "Audit", ClientID: 99, StartDate: "2023-09-01", EndDate: "2023-12-31", Budget: 5000},
		},
		TimeEntries: []model.TimeEntry{
			{ID: 1, CollaboratorID: 1, ProjectID: 1, Date: "2024-01-30", Hours: 8, Status: model.EntryPending},
			{ID: 2, CollaboratorID: 2, ProjectID: 1, Date: "2024-01-30", Hours: 6, Status: model.EntryValidated},
			{ID: 3, CollaboratorID: 1, ProjectID: 2, Date: "2024-02-12", Hours: 7.5, Status: model.EntryValidated},
		},
	}
}

func ids[T any](items []T, id func(T) int64) []int64 {
	var out []int64
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func collabIDs(l []model.Collaborator) []int64 { return ids(l, func(c model.Collaborator) int64 { return c.ID }) }
func projectIDs(l []model.Project) []int64 { return ids(l, func(p model.Project) int64 { return p.ID }) }
func entryIDs(l []model.TimeEntry) []int64 { return ids(l, func(e model.TimeEntry) int64 { return e.ID }) }

// ============================================================
// Config
// ============================================================

func TestParseConfig(t *testing.T) {
	tests := []struct {
		in   string
		want Config
	}{
		{"hours-desc", Config{Key: "hours", Direction: Desc}},
		{"name-asc", Config{Key: "name", Direction: Asc}},
		{"name", Config{Key: "name", Direction: Asc}},
		{"name-sideways", Config{Key: "name", Direction: Asc}},
	}
	for _, tt := range tests {
		if got := ParseConfig(tt.in); got != tt.want {
			t.Errorf("ParseConfig(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if s := (Config{Key: "date"}).String(); s != "date-asc" {
		t.Fatalf("String() = %q", s)
	}
	if r := (Config{Key: "date", Direction: Asc}).Reverse(); r.Direction != Desc {
		t.Fatalf("Reverse() = %+v", r)
	}
}

func TestNextKey(t *testing.T) {
	if k := NextKey(TimeEntryKeys, "status"); k != "date" {
		t.Fatalf("wrap = %q", k)
	}
	if k := NextKey(TimeEntryKeys, "date"); k != "hours" {
		t.Fatalf("next = %q", k)
	}
	if k := NextKey(TimeEntryKeys, "bogus"); k != "date" {
		t.Fatalf("unknown = %q", k)
	}
}

// ============================================================
// Properties
// ============================================================

func TestAscReversedEqualsDesc(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)

	for _, key := range []string{"name", "hourlyRate", "startDate", "hours"} {
		asc := collabIDs(Collaborators(snap, snap.Collaborators, Config{Key: key, Direction: Asc}))
		desc := collabIDs(Collaborators(snap, snap.Collaborators, Config{Key: key, Direction: Desc}))
		slices.Reverse(asc)
		if !reflect.DeepEqual(asc, desc) {
			t.Errorf("collaborators by %s: reversed asc %v != desc %v", key, asc, desc)
		}
	}
	for _, key := range []string{"name", "startDate", "budget", "progress"} {
		asc := projectIDs(Projects(snap, ix, snap.Projects, Config{Key: key, Direction: Asc}))
		desc := projectIDs(Projects(snap, ix, snap.Projects, Config{Key: key, Direction: Desc}))
		slices.Reverse(asc)
		if !reflect.DeepEqual(asc, desc) {
			t.Errorf("projects by %s: reversed asc %v != desc %v", key, asc, desc)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)

	// Entries 1 and 2 share a date and keep their input order both ways.
	if got := entryIDs(TimeEntries(ix, snap.TimeEntries, Config{Key: "date"})); !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Fatalf("date asc = %v", got)
	}
	if got := entryIDs(TimeEntries(ix, snap.TimeEntries, Config{Key: "date", Direction: Desc})); !reflect.DeepEqual(got, []int64{3, 1, 2}) {
		t.Fatalf("date desc = %v", got)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)
	before := slices.Clone(snap.TimeEntries)

	TimeEntries(ix, snap.TimeEntries, Config{Key: "hours", Direction: Desc})
	if !reflect.DeepEqual(before, snap.TimeEntries) {
		t.Fatal("input slice was reordered")
	}
}

func TestUnknownKeyFallsBackToDefault(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)

	got := projectIDs(Projects(snap, ix, snap.Projects, Config{Key: "nope"}))
	if !reflect.DeepEqual(got, []int64{3, 1, 2}) {
		t.Fatalf("fallback to startDate = %v", got)
	}
}

// ============================================================
// Keys
// ============================================================

func TestProjectKeys(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)

	tests := []struct {
		cfg  Config
		want []int64
	}{
		// Project 3 has no allocation and sorts as 0% progress.
		{Config{Key: "progress"}, []int64{3, 2, 1}},
		// Dangling client name is "", which sorts first.
		{Config{Key: "client"}, []int64{3, 2, 1}},
		{Config{Key: "hours", Direction: Desc}, []int64{1, 2, 3}},
		{Config{Key: "budget", Direction: Desc}, []int64{2, 1, 3}},
	}
	for _, tt := range tests {
		if got := projectIDs(Projects(snap, ix, snap.Projects, tt.cfg)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}

func TestCollaboratorHoursKey(t *testing.T) {
	snap := fixture()
	got := collabIDs(Collaborators(snap, snap.Collaborators, Config{Key: "hours", Direction: Desc}))
	if !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Fatalf("hours desc = %v", got)
	}
}

func TestClientProjectCountKey(t *testing.T) {
	snap := fixture()
	got := Clients(snap, snap.Clients, Config{Key: "projects", Direction: Desc})
	// Clients 1 and 2 have one project each and keep their order; client 3 has none.
	if got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 3 {
		t.Fatalf("projects desc = %+v", got)
	}
}

func TestTimeEntryCollaboratorKey(t *testing.T) {
	snap := fixture()
	ix := model.NewIndex(snap)
	got := entryIDs(TimeEntries(ix, snap.TimeEntries, Config{Key: "collaborator"}))
	if !reflect.DeepEqual(got, []int64{1, 3, 2}) {
		t.Fatalf("collaborator asc = %v", got)
	}
}
