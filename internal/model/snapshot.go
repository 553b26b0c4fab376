package model

// Snapshot is a read-only copy of the whole store. Derivations take a
// Snapshot instead of reading the store so they stay pure.
type Snapshot struct {
	Collaborators []Collaborator
	Clients       []Client
	Projects      []Project
	TimeEntries   []TimeEntry
	Overrides     map[string]bool
}

// Index resolves foreign keys of a Snapshot. Lookups of unknown ids return
// false; callers degrade to an empty display value.
type Index struct {
	collaborators map[int64]*Collaborator
	clients       map[int64]*Client
	projects      map[int64]*Project
}

func NewIndex(s Snapshot) *Index {
	ix := &Index{
		collaborators: make(map[int64]*Collaborator, len(s.Collaborators)),
		clients:       make(map[int64]*Client, len(s.Clients)),
		projects:      make(map[int64]*Project, len(s.Projects)),
	}
	for i := range s.Collaborators {
		ix.collaborators[s.Collaborators[i].ID] = &s.Collaborators[i]
	}
	for i := range s.Clients {
		ix.clients[s.Clients[i].ID] = &s.Clients[i]
	}
	for i := range s.Projects {
		ix.projects[s.Projects[i].ID] = &s.Projects[i]
	}
	return ix
}

func (ix *Index) Collaborator(id int64) (*Collaborator, bool) {
	c, ok := ix.collaborators[id]
	return c, ok
}

func (ix *Index) Client(id int64) (*Client, bool) {
	c, ok := ix.clients[id]
	return c, ok
}

func (ix *Index) Project(id int64) (*Project, bool) {
	p, ok := ix.projects[id]
	return p, ok
}

func (ix *Index) CollaboratorName(id int64) string {
	if c, ok := ix.collaborators[id]; ok {
		return c.Name
	}
	return ""
}

func (ix *Index) ClientName(id int64) string {
	if c, ok := ix.clients[id]; ok {
		return c.Name
	}
	return ""
}

func (ix *Index) ProjectName(id int64) string {
	if p, ok := ix.projects[id]; ok {
		return p.Name
	}
	return ""
}

// ProjectClientID returns the client of the entry's project, or false when
// the project no longer exists.
func (ix *Index) ProjectClientID(projectID int64) (int64, bool) {
	if p, ok := ix.projects[projectID]; ok {
		return p.ClientID, true
	}
	return 0, false
}
