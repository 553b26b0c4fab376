package model

type Collaborator struct {
	ID           int64
	Name         string
	Email        string
	Role         string
	HourlyRate   float64
	Status       Status
	ContractType ContractType
	StartDate    string
	EndDate      string // empty for CDI
	HoursPerDay  float64
	DailyRate    float64 // HourlyRate * HoursPerDay, see Normalize
}

// Normalize recomputes the derived daily rate. The store calls it on every
// save so DailyRate cannot drift from its inputs.
func (c *Collaborator) Normalize() {
	c.DailyRate = c.HourlyRate * c.HoursPerDay
}

type Client struct {
	ID      int64
	Name    string
	Contact string
	Phone   string
	Status  Status
}

type Project struct {
	ID            int64
	Name          string
	ClientID      int64
	StartDate     string
	EndDate       string
	Budget        float64
	DailyRate     float64
	Status        ProjectStatus
	DaysAllocated int
	DaysConsumed  int
	DaysRemaining int // DaysAllocated - DaysConsumed, may be negative
}

// Normalize recomputes DaysRemaining. No clamping: over-consumed projects
// report a negative remainder.
func (p *Project) Normalize() {
	p.DaysRemaining = p.DaysAllocated - p.DaysConsumed
}

type TimeEntry struct {
	ID             int64
	CollaboratorID int64
	ProjectID      int64
	Date           string
	Hours          float64
	Description    string
	Status         EntryStatus
}

// Month returns the YYYY-MM prefix of the entry date.
func (e TimeEntry) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// ReminderTemplate is the monthly time-sheet reminder sent to collaborators.
type ReminderTemplate struct {
	Subject string
	Body    string
}

type Setting struct {
	Key   string
	Value string
}
