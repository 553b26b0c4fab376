package model

// Status is shared by collaborators and clients.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusArchived}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Actif"
	case StatusInactive:
		return "Inactif"
	case StatusArchived:
		return "Archivé"
	}
	return string(s)
}

type ContractType string

const (
	ContractAlternant ContractType = "Alternant"
	ContractCDD       ContractType = "CDD"
	ContractCDI       ContractType = "CDI"
	ContractFreelance ContractType = "Freelance"
)

var ContractTypes = []ContractType{ContractAlternant, ContractCDD, ContractCDI, ContractFreelance}

func (c ContractType) Valid() bool {
	switch c {
	case ContractAlternant, ContractCDD, ContractCDI, ContractFreelance:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "en_cours"
	ProjectDone       ProjectStatus = "termine"
	ProjectSuspended  ProjectStatus = "suspendu"
	ProjectCancelled  ProjectStatus = "annule"
)

var ProjectStatuses = []ProjectStatus{ProjectInProgress, ProjectDone, ProjectSuspended, ProjectCancelled}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectInProgress, ProjectDone, ProjectSuspended, ProjectCancelled:
		return true
	}
	return false
}

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectInProgress:
		return "En cours"
	case ProjectDone:
		return "Terminé"
	case ProjectSuspended:
		return "Suspendu"
	case ProjectCancelled:
		return "Annulé"
	}
	return string(s)
}

type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryValidated EntryStatus = "validated"
	EntryRejected  EntryStatus = "rejected"
)

var EntryStatuses = []EntryStatus{EntryPending, EntryValidated, EntryRejected}

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryPending, EntryValidated, EntryRejected:
		return true
	}
	return false
}

func (s EntryStatus) Label() string {
	switch s {
	case EntryPending:
		return "En attente"
	case EntryValidated:
		return "Validé"
	case EntryRejected:
		return "Rejeté"
	}
	return string(s)
}
