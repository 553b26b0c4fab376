package report

import "github.com/sadopc/staffr/internal/order"

// DefaultKey sorts report tables by hours.
const DefaultKey = "hours"

func zero[T any](a, b T) int { return 0 }

var collaboratorKeys = order.Keys[CollaboratorRow]{
	"hours":      order.ByNumber(func(r CollaboratorRow) float64 { return r.Hours }),
	"revenue":    order.ByNumber(func(r CollaboratorRow) float64 { return r.Revenue }),
	"name":       order.ByString(func(r CollaboratorRow) string { return r.Name }),
	"occupation": zero[CollaboratorRow],
	"progress":   zero[CollaboratorRow],
}

var projectKeys = order.Keys[ProjectRow]{
	"hours":      order.ByNumber(func(r ProjectRow) float64 { return r.Hours }),
	"revenue":    order.ByNumber(func(r ProjectRow) float64 { return r.Revenue }),
	"name":       order.ByString(func(r ProjectRow) string { return r.Name }),
	"occupation": zero[ProjectRow],
	"progress":   order.ByNumber(func(r ProjectRow) float64 { return r.Progress }),
	"budget":     order.ByNumber(func(r ProjectRow) float64 { return r.Budget }),
	"client":     order.ByString(func(r ProjectRow) string { return r.Client }),
}

var occupationKeys = order.Keys[OccupationRow]{
	"hours":      order.ByNumber(func(r OccupationRow) float64 { return r.Hours }),
	"revenue":    zero[OccupationRow],
	"name":       order.ByString(func(r OccupationRow) string { return r.Name }),
	"occupation": order.ByNumber(func(r OccupationRow) float64 { return r.Occupation }),
	"progress":   zero[OccupationRow],
}
