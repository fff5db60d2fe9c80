package pipelined

import (
	"sort"
)

// Well-known pipeline applications.
const (
	AppEnforcement      = "enforcement"
	AppEnforcementStats = "enforcement_stats"
	AppUEMac            = "ue_mac"
	AppCheckQuota       = "check_quota"
	AppQoS              = "qos"
)

// TableAssignment is one application's slice of the shared table space: a
// required main table plus any number of scratch tables.
type TableAssignment struct {
	AppName       string
	MainTable     uint64
	ScratchTables []uint64
}

// TableRegistry hands out table numbers to applications from a shared,
// finite space and guarantees the union of all assignments stays pairwise
// disjoint. Registration happens once, at startup, before the registry is
// shared; after that the assignment map is immutable and reads need no
// locking.
type TableRegistry struct {
	assignments map[string]TableAssignment
	owners      map[uint64]string
	nextMain    uint64
	nextScratch uint64
}

// NewTableRegistry creates a registry whose automatic assignment starts
// main tables at mainStart and scratch tables at scratchStart. The two
// ranges grow upward; keeping scratchStart well above the expected number
// of applications keeps them from meeting.
func NewTableRegistry(mainStart, scratchStart uint64) *TableRegistry {
	return &TableRegistry{
		assignments: make(map[string]TableAssignment),
		owners:      make(map[uint64]string),
		nextMain:    mainStart,
		nextScratch: scratchStart,
	}
}

// Register assigns app its main table and scratchCount scratch tables from
// the automatic ranges. Registering the same application twice is a
// configuration conflict.
func (r *TableRegistry) Register(app string, scratchCount int) (TableAssignment, error) {
	scratch := make([]uint64, 0, scratchCount)
	for i := 0; i < scratchCount; i++ {
		scratch = append(scratch, r.nextScratch+uint64(i))
	}
	assignment, err := r.RegisterExplicit(app, r.nextMain, scratch)
	if err != nil {
		return TableAssignment{}, err
	}
	r.nextMain++
	r.nextScratch += uint64(scratchCount)
	return assignment, nil
}

// RegisterExplicit assigns app a fixed main table and scratch tables, for
// layouts pinned in configuration. Any overlap with an existing assignment
// is fatal: it would let two applications write into each other's tables.
func (r *TableRegistry) RegisterExplicit(app string, main uint64, scratch []uint64) (TableAssignment, error) {
	if app == "" {
		return TableAssignment{}, newError(KindValidation, "empty app name")
	}
	if _, ok := r.assignments[app]; ok {
		return TableAssignment{}, newError(KindConflict, "app %s already registered", app)
	}

	claimed := append([]uint64{main}, scratch...)
	for _, table := range claimed {
		if owner, ok := r.owners[table]; ok {
			return TableAssignment{}, newError(KindConflict,
				"table %d requested by %s is already owned by %s", table, app, owner)
		}
	}
	seen := make(map[uint64]bool, len(claimed))
	for _, table := range claimed {
		if seen[table] {
			return TableAssignment{}, newError(KindConflict,
				"app %s claims table %d more than once", app, table)
		}
		seen[table] = true
	}

	assignment := TableAssignment{
		AppName:       app,
		MainTable:     main,
		ScratchTables: append([]uint64(nil), scratch...),
	}
	r.assignments[app] = assignment
	for _, table := range claimed {
		r.owners[table] = app
	}
	return assignment, nil
}

// Assignment returns the assignment for one application.
func (r *TableRegistry) Assignment(app string) (TableAssignment, bool) {
	a, ok := r.assignments[app]
	return a, ok
}

// Assignments returns the full snapshot, ordered by main table number.
func (r *TableRegistry) Assignments() []TableAssignment {
	out := make([]TableAssignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MainTable < out[j].MainTable })
	return out
}

// OwnerOf answers which application owns a table, main or scratch.
func (r *TableRegistry) OwnerOf(table uint64) (string, bool) {
	owner, ok := r.owners[table]
	return owner, ok
}
