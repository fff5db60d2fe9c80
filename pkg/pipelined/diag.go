package pipelined

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

// Diagnostics is the read-only inspection surface: table layout and raw
// dataplane flows annotated with the owning application.
type Diagnostics struct {
	tables  *TableRegistry
	dp      dataplane.Dataplane
	timeout time.Duration
}

func NewDiagnostics(tables *TableRegistry, dp dataplane.Dataplane, timeout time.Duration) *Diagnostics {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Diagnostics{tables: tables, dp: dp, timeout: timeout}
}

// TableAssignments lists the table layout, optionally restricted to one
// application. An unknown application yields an empty list, not an error.
func (d *Diagnostics) TableAssignments(app string) []TableAssignment {
	if app == "" {
		return d.tables.Assignments()
	}
	asg, ok := d.tables.Assignment(app)
	if !ok {
		return nil
	}
	return []TableAssignment{asg}
}

// AnnotatedFlow is one raw dataplane flow together with the application
// owning its table.
type AnnotatedFlow struct {
	Flow dataplane.RawFlow
	App  string
}

// AnnotatedFlows dumps flows from the dataplane and labels each with its
// owning application. With apps given, the dump is restricted to every
// table those applications own, scratch tables included. A permission
// failure from the dataplane is reported as such; it is never folded into
// an empty result.
func (d *Diagnostics) AnnotatedFlows(ctx context.Context, apps ...string) ([]AnnotatedFlow, error) {
	var wanted map[uint64]bool
	if len(apps) > 0 {
		wanted = make(map[uint64]bool)
		for _, app := range apps {
			asg, ok := d.tables.Assignment(app)
			if !ok {
				return nil, newError(KindNotFound, "no table assignment for app %q", app)
			}
			wanted[asg.MainTable] = true
			for _, table := range asg.ScratchTables {
				wanted[table] = true
			}
		}
	}

	dctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	raw, err := d.dp.DumpFlows(dctx, dataplane.AllTables)
	if err != nil {
		if errors.Is(err, dataplane.ErrPermissionDenied) {
			return nil, wrapError(KindPermission, err, "dump flows")
		}
		return nil, wrapError(KindUnavailable, err, "dump flows")
	}

	flows := make([]AnnotatedFlow, 0, len(raw))
	for _, f := range raw {
		if wanted != nil && !wanted[f.Table] {
			continue
		}
		owner, _ := d.tables.OwnerOf(f.Table)
		flows = append(flows, AnnotatedFlow{Flow: f, App: owner})
	}
	return flows, nil
}

// RenderAssignments formats the table layout as a fixed-width listing.
func RenderAssignments(assignments []TableAssignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-25s%-20s%-25s\n", "App", "Main Table", "Scratch Tables")
	b.WriteString(strings.Repeat("-", 70))
	b.WriteByte('\n')
	for _, asg := range assignments {
		scratch := make([]string, 0, len(asg.ScratchTables))
		for _, t := range asg.ScratchTables {
			scratch = append(scratch, fmt.Sprintf("%d", t))
		}
		fmt.Fprintf(&b, "%-25s%-20d%-25s\n", asg.AppName, asg.MainTable,
			"["+strings.Join(scratch, ", ")+"]")
	}
	return b.String()
}
