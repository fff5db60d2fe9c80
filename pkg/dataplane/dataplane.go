// Package dataplane defines the narrow interface the control plane uses to
// mutate and inspect the flow-table pipeline. Implementations live in the
// mock, ovs and vpp subpackages.
package dataplane

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// AllTables selects every table in a DumpFlows call.
const AllTables int64 = -1

var (
	// ErrUnavailable reports that the pipeline could not be reached. The
	// affected operation is safe to retry.
	ErrUnavailable = errors.New("dataplane unavailable")

	// ErrPermissionDenied reports that the caller lacks the privilege to
	// perform the operation, typically a flow dump without root.
	ErrPermissionDenied = errors.New("dataplane permission denied")
)

// Direction tells which way subscriber traffic flows through a match.
type Direction int

const (
	Uplink Direction = iota
	Downlink
)

func (d Direction) String() string {
	if d == Downlink {
		return "downlink"
	}
	return "uplink"
}

// Match is the predicate half of a flow entry. Zero-valued fields are
// wildcards.
type Match struct {
	Direction Direction
	IPv4Src   string
	IPv4Dst   string
	EthSrc    string
	EthDst    string
	IPProto   uint8
	TCPSrc    uint16
	TCPDst    uint16
	UDPSrc    uint16
	UDPDst    uint16
}

// Key returns a canonical string for the match, used by implementations to
// detect re-installation of an identical predicate.
func (m Match) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dir=%s", m.Direction)
	if m.IPv4Src != "" {
		fmt.Fprintf(&b, ",nw_src=%s", m.IPv4Src)
	}
	if m.IPv4Dst != "" {
		fmt.Fprintf(&b, ",nw_dst=%s", m.IPv4Dst)
	}
	if m.EthSrc != "" {
		fmt.Fprintf(&b, ",dl_src=%s", m.EthSrc)
	}
	if m.EthDst != "" {
		fmt.Fprintf(&b, ",dl_dst=%s", m.EthDst)
	}
	if m.IPProto != 0 {
		fmt.Fprintf(&b, ",ip_proto=%d", m.IPProto)
	}
	if m.TCPSrc != 0 {
		fmt.Fprintf(&b, ",tcp_src=%d", m.TCPSrc)
	}
	if m.TCPDst != 0 {
		fmt.Fprintf(&b, ",tcp_dst=%d", m.TCPDst)
	}
	if m.UDPSrc != 0 {
		fmt.Fprintf(&b, ",udp_src=%d", m.UDPSrc)
	}
	if m.UDPDst != 0 {
		fmt.Fprintf(&b, ",udp_dst=%d", m.UDPDst)
	}
	return b.String()
}

// ActionType is the closed set of things an installed entry can do to
// matching traffic.
type ActionType int

const (
	ActionPermit ActionType = iota
	ActionDrop
	ActionRedirect
)

func (a ActionType) String() string {
	switch a {
	case ActionDrop:
		return "drop"
	case ActionRedirect:
		return "redirect"
	default:
		return "permit"
	}
}

// Action is the consequence half of a flow entry. RedirectTo is only
// meaningful for ActionRedirect.
type Action struct {
	Type       ActionType
	RedirectTo string
}

func (a Action) String() string {
	if a.Type == ActionRedirect {
		return fmt.Sprintf("redirect(%s)", a.RedirectTo)
	}
	return a.Type.String()
}

// FlowEntry is one concrete table entry: where it goes, what it matches,
// what it does, and how it competes with overlapping entries.
type FlowEntry struct {
	Table       uint64
	Priority    uint32
	HardTimeout uint32
	Match       Match
	Action      Action
}

// Selector returns the identity of the entry for later removal.
func (e FlowEntry) Selector() FlowSelector {
	return FlowSelector{Table: e.Table, Priority: e.Priority, Match: e.Match}
}

// FlowSelector identifies exactly one installed entry. Priority is part of
// the identity: entries that differ only in priority coexist in a table,
// and removing one must never touch the other.
type FlowSelector struct {
	Table    uint64
	Priority uint32
	Match    Match
}

// Key returns a canonical string for the selector.
func (s FlowSelector) Key() string {
	return fmt.Sprintf("table=%d,priority=%d,%s", s.Table, s.Priority, s.Match.Key())
}

// RawFlow is one line of a pipeline dump, attributed to its table.
type RawFlow struct {
	Table    uint64
	Priority uint32
	Text     string
}

// Dataplane is the mutation surface the controller depends on. The pipeline
// behind it is a black box; the three operations are all the control plane
// ever needs.
type Dataplane interface {
	InstallFlow(ctx context.Context, entry FlowEntry) error
	RemoveFlow(ctx context.Context, sel FlowSelector) error
	DumpFlows(ctx context.Context, table int64) ([]RawFlow, error)
}
