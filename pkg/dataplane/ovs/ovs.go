// Package ovs drives an Open vSwitch bridge through ovs-ofctl. It is the
// production backend for OpenFlow-style pipelines.
package ovs

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

type OVSDataplane struct {
	bridge string
	log    *logrus.Entry

	// run is swapped out by tests.
	run func(ctx context.Context, args ...string) ([]byte, error)
}

func NewOVSDataplane(bridge string) *OVSDataplane {
	o := &OVSDataplane{
		bridge: bridge,
		log:    logrus.WithField("component", "ovs_dataplane"),
	}
	o.run = o.runOfctl
	return o
}

func (o *OVSDataplane) runOfctl(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ovs-ofctl", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, classifyExecError(err, out)
	}
	return out, nil
}

// classifyExecError maps ovs-ofctl failures onto the dataplane error set so
// callers can tell "re-run as root" apart from "switch not reachable".
func classifyExecError(err error, out []byte) error {
	if strings.Contains(string(out), "Permission denied") ||
		strings.Contains(string(out), "Operation not permitted") {
		return fmt.Errorf("ovs-ofctl: %w", dataplane.ErrPermissionDenied)
	}
	if _, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("ovs-ofctl: %s: %w", strings.TrimSpace(string(out)), dataplane.ErrUnavailable)
	}
	// Binary missing, context timeout, etc.
	return fmt.Errorf("ovs-ofctl: %v: %w", err, dataplane.ErrUnavailable)
}

func (o *OVSDataplane) InstallFlow(ctx context.Context, entry dataplane.FlowEntry) error {
	spec := renderFlowSpec(entry)
	if _, err := o.run(ctx, "add-flow", o.bridge, spec); err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{
		"table": entry.Table,
		"flow":  spec,
	}).Debug("installed flow")
	return nil
}

func (o *OVSDataplane) RemoveFlow(ctx context.Context, sel dataplane.FlowSelector) error {
	spec := renderSelectorSpec(sel)
	if _, err := o.run(ctx, "del-flows", "--strict", o.bridge, spec); err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{
		"table": sel.Table,
		"flow":  spec,
	}).Debug("removed flows")
	return nil
}

func (o *OVSDataplane) DumpFlows(ctx context.Context, table int64) ([]dataplane.RawFlow, error) {
	args := []string{"dump-flows", o.bridge}
	if table != dataplane.AllTables {
		args = append(args, fmt.Sprintf("table=%d", table))
	}

	out, err := o.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseDumpOutput(string(out)), nil
}

// renderFlowSpec produces the add-flow argument for an entry.
func renderFlowSpec(entry dataplane.FlowEntry) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("table=%d", entry.Table))
	parts = append(parts, fmt.Sprintf("priority=%d", entry.Priority))
	if entry.HardTimeout > 0 {
		parts = append(parts, fmt.Sprintf("hard_timeout=%d", entry.HardTimeout))
	}
	parts = append(parts, renderMatchFields(entry.Match)...)
	parts = append(parts, "actions="+renderAction(entry.Action))
	return strings.Join(parts, ",")
}

// renderSelectorSpec produces the del-flows argument for a selector.
// Deletion is always strict: without --strict, del-flows removes every
// flow at least as specific as the given match, so deleting one broad
// entry would wipe a subscriber's sibling rules. Strict matching requires
// the priority.
func renderSelectorSpec(sel dataplane.FlowSelector) string {
	parts := []string{
		fmt.Sprintf("table=%d", sel.Table),
		fmt.Sprintf("priority=%d", sel.Priority),
	}
	parts = append(parts, renderMatchFields(sel.Match)...)
	return strings.Join(parts, ",")
}

func renderMatchFields(m dataplane.Match) []string {
	var parts []string
	if m.EthSrc != "" {
		parts = append(parts, "dl_src="+m.EthSrc)
	}
	if m.EthDst != "" {
		parts = append(parts, "dl_dst="+m.EthDst)
	}

	needsIP := m.IPv4Src != "" || m.IPv4Dst != "" || m.IPProto != 0 ||
		m.TCPSrc != 0 || m.TCPDst != 0 || m.UDPSrc != 0 || m.UDPDst != 0
	switch {
	case m.TCPSrc != 0 || m.TCPDst != 0:
		parts = append(parts, "tcp")
	case m.UDPSrc != 0 || m.UDPDst != 0:
		parts = append(parts, "udp")
	case m.IPProto != 0:
		parts = append(parts, "ip", fmt.Sprintf("nw_proto=%d", m.IPProto))
	case needsIP:
		parts = append(parts, "ip")
	}

	if m.IPv4Src != "" {
		parts = append(parts, "nw_src="+m.IPv4Src)
	}
	if m.IPv4Dst != "" {
		parts = append(parts, "nw_dst="+m.IPv4Dst)
	}
	if m.TCPSrc != 0 {
		parts = append(parts, fmt.Sprintf("tp_src=%d", m.TCPSrc))
	}
	if m.TCPDst != 0 {
		parts = append(parts, fmt.Sprintf("tp_dst=%d", m.TCPDst))
	}
	if m.UDPSrc != 0 {
		parts = append(parts, fmt.Sprintf("tp_src=%d", m.UDPSrc))
	}
	if m.UDPDst != 0 {
		parts = append(parts, fmt.Sprintf("tp_dst=%d", m.UDPDst))
	}
	return parts
}

func renderAction(a dataplane.Action) string {
	switch a.Type {
	case dataplane.ActionDrop:
		return "drop"
	case dataplane.ActionRedirect:
		// Redirected traffic is punted to the controller, which answers
		// with the redirect destination.
		return "CONTROLLER:65535"
	default:
		return "NORMAL"
	}
}

func parseDumpOutput(out string) []dataplane.RawFlow {
	var flows []dataplane.RawFlow
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "FLOW reply") {
			continue
		}
		flows = append(flows, dataplane.RawFlow{
			Table:    parseFieldUint(line, "table="),
			Priority: uint32(parseFieldUint(line, "priority=")),
			Text:     line,
		})
	}
	return flows
}

func parseFieldUint(line, prefix string) uint64 {
	idx := strings.Index(line, prefix)
	if idx < 0 {
		return 0
	}
	rest := line[idx+len(prefix):]
	end := strings.IndexAny(rest, ", ")
	if end >= 0 {
		rest = rest[:end]
	}
	v, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
