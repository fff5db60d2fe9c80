// Package vpp implements the dataplane against a VPP instance. Pipeline
// tables are realized as classify tables; flow entries become classify
// sessions keyed by a fixed-layout match vector.
package vpp

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.fd.io/govpp/adapter/socketclient"
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/binapi/classify"
	"go.fd.io/govpp/core"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

const matchVectorLen = 48

type VPPDataplane struct {
	conn *core.Connection
	ch   api.Channel

	// pipeline table number -> VPP classify table index
	classifyTables map[uint64]uint32
	mu             sync.Mutex
	log            *logrus.Entry
}

func NewVPPDataplane(socketPath string) (*VPPDataplane, error) {
	if socketPath == "" {
		socketPath = "/run/vpp/api.sock"
	}

	conn, err := core.Connect(socketclient.NewVppClient(socketPath))
	if err != nil {
		return nil, fmt.Errorf("connect to VPP: %w", dataplane.ErrUnavailable)
	}

	ch, err := conn.NewAPIChannel()
	if err != nil {
		conn.Disconnect()
		return nil, fmt.Errorf("create API channel: %w", dataplane.ErrUnavailable)
	}

	return &VPPDataplane{
		conn:           conn,
		ch:             ch,
		classifyTables: make(map[uint64]uint32),
		log:            logrus.WithField("component", "vpp_dataplane"),
	}, nil
}

func (v *VPPDataplane) Close() error {
	if v.ch != nil {
		v.ch.Close()
	}
	if v.conn != nil {
		v.conn.Disconnect()
	}
	return nil
}

func (v *VPPDataplane) InstallFlow(ctx context.Context, entry dataplane.FlowEntry) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tableIdx, err := v.ensureClassifyTable(entry.Table)
	if err != nil {
		return err
	}

	req := &classify.ClassifyAddDelSession{
		IsAdd:        true,
		TableIndex:   tableIdx,
		HitNextIndex: hitNextIndex(entry.Action),
		OpaqueIndex:  entry.Priority,
		MatchLen:     matchVectorLen,
		Match:        encodeMatchVector(entry.Match, entry.Priority),
	}

	reply := &classify.ClassifyAddDelSessionReply{}
	if err := v.ch.SendRequest(req).ReceiveReply(reply); err != nil {
		return fmt.Errorf("classify session add: %v: %w", err, dataplane.ErrUnavailable)
	}
	if reply.Retval != 0 {
		return fmt.Errorf("classify session add: %s (%d)", vppErrorString(reply.Retval), reply.Retval)
	}

	v.log.WithFields(logrus.Fields{
		"table":        entry.Table,
		"classify_idx": tableIdx,
		"match":        entry.Match.Key(),
	}).Debug("installed classify session")

	return nil
}

func (v *VPPDataplane) RemoveFlow(ctx context.Context, sel dataplane.FlowSelector) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tableIdx, ok := v.classifyTables[sel.Table]
	if !ok {
		// Nothing was ever installed in this table; removal is a no-op.
		return nil
	}

	req := &classify.ClassifyAddDelSession{
		IsAdd:      false,
		TableIndex: tableIdx,
		MatchLen:   matchVectorLen,
		Match:      encodeMatchVector(sel.Match, sel.Priority),
	}

	reply := &classify.ClassifyAddDelSessionReply{}
	if err := v.ch.SendRequest(req).ReceiveReply(reply); err != nil {
		return fmt.Errorf("classify session del: %v: %w", err, dataplane.ErrUnavailable)
	}
	if reply.Retval != 0 && reply.Retval != retvalNoSuchEntry {
		return fmt.Errorf("classify session del: %s (%d)", vppErrorString(reply.Retval), reply.Retval)
	}

	return nil
}

func (v *VPPDataplane) DumpFlows(ctx context.Context, table int64) ([]dataplane.RawFlow, error) {
	v.mu.Lock()
	tables := make(map[uint64]uint32, len(v.classifyTables))
	for tbl, idx := range v.classifyTables {
		if table != dataplane.AllTables && uint64(table) != tbl {
			continue
		}
		tables[tbl] = idx
	}
	v.mu.Unlock()

	var flows []dataplane.RawFlow
	for tbl, idx := range tables {
		sessions, err := v.dumpSessions(idx)
		if err != nil {
			return nil, err
		}
		for _, s := range sessions {
			flows = append(flows, dataplane.RawFlow{
				Table:    tbl,
				Priority: s.OpaqueIndex,
				Text:     fmt.Sprintf("classify_table=%d match=%x hit_next=%d", idx, s.Match, s.HitNextIndex),
			})
		}
	}
	return flows, nil
}

func (v *VPPDataplane) dumpSessions(tableIdx uint32) ([]*classify.ClassifySessionDetails, error) {
	reqCtx := v.ch.SendMultiRequest(&classify.ClassifySessionDump{TableID: tableIdx})

	var sessions []*classify.ClassifySessionDetails
	for {
		details := &classify.ClassifySessionDetails{}
		stop, err := reqCtx.ReceiveReply(details)
		if stop {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("classify session dump: %v: %w", err, dataplane.ErrUnavailable)
		}
		sessions = append(sessions, details)
	}
	return sessions, nil
}

// ensureClassifyTable creates the backing classify table for a pipeline
// table on first use. Caller holds the lock.
func (v *VPPDataplane) ensureClassifyTable(table uint64) (uint32, error) {
	if idx, ok := v.classifyTables[table]; ok {
		return idx, nil
	}

	mask := make([]byte, matchVectorLen)
	for i := range mask {
		mask[i] = 0xff
	}

	req := &classify.ClassifyAddDelTable{
		IsAdd:          true,
		TableIndex:     ^uint32(0),
		Nbuckets:       2,
		MemorySize:     2 << 20,
		SkipNVectors:   0,
		MatchNVectors:  3,
		NextTableIndex: ^uint32(0),
		MissNextIndex:  ^uint32(0),
		MaskLen:        uint32(len(mask)),
		Mask:           mask,
	}

	reply := &classify.ClassifyAddDelTableReply{}
	if err := v.ch.SendRequest(req).ReceiveReply(reply); err != nil {
		return 0, fmt.Errorf("classify table add: %v: %w", err, dataplane.ErrUnavailable)
	}
	if reply.Retval != 0 {
		return 0, fmt.Errorf("classify table add: %s (%d)", vppErrorString(reply.Retval), reply.Retval)
	}

	v.classifyTables[table] = reply.NewTableIndex
	v.log.WithFields(logrus.Fields{
		"table":        table,
		"classify_idx": reply.NewTableIndex,
	}).Info("created classify table")

	return reply.NewTableIndex, nil
}

// hitNextIndex maps the entry action to the classifier's next node.
func hitNextIndex(a dataplane.Action) uint32 {
	switch a.Type {
	case dataplane.ActionDrop:
		return 0 // drop node
	case dataplane.ActionRedirect:
		return 1 // punt node; the control plane answers with the redirect
	default:
		return ^uint32(0) // continue down the pipeline
	}
}

// encodeMatchVector lays the match fields out at fixed offsets so that
// identical selectors always produce identical session keys. Priority is
// part of the vector: entries differing only in priority must map to
// distinct sessions.
func encodeMatchVector(m dataplane.Match, priority uint32) []byte {
	vec := make([]byte, matchVectorLen)
	copy(vec[0:4], parseIPv4(m.IPv4Src))
	copy(vec[4:8], parseIPv4(m.IPv4Dst))
	vec[8] = m.IPProto
	putUint16(vec[9:11], m.TCPSrc)
	putUint16(vec[11:13], m.TCPDst)
	putUint16(vec[13:15], m.UDPSrc)
	putUint16(vec[15:17], m.UDPDst)
	copy(vec[17:23], parseMAC(m.EthSrc))
	copy(vec[23:29], parseMAC(m.EthDst))
	vec[29] = byte(m.Direction)
	vec[30] = byte(priority >> 24)
	vec[31] = byte(priority >> 16)
	vec[32] = byte(priority >> 8)
	vec[33] = byte(priority)
	return vec
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func parseIPv4(s string) []byte {
	var out [4]byte
	if s == "" {
		return out[:]
	}
	var a, b, c, d int
	if _, err := fmt.Sscanf(s, "%d.%d.%d.%d", &a, &b, &c, &d); err != nil {
		return out[:]
	}
	out[0], out[1], out[2], out[3] = byte(a), byte(b), byte(c), byte(d)
	return out[:]
}

func parseMAC(s string) []byte {
	var out [6]byte
	if s == "" {
		return out[:]
	}
	var b [6]int
	if _, err := fmt.Sscanf(s, "%x:%x:%x:%x:%x:%x", &b[0], &b[1], &b[2], &b[3], &b[4], &b[5]); err != nil {
		return out[:]
	}
	for i, v := range b {
		out[i] = byte(v)
	}
	return out[:]
}

const retvalNoSuchEntry = -6

func vppErrorString(retval int32) string {
	switch retval {
	case 0:
		return "Success"
	case -1:
		return "Unspecified Error"
	case -2:
		return "System call error"
	case -6:
		return "No such entry"
	case -7:
		return "Invalid value"
	default:
		return fmt.Sprintf("Error %d", retval)
	}
}
