package pipelined

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/sid"
)

// RuleResolver resolves static rule ids to their content. Implemented by
// the external policy database; unknown ids fail the individual rule, not
// the batch.
type RuleResolver interface {
	ResolveRule(id string) (*PolicyRule, bool)
}

// ControllerConfig bounds the controller's interaction with the dataplane.
type ControllerConfig struct {
	// DataplaneTimeout caps every individual dataplane call.
	DataplaneTimeout time.Duration
	// RuleConcurrency caps how many rules of one batch are processed at
	// once.
	RuleConcurrency int
	// QuotaRedirect is where exhausted-quota subscribers are steered.
	QuotaRedirect string
}

// Controller turns activate/deactivate intents into rule-store and
// dataplane mutations. Mutating calls for the same subscriber are
// serialized; different subscribers proceed in parallel.
type Controller struct {
	store    *RuleStore
	dp       dataplane.Dataplane
	tables   *TableRegistry
	resolver RuleResolver
	metrics  *Metrics
	cfg      ControllerConfig
	locks    *subscriberLocks
	log      *logrus.Entry

	enforcement TableAssignment
	ueMac       TableAssignment
	checkQuota  TableAssignment
}

// NewController wires the controller against an already-populated table
// registry. The enforcement, ue_mac and check_quota applications must be
// registered; anything else is a broken layout.
func NewController(store *RuleStore, dp dataplane.Dataplane, tables *TableRegistry,
	resolver RuleResolver, metrics *Metrics, cfg ControllerConfig) (*Controller, error) {

	if cfg.DataplaneTimeout <= 0 {
		cfg.DataplaneTimeout = 3 * time.Second
	}
	if cfg.RuleConcurrency <= 0 {
		cfg.RuleConcurrency = 4
	}

	c := &Controller{
		store:    store,
		dp:       dp,
		tables:   tables,
		resolver: resolver,
		metrics:  metrics,
		cfg:      cfg,
		locks:    newSubscriberLocks(),
		log:      logrus.WithField("component", "flow_controller"),
	}

	var ok bool
	if c.enforcement, ok = tables.Assignment(AppEnforcement); !ok {
		return nil, newError(KindConflict, "app %s not registered", AppEnforcement)
	}
	if c.ueMac, ok = tables.Assignment(AppUEMac); !ok {
		return nil, newError(KindConflict, "app %s not registered", AppUEMac)
	}
	if c.checkQuota, ok = tables.Assignment(AppCheckQuota); !ok {
		return nil, newError(KindConflict, "app %s not registered", AppCheckQuota)
	}
	return c, nil
}

// ActivateRequest is one activation intent: static rules by id, dynamic
// rules inline, all under a single origin.
type ActivateRequest struct {
	Subscriber   sid.SubscriberID
	IPAddr       string
	StaticRules  []string
	DynamicRules []*PolicyRule
	Origin       Origin
}

// ActivateResult reports a per-rule outcome for every requested rule, in
// request order.
type ActivateResult struct {
	StaticResults  []RuleResult
	DynamicResults []RuleResult
}

// ActivateFlows installs the requested rules for one subscriber. Each rule
// succeeds or fails on its own; a malformed or unresolvable rule never
// blocks the rest of the batch.
func (c *Controller) ActivateFlows(ctx context.Context, req ActivateRequest) (*ActivateResult, error) {
	if req.Subscriber.IsZero() {
		return nil, newError(KindValidation, "missing subscriber id")
	}
	ip := net.ParseIP(req.IPAddr)
	if ip == nil {
		return nil, newError(KindValidation, "unparsable subscriber ip %q", req.IPAddr)
	}

	c.locks.lock(req.Subscriber)
	defer c.locks.unlock(req.Subscriber)

	result := &ActivateResult{
		StaticResults:  make([]RuleResult, len(req.StaticRules)),
		DynamicResults: make([]RuleResult, len(req.DynamicRules)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.RuleConcurrency)

	for i, id := range req.StaticRules {
		g.Go(func() error {
			rule, ok := c.resolver.ResolveRule(id)
			if !ok {
				result.StaticResults[i] = RuleResult{
					RuleID:  id,
					Outcome: OutcomeFailureRuleInvalid,
					Err:     newError(KindValidation, "static rule %s not found in policy database", id),
				}
				return nil
			}
			result.StaticResults[i] = c.applyRule(gctx, req.Subscriber, ip, rule, req.Origin)
			return nil
		})
	}

	for i, rule := range req.DynamicRules {
		g.Go(func() error {
			result.DynamicResults[i] = c.applyRule(gctx, req.Subscriber, ip, rule, req.Origin)
			return nil
		})
	}

	// Workers only record per-rule outcomes; Wait is for completion, not
	// errors.
	_ = g.Wait()

	for _, r := range result.StaticResults {
		c.metrics.recordActivation(req.Origin, r.Outcome)
	}
	for _, r := range result.DynamicResults {
		c.metrics.recordActivation(req.Origin, r.Outcome)
	}
	c.metrics.setActiveRules(c.store.Count())

	return result, nil
}

// applyRule validates, prices and installs one rule, returning its outcome.
func (c *Controller) applyRule(ctx context.Context, sub sid.SubscriberID, ip net.IP,
	rule *PolicyRule, origin Origin) RuleResult {

	if rule == nil {
		return RuleResult{Outcome: OutcomeFailureRuleInvalid,
			Err: newError(KindValidation, "nil rule")}
	}
	if err := rule.Validate(); err != nil {
		return RuleResult{RuleID: rule.ID, Outcome: OutcomeFailureRuleInvalid, Err: err}
	}

	tier := TierFor(origin, rule.Redirect != nil)
	entries := c.buildEntries(sub, ip, rule, EffectivePriority(tier, rule.Priority))

	rec := &RuleRecord{
		Subscriber:  sub,
		Origin:      origin,
		Rule:        rule.Clone(),
		Entries:     entries,
		InstalledAt: time.Now(),
	}

	if err := c.installRecord(ctx, rec); err != nil {
		c.metrics.recordDataplaneError()
		return RuleResult{RuleID: rule.ID, Outcome: outcomeForError(err), Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"imsi":    sub.String(),
		"rule_id": rule.ID,
		"origin":  origin.String(),
		"tier":    tier.String(),
	}).Info("rule activated")

	return RuleResult{RuleID: rule.ID, Outcome: OutcomeSuccess}
}

// installRecord makes the dataplane match rec and then commits it to the
// store, so a rule never shows as active while its entries are missing.
// Re-installing identical content skips the dataplane entirely.
func (c *Controller) installRecord(ctx context.Context, rec *RuleRecord) error {
	prev, _ := c.store.Lookup(rec.Subscriber, rec.Rule.ID, rec.Origin)
	if prev != nil && entriesEqual(prev.Entries, rec.Entries) {
		return nil
	}

	var installed []dataplane.FlowEntry
	for _, entry := range rec.Entries {
		if err := c.dpInstall(ctx, entry); err != nil {
			// Undo this call's partial work; the previous record, if any,
			// stays authoritative.
			for _, e := range installed {
				c.dpRemove(ctx, e.Selector())
			}
			return err
		}
		installed = append(installed, entry)
	}

	if prev != nil {
		wanted := make(map[string]bool, len(rec.Entries))
		for _, e := range rec.Entries {
			wanted[e.Selector().Key()] = true
		}
		for _, e := range prev.Entries {
			if !wanted[e.Selector().Key()] {
				c.dpRemove(ctx, e.Selector())
			}
		}
	}

	c.store.Upsert(rec)
	return nil
}

// buildEntries translates a rule into concrete table entries scoped to the
// subscriber's address. A redirect supersedes the flow list.
func (c *Controller) buildEntries(sub sid.SubscriberID, ip net.IP, rule *PolicyRule,
	priority uint32) []dataplane.FlowEntry {

	table := c.enforcement.MainTable

	if rule.Redirect != nil {
		return []dataplane.FlowEntry{{
			Table:       table,
			Priority:    priority,
			HardTimeout: rule.HardTimeout,
			Match:       dataplane.Match{Direction: dataplane.Uplink, IPv4Src: ip.String()},
			Action:      dataplane.Action{Type: dataplane.ActionRedirect, RedirectTo: rule.Redirect.ServerAddress},
		}}
	}

	entries := make([]dataplane.FlowEntry, 0, len(rule.Flows))
	for _, fd := range rule.Flows {
		match := fd.Match
		// Scope the predicate to this subscriber: their address is the
		// source on uplink and the destination on downlink.
		if match.Direction == dataplane.Uplink {
			match.IPv4Src = ip.String()
		} else {
			match.IPv4Dst = ip.String()
		}
		entries = append(entries, dataplane.FlowEntry{
			Table:       table,
			Priority:    priority,
			HardTimeout: rule.HardTimeout,
			Match:       match,
			Action:      dataplane.Action{Type: fd.Action},
		})
	}
	return entries
}

// DeactivateRequest names the rules to remove. An empty RuleIDs set means
// "every rule of this origin for this subscriber" (the session-teardown
// path); it never touches the other origin's rules.
type DeactivateRequest struct {
	Subscriber sid.SubscriberID
	IPAddr     string
	RuleIDs    []string
	Origin     Origin
}

// DeactivateFlows removes rules from the store and the dataplane.
// Deactivating a rule that was never installed is a no-op, not an error. A
// transient dataplane failure rolls the affected record back into the
// store and surfaces an error the caller can retry.
func (c *Controller) DeactivateFlows(ctx context.Context, req DeactivateRequest) error {
	if req.Subscriber.IsZero() {
		return newError(KindValidation, "missing subscriber id")
	}

	c.locks.lock(req.Subscriber)
	defer c.locks.unlock(req.Subscriber)

	var removed []*RuleRecord
	if len(req.RuleIDs) == 0 {
		removed = c.store.RemoveAll(req.Subscriber, req.Origin)
	} else {
		for _, id := range req.RuleIDs {
			res := c.store.Remove(req.Subscriber, id, req.Origin)
			if res.Status == Removed {
				removed = append(removed, res.Record)
			}
		}
	}

	var firstErr error
	for _, rec := range removed {
		if err := c.removeRecordEntries(ctx, rec); err != nil {
			// Put the record back so the store keeps matching the
			// dataplane; the caller retries.
			c.store.Upsert(rec)
			c.metrics.recordDataplaneError()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.log.WithFields(logrus.Fields{
			"imsi":    req.Subscriber.String(),
			"rule_id": rec.Rule.ID,
			"origin":  req.Origin.String(),
		}).Info("rule deactivated")
	}

	c.metrics.recordDeactivation(req.Origin, len(removed))
	c.metrics.setActiveRules(c.store.Count())

	if firstErr != nil {
		return wrapError(KindUnavailable, firstErr, "deactivate flows for %s", req.Subscriber)
	}
	return nil
}

func (c *Controller) removeRecordEntries(ctx context.Context, rec *RuleRecord) error {
	for _, entry := range rec.Entries {
		if err := c.dpRemove(ctx, entry.Selector()); err != nil {
			return err
		}
	}
	return nil
}

// AddUEMacFlow binds a hardware address to the subscriber in the ue_mac
// table. Keyed by (subscriber, mac); re-adding the same binding is a no-op.
func (c *Controller) AddUEMacFlow(ctx context.Context, sub sid.SubscriberID, mac string) error {
	hwAddr, err := net.ParseMAC(mac)
	if err != nil {
		return wrapError(KindValidation, err, "unparsable mac %q", mac)
	}
	if sub.IsZero() {
		return newError(KindValidation, "missing subscriber id")
	}

	c.locks.lock(sub)
	defer c.locks.unlock(sub)

	rec := &RuleRecord{
		Subscriber: sub,
		Origin:     OriginPolicy,
		Rule: &PolicyRule{
			ID: macRuleID(hwAddr.String()),
			Flows: []FlowDescriptor{
				{Match: dataplane.Match{Direction: dataplane.Uplink, EthSrc: hwAddr.String()}, Action: dataplane.ActionPermit},
				{Match: dataplane.Match{Direction: dataplane.Downlink, EthDst: hwAddr.String()}, Action: dataplane.ActionPermit},
			},
		},
		Entries: []dataplane.FlowEntry{
			{
				Table:    c.ueMac.MainTable,
				Priority: EffectivePriority(TierPolicy, 0),
				Match:    dataplane.Match{Direction: dataplane.Uplink, EthSrc: hwAddr.String()},
				Action:   dataplane.Action{Type: dataplane.ActionPermit},
			},
			{
				Table:    c.ueMac.MainTable,
				Priority: EffectivePriority(TierPolicy, 0),
				Match:    dataplane.Match{Direction: dataplane.Downlink, EthDst: hwAddr.String()},
				Action:   dataplane.Action{Type: dataplane.ActionPermit},
			},
		},
		InstalledAt: time.Now(),
	}

	if err := c.installRecord(ctx, rec); err != nil {
		c.metrics.recordDataplaneError()
		return err
	}

	c.log.WithFields(logrus.Fields{
		"imsi": sub.String(),
		"mac":  hwAddr.String(),
	}).Info("ue mac flow added")
	return nil
}

// DeleteUEMacFlow removes the (subscriber, mac) binding. Removing an
// absent binding is a no-op.
func (c *Controller) DeleteUEMacFlow(ctx context.Context, sub sid.SubscriberID, mac string) error {
	hwAddr, err := net.ParseMAC(mac)
	if err != nil {
		return wrapError(KindValidation, err, "unparsable mac %q", mac)
	}
	if sub.IsZero() {
		return newError(KindValidation, "missing subscriber id")
	}

	c.locks.lock(sub)
	defer c.locks.unlock(sub)

	res := c.store.Remove(sub, macRuleID(hwAddr.String()), OriginPolicy)
	if res.Status == NotFound {
		return nil
	}
	if err := c.removeRecordEntries(ctx, res.Record); err != nil {
		c.store.Upsert(res.Record)
		c.metrics.recordDataplaneError()
		return err
	}

	c.log.WithFields(logrus.Fields{
		"imsi": sub.String(),
		"mac":  hwAddr.String(),
	}).Info("ue mac flow deleted")
	return nil
}

// QuotaState is the tri-state quota machine for one subscriber.
type QuotaState int

const (
	// QuotaValid gates traffic open.
	QuotaValid QuotaState = iota
	// QuotaExhausted redirects traffic to the quota portal.
	QuotaExhausted
	// QuotaTerminate ends the session; the gating rule is removed, not
	// updated.
	QuotaTerminate
)

func (q QuotaState) String() string {
	switch q {
	case QuotaExhausted:
		return "exhausted"
	case QuotaTerminate:
		return "terminate"
	default:
		return "valid"
	}
}

// UpdateQuotaState transitions the subscriber's quota-gating rule in the
// check_quota table.
func (c *Controller) UpdateQuotaState(ctx context.Context, sub sid.SubscriberID, mac string,
	state QuotaState) error {

	hwAddr, err := net.ParseMAC(mac)
	if err != nil {
		return wrapError(KindValidation, err, "unparsable mac %q", mac)
	}
	if sub.IsZero() {
		return newError(KindValidation, "missing subscriber id")
	}

	c.locks.lock(sub)
	defer c.locks.unlock(sub)

	ruleID := quotaRuleID(hwAddr.String())

	if state == QuotaTerminate {
		res := c.store.Remove(sub, ruleID, OriginCharging)
		if res.Status == Removed {
			if err := c.removeRecordEntries(ctx, res.Record); err != nil {
				c.store.Upsert(res.Record)
				c.metrics.recordDataplaneError()
				return err
			}
		}
		c.metrics.recordQuotaTransition(state)
		c.log.WithFields(logrus.Fields{
			"imsi": sub.String(),
			"mac":  hwAddr.String(),
		}).Info("quota session terminated")
		return nil
	}

	match := dataplane.Match{Direction: dataplane.Uplink, EthSrc: hwAddr.String()}
	entry := dataplane.FlowEntry{
		Table: c.checkQuota.MainTable,
		Match: match,
	}
	rule := &PolicyRule{ID: ruleID, Flows: []FlowDescriptor{{Match: match}}}
	if state == QuotaValid {
		entry.Priority = EffectivePriority(TierPolicyOverride, 0)
		entry.Action = dataplane.Action{Type: dataplane.ActionPermit}
		rule.Flows[0].Action = dataplane.ActionPermit
	} else {
		entry.Priority = EffectivePriority(TierRedirect, 0)
		entry.Action = dataplane.Action{Type: dataplane.ActionRedirect, RedirectTo: c.cfg.QuotaRedirect}
		rule.Redirect = &Redirect{AddressType: RedirectURL, ServerAddress: c.cfg.QuotaRedirect}
	}

	rec := &RuleRecord{
		Subscriber:  sub,
		Origin:      OriginCharging,
		Rule:        rule,
		Entries:     []dataplane.FlowEntry{entry},
		InstalledAt: time.Now(),
	}

	if err := c.installRecord(ctx, rec); err != nil {
		c.metrics.recordDataplaneError()
		return err
	}

	c.metrics.recordQuotaTransition(state)
	c.log.WithFields(logrus.Fields{
		"imsi":  sub.String(),
		"mac":   hwAddr.String(),
		"state": state.String(),
	}).Info("quota state updated")
	return nil
}

func (c *Controller) dpInstall(ctx context.Context, entry dataplane.FlowEntry) error {
	dctx, cancel := context.WithTimeout(ctx, c.cfg.DataplaneTimeout)
	defer cancel()
	return c.dp.InstallFlow(dctx, entry)
}

func (c *Controller) dpRemove(ctx context.Context, sel dataplane.FlowSelector) error {
	dctx, cancel := context.WithTimeout(ctx, c.cfg.DataplaneTimeout)
	defer cancel()
	return c.dp.RemoveFlow(dctx, sel)
}

func macRuleID(mac string) string   { return "ue_mac/" + mac }
func quotaRuleID(mac string) string { return "check_quota/" + mac }

func outcomeForError(err error) OutcomeCode {
	switch KindOf(err) {
	case KindValidation:
		return OutcomeFailureRuleInvalid
	case KindUnavailable, KindPermission:
		return OutcomeFailureDataplane
	default:
		return OutcomeFailureDataplane
	}
}

func entriesEqual(a, b []dataplane.FlowEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
