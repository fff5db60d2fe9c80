package pipelined

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/dataplane/mock"
	"github.com/gvc0461082002/magma/pkg/sid"
)

type stubResolver struct {
	rules map[string]*PolicyRule
}

func (r *stubResolver) ResolveRule(id string) (*PolicyRule, bool) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, false
	}
	return rule.Clone(), true
}

func testRegistry(t *testing.T) *TableRegistry {
	t.Helper()
	reg := NewTableRegistry(1, 100)
	for _, app := range []string{AppUEMac, AppEnforcement, AppEnforcementStats, AppCheckQuota} {
		_, err := reg.Register(app, 1)
		require.NoError(t, err)
	}
	return reg
}

func testController(t *testing.T, dp dataplane.Dataplane, rules map[string]*PolicyRule) *Controller {
	t.Helper()
	ctrl, err := NewController(NewRuleStore(), dp, testRegistry(t), &stubResolver{rules: rules},
		nil, ControllerConfig{
			DataplaneTimeout: time.Second,
			QuotaRedirect:    "http://192.168.128.1/quota",
		})
	require.NoError(t, err)
	return ctrl
}

func mustSID(t *testing.T, s string) sid.SubscriberID {
	t.Helper()
	id, err := sid.Parse(s)
	require.NoError(t, err)
	return id
}

func permitRule(id string, priority uint32) *PolicyRule {
	return &PolicyRule{
		ID:       id,
		Priority: priority,
		Flows: []FlowDescriptor{
			{Match: dataplane.Match{Direction: dataplane.Uplink}, Action: dataplane.ActionPermit},
			{Match: dataplane.Match{Direction: dataplane.Downlink}, Action: dataplane.ActionPermit},
		},
	}
}

func TestActivateStaticRules(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
		"rule2": permitRule("rule2", 200),
	})
	sub := mustSID(t, "IMSI12345")

	res, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1", "rule2"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)
	require.Len(t, res.StaticResults, 2)
	assert.Equal(t, "rule1", res.StaticResults[0].RuleID)
	assert.Equal(t, OutcomeSuccess, res.StaticResults[0].Outcome)
	assert.Equal(t, "rule2", res.StaticResults[1].RuleID)
	assert.Equal(t, OutcomeSuccess, res.StaticResults[1].Outcome)

	assert.Equal(t, 2, ctrl.store.Count())
	assert.Equal(t, 4, dp.InstallCount())

	// The subscriber's address scopes each entry by direction.
	enforcement, _ := ctrl.tables.Assignment(AppEnforcement)
	for _, entry := range dp.Entries(enforcement.MainTable) {
		if entry.Match.Direction == dataplane.Uplink {
			assert.Equal(t, "120.12.1.9", entry.Match.IPv4Src)
		} else {
			assert.Equal(t, "120.12.1.9", entry.Match.IPv4Dst)
		}
	}
}

func TestActivateUnknownStaticRuleFailsAlone(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	sub := mustSID(t, "IMSI12345")

	res, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1", "no_such_rule"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.StaticResults[0].Outcome)
	assert.Equal(t, OutcomeFailureRuleInvalid, res.StaticResults[1].Outcome)
	assert.Equal(t, 1, ctrl.store.Count())
}

func TestActivateInvalidDynamicRule(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, nil)
	sub := mustSID(t, "IMSI12345")

	res, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:   sub,
		IPAddr:       "120.12.1.9",
		DynamicRules: []*PolicyRule{{ID: "empty"}},
		Origin:       OriginPolicy,
	})
	require.NoError(t, err)
	require.Len(t, res.DynamicResults, 1)
	assert.Equal(t, OutcomeFailureRuleInvalid, res.DynamicResults[0].Outcome)
	assert.Equal(t, 0, dp.InstallCount())
}

func TestActivateRejectsBadCallFields(t *testing.T) {
	ctrl := testController(t, mock.NewMockDataplane(), nil)

	_, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		IPAddr: "120.12.1.9",
	})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber: mustSID(t, "IMSI12345"),
		IPAddr:     "not-an-ip",
	})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestActivateIdempotent(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	sub := mustSID(t, "IMSI12345")
	req := ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1"},
		Origin:      OriginPolicy,
	}

	_, err := ctrl.ActivateFlows(context.Background(), req)
	require.NoError(t, err)
	installed := dp.InstallCount()

	res, err := ctrl.ActivateFlows(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.StaticResults[0].Outcome)
	assert.Equal(t, installed, dp.InstallCount())
	assert.Equal(t, 1, ctrl.store.Count())
}

func TestActivateDataplaneFailureRollsBack(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	sub := mustSID(t, "IMSI12345")

	dp.FailNext(1, dataplane.ErrUnavailable)
	res, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailureDataplane, res.StaticResults[0].Outcome)
	assert.Equal(t, 0, ctrl.store.Count())

	// A retry after the dataplane recovers succeeds.
	res, err = ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, res.StaticResults[0].Outcome)
	assert.Equal(t, 1, ctrl.store.Count())
}

func TestChargingRedirectOutranksPolicy(t *testing.T) {
	dp := mock.NewMockDataplane()
	redirect := &PolicyRule{
		ID:       "redirect_rule",
		Priority: 1,
		Redirect: &Redirect{AddressType: RedirectURL, ServerAddress: "http://captive.example"},
	}
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"gx_rule":       permitRule("gx_rule", 9999),
		"redirect_rule": redirect,
	})
	sub := mustSID(t, "IMSI12345")

	_, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"gx_rule"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)
	_, err = ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"redirect_rule"},
		Origin:      OriginCharging,
	})
	require.NoError(t, err)

	enforcement, _ := ctrl.tables.Assignment(AppEnforcement)
	var redirectPrio, policyMax uint32
	for _, entry := range dp.Entries(enforcement.MainTable) {
		if entry.Action.Type == dataplane.ActionRedirect {
			redirectPrio = entry.Priority
		} else if entry.Priority > policyMax {
			policyMax = entry.Priority
		}
	}
	assert.Greater(t, redirectPrio, policyMax)
}

func TestDeactivateNamedRules(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
		"rule2": permitRule("rule2", 200),
	})
	sub := mustSID(t, "IMSI12345")

	_, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1", "rule2"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)

	err = ctrl.DeactivateFlows(context.Background(), DeactivateRequest{
		Subscriber: sub,
		IPAddr:     "120.12.1.9",
		RuleIDs:    []string{"rule1"},
		Origin:     OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ctrl.store.Count())

	_, ok := ctrl.store.Lookup(sub, "rule2", OriginPolicy)
	assert.True(t, ok)
}

func TestDeactivateAllForOrigin(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
		"rule2": permitRule("rule2", 200),
	})
	sub := mustSID(t, "IMSI12345")

	for _, origin := range []Origin{OriginPolicy, OriginCharging} {
		_, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
			Subscriber:  sub,
			IPAddr:      "120.12.1.9",
			StaticRules: []string{"rule1", "rule2"},
			Origin:      origin,
		})
		require.NoError(t, err)
	}
	require.Equal(t, 4, ctrl.store.Count())

	// Empty rule id list tears down the whole origin, nothing else.
	err := ctrl.DeactivateFlows(context.Background(), DeactivateRequest{
		Subscriber: sub,
		IPAddr:     "120.12.1.9",
		Origin:     OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ctrl.store.Count())
	assert.Empty(t, ctrl.store.List(sub, OriginPolicy))
	assert.Len(t, ctrl.store.List(sub, OriginCharging), 2)
}

func TestDeactivateUnknownRuleIsNoop(t *testing.T) {
	ctrl := testController(t, mock.NewMockDataplane(), nil)

	err := ctrl.DeactivateFlows(context.Background(), DeactivateRequest{
		Subscriber: mustSID(t, "IMSI12345"),
		IPAddr:     "120.12.1.9",
		RuleIDs:    []string{"never_installed"},
		Origin:     OriginPolicy,
	})
	assert.NoError(t, err)
}

func TestDeactivateDataplaneFailureRestoresRecord(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	sub := mustSID(t, "IMSI12345")

	_, err := ctrl.ActivateFlows(context.Background(), ActivateRequest{
		Subscriber:  sub,
		IPAddr:      "120.12.1.9",
		StaticRules: []string{"rule1"},
		Origin:      OriginPolicy,
	})
	require.NoError(t, err)

	dp.FailNext(1, dataplane.ErrUnavailable)
	err = ctrl.DeactivateFlows(context.Background(), DeactivateRequest{
		Subscriber: sub,
		IPAddr:     "120.12.1.9",
		RuleIDs:    []string{"rule1"},
		Origin:     OriginPolicy,
	})
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))

	// The record stays authoritative so a retry can finish the removal.
	_, ok := ctrl.store.Lookup(sub, "rule1", OriginPolicy)
	assert.True(t, ok)

	err = ctrl.DeactivateFlows(context.Background(), DeactivateRequest{
		Subscriber: sub,
		IPAddr:     "120.12.1.9",
		RuleIDs:    []string{"rule1"},
		Origin:     OriginPolicy,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, ctrl.store.Count())
}

func TestUEMacFlowLifecycle(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, nil)
	sub := mustSID(t, "IMSI12345")
	mac := "5e:cc:cc:b1:49:ff"

	require.NoError(t, ctrl.AddUEMacFlow(context.Background(), sub, mac))

	ueMac, _ := ctrl.tables.Assignment(AppUEMac)
	assert.Len(t, dp.Entries(ueMac.MainTable), 2)

	// Re-adding the same binding leaves the dataplane untouched.
	installed := dp.InstallCount()
	require.NoError(t, ctrl.AddUEMacFlow(context.Background(), sub, mac))
	assert.Equal(t, installed, dp.InstallCount())

	require.NoError(t, ctrl.DeleteUEMacFlow(context.Background(), sub, mac))
	assert.Empty(t, dp.Entries(ueMac.MainTable))

	// Deleting again is a no-op.
	require.NoError(t, ctrl.DeleteUEMacFlow(context.Background(), sub, mac))
}

func TestUEMacFlowRejectsBadMAC(t *testing.T) {
	ctrl := testController(t, mock.NewMockDataplane(), nil)
	sub := mustSID(t, "IMSI12345")

	err := ctrl.AddUEMacFlow(context.Background(), sub, "not-a-mac")
	assert.Equal(t, KindValidation, KindOf(err))
	err = ctrl.DeleteUEMacFlow(context.Background(), sub, "not-a-mac")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestQuotaStateTransitions(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, nil)
	sub := mustSID(t, "IMSI12345")
	mac := "5e:cc:cc:b1:49:ff"
	ctx := context.Background()

	checkQuota, _ := ctrl.tables.Assignment(AppCheckQuota)

	require.NoError(t, ctrl.UpdateQuotaState(ctx, sub, mac, QuotaValid))
	entries := dp.Entries(checkQuota.MainTable)
	require.Len(t, entries, 1)
	assert.Equal(t, dataplane.ActionPermit, entries[0].Action.Type)

	require.NoError(t, ctrl.UpdateQuotaState(ctx, sub, mac, QuotaExhausted))
	entries = dp.Entries(checkQuota.MainTable)
	require.Len(t, entries, 1)
	assert.Equal(t, dataplane.ActionRedirect, entries[0].Action.Type)
	assert.Equal(t, "http://192.168.128.1/quota", entries[0].Action.RedirectTo)

	// The redirect entry outranks the permit entry it replaced.
	assert.Equal(t, EffectivePriority(TierRedirect, 0), entries[0].Priority)

	require.NoError(t, ctrl.UpdateQuotaState(ctx, sub, mac, QuotaTerminate))
	assert.Empty(t, dp.Entries(checkQuota.MainTable))
	assert.Equal(t, 0, ctrl.store.Count())

	// Terminating an already-terminated session is a no-op.
	require.NoError(t, ctrl.UpdateQuotaState(ctx, sub, mac, QuotaTerminate))
}

func TestOriginsAreIsolated(t *testing.T) {
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	sub := mustSID(t, "IMSI12345")
	ctx := context.Background()

	for _, origin := range []Origin{OriginPolicy, OriginCharging} {
		_, err := ctrl.ActivateFlows(ctx, ActivateRequest{
			Subscriber:  sub,
			IPAddr:      "120.12.1.9",
			StaticRules: []string{"rule1"},
			Origin:      origin,
		})
		require.NoError(t, err)
	}

	// Same rule id under both origins: two independent records, and two
	// independent sets of dataplane entries (the origins' tiers give them
	// different priorities).
	require.Equal(t, 2, ctrl.store.Count())
	enforcement, _ := ctrl.tables.Assignment(AppEnforcement)
	require.Len(t, dp.Entries(enforcement.MainTable), 4)

	err := ctrl.DeactivateFlows(ctx, DeactivateRequest{
		Subscriber: sub,
		IPAddr:     "120.12.1.9",
		RuleIDs:    []string{"rule1"},
		Origin:     OriginCharging,
	})
	require.NoError(t, err)

	_, ok := ctrl.store.Lookup(sub, "rule1", OriginPolicy)
	assert.True(t, ok)
	_, ok = ctrl.store.Lookup(sub, "rule1", OriginCharging)
	assert.False(t, ok)

	// The surviving record's dataplane entries are untouched: removing the
	// charging copy must not strip the policy copy's flows.
	rec, ok := ctrl.store.Lookup(sub, "rule1", OriginPolicy)
	require.True(t, ok)
	for _, entry := range rec.Entries {
		assert.True(t, dp.HasFlow(entry.Selector()),
			"policy entry missing from dataplane: %s", entry.Selector().Key())
	}
}
