package pipelined

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

func TestRuleValidate(t *testing.T) {
	cases := []struct {
		name string
		rule PolicyRule
		ok   bool
	}{
		{
			name: "flows only",
			rule: PolicyRule{ID: "r", Flows: []FlowDescriptor{{Action: dataplane.ActionPermit}}},
			ok:   true,
		},
		{
			name: "redirect only",
			rule: PolicyRule{ID: "r", Redirect: &Redirect{AddressType: RedirectURL, ServerAddress: "http://x"}},
			ok:   true,
		},
		{
			name: "cidr predicate",
			rule: PolicyRule{ID: "r", Flows: []FlowDescriptor{
				{Match: dataplane.Match{IPv4Dst: "10.0.0.0/8"}},
			}},
			ok: true,
		},
		{name: "missing id", rule: PolicyRule{Flows: []FlowDescriptor{{}}}},
		{name: "empty body", rule: PolicyRule{ID: "r"}},
		{
			name: "redirect without destination",
			rule: PolicyRule{ID: "r", Redirect: &Redirect{}},
		},
		{
			name: "bad address",
			rule: PolicyRule{ID: "r", Flows: []FlowDescriptor{
				{Match: dataplane.Match{IPv4Src: "not-an-ip"}},
			}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, KindValidation, KindOf(err))
			}
		})
	}
}

func TestRuleEqual(t *testing.T) {
	a := permitRule("r", 100)
	assert.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b.Priority = 200
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.Redirect = &Redirect{AddressType: RedirectURL, ServerAddress: "http://x"}
	assert.False(t, a.Equal(c))

	var nilRule *PolicyRule
	assert.True(t, nilRule.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestRuleCloneIsDeep(t *testing.T) {
	orig := &PolicyRule{
		ID: "r",
		Flows: []FlowDescriptor{
			{Match: dataplane.Match{Direction: dataplane.Uplink}, Action: dataplane.ActionPermit},
		},
		Redirect: &Redirect{AddressType: RedirectURL, ServerAddress: "http://x"},
	}
	clone := orig.Clone()
	clone.Flows[0].Action = dataplane.ActionDrop
	clone.Redirect.ServerAddress = "http://y"

	assert.Equal(t, dataplane.ActionPermit, orig.Flows[0].Action)
	assert.Equal(t, "http://x", orig.Redirect.ServerAddress)
}
