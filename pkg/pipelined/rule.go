package pipelined

import (
	"net"

	"github.com/gvc0461082002/magma/pkg/dataplane"
)

// Origin names the authority that installed a rule. Rules from the two
// origins are tracked independently; a deactivation scoped to one origin
// never removes the other's rules.
type Origin int

const (
	// OriginPolicy is policy control (the Gx reference point).
	OriginPolicy Origin = iota
	// OriginCharging is charging control (the Gy reference point). Charging
	// rules may override policy rules for the same rule id.
	OriginCharging
)

func (o Origin) String() string {
	if o == OriginCharging {
		return "GY"
	}
	return "GX"
}

// RedirectAddressType tells how a redirect destination is encoded.
type RedirectAddressType int

const (
	RedirectIPv4 RedirectAddressType = iota
	RedirectIPv6
	RedirectURL
	RedirectSIPURI
)

// Redirect steers a rule's matching traffic to a fixed destination instead
// of applying the flow list. Used for final-action enforcement.
type Redirect struct {
	AddressType   RedirectAddressType
	ServerAddress string
}

// FlowDescriptor pairs one match with its action.
type FlowDescriptor struct {
	Match  dataplane.Match
	Action dataplane.ActionType
}

// PolicyRule is one activatable rule. Static rules arrive by id and are
// resolved to a PolicyRule by the rule database; dynamic rules arrive fully
// populated.
type PolicyRule struct {
	ID          string
	Priority    uint32
	HardTimeout uint32
	Flows       []FlowDescriptor
	Redirect    *Redirect
}

// Validate checks the fields a rule must carry before it can be installed.
// Failures here are local to the rule and never abort the batch it arrived
// in.
func (r *PolicyRule) Validate() error {
	if r.ID == "" {
		return newError(KindValidation, "rule has no id")
	}
	if len(r.Flows) == 0 && r.Redirect == nil {
		return newError(KindValidation, "rule %s has neither flows nor a redirect", r.ID)
	}
	if r.Redirect != nil && r.Redirect.ServerAddress == "" {
		return newError(KindValidation, "rule %s redirect has no server address", r.ID)
	}
	for _, fd := range r.Flows {
		if err := validateAddr(r.ID, fd.Match.IPv4Src); err != nil {
			return err
		}
		if err := validateAddr(r.ID, fd.Match.IPv4Dst); err != nil {
			return err
		}
	}
	return nil
}

func validateAddr(ruleID, addr string) error {
	if addr == "" {
		return nil
	}
	// CIDR predicates are accepted as-is.
	if _, _, err := net.ParseCIDR(addr); err == nil {
		return nil
	}
	if net.ParseIP(addr) == nil {
		return newError(KindValidation, "rule %s: unparsable address %q", ruleID, addr)
	}
	return nil
}

// Equal reports whether two rules have identical content. Re-activating an
// equal rule is a dataplane no-op.
func (r *PolicyRule) Equal(other *PolicyRule) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.ID != other.ID || r.Priority != other.Priority || r.HardTimeout != other.HardTimeout {
		return false
	}
	if len(r.Flows) != len(other.Flows) {
		return false
	}
	for i := range r.Flows {
		if r.Flows[i] != other.Flows[i] {
			return false
		}
	}
	if (r.Redirect == nil) != (other.Redirect == nil) {
		return false
	}
	if r.Redirect != nil && *r.Redirect != *other.Redirect {
		return false
	}
	return true
}

// Clone returns a deep copy, so resolver-owned rules can be handed out
// without aliasing.
func (r *PolicyRule) Clone() *PolicyRule {
	if r == nil {
		return nil
	}
	out := *r
	out.Flows = append([]FlowDescriptor(nil), r.Flows...)
	if r.Redirect != nil {
		red := *r.Redirect
		out.Redirect = &red
	}
	return &out
}

// OutcomeCode is the closed set of per-rule activation outcomes.
type OutcomeCode int

const (
	OutcomeSuccess OutcomeCode = iota
	OutcomeFailureRuleInvalid
	OutcomeFailureDataplane
	OutcomeFailureUnknown
)

func (o OutcomeCode) String() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomeFailureRuleInvalid:
		return "FAILURE_RULE_INVALID"
	case OutcomeFailureDataplane:
		return "FAILURE_DATAPLANE"
	default:
		return "FAILURE_UNKNOWN"
	}
}

// RuleResult reports one rule's outcome within a batch. Err carries detail
// for failed outcomes and is never set on success.
type RuleResult struct {
	RuleID  string
	Outcome OutcomeCode
	Err     error
}
