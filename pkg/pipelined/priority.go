package pipelined

// PriorityTier is the named band an installed entry's priority falls into.
// Tiers are totally ordered and own disjoint numeric ranges, so an entry in
// a higher tier always wins over any entry in a lower one no matter what
// priority the caller supplied. Within a tier, the caller's rule priority
// breaks ties (clamped to the band width).
//
// The order, lowest to highest:
//
//	TierDefault        pipeline defaults (miss entries)
//	TierPolicy         ordinary GX policy rules
//	TierPolicyOverride GY charging rules without a redirect
//	TierRedirect       GY final-action redirects; must beat everything
type PriorityTier int

const (
	TierDefault PriorityTier = iota
	TierPolicy
	TierPolicyOverride
	TierRedirect
)

const tierBandWidth = 10000

func (t PriorityTier) String() string {
	switch t {
	case TierPolicy:
		return "policy"
	case TierPolicyOverride:
		return "policy_override"
	case TierRedirect:
		return "redirect"
	default:
		return "default"
	}
}

// floor returns the lowest priority value in the tier's band.
func (t PriorityTier) floor() uint32 {
	return uint32(t) * tierBandWidth
}

// EffectivePriority maps a caller-supplied rule priority into the tier's
// band. Rule priorities at or beyond the band width are clamped so they can
// never leak into the next tier.
func EffectivePriority(tier PriorityTier, rulePriority uint32) uint32 {
	if rulePriority >= tierBandWidth {
		rulePriority = tierBandWidth - 1
	}
	return tier.floor() + rulePriority
}

// TierFor picks the tier for a rule given its origin and whether it carries
// a redirect directive. Redirects are only honored from the charging origin;
// CHARGING outranks POLICY on overlapping matches.
func TierFor(origin Origin, redirect bool) PriorityTier {
	switch {
	case origin == OriginCharging && redirect:
		return TierRedirect
	case origin == OriginCharging:
		return TierPolicyOverride
	default:
		return TierPolicy
	}
}
