package pipelined

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOrdering(t *testing.T) {
	// The highest priority a lower tier can produce never reaches the
	// lowest priority of the tier above.
	tiers := []PriorityTier{TierDefault, TierPolicy, TierPolicyOverride, TierRedirect}
	for i := 1; i < len(tiers); i++ {
		lowerMax := EffectivePriority(tiers[i-1], ^uint32(0))
		upperMin := EffectivePriority(tiers[i], 0)
		assert.Less(t, lowerMax, upperMin, "%s must stay below %s", tiers[i-1], tiers[i])
	}
}

func TestEffectivePriorityClampsToBand(t *testing.T) {
	assert.Equal(t, uint32(10000), EffectivePriority(TierPolicy, 0))
	assert.Equal(t, uint32(10500), EffectivePriority(TierPolicy, 500))
	assert.Equal(t, uint32(19999), EffectivePriority(TierPolicy, 9999))
	assert.Equal(t, uint32(19999), EffectivePriority(TierPolicy, 10000))
	assert.Equal(t, uint32(19999), EffectivePriority(TierPolicy, ^uint32(0)))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierPolicy, TierFor(OriginPolicy, false))
	assert.Equal(t, TierPolicy, TierFor(OriginPolicy, true))
	assert.Equal(t, TierPolicyOverride, TierFor(OriginCharging, false))
	assert.Equal(t, TierRedirect, TierFor(OriginCharging, true))
}
