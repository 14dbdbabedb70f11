package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/rules/knowledge"
)

func TestGather_AscendingTiersWithItems(t *testing.T) {
	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{1: 10, 2: 14, 3: 18},
		Kinds: entities.TierInformationConfig{
			1: {entities.KindCreatureType, entities.KindAC},
			2: {entities.KindSpeed},
			3: {entities.KindResistances},
		},
	}
	unlocked := knowledge.Resolve(15, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, owlbear())

	require.Len(t, bundle.Tiers, 2)
	assert.True(t, bundle.HasAny)

	assert.Equal(t, entities.TierID(1), bundle.Tiers[0].Tier)
	assert.Equal(t, "Common lore", bundle.Tiers[0].Label)
	assert.Equal(t, int32(10), bundle.Tiers[0].Level)
	require.Len(t, bundle.Tiers[0].Items, 2)
	assert.Equal(t, "Creature type", bundle.Tiers[0].Items[0].Label)
	assert.Equal(t, "Armor class", bundle.Tiers[0].Items[1].Label)

	assert.Equal(t, entities.TierID(2), bundle.Tiers[1].Tier)
}

func TestGather_EmptyKindListOmitsTier(t *testing.T) {
	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{1: 10},
		Kinds:      entities.TierInformationConfig{1: {}},
	}
	unlocked := knowledge.Resolve(15, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, owlbear())

	assert.Empty(t, bundle.Tiers, "unlocked tier with no configured kinds never appears")
	assert.False(t, bundle.HasAny)
}

func TestGather_UnrecognizedKindsOnlyOmitsTier(t *testing.T) {
	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{1: 10, 2: 12},
		Kinds: entities.TierInformationConfig{
			1: {"favoriteColor", "shoeSize"},
			2: {entities.KindAC},
		},
	}
	unlocked := knowledge.Resolve(20, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, owlbear())

	require.Len(t, bundle.Tiers, 1, "tier whose extraction yields zero items is omitted")
	assert.Equal(t, entities.TierID(2), bundle.Tiers[0].Tier)
	assert.True(t, bundle.HasAny)
}

func TestGather_HasAnyFalseWhenNothingExtracted(t *testing.T) {
	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{1: 10},
		Kinds:      entities.TierInformationConfig{1: {"favoriteColor"}},
	}
	unlocked := knowledge.Resolve(15, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, owlbear())

	assert.False(t, bundle.HasAny)
	assert.Empty(t, bundle.Tiers)
}

func TestGather_TriadFlattensIntoTierItems(t *testing.T) {
	m := owlbear()
	m.Vulnerabilities = []string{"fire"}
	m.Resistances = []string{"cold"}
	m.Immunities = []string{"poison"}

	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{3: 18},
		Kinds:      entities.TierInformationConfig{3: {entities.KindResistances, entities.KindConditionImmunities}},
	}
	unlocked := knowledge.Resolve(18, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, m)

	require.Len(t, bundle.Tiers, 1)
	// 3 damage-trait items + 1 condition immunity item, flat
	assert.Len(t, bundle.Tiers[0].Items, 4)
}

func TestGather_LockedTiersExcluded(t *testing.T) {
	settings := &entities.TierSettings{
		Thresholds: entities.TierThresholds{1: 10, 4: 22},
		Kinds: entities.TierInformationConfig{
			1: {entities.KindAC},
			4: {entities.KindHighestStat},
		},
	}
	unlocked := knowledge.Resolve(12, settings.Thresholds)

	bundle := knowledge.Gather(unlocked, settings, owlbear())

	require.Len(t, bundle.Tiers, 1)
	assert.Equal(t, entities.TierID(1), bundle.Tiers[0].Tier)
}
