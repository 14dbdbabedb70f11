package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/rules/knowledge"
)

func owlbear() *entities.MonsterStatBlock {
	return &entities.MonsterStatBlock{
		ID:              "owlbear",
		Name:            "Owlbear",
		CreatureType:    "monstrosity",
		ArmorClass:      13,
		HitPoints:       59,
		HitPointFormula: "7d10+21",
		ChallengeRating: "3",
		AbilityScores: map[entities.Ability]int32{
			entities.AbilityStrength:     20,
			entities.AbilityDexterity:    12,
			entities.AbilityConstitution: 17,
			entities.AbilityIntelligence: 3,
			entities.AbilityWisdom:       12,
			entities.AbilityCharisma:     7,
		},
		Speed:  map[string]int32{entities.MovementWalk: 40},
		Senses: map[string]int32{entities.SenseDarkvision: 60},
	}
}

func TestExtract_UnrecognizedKindIsSilentlySkipped(t *testing.T) {
	items := knowledge.Extract("favoriteColor", owlbear())
	assert.Nil(t, items)
}

func TestExtract_ResistancesTriad(t *testing.T) {
	m := owlbear()
	m.Resistances = []string{"bludgeoning", "piercing"}
	m.Immunities = []string{"poison"}
	m.CustomImmunities = "nonmagical attacks"

	items := knowledge.Extract(entities.KindResistances, m)
	require.Len(t, items, 2, "empty vulnerability category is skipped")

	assert.Equal(t, "Damage resistances", items[0].Label)
	assert.Equal(t, entities.ItemList, items[0].Kind)
	assert.Equal(t, []string{"bludgeoning", "piercing"}, items[0].Values)

	assert.Equal(t, "Damage immunities", items[1].Label)
	assert.Equal(t, []string{"poison", "nonmagical attacks"}, items[1].Values,
		"custom free text is appended after typed entries")
}

func TestExtract_ResistancesAllEmptyYieldsSinglePlaceholder(t *testing.T) {
	items := knowledge.Extract(entities.KindResistances, owlbear())

	require.Len(t, items, 1, "no damage traits collapses to one placeholder item")
	assert.Equal(t, entities.ItemScalar, items[0].Kind)
	assert.Equal(t, "Damage traits", items[0].Label)
	assert.Equal(t, "None", items[0].Value)
}

func TestExtract_ConditionImmunitiesEmptyStillRenders(t *testing.T) {
	items := knowledge.Extract(entities.KindConditionImmunities, owlbear())

	require.Len(t, items, 1)
	assert.Equal(t, entities.ItemList, items[0].Kind)
	assert.Empty(t, items[0].Values)
	assert.Equal(t, "None", items[0].EmptyLabel, "empty list renders its empty-state label, not omitted")
}

func TestExtract_HighestStat(t *testing.T) {
	items := knowledge.Extract(entities.KindHighestStat, owlbear())

	require.Len(t, items, 1)
	assert.Equal(t, "Strength: 20 (save: +5)", items[0].Value)
}

func TestExtract_HighestStatUsesExplicitSave(t *testing.T) {
	m := owlbear()
	m.SavingThrows = map[entities.Ability]int32{entities.AbilityStrength: 8}

	items := knowledge.Extract(entities.KindHighestStat, m)
	require.Len(t, items, 1)
	assert.Equal(t, "Strength: 20 (save: +8)", items[0].Value)
}

func TestExtract_LowestStat(t *testing.T) {
	items := knowledge.Extract(entities.KindLowestStat, owlbear())

	require.Len(t, items, 1)
	assert.Equal(t, "Intelligence: 3 (save: -4)", items[0].Value)
}

func TestExtract_StatExtremeTieBreaksToCanonicalOrder(t *testing.T) {
	m := owlbear()
	m.AbilityScores = map[entities.Ability]int32{
		entities.AbilityStrength:     10,
		entities.AbilityDexterity:    10,
		entities.AbilityConstitution: 10,
		entities.AbilityIntelligence: 10,
		entities.AbilityWisdom:       10,
		entities.AbilityCharisma:     10,
	}

	highest := knowledge.Extract(entities.KindHighestStat, m)
	lowest := knowledge.Extract(entities.KindLowestStat, m)

	require.Len(t, highest, 1)
	require.Len(t, lowest, 1)
	assert.Equal(t, "Strength: 10 (save: +0)", highest[0].Value)
	assert.Equal(t, "Strength: 10 (save: +0)", lowest[0].Value)
}

func TestExtract_StatExtremeNoScores(t *testing.T) {
	m := owlbear()
	m.AbilityScores = nil

	items := knowledge.Extract(entities.KindHighestStat, m)
	require.Len(t, items, 1)
	assert.Equal(t, knowledge.Placeholder, items[0].Value)
}

func TestExtract_Scalars(t *testing.T) {
	m := owlbear()

	ac := knowledge.Extract(entities.KindAC, m)
	require.Len(t, ac, 1)
	assert.Equal(t, "13", ac[0].Value)

	hp := knowledge.Extract(entities.KindHP, m)
	require.Len(t, hp, 1)
	assert.Equal(t, "59", hp[0].Value)
	assert.Equal(t, "7d10+21", hp[0].Formula)

	cr := knowledge.Extract(entities.KindCR, m)
	require.Len(t, cr, 1)
	assert.Equal(t, "3", cr[0].Value)
}

func TestExtract_ScalarPlaceholders(t *testing.T) {
	m := &entities.MonsterStatBlock{ID: "husk", Name: "Husk"}

	for _, kind := range []entities.InformationKind{
		entities.KindAC,
		entities.KindHP,
		entities.KindCR,
		entities.KindLegendaryActions,
		entities.KindLegendaryResistances,
	} {
		items := knowledge.Extract(kind, m)
		require.Len(t, items, 1, "kind %s", kind)
		assert.Equal(t, knowledge.Placeholder, items[0].Value, "kind %s", kind)
	}
}

func TestExtract_ComposedStrings(t *testing.T) {
	m := owlbear()
	m.Speed[entities.MovementFly] = 60
	m.Languages = []string{"Common", "Giant Owl"}

	speed := knowledge.Extract(entities.KindSpeed, m)
	require.Len(t, speed, 1)
	assert.Equal(t, "walk 40 ft., fly 60 ft.", speed[0].Value)

	senses := knowledge.Extract(entities.KindSenses, m)
	require.Len(t, senses, 1)
	assert.Equal(t, "darkvision 60 ft.", senses[0].Value)

	langs := knowledge.Extract(entities.KindLanguages, m)
	require.Len(t, langs, 1)
	assert.Equal(t, "Common, Giant Owl", langs[0].Value)
}

func TestExtract_ComposedStringsFallBackToDash(t *testing.T) {
	m := &entities.MonsterStatBlock{ID: "husk", Name: "Husk"}

	for _, kind := range []entities.InformationKind{
		entities.KindSpeed,
		entities.KindSenses,
		entities.KindLanguages,
		entities.KindAllStats,
		entities.KindAllSaves,
	} {
		items := knowledge.Extract(kind, m)
		require.Len(t, items, 1, "kind %s", kind)
		assert.Equal(t, knowledge.Placeholder, items[0].Value, "kind %s", kind)
	}
}

func TestExtract_AllStatsAndSaves(t *testing.T) {
	m := owlbear()
	m.SavingThrows = map[entities.Ability]int32{
		entities.AbilityStrength:     8,
		entities.AbilityConstitution: 6,
	}

	stats := knowledge.Extract(entities.KindAllStats, m)
	require.Len(t, stats, 1)
	assert.Equal(t, "STR 20, DEX 12, CON 17, INT 3, WIS 12, CHA 7", stats[0].Value)

	saves := knowledge.Extract(entities.KindAllSaves, m)
	require.Len(t, saves, 1)
	assert.Equal(t, "STR +8, CON +6", saves[0].Value)
}

func TestAbilityModifier(t *testing.T) {
	cases := map[int32]int32{1: -5, 3: -4, 7: -2, 9: -1, 10: 0, 11: 0, 12: 1, 15: 2, 20: 5, 30: 10}
	for score, want := range cases {
		assert.Equal(t, want, knowledge.AbilityModifier(score), "score %d", score)
	}
}

func TestRegisteredKinds(t *testing.T) {
	kinds := knowledge.RegisteredKinds()
	assert.Len(t, kinds, 15)
	assert.True(t, knowledge.IsRegisteredKind(entities.KindResistances))
	assert.False(t, knowledge.IsRegisteredKind("favoriteColor"))
}
