// Package entities holds the data-only types shared across the service.
// All calculations (tier resolution, extraction, formatting) live in
// internal/rules/knowledge, not here.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// MonsterStatBlock is the attribute snapshot of a monster that knowledge
// checks read from. Absent fields degrade to placeholders at extraction
// time; they never fail a check.
type MonsterStatBlock struct {
	ID           string
	Name         string
	CreatureType string
	Size         string
	Alignment    string

	ArmorClass      int32
	HitPoints       int32
	HitPointFormula string
	ChallengeRating string

	// AbilityScores maps ability to raw score. Missing abilities are
	// treated as absent, not zero.
	AbilityScores map[Ability]int32

	// SavingThrows holds explicit save bonuses. Abilities without an
	// entry fall back to the ability modifier.
	SavingThrows map[Ability]int32

	// Damage trait sets, plus operator-entered free text appended to
	// each category when present.
	Vulnerabilities       []string
	Resistances           []string
	Immunities            []string
	CustomVulnerabilities string
	CustomResistances     string
	CustomImmunities      string

	ConditionImmunities       []string
	CustomConditionImmunities string

	// Speed maps movement mode to feet. Zero entries are skipped.
	Speed map[string]int32

	// Senses maps sense type to range in feet. Zero entries are skipped.
	Senses map[string]int32

	Languages []string

	LegendaryActions     int32
	LegendaryResistances int32

	CreatedAt int64
	UpdatedAt int64
}

// GetID returns the monster's ID
func (m *MonsterStatBlock) GetID() string {
	return m.ID
}

// GetType returns the entity type
func (m *MonsterStatBlock) GetType() string {
	return "monster"
}

var _ core.Entity = (*MonsterStatBlock)(nil)
