package check

import (
	"strings"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

// skillByCreatureType routes a creature type to the knowledge skill that
// covers it. Types without an entry fall through to Nature.
var skillByCreatureType = map[string]string{
	"aberration": entities.SkillArcana,
	"construct":  entities.SkillArcana,
	"dragon":     entities.SkillArcana,
	"elemental":  entities.SkillArcana,
	"giant":      entities.SkillHistory,
	"humanoid":   entities.SkillHistory,
	"celestial":  entities.SkillReligion,
	"fiend":      entities.SkillReligion,
	"undead":     entities.SkillReligion,
}

// SuggestSkill returns the knowledge skill appropriate for a creature
// type
func SuggestSkill(creatureType string) string {
	if skill, ok := skillByCreatureType[strings.ToLower(strings.TrimSpace(creatureType))]; ok {
		return skill
	}
	return entities.SkillNature
}
