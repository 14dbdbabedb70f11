package entities

// Ability identifies one of the six ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// AbilityOrder is the canonical iteration order. Stat-extreme ties resolve
// to the first ability in this order.
var AbilityOrder = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityLabels = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

var abilityAbbreviations = map[Ability]string{
	AbilityStrength:     "STR",
	AbilityDexterity:    "DEX",
	AbilityConstitution: "CON",
	AbilityIntelligence: "INT",
	AbilityWisdom:       "WIS",
	AbilityCharisma:     "CHA",
}

// Label returns the display name for the ability
func (a Ability) Label() string {
	if label, ok := abilityLabels[a]; ok {
		return label
	}
	return string(a)
}

// Abbreviation returns the three-letter display form for the ability
func (a Ability) Abbreviation() string {
	if abbr, ok := abilityAbbreviations[a]; ok {
		return abbr
	}
	return string(a)
}

// Movement modes in display order
const (
	MovementWalk   = "walk"
	MovementBurrow = "burrow"
	MovementClimb  = "climb"
	MovementFly    = "fly"
	MovementSwim   = "swim"
)

// MovementOrder is the display order for speed entries
var MovementOrder = []string{
	MovementWalk,
	MovementBurrow,
	MovementClimb,
	MovementFly,
	MovementSwim,
}

// Sense types in display order
const (
	SenseBlindsight  = "blindsight"
	SenseDarkvision  = "darkvision"
	SenseTremorsense = "tremorsense"
	SenseTruesight   = "truesight"
)

// SenseOrder is the display order for sense entries
var SenseOrder = []string{
	SenseBlindsight,
	SenseDarkvision,
	SenseTremorsense,
	SenseTruesight,
}

// Skill constants for knowledge checks
const (
	SkillArcana   = "arcana"
	SkillHistory  = "history"
	SkillNature   = "nature"
	SkillReligion = "religion"
)
