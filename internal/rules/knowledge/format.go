package knowledge

import (
	"fmt"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

// Placeholder rendered for absent attribute data
const Placeholder = "—"

// AbilityModifier computes the modifier for a raw ability score,
// floor((score-10)/2).
func AbilityModifier(score int32) int32 {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier-- // integer division truncates toward zero for negatives
	}
	return modifier
}

// signed renders a bonus with an explicit sign, "+3" or "-1"
func signed(n int32) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// saveBonus returns the explicit saving throw bonus for an ability, or the
// ability modifier when no explicit bonus is recorded.
func saveBonus(m *entities.MonsterStatBlock, ability entities.Ability) int32 {
	if bonus, ok := m.SavingThrows[ability]; ok {
		return bonus
	}
	return AbilityModifier(m.AbilityScores[ability])
}
