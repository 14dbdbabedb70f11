// Package knowledge implements the tier-unlock decision engine and the
// knowledge-aggregation pipeline. Everything here is pure computation over
// entities; storage and transport live elsewhere.
package knowledge

import (
	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
)

// Resolve computes which tiers an effective total unlocks. A tier is
// unlocked iff it has a configured threshold and the total meets it.
// Tiers without a threshold are excluded from the set entirely.
//
// Each tier is evaluated independently. With the non-decreasing thresholds
// the settings validator enforces, unlocking a tier implies unlocking
// every lower tier; the resolver itself does not depend on that.
func Resolve(effectiveTotal int32, thresholds entities.TierThresholds) entities.UnlockedTierSet {
	unlocked := make(entities.UnlockedTierSet, len(thresholds))
	for tier, dc := range thresholds {
		unlocked[tier] = effectiveTotal >= dc
	}
	return unlocked
}

// EffectiveTotal derives the value compared against tier thresholds. A
// rolled result contributes its total plus the difficulty modifier. An
// autopass result is treated as rolling exactly at the named tier's
// threshold, which guarantees that tier (and, under monotonic thresholds,
// everything below it) unlocks.
func EffectiveTotal(result entities.CheckResult, thresholds entities.TierThresholds, difficultyModifier int32) (int32, error) {
	switch result.Kind {
	case entities.CheckRolled:
		return result.Total + difficultyModifier, nil
	case entities.CheckAutopass:
		dc, ok := thresholds[result.AutopassTier]
		if !ok {
			return 0, errors.FailedPreconditionf("tier %d has no configured threshold", result.AutopassTier)
		}
		return dc + difficultyModifier, nil
	default:
		return 0, errors.InvalidArgumentf("unknown check result kind: %q", result.Kind)
	}
}
