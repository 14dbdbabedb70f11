package settings

import (
	"fmt"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
)

// Validate checks a tier configuration before it is persisted.
//
// Thresholds must be strictly increasing across defined tiers so that
// unlocking a tier always implies unlocking every tier below it; the
// resolver does not enforce this, so it is rejected here at configuration
// time. Tier 5 must be configured with both a threshold and at least one
// kind, or neither. Unrecognized information kinds are allowed: reads
// tolerate them and they extract to nothing.
func Validate(s *entities.TierSettings) error {
	if s == nil {
		return errors.InvalidArgument("settings cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	var lastTier entities.TierID
	var lastDC int32
	seen := false
	for tier := entities.TierMin; tier <= entities.TierMax; tier++ {
		dc, ok := s.Thresholds[tier]
		if !ok {
			continue
		}
		if dc <= 0 {
			vb.Fieldf("Thresholds", "tier %d threshold must be positive, got %d", tier, dc)
		}
		if seen && dc <= lastDC {
			vb.Fieldf("Thresholds",
				"tier %d threshold (%d) must be greater than tier %d threshold (%d)",
				tier, dc, lastTier, lastDC)
		}
		lastTier, lastDC, seen = tier, dc, true
	}

	for tier := range s.Thresholds {
		if tier < entities.TierMin || tier > entities.TierMax {
			vb.Fieldf("Thresholds", "tier %d is out of range [%d,%d]", tier, entities.TierMin, entities.TierMax)
		}
	}

	for tier, kinds := range s.Kinds {
		if tier < entities.TierMin || tier > entities.TierMax {
			vb.Fieldf("Kinds", "tier %d is out of range [%d,%d]", tier, entities.TierMin, entities.TierMax)
			continue
		}
		unique := make(map[entities.InformationKind]struct{}, len(kinds))
		for _, kind := range kinds {
			if _, dup := unique[kind]; dup {
				vb.Fieldf("Kinds", "tier %d lists %q more than once", tier, kind)
			}
			unique[kind] = struct{}{}
		}
	}

	// Tier 5 is active only as a threshold+kinds pair
	_, hasThreshold := s.Thresholds[entities.TierMax]
	hasKinds := len(s.Kinds[entities.TierMax]) > 0
	if hasThreshold != hasKinds {
		vb.Field("Kinds", fmt.Sprintf(
			"tier %d needs both a threshold and at least one information kind, or neither", entities.TierMax))
	}

	return vb.Build()
}
