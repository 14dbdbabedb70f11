package settings

import (
	"github.com/lorekeep/bestiary-api/internal/entities"
)

// Default returns the out-of-the-box tier configuration: four active
// tiers at DC 10/15/20/25, tier 5 inactive until an operator configures
// both a threshold and kinds for it.
func Default() *entities.TierSettings {
	return &entities.TierSettings{
		Thresholds: entities.TierThresholds{
			1: 10,
			2: 15,
			3: 20,
			4: 25,
		},
		Kinds: entities.TierInformationConfig{
			1: {entities.KindCreatureType, entities.KindAC, entities.KindHP},
			2: {entities.KindSpeed, entities.KindSenses, entities.KindLanguages},
			3: {entities.KindResistances, entities.KindConditionImmunities},
			4: {
				entities.KindHighestStat,
				entities.KindLowestStat,
				entities.KindCR,
				entities.KindLegendaryActions,
				entities.KindLegendaryResistances,
			},
		},
	}
}
