package knowledge

import (
	"github.com/lorekeep/bestiary-api/internal/entities"
)

var tierLabels = map[entities.TierID]string{
	1: "Common lore",
	2: "Uncommon lore",
	3: "Rare lore",
	4: "Very rare lore",
	5: "Legendary lore",
}

var tierIcons = map[entities.TierID]string{
	1: "book",
	2: "scroll",
	3: "gem",
	4: "crown",
	5: "dragon",
}

// TierLabel returns the display label for a tier
func TierLabel(tier entities.TierID) string {
	return tierLabels[tier]
}

// TierIcon returns the icon identifier for a tier
func TierIcon(tier entities.TierID) string {
	return tierIcons[tier]
}

// Gather assembles the knowledge bundle for a check. Tiers are visited in
// ascending order; a tier contributes only when it is unlocked, has at
// least one configured kind, and its extraction yields at least one item.
// Multi-item extractions are flattened into the tier's item list.
func Gather(unlocked entities.UnlockedTierSet, settings *entities.TierSettings, monster *entities.MonsterStatBlock) entities.KnowledgeBundle {
	var bundle entities.KnowledgeBundle

	for tier := entities.TierMin; tier <= entities.TierMax; tier++ {
		if !unlocked[tier] {
			continue
		}
		kinds := settings.Kinds[tier]
		if len(kinds) == 0 {
			continue
		}

		var items []entities.InformationItem
		for _, kind := range kinds {
			items = append(items, Extract(kind, monster)...)
		}
		if len(items) == 0 {
			continue
		}

		bundle.Tiers = append(bundle.Tiers, entities.TierReveal{
			Tier:  tier,
			Label: TierLabel(tier),
			Icon:  TierIcon(tier),
			Level: settings.Thresholds[tier],
			Items: items,
		})
	}

	// Tiers with zero items were omitted above, so any surviving tier
	// carries at least one item.
	bundle.HasAny = len(bundle.Tiers) > 0
	return bundle
}
