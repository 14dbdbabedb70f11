package settings

import (
	"sort"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/rules/knowledge"
)

// UnknownKinds returns the configured kind ids that have no extractor,
// deduplicated and sorted. Unknown kinds are legal to store but extract
// to nothing, so administrative surfaces flag them to the operator.
func UnknownKinds(s *entities.TierSettings) []entities.InformationKind {
	if s == nil {
		return nil
	}

	seen := make(map[entities.InformationKind]struct{})
	var unknown []entities.InformationKind
	for _, kinds := range s.Kinds {
		for _, kind := range kinds {
			if knowledge.IsRegisteredKind(kind) {
				continue
			}
			if _, dup := seen[kind]; dup {
				continue
			}
			seen[kind] = struct{}{}
			unknown = append(unknown, kind)
		}
	}

	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return unknown
}
