package entities

// TierID identifies one of the five difficulty bands
type TierID int32

// Tier bounds. Tier 5 is optional: it participates only when it has both a
// threshold and at least one configured information kind.
const (
	TierMin TierID = 1
	TierMax TierID = 5
)

// TierThresholds maps a tier to its difficulty value. Tiers without an
// entry are inactive.
type TierThresholds map[TierID]int32

// InformationKind names one category of monster data that a tier can
// reveal.
type InformationKind string

// Information kinds. Settings are operator-edited, so unrecognized kinds
// are tolerated and extract to nothing.
const (
	KindResistances          InformationKind = "resistances"
	KindConditionImmunities  InformationKind = "conditionImmunities"
	KindHighestStat          InformationKind = "highestStat"
	KindLowestStat           InformationKind = "lowestStat"
	KindAC                   InformationKind = "ac"
	KindHP                   InformationKind = "hp"
	KindCR                   InformationKind = "cr"
	KindLegendaryActions     InformationKind = "legendaryActions"
	KindLegendaryResistances InformationKind = "legendaryResistances"
	KindSpeed                InformationKind = "speed"
	KindSenses               InformationKind = "senses"
	KindLanguages            InformationKind = "languages"
	KindCreatureType         InformationKind = "creatureType"
	KindAllStats             InformationKind = "allStats"
	KindAllSaves             InformationKind = "allSaves"
)

// TierInformationConfig maps a tier to the ordered list of information
// kinds it reveals. Order defines display order; kinds are unique per tier.
type TierInformationConfig map[TierID][]InformationKind

// TierSettings is the configuration snapshot a check reads. It is passed
// into the resolver explicitly so checks are deterministic under test.
type TierSettings struct {
	Thresholds TierThresholds        `json:"thresholds" yaml:"thresholds"`
	Kinds      TierInformationConfig `json:"kinds" yaml:"kinds"`
}

// UnlockedTierSet maps tier to unlocked state, computed once per check.
// Tiers without a configured threshold are excluded entirely, not marked
// false.
type UnlockedTierSet map[TierID]bool

// CheckResultKind discriminates rolled results from autopass results
type CheckResultKind string

// Check result kinds
const (
	CheckRolled   CheckResultKind = "rolled"
	CheckAutopass CheckResultKind = "autopass"
)

// CheckResult is the outcome of resolving a knowledge check, either a
// random roll or an auto-pass at a chosen tier. An autopass result's
// effective total equals the named tier's threshold plus any difficulty
// modifier.
type CheckResult struct {
	Kind         CheckResultKind `json:"kind"`
	Total        int32           `json:"total,omitempty"`
	Formula      string          `json:"formula,omitempty"`
	AutopassTier TierID          `json:"autopassTier,omitempty"`
}

// ItemKind discriminates the InformationItem variants
type ItemKind string

// Information item variants
const (
	// ItemScalar is a single value with an optional formula annotation
	ItemScalar ItemKind = "scalar"
	// ItemList is a list of sub-values with an empty-state label
	ItemList ItemKind = "list"
)

// InformationItem is one display unit of revealed knowledge. The Kind
// field is the discriminant; only the fields of the active variant are
// populated. An item with an empty Values list still renders its
// EmptyLabel rather than being omitted.
type InformationItem struct {
	Kind  ItemKind `json:"itemKind"`
	Label string   `json:"label"`

	// Scalar variant
	Value   string `json:"value,omitempty"`
	Formula string `json:"formula,omitempty"`

	// List variant
	Values     []string `json:"values,omitempty"`
	EmptyLabel string   `json:"emptyLabel,omitempty"`
}

// TierReveal is one unlocked tier's worth of information in a bundle.
// Level records the tier's threshold at the time of the check.
type TierReveal struct {
	Tier  TierID            `json:"tier"`
	Label string            `json:"tierLabel"`
	Icon  string            `json:"icon"`
	Level int32             `json:"level"`
	Items []InformationItem `json:"items"`
}

// KnowledgeBundle is the assembled result of one check: unlocked tiers in
// ascending order, each with its extracted items. Tiers that produced no
// items are omitted. HasAny is true iff at least one tier carries at least
// one item.
type KnowledgeBundle struct {
	Tiers  []TierReveal `json:"tiers"`
	HasAny bool         `json:"hasAny"`
}
