package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

// ExtractorFunc maps a monster's attribute snapshot to display items. A
// single kind may yield multiple items (the damage-trait triad) or none.
type ExtractorFunc func(m *entities.MonsterStatBlock) []entities.InformationItem

// extractors is the information-kind registry. New kinds register here
// without touching a central dispatcher.
var extractors = map[entities.InformationKind]ExtractorFunc{
	entities.KindResistances:          extractResistances,
	entities.KindConditionImmunities:  extractConditionImmunities,
	entities.KindHighestStat:          extractHighestStat,
	entities.KindLowestStat:           extractLowestStat,
	entities.KindAC:                   extractAC,
	entities.KindHP:                   extractHP,
	entities.KindCR:                   extractCR,
	entities.KindLegendaryActions:     extractLegendaryActions,
	entities.KindLegendaryResistances: extractLegendaryResistances,
	entities.KindSpeed:                extractSpeed,
	entities.KindSenses:               extractSenses,
	entities.KindLanguages:            extractLanguages,
	entities.KindCreatureType:         extractCreatureType,
	entities.KindAllStats:             extractAllStats,
	entities.KindAllSaves:             extractAllSaves,
}

// Extract produces the display items for one information kind. Settings
// are operator-edited free text, so unrecognized kinds extract to nothing
// rather than failing the check.
func Extract(kind entities.InformationKind, m *entities.MonsterStatBlock) []entities.InformationItem {
	fn, ok := extractors[kind]
	if !ok {
		return nil
	}
	return fn(m)
}

// IsRegisteredKind reports whether kind has an extractor
func IsRegisteredKind(kind entities.InformationKind) bool {
	_, ok := extractors[kind]
	return ok
}

// RegisteredKinds lists every known information kind in stable order
func RegisteredKinds() []entities.InformationKind {
	kinds := make([]entities.InformationKind, 0, len(extractors))
	for kind := range extractors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// extractResistances produces one list item per non-empty damage-trait
// category, custom free-text entries appended. When all three categories
// are empty it produces a single placeholder item instead of three empty
// ones.
func extractResistances(m *entities.MonsterStatBlock) []entities.InformationItem {
	categories := []struct {
		label  string
		values []string
		custom string
	}{
		{"Damage vulnerabilities", m.Vulnerabilities, m.CustomVulnerabilities},
		{"Damage resistances", m.Resistances, m.CustomResistances},
		{"Damage immunities", m.Immunities, m.CustomImmunities},
	}

	var items []entities.InformationItem
	for _, c := range categories {
		values := appendCustom(c.values, c.custom)
		if len(values) == 0 {
			continue
		}
		items = append(items, entities.InformationItem{
			Kind:       entities.ItemList,
			Label:      c.label,
			Values:     values,
			EmptyLabel: "None",
		})
	}

	if len(items) == 0 {
		return []entities.InformationItem{{
			Kind:  entities.ItemScalar,
			Label: "Damage traits",
			Value: "None",
		}}
	}
	return items
}

// extractConditionImmunities always yields one list item; an empty list
// renders with its empty-state label rather than being omitted.
func extractConditionImmunities(m *entities.MonsterStatBlock) []entities.InformationItem {
	return []entities.InformationItem{{
		Kind:       entities.ItemList,
		Label:      "Condition immunities",
		Values:     appendCustom(m.ConditionImmunities, m.CustomConditionImmunities),
		EmptyLabel: "None",
	}}
}

func extractHighestStat(m *entities.MonsterStatBlock) []entities.InformationItem {
	return statExtreme(m, "Highest ability score", true)
}

func extractLowestStat(m *entities.MonsterStatBlock) []entities.InformationItem {
	return statExtreme(m, "Lowest ability score", false)
}

// statExtreme scans the ability map for the strictly best score. Ties
// resolve to whichever ability comes first in canonical order.
func statExtreme(m *entities.MonsterStatBlock, label string, highest bool) []entities.InformationItem {
	var best entities.Ability
	var bestScore int32
	found := false
	for _, ability := range entities.AbilityOrder {
		score, ok := m.AbilityScores[ability]
		if !ok {
			continue
		}
		if !found || (highest && score > bestScore) || (!highest && score < bestScore) {
			best = ability
			bestScore = score
			found = true
		}
	}

	if !found {
		return []entities.InformationItem{{Kind: entities.ItemScalar, Label: label, Value: Placeholder}}
	}

	return []entities.InformationItem{{
		Kind:  entities.ItemScalar,
		Label: label,
		Value: fmt.Sprintf("%s: %d (save: %s)", best.Label(), bestScore, signed(saveBonus(m, best))),
	}}
}

func extractAC(m *entities.MonsterStatBlock) []entities.InformationItem {
	return []entities.InformationItem{scalarOrPlaceholder("Armor class", m.ArmorClass)}
}

func extractHP(m *entities.MonsterStatBlock) []entities.InformationItem {
	item := scalarOrPlaceholder("Hit points", m.HitPoints)
	if m.HitPoints > 0 {
		item.Formula = m.HitPointFormula
	}
	return []entities.InformationItem{item}
}

func extractCR(m *entities.MonsterStatBlock) []entities.InformationItem {
	value := m.ChallengeRating
	if value == "" {
		value = Placeholder
	}
	return []entities.InformationItem{{Kind: entities.ItemScalar, Label: "Challenge rating", Value: value}}
}

func extractLegendaryActions(m *entities.MonsterStatBlock) []entities.InformationItem {
	return []entities.InformationItem{scalarOrPlaceholder("Legendary actions", m.LegendaryActions)}
}

func extractLegendaryResistances(m *entities.MonsterStatBlock) []entities.InformationItem {
	return []entities.InformationItem{scalarOrPlaceholder("Legendary resistances", m.LegendaryResistances)}
}

func extractSpeed(m *entities.MonsterStatBlock) []entities.InformationItem {
	var parts []string
	for _, mode := range entities.MovementOrder {
		if v := m.Speed[mode]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s %d ft.", mode, v))
		}
	}
	return []entities.InformationItem{composed("Speed", parts)}
}

func extractSenses(m *entities.MonsterStatBlock) []entities.InformationItem {
	var parts []string
	for _, sense := range entities.SenseOrder {
		if v := m.Senses[sense]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s %d ft.", sense, v))
		}
	}
	return []entities.InformationItem{composed("Senses", parts)}
}

func extractLanguages(m *entities.MonsterStatBlock) []entities.InformationItem {
	var parts []string
	for _, lang := range m.Languages {
		if strings.TrimSpace(lang) != "" {
			parts = append(parts, lang)
		}
	}
	return []entities.InformationItem{composed("Languages", parts)}
}

func extractCreatureType(m *entities.MonsterStatBlock) []entities.InformationItem {
	value := m.CreatureType
	if value == "" {
		value = Placeholder
	}
	return []entities.InformationItem{{Kind: entities.ItemScalar, Label: "Creature type", Value: value}}
}

func extractAllStats(m *entities.MonsterStatBlock) []entities.InformationItem {
	var parts []string
	for _, ability := range entities.AbilityOrder {
		if score, ok := m.AbilityScores[ability]; ok && score != 0 {
			parts = append(parts, fmt.Sprintf("%s %d", ability.Abbreviation(), score))
		}
	}
	return []entities.InformationItem{composed("Ability scores", parts)}
}

// extractAllSaves reports only explicitly recorded saving throw bonuses
func extractAllSaves(m *entities.MonsterStatBlock) []entities.InformationItem {
	var parts []string
	for _, ability := range entities.AbilityOrder {
		if bonus, ok := m.SavingThrows[ability]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", ability.Abbreviation(), signed(bonus)))
		}
	}
	return []entities.InformationItem{composed("Saving throws", parts)}
}

// appendCustom copies values and appends trimmed operator free text
func appendCustom(values []string, custom string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	if trimmed := strings.TrimSpace(custom); trimmed != "" {
		out = append(out, trimmed)
	}
	return out
}

// scalarOrPlaceholder renders a counter, falling back to the placeholder
// dash when the value is absent (zero)
func scalarOrPlaceholder(label string, value int32) entities.InformationItem {
	item := entities.InformationItem{Kind: entities.ItemScalar, Label: label, Value: Placeholder}
	if value > 0 {
		item.Value = fmt.Sprintf("%d", value)
	}
	return item
}

// composed joins present entries with a fixed separator; absence of all
// entries yields the placeholder dash
func composed(label string, parts []string) entities.InformationItem {
	value := strings.Join(parts, ", ")
	if value == "" {
		value = Placeholder
	}
	return entities.InformationItem{Kind: entities.ItemScalar, Label: label, Value: value}
}
