package check

import (
	"fmt"
	"strings"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

// renderChatBody renders the full chat text for a posted check: the roll
// line followed by one section per unlocked tier.
func renderChatBody(message *entities.ChatMessage) string {
	var b strings.Builder

	switch message.Result.Kind {
	case entities.CheckAutopass:
		fmt.Fprintf(&b, "%s's knowledge of the %s is revealed.\n",
			message.ActorName, message.MonsterName)
	default:
		fmt.Fprintf(&b, "%s makes a %s check against the %s: %s = %d.\n",
			message.ActorName, skillLabel(message.Skill), message.MonsterName,
			message.Result.Formula, message.EffectiveTotal)
	}

	if !message.Bundle.HasAny {
		fmt.Fprintf(&b, "Nothing useful comes to mind.")
		return b.String()
	}

	renderBundle(&b, message.Bundle)
	return strings.TrimRight(b.String(), "\n")
}

// renderRecordBody renders the journal page for a committed check, tier
// sections only.
func renderRecordBody(message *entities.ChatMessage) string {
	var b strings.Builder
	renderBundle(&b, message.Bundle)
	return strings.TrimRight(b.String(), "\n")
}

func renderBundle(b *strings.Builder, bundle entities.KnowledgeBundle) {
	for _, tier := range bundle.Tiers {
		fmt.Fprintf(b, "%s (DC %d)\n", tier.Label, tier.Level)
		for _, item := range tier.Items {
			fmt.Fprintf(b, "  %s\n", renderItem(item))
		}
	}
}

func renderItem(item entities.InformationItem) string {
	switch item.Kind {
	case entities.ItemList:
		if len(item.Values) == 0 {
			return fmt.Sprintf("%s: %s", item.Label, item.EmptyLabel)
		}
		return fmt.Sprintf("%s: %s", item.Label, strings.Join(item.Values, ", "))
	default:
		if item.Formula != "" {
			return fmt.Sprintf("%s: %s (%s)", item.Label, item.Value, item.Formula)
		}
		return fmt.Sprintf("%s: %s", item.Label, item.Value)
	}
}

// skillLabel capitalizes a skill id for display
func skillLabel(skill string) string {
	if skill == "" {
		return skill
	}
	return strings.ToUpper(skill[:1]) + skill[1:]
}
