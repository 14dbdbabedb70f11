package check

import (
	"github.com/lorekeep/bestiary-api/internal/entities"
)

// PerformCheckInput contains parameters for a knowledge check
type PerformCheckInput struct {
	// MonsterID identifies the stat block the check targets
	MonsterID string

	// ActorName is the character making the check
	ActorName string

	// Skill names the knowledge skill used. When empty, a skill is
	// derived from the monster's creature type.
	Skill string

	// SkillModifier is the actor's bonus for the skill
	SkillModifier int32

	// Advantage rolls two d20 and keeps the higher
	Advantage bool

	// DifficultyModifier shifts the effective total, positive for an
	// easier check
	DifficultyModifier int32

	// AutopassTier, when nonzero, skips the roll and guarantees the
	// named tier unlocks. GM-only in practice.
	AutopassTier entities.TierID
}

// PerformCheckOutput contains the result of a knowledge check
type PerformCheckOutput struct {
	// Message is the chat message that was posted
	Message *entities.ChatMessage

	// Bundle is the knowledge the check unlocked
	Bundle entities.KnowledgeBundle

	// Skill is the skill actually used, after derivation
	Skill string
}

// CommitToBestiaryInput contains parameters for committing a posted
// check into the bestiary
type CommitToBestiaryInput struct {
	MessageID string
}

// CommitToBestiaryOutput contains the result of a bestiary commit
type CommitToBestiaryOutput struct {
	Record *entities.BestiaryRecord

	// Created is true when the commit made a new record rather than
	// replacing an existing one
	Created bool
}

// GetBestiaryRecordInput contains parameters for reading a record
type GetBestiaryRecordInput struct {
	MonsterName string
}

// GetBestiaryRecordOutput contains the result of reading a record
type GetBestiaryRecordOutput struct {
	Record *entities.BestiaryRecord
}

// ListBestiaryOutput contains every bestiary record
type ListBestiaryOutput struct {
	Records []*entities.BestiaryRecord
}

// ListChatLogInput contains parameters for reading recent chat messages
type ListChatLogInput struct {
	// Limit caps how many messages are returned. Zero means the chat
	// log's full recent window.
	Limit int64
}

// ListChatLogOutput contains recent chat messages, newest first
type ListChatLogOutput struct {
	Messages []*entities.ChatMessage
}
