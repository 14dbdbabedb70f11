package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// BestiaryRecord is the persistent, monster-keyed accumulation of revealed
// knowledge. Updates replace Content and Bundle wholesale with the latest
// committed check; see the bestiary repository for the replacement
// contract.
type BestiaryRecord struct {
	// MonsterName is the record key (monster display name)
	MonsterName string `json:"monsterName"`

	// MonsterID references the stat block the knowledge came from
	MonsterID string `json:"monsterId"`

	// Content is the rendered journal body
	Content string `json:"content"`

	// Bundle is the structured knowledge behind Content
	Bundle KnowledgeBundle `json:"bundle"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// GetID returns the record key
func (r *BestiaryRecord) GetID() string {
	return r.MonsterName
}

// GetType returns the entity type
func (r *BestiaryRecord) GetType() string {
	return "bestiary_record"
}

var _ core.Entity = (*BestiaryRecord)(nil)
