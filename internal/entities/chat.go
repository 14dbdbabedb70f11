package entities

// ChatMessage is a knowledge-check result posted to the shared log. The
// structured fields outlive the check so the bestiary commit trigger can
// rehydrate the bundle later.
type ChatMessage struct {
	ID          string `json:"id"`
	MonsterID   string `json:"monsterId"`
	MonsterName string `json:"monsterName"`
	ActorName   string `json:"actorName"`
	Skill       string `json:"skill"`

	Result         CheckResult `json:"result"`
	EffectiveTotal int32       `json:"effectiveTotal"`

	Bundle KnowledgeBundle `json:"bundle"`

	// Body is the rendered chat text
	Body string `json:"body"`

	PostedAt int64 `json:"postedAt"`
}
