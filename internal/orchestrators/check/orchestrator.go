// Package check implements the knowledge-check orchestrator: it resolves
// the monster, rolls or autopasses, unlocks tiers, gathers the revealed
// information, posts it to the chat log, and commits posted checks into
// the bestiary.
package check

//go:generate mockgen -destination=mock/mock_service.go -package=checkmock github.com/lorekeep/bestiary-api/internal/orchestrators/check Service

import (
	"context"
	"log/slog"

	"github.com/lorekeep/bestiary-api/internal/clients/external"
	"github.com/lorekeep/bestiary-api/internal/dice"
	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	"github.com/lorekeep/bestiary-api/internal/pkg/clock"
	"github.com/lorekeep/bestiary-api/internal/pkg/idgen"
	"github.com/lorekeep/bestiary-api/internal/repositories/bestiary"
	"github.com/lorekeep/bestiary-api/internal/repositories/chatlog"
	"github.com/lorekeep/bestiary-api/internal/repositories/monsters"
	"github.com/lorekeep/bestiary-api/internal/repositories/settings"
	"github.com/lorekeep/bestiary-api/internal/rules/knowledge"
)

// Service defines the knowledge check operations
type Service interface {
	// PerformCheck runs a knowledge check and posts the result to the
	// chat log
	PerformCheck(ctx context.Context, input *PerformCheckInput) (*PerformCheckOutput, error)

	// CommitToBestiary turns a posted check into a bestiary record
	CommitToBestiary(ctx context.Context, input *CommitToBestiaryInput) (*CommitToBestiaryOutput, error)

	// GetBestiaryRecord reads one bestiary record
	GetBestiaryRecord(ctx context.Context, input *GetBestiaryRecordInput) (*GetBestiaryRecordOutput, error)

	// ListBestiary reads every bestiary record
	ListBestiary(ctx context.Context) (*ListBestiaryOutput, error)

	// ListChatLog reads recent chat messages, newest first, so an
	// operator can recover a message id for commit
	ListChatLog(ctx context.Context, input *ListChatLogInput) (*ListChatLogOutput, error)
}

// Config holds the dependencies for the check orchestrator
type Config struct {
	SettingsRepo settings.Repository
	MonsterRepo  monsters.Repository
	ChatLogRepo  chatlog.Repository
	BestiaryRepo bestiary.Repository
	Roller       dice.CheckRoller
	IDGenerator  idgen.Generator

	// ExternalClient enriches not-found errors with SRD suggestions.
	// Optional; checks work without network access.
	ExternalClient external.Client

	// Clock defaults to the real clock when nil
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SettingsRepo == nil {
		vb.RequiredField("SettingsRepo")
	}
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.ChatLogRepo == nil {
		vb.RequiredField("ChatLogRepo")
	}
	if c.BestiaryRepo == nil {
		vb.RequiredField("BestiaryRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	settingsRepo settings.Repository
	monsterRepo  monsters.Repository
	chatLogRepo  chatlog.Repository
	bestiaryRepo bestiary.Repository
	roller       dice.CheckRoller
	idGen        idgen.Generator
	external     external.Client
	clock        clock.Clock
}

// NewOrchestrator creates a new check orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		settingsRepo: cfg.SettingsRepo,
		monsterRepo:  cfg.MonsterRepo,
		chatLogRepo:  cfg.ChatLogRepo,
		bestiaryRepo: cfg.BestiaryRepo,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		external:     cfg.ExternalClient,
		clock:        c,
	}, nil
}

func (o *orchestrator) PerformCheck(ctx context.Context, input *PerformCheckInput) (*PerformCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.MonsterID == "" {
		vb.RequiredField("MonsterID")
	}
	if input.ActorName == "" {
		vb.RequiredField("ActorName")
	}
	if input.AutopassTier != 0 &&
		(input.AutopassTier < entities.TierMin || input.AutopassTier > entities.TierMax) {
		vb.Fieldf("AutopassTier", "tier %d is out of range [%d,%d]",
			input.AutopassTier, entities.TierMin, entities.TierMax)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	monsterOut, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.MonsterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, o.enrichMonsterNotFound(ctx, input.MonsterID, err)
		}
		return nil, err
	}
	monster := monsterOut.Monster

	skill := input.Skill
	if skill == "" {
		skill = SuggestSkill(monster.CreatureType)
	}

	settingsOut, err := o.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tier settings")
	}
	tierSettings := settingsOut.Settings

	result, err := o.resolveResult(ctx, input)
	if err != nil {
		return nil, err
	}

	effectiveTotal, err := knowledge.EffectiveTotal(result, tierSettings.Thresholds, input.DifficultyModifier)
	if err != nil {
		return nil, err
	}

	unlocked := knowledge.Resolve(effectiveTotal, tierSettings.Thresholds)
	bundle := knowledge.Gather(unlocked, tierSettings, monster)

	message := &entities.ChatMessage{
		ID:             o.idGen.Generate(),
		MonsterID:      monster.ID,
		MonsterName:    monster.Name,
		ActorName:      input.ActorName,
		Skill:          skill,
		Result:         result,
		EffectiveTotal: effectiveTotal,
		Bundle:         bundle,
		PostedAt:       o.clock.Now().Unix(),
	}
	message.Body = renderChatBody(message)

	if _, err := o.chatLogRepo.Append(ctx, chatlog.AppendInput{Message: message}); err != nil {
		return nil, errors.Wrap(err, "failed to post check result")
	}

	slog.Info("Knowledge check performed",
		"monster_id", monster.ID,
		"actor", input.ActorName,
		"skill", skill,
		"result_kind", result.Kind,
		"effective_total", effectiveTotal,
		"tiers_unlocked", len(bundle.Tiers),
		"message_id", message.ID,
	)

	return &PerformCheckOutput{
		Message: message,
		Bundle:  bundle,
		Skill:   skill,
	}, nil
}

// resolveResult produces the check result, rolling unless an autopass
// tier was requested
func (o *orchestrator) resolveResult(ctx context.Context, input *PerformCheckInput) (entities.CheckResult, error) {
	if input.AutopassTier != 0 {
		return entities.CheckResult{
			Kind:         entities.CheckAutopass,
			AutopassTier: input.AutopassTier,
		}, nil
	}

	roll, err := o.roller.RollCheck(ctx, &dice.RollCheckInput{
		SkillModifier: input.SkillModifier,
		Advantage:     input.Advantage,
	})
	if err != nil {
		return entities.CheckResult{}, errors.Wrap(err, "failed to roll check")
	}

	return entities.CheckResult{
		Kind:    entities.CheckRolled,
		Total:   roll.Total,
		Formula: roll.Formula,
	}, nil
}

// enrichMonsterNotFound adds an SRD suggestion to a monster lookup miss
// when the external client is available
func (o *orchestrator) enrichMonsterNotFound(ctx context.Context, monsterID string, cause error) error {
	if o.external == nil {
		return cause
	}

	ref, refErr := o.external.ResolveMonster(ctx, monsterID)
	if refErr != nil || ref == nil {
		return cause
	}

	return errors.NotFoundf(
		"monster %s is not imported; the SRD knows %q as %s, import it first",
		monsterID, ref.Name, ref.Key)
}

func (o *orchestrator) CommitToBestiary(ctx context.Context, input *CommitToBestiaryInput) (*CommitToBestiaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MessageID == "" {
		return nil, errors.InvalidArgument("message ID is required")
	}

	messageOut, err := o.chatLogRepo.Get(ctx, chatlog.GetInput{ID: input.MessageID})
	if err != nil {
		return nil, err
	}
	message := messageOut.Message

	if !message.Bundle.HasAny {
		return nil, errors.FailedPreconditionf(
			"message %s revealed no information to commit", input.MessageID)
	}

	// The stat block must still exist; a commit against a deleted or
	// never-imported monster is rejected rather than creating an orphan
	// page.
	if _, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: message.MonsterID}); err != nil {
		return nil, err
	}

	record := &entities.BestiaryRecord{
		MonsterName: message.MonsterName,
		MonsterID:   message.MonsterID,
		Content:     renderRecordBody(message),
		Bundle:      message.Bundle,
	}

	created := false
	if _, err := o.bestiaryRepo.Get(ctx, bestiary.GetInput{MonsterName: message.MonsterName}); err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		createOut, createErr := o.bestiaryRepo.Create(ctx, bestiary.CreateInput{Record: record})
		if createErr != nil {
			return nil, errors.Wrap(createErr, "failed to create bestiary record")
		}
		record = createOut.Record
		created = true
	} else {
		updateOut, updateErr := o.bestiaryRepo.Update(ctx, bestiary.UpdateInput{Record: record})
		if updateErr != nil {
			return nil, errors.Wrap(updateErr, "failed to update bestiary record")
		}
		record = updateOut.Record
	}

	slog.Info("Check committed to bestiary",
		"message_id", input.MessageID,
		"monster_name", message.MonsterName,
		"created", created,
	)

	return &CommitToBestiaryOutput{
		Record:  record,
		Created: created,
	}, nil
}

func (o *orchestrator) GetBestiaryRecord(ctx context.Context, input *GetBestiaryRecordInput) (*GetBestiaryRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.bestiaryRepo.Get(ctx, bestiary.GetInput{MonsterName: input.MonsterName})
	if err != nil {
		return nil, err
	}

	return &GetBestiaryRecordOutput{Record: output.Record}, nil
}

func (o *orchestrator) ListBestiary(ctx context.Context) (*ListBestiaryOutput, error) {
	output, err := o.bestiaryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ListBestiaryOutput{Records: output.Records}, nil
}

func (o *orchestrator) ListChatLog(ctx context.Context, input *ListChatLogInput) (*ListChatLogOutput, error) {
	var limit int64
	if input != nil {
		limit = input.Limit
	}

	output, err := o.chatLogRepo.ListRecent(ctx, chatlog.ListRecentInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return &ListChatLogOutput{Messages: output.Messages}, nil
}
