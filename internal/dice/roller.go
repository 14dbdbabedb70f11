// Package dice resolves the random side of a knowledge check on top of
// rpg-toolkit's dice roller.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/lorekeep/bestiary-api/internal/dice CheckRoller

import (
	"context"
	"fmt"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lorekeep/bestiary-api/internal/errors"
)

const d20 = 20

// RollCheckInput describes one knowledge-check roll
type RollCheckInput struct {
	// SkillModifier is added to the kept die
	SkillModifier int32

	// Advantage rolls two d20 and keeps the higher
	Advantage bool
}

// RollCheckOutput is the resolved roll
type RollCheckOutput struct {
	// Total is kept die + skill modifier
	Total int32

	// Formula is the human-readable notation, e.g. "1d20+4" or
	// "2d20kh1+4"
	Formula string

	// Rolls holds every die rolled, in roll order
	Rolls []int32

	// Kept is the die that counted
	Kept int32
}

// CheckRoller produces d20 check results. The interface exists so
// orchestrator tests can pin totals.
type CheckRoller interface {
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}

// Config holds the dependencies for the toolkit-backed roller
type Config struct {
	// Roller defaults to rpg-toolkit's DefaultRoller when nil
	Roller rpgdice.Roller
}

type toolkitRoller struct {
	roller rpgdice.Roller
}

// NewToolkitRoller creates a CheckRoller backed by rpg-toolkit
func NewToolkitRoller(cfg *Config) CheckRoller {
	roller := rpgdice.DefaultRoller
	if cfg != nil && cfg.Roller != nil {
		roller = cfg.Roller
	}
	return &toolkitRoller{roller: roller}
}

var _ CheckRoller = (*toolkitRoller)(nil)

// RollCheck rolls 1d20 (2d20 keep highest under advantage) and applies the
// skill modifier.
func (r *toolkitRoller) RollCheck(_ context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !input.Advantage {
		value, err := r.roller.Roll(d20)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll d20")
		}
		kept := int32(value) // nolint:gosec // die face fits int32
		return &RollCheckOutput{
			Total:   kept + input.SkillModifier,
			Formula: fmt.Sprintf("1d20%s", modifierSuffix(input.SkillModifier)),
			Rolls:   []int32{kept},
			Kept:    kept,
		}, nil
	}

	values, err := r.roller.RollN(2, d20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll 2d20")
	}
	if len(values) != 2 {
		return nil, errors.Internalf("expected 2 dice, got %d", len(values))
	}

	rolls := []int32{int32(values[0]), int32(values[1])} // nolint:gosec // die faces fit int32
	kept := rolls[0]
	if rolls[1] > kept {
		kept = rolls[1]
	}

	return &RollCheckOutput{
		Total:   kept + input.SkillModifier,
		Formula: fmt.Sprintf("2d20kh1%s", modifierSuffix(input.SkillModifier)),
		Rolls:   rolls,
		Kept:    kept,
	}, nil
}

// modifierSuffix renders the modifier part of the notation, empty for zero
func modifierSuffix(modifier int32) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("+%d", modifier)
	case modifier < 0:
		return fmt.Sprintf("%d", modifier)
	default:
		return ""
	}
}
