package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/bestiary-api/internal/dice"
)

// scriptedRoller feeds predetermined die faces to the check roller
type scriptedRoller struct {
	faces []int
	next  int
}

func (s *scriptedRoller) Roll(_ int) (int, error) {
	face := s.faces[s.next]
	s.next++
	return face, nil
}

func (s *scriptedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.faces[s.next]
		s.next++
	}
	return out, nil
}

func TestRollCheck_Straight(t *testing.T) {
	roller := dice.NewToolkitRoller(&dice.Config{Roller: &scriptedRoller{faces: []int{13}}})

	out, err := roller.RollCheck(context.Background(), &dice.RollCheckInput{SkillModifier: 4})
	require.NoError(t, err)

	assert.Equal(t, int32(17), out.Total)
	assert.Equal(t, "1d20+4", out.Formula)
	assert.Equal(t, []int32{13}, out.Rolls)
	assert.Equal(t, int32(13), out.Kept)
}

func TestRollCheck_AdvantageKeepsHigher(t *testing.T) {
	roller := dice.NewToolkitRoller(&dice.Config{Roller: &scriptedRoller{faces: []int{6, 18}}})

	out, err := roller.RollCheck(context.Background(), &dice.RollCheckInput{SkillModifier: 2, Advantage: true})
	require.NoError(t, err)

	assert.Equal(t, int32(20), out.Total)
	assert.Equal(t, "2d20kh1+2", out.Formula)
	assert.Equal(t, []int32{6, 18}, out.Rolls)
	assert.Equal(t, int32(18), out.Kept)
}

func TestRollCheck_NegativeModifierNotation(t *testing.T) {
	roller := dice.NewToolkitRoller(&dice.Config{Roller: &scriptedRoller{faces: []int{10}}})

	out, err := roller.RollCheck(context.Background(), &dice.RollCheckInput{SkillModifier: -2})
	require.NoError(t, err)

	assert.Equal(t, int32(8), out.Total)
	assert.Equal(t, "1d20-2", out.Formula)
}

func TestRollCheck_ZeroModifierNotation(t *testing.T) {
	roller := dice.NewToolkitRoller(&dice.Config{Roller: &scriptedRoller{faces: []int{10}}})

	out, err := roller.RollCheck(context.Background(), &dice.RollCheckInput{})
	require.NoError(t, err)
	assert.Equal(t, "1d20", out.Formula)
}

func TestRollCheck_NilInput(t *testing.T) {
	roller := dice.NewToolkitRoller(nil)

	_, err := roller.RollCheck(context.Background(), nil)
	assert.Error(t, err)
}
