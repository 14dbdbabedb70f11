package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/orchestrators/check"
)

var (
	checkActor      string
	checkSkill      string
	checkModifier   int32
	checkAdvantage  bool
	checkDifficulty int32
	checkAutopass   int32
)

var checkCmd = &cobra.Command{
	Use:   "check <monster-id>",
	Short: "Roll a knowledge check against a monster",
	Long: `Roll a d20 knowledge check against an imported monster and post the
revealed information to the chat log. Pass --autopass-tier to skip the
roll and reveal up to the named tier (GM use).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkActor, "actor", "", "name of the character making the check (required)")
	checkCmd.Flags().StringVar(&checkSkill, "skill", "", "knowledge skill to use (derived from creature type when omitted)")
	checkCmd.Flags().Int32Var(&checkModifier, "modifier", 0, "skill modifier added to the roll")
	checkCmd.Flags().BoolVar(&checkAdvantage, "advantage", false, "roll two d20 and keep the higher")
	checkCmd.Flags().Int32Var(&checkDifficulty, "difficulty", 0, "difficulty modifier applied to the effective total")
	checkCmd.Flags().Int32Var(&checkAutopass, "autopass-tier", 0, "skip the roll and guarantee this tier unlocks")
	_ = checkCmd.MarkFlagRequired("actor")
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.Service.PerformCheck(cmd.Context(), &check.PerformCheckInput{
		MonsterID:          args[0],
		ActorName:          checkActor,
		Skill:              checkSkill,
		SkillModifier:      checkModifier,
		Advantage:          checkAdvantage,
		DifficultyModifier: checkDifficulty,
		AutopassTier:       entities.TierID(checkAutopass),
	})
	if err != nil {
		return err
	}

	fmt.Println(output.Message.Body)
	fmt.Printf("\nmessage id: %s\n", output.Message.ID)
	return nil
}
