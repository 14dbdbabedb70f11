package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/orchestrators/check"
)

var commitCmd = &cobra.Command{
	Use:   "commit <message-id>",
	Short: "Commit a posted check into the bestiary",
	Long: `Commit the information revealed by a posted knowledge check into the
monster's bestiary record. The record is replaced wholesale with the
committed check's content.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommit,
}

func runCommit(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.Service.CommitToBestiary(cmd.Context(), &check.CommitToBestiaryInput{
		MessageID: args[0],
	})
	if err != nil {
		return err
	}

	verb := "updated"
	if output.Created {
		verb = "created"
	}
	fmt.Printf("%s bestiary record for %s\n", verb, output.Record.MonsterName)
	return nil
}
