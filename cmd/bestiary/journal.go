package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/orchestrators/check"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse the bestiary journal",
}

var journalShowCmd = &cobra.Command{
	Use:   "show <monster-name>",
	Short: "Show one monster's journal page",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every journal page",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

func init() {
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalListCmd)
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.Service.GetBestiaryRecord(cmd.Context(), &check.GetBestiaryRecordInput{
		MonsterName: args[0],
	})
	if err != nil {
		return err
	}

	record := output.Record
	fmt.Printf("%s\n", record.MonsterName)
	fmt.Printf("updated %s\n\n", time.Unix(record.UpdatedAt, 0).Format(time.DateOnly))
	fmt.Println(record.Content)
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.Service.ListBestiary(cmd.Context())
	if err != nil {
		return err
	}

	if len(output.Records) == 0 {
		fmt.Println("the journal is empty")
		return nil
	}

	for _, record := range output.Records {
		fmt.Printf("%-30s %d tiers, updated %s\n",
			record.MonsterName,
			len(record.Bundle.Tiers),
			time.Unix(record.UpdatedAt, 0).Format(time.DateOnly))
	}
	return nil
}
