package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/orchestrators/check"
)

var chatListLimit int64

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Browse the shared chat log",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent check results, newest first",
	Long: `List recently posted knowledge checks with their message ids, so a
result can be committed after its check output has scrolled away.`,
	Args: cobra.NoArgs,
	RunE: runChatList,
}

func init() {
	chatListCmd.Flags().Int64Var(&chatListLimit, "limit", 0, "maximum messages to list (0 for the full recent window)")
	chatCmd.AddCommand(chatListCmd)
}

func runChatList(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.Service.ListChatLog(cmd.Context(), &check.ListChatLogInput{Limit: chatListLimit})
	if err != nil {
		return err
	}

	if len(output.Messages) == 0 {
		fmt.Println("the chat log is empty")
		return nil
	}

	for _, msg := range output.Messages {
		fmt.Printf("%-40s %s  %s vs %s  total %d  %d tiers\n",
			msg.ID,
			time.Unix(msg.PostedAt, 0).Format(time.DateTime),
			msg.ActorName,
			msg.MonsterName,
			msg.EffectiveTotal,
			len(msg.Bundle.Tiers))
	}
	return nil
}
