package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/clients/external"
	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/repositories/monsters"
)

var monstersCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Manage imported monster stat blocks",
}

var monstersImportCmd = &cobra.Command{
	Use:   "import <file.json>...",
	Short: "Import monster stat blocks from JSON files",
	Long: `Import one or more monster stat blocks. Each file holds a single stat
block as JSON; an existing monster with the same ID is replaced. When
the ID is omitted it is derived from the name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMonstersImport,
}

var monstersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported monsters",
	Args:  cobra.NoArgs,
	RunE:  runMonstersList,
}

var monstersVerifyCmd = &cobra.Command{
	Use:   "verify <name-or-key>",
	Short: "Verify a monster against the SRD",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonstersVerify,
}

func init() {
	monstersCmd.AddCommand(monstersImportCmd)
	monstersCmd.AddCommand(monstersListCmd)
	monstersCmd.AddCommand(monstersVerifyCmd)
}

func runMonstersImport(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var monster entities.MonsterStatBlock
		if err := json.Unmarshal(data, &monster); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if monster.ID == "" {
			monster.ID = external.Slugify(monster.Name)
		}

		if _, err := d.MonsterRepo.Put(cmd.Context(), monsters.PutInput{Monster: &monster}); err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		fmt.Printf("imported %s as %s\n", monster.Name, monster.ID)
	}
	return nil
}

func runMonstersList(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.MonsterRepo.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(output.Monsters) == 0 {
		fmt.Println("no monsters imported")
		return nil
	}

	for _, monster := range output.Monsters {
		fmt.Printf("%-24s %-30s CR %s\n", monster.ID, monster.Name, monster.ChallengeRating)
	}
	return nil
}

func runMonstersVerify(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}
	if d.SRDClient == nil {
		return fmt.Errorf("SRD lookups are disabled (SRD_BASE_URL is empty)")
	}

	ref, err := d.SRDClient.ResolveMonster(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err := d.SRDClient.VerifyMonster(cmd.Context(), ref.Key); err != nil {
		return err
	}

	fmt.Printf("%q resolves to SRD monster %s (%s)\n", args[0], ref.Name, ref.Key)
	return nil
}
