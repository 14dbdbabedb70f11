package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/repositories/settings"
	"github.com/lorekeep/bestiary-api/internal/rules/knowledge"
)

var (
	settingsSetTier  int32
	settingsSetDC    int32
	settingsSetKinds []string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage knowledge check tier settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current tier settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one tier's threshold and information kinds",
	Long: `Set a single tier's difficulty threshold and, optionally, its revealed
information kinds. Thresholds must stay strictly increasing across
configured tiers.`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace all tier settings from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsImport,
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current tier settings as YAML to stdout",
	Args:  cobra.NoArgs,
	RunE:  runSettingsExport,
}

func init() {
	settingsSetCmd.Flags().Int32Var(&settingsSetTier, "tier", 0, "tier to configure, 1-5 (required)")
	settingsSetCmd.Flags().Int32Var(&settingsSetDC, "dc", 0, "difficulty threshold for the tier (required)")
	settingsSetCmd.Flags().StringSliceVar(&settingsSetKinds, "kinds", nil, "information kinds the tier reveals, e.g. ac,hp,speed")
	_ = settingsSetCmd.MarkFlagRequired("tier")
	_ = settingsSetCmd.MarkFlagRequired("dc")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsImportCmd)
	settingsCmd.AddCommand(settingsExportCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.SettingsRepo.Get(cmd.Context())
	if err != nil {
		return err
	}

	tiers := make([]entities.TierID, 0, len(output.Settings.Thresholds))
	for tier := range output.Settings.Thresholds {
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })

	for _, tier := range tiers {
		fmt.Printf("tier %d  DC %-3d  %v\n", tier, output.Settings.Thresholds[tier], output.Settings.Kinds[tier])
	}

	if unknown := settings.UnknownKinds(output.Settings); len(unknown) > 0 {
		fmt.Printf("\nwarning: unrecognized kinds (they reveal nothing): %v\n", unknown)
		fmt.Printf("known kinds: %v\n", knowledge.RegisteredKinds())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	current, err := d.SettingsRepo.Get(cmd.Context())
	if err != nil {
		return err
	}

	updated := current.Settings
	tier := entities.TierID(settingsSetTier)
	updated.Thresholds[tier] = settingsSetDC
	if len(settingsSetKinds) > 0 {
		kinds := make([]entities.InformationKind, 0, len(settingsSetKinds))
		for _, kind := range settingsSetKinds {
			kinds = append(kinds, entities.InformationKind(kind))
		}
		updated.Kinds[tier] = kinds
	}

	if _, err := d.SettingsRepo.Update(cmd.Context(), settings.UpdateInput{Settings: updated}); err != nil {
		return err
	}

	fmt.Printf("tier %d set to DC %d\n", tier, settingsSetDC)
	return nil
}

func runSettingsImport(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	parsed, err := settings.ParseYAML(data)
	if err != nil {
		return err
	}

	if _, err := d.SettingsRepo.Update(cmd.Context(), settings.UpdateInput{Settings: parsed}); err != nil {
		return err
	}

	fmt.Printf("imported tier settings from %s\n", args[0])
	return nil
}

func runSettingsExport(cmd *cobra.Command, args []string) error {
	d, err := wire()
	if err != nil {
		return err
	}

	output, err := d.SettingsRepo.Get(cmd.Context())
	if err != nil {
		return err
	}

	data, err := settings.ToYAML(output.Settings)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
	return nil
}
