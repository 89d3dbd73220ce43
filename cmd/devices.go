package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stripbot/stripbot/internal/config"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Print the resolved device catalog and mode",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	devices, err := cfg.ResolveDevices()
	if err != nil {
		return fmt.Errorf("resolving devices: %w", err)
	}

	fmt.Printf("Mode: %s\n", cfg.EffectiveMode(len(devices)))
	for _, d := range devices {
		fmt.Printf("  %-12s %-30s → %s\n", d.Key, d.DisplayName, d.CommandTopic)
	}
	return nil
}
