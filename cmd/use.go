package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/sentinel/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the checker",
	Long:  `Switch to the specified profile and immediately start the interactive checker.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		// Persist the switch, then run with it
		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		profileFlag = profileName
		return runInteractive()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
