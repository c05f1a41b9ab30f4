package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/app"
	"github.com/Rorical/sentinel/internal/config"
	"github.com/Rorical/sentinel/internal/logging"
)

var (
	profileFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Check news articles for misinformation",
	Long: `Sentinel sends article text to a fake news classification service and
shows whether the article looks genuine or likely fake.

Run without arguments to start the interactive checker.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile to use for this run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}

// loadRuntime resolves config and builds the logger. The interactive UI logs
// to a file so nothing is drawn over the screen.
func loadRuntime(interactive bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if profileFlag != "" {
		if err := cfg.UseProfile(profileFlag); err != nil {
			return nil, nil, err
		}
	}

	logPath := ""
	if interactive {
		if logPath, err = config.LogPath(); err != nil {
			return nil, nil, fmt.Errorf("failed to resolve log path: %w", err)
		}
	}

	logger, err := logging.New(verbose, logPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runInteractive() error {
	cfg, logger, err := loadRuntime(true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}
