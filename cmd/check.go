package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/core"
	"github.com/Rorical/sentinel/internal/models"
	"github.com/Rorical/sentinel/internal/transport"
	"github.com/Rorical/sentinel/ui/components"
)

var checkWidth int

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify one article and print the verdict",
	Long: `Read an article from a file, or from stdin when the file is omitted or "-",
send it to the classification service and print the verdict.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime(false)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		text, err := readArticle(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		profile := cfg.Profile()
		classifier, err := transport.New(profile, logger)
		if err != nil {
			return fmt.Errorf("profile '%s': %w", cfg.ActiveProfile, err)
		}

		logger.Debug("Checking article", zap.String("profile", cfg.ActiveProfile), zap.Int("bytes", len(text)))
		return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), text, classifier, profile.MinChars)
	},
}

func readArticle(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read article: %w", err)
	}
	return string(data), nil
}

// runCheck drives a single submission to completion and renders it
func runCheck(ctx context.Context, out, errOut io.Writer, text string, classifier core.Classifier, minChars int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	validator := core.NewValidator(minChars)

	if v := validator.Validate(text); v.OK && v.Advisory {
		fmt.Fprintf(errOut, "note: %d characters; minimum %d characters recommended\n", v.Chars, validator.MinChars)
	}

	controller := core.NewController(ctx, classifier, validator)
	controller.Submit(text)
	controller.Wait()

	state := controller.State()
	switch state.Phase {
	case models.Succeeded:
		fmt.Fprintln(out, components.RenderResult(core.Present(state.Result), checkWidth))
		return nil
	case models.Failed:
		return state.Err
	}
	return fmt.Errorf("submission ended in phase %s", state.Phase)
}

func init() {
	checkCmd.Flags().IntVarP(&checkWidth, "width", "w", 80, "width of the verdict card")
	rootCmd.AddCommand(checkCmd)
}
