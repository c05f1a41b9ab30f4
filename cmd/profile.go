package cmd

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/sentinel/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage classifier profiles",
	Long:  `Manage profiles for different classification services and settings.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Fprintln(out, "Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Fprintf(out, "  %s%s\n", name, marker)
			printProfile(cmd, cfg.Profiles[name], "    ")
			fmt.Fprintln(out)
		}
		return nil
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile: %s\n", profileName)
		printProfile(cmd, profile, "")
		return nil
	},
}

func printProfile(cmd *cobra.Command, p config.Profile, indent string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%sProvider: %s\n", indent, p.Provider)
	switch p.Provider {
	case config.ProviderOpenAI:
		fmt.Fprintf(out, "%sModel: %s\n", indent, p.Model)
		if p.BaseURL != "" {
			fmt.Fprintf(out, "%sBase URL: %s\n", indent, p.BaseURL)
		}
		hasKey := "Not set"
		if p.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Fprintf(out, "%sAPI Key: %s\n", indent, hasKey)
	default:
		fmt.Fprintf(out, "%sEndpoint: %s\n", indent, p.Endpoint)
	}
	fmt.Fprintf(out, "%sTimeout: %ds\n", indent, p.TimeoutSeconds)
	fmt.Fprintf(out, "%sMinimum characters: %d\n", indent, p.MinChars)
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			return fmt.Errorf("profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.DefaultProfile())
		if err != nil {
			return err
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' added successfully!\n", profileName)
		return nil
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		profileName, err := pickProfile(cfg, args, "Select profile to edit", false)
		if err != nil {
			return err
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			return err
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' updated successfully!\n", profileName)
		return nil
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		profileName, err := pickProfile(cfg, args, "Select profile to delete", false)
		if err != nil {
			return err
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
			return nil
		}

		removeProfile(cfg, profileName)

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' deleted successfully!\n", profileName)
		return nil
	},
}

// removeProfile deletes name, moving the active profile elsewhere and
// recreating the default when the last one goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)

	if len(cfg.Profiles) == 0 {
		cfg.Profiles[config.DefaultProfileName] = config.DefaultProfile()
	}
	if cfg.ActiveProfile == name {
		cfg.ActiveProfile = cfg.ProfileNames()[0]
	}
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		profileName, err := pickProfile(cfg, args, "Select profile to switch to", true)
		if err != nil {
			return err
		}
		if profileName == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No other profiles available to switch to")
			return nil
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile '%s'\n", profileName)
		return nil
	},
}

// pickProfile returns args[0] or asks the user to choose. With skipActive the
// active profile is not offered, and "" means nothing else exists.
func pickProfile(cfg *config.Config, args []string, label string, skipActive bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	names := make([]string, 0, len(cfg.Profiles))
	for _, name := range cfg.ProfileNames() {
		if skipActive && name == cfg.ActiveProfile {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		if skipActive {
			return "", nil
		}
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return name, nil
}

// promptProfile walks the user through every field, starting from current
func promptProfile(current config.Profile) (config.Profile, error) {
	p := current

	providerPrompt := promptui.Select{
		Label: "Provider",
		Items: []string{config.ProviderPredict, config.ProviderOpenAI},
	}
	if current.Provider == config.ProviderOpenAI {
		providerPrompt.CursorPos = 1
	}
	_, provider, err := providerPrompt.Run()
	if err != nil {
		return p, fmt.Errorf("selection failed: %w", err)
	}
	p.Provider = provider

	switch provider {
	case config.ProviderOpenAI:
		if p.APIKey, err = runPrompt(promptui.Prompt{Label: "API Key", Default: current.APIKey, Mask: '*'}); err != nil {
			return p, err
		}
		model := current.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		if p.Model, err = runPrompt(promptui.Prompt{Label: "Model", Default: model}); err != nil {
			return p, err
		}
		if p.BaseURL, err = runPrompt(promptui.Prompt{Label: "Base URL (optional)", Default: current.BaseURL}); err != nil {
			return p, err
		}
	default:
		endpoint := current.Endpoint
		if endpoint == "" {
			endpoint = config.DefaultEndpoint
		}
		if p.Endpoint, err = runPrompt(promptui.Prompt{Label: "Endpoint", Default: endpoint}); err != nil {
			return p, err
		}
	}

	if p.TimeoutSeconds, err = promptInt("Timeout (seconds)", current.TimeoutSeconds); err != nil {
		return p, err
	}
	if p.MinChars, err = promptInt("Recommended minimum characters", current.MinChars); err != nil {
		return p, err
	}

	return p, nil
}

func runPrompt(prompt promptui.Prompt) (string, error) {
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return value, nil
}

func promptInt(label string, current int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(current),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return fmt.Errorf("enter a positive number")
			}
			return nil
		},
	}
	value, err := runPrompt(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
