package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

const (
	ProviderPredict = "predict"
	ProviderOpenAI  = "openai"

	DefaultEndpoint       = "http://localhost:5000"
	DefaultTimeoutSeconds = 30
	DefaultMinChars       = 100
	DefaultProfileName    = "default"

	envPrefix = "SENTINEL"
)

type Profile struct {
	Provider       string `json:"provider"`
	Endpoint       string `json:"endpoint,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	MinChars       int    `json:"min_chars,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	BaseURL        string `json:"base_url,omitempty"`
	Model          string `json:"model,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
}

func DefaultProfile() Profile {
	return Profile{
		Provider:       ProviderPredict,
		Endpoint:       DefaultEndpoint,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MinChars:       DefaultMinChars,
	}
}

// LoadConfig reads the config file, creating a default one on first run,
// and resolves the active profile with SENTINEL_* environment overrides.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// IsValid reports whether the active profile can build a classifier
func (c *Config) IsValid() bool {
	if c.currentProfile == nil {
		return false
	}
	switch c.currentProfile.Provider {
	case ProviderPredict:
		return c.currentProfile.Endpoint != ""
	case ProviderOpenAI:
		return c.currentProfile.APIKey != ""
	}
	return false
}

// Profile returns the resolved active profile, overrides included
func (c *Config) Profile() Profile {
	if c.currentProfile == nil {
		return DefaultProfile()
	}
	return *c.currentProfile
}

// UseProfile makes name the active profile for this process only
func (c *Config) UseProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// ProfileNames returns profile names in sorted order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir is where the config file and logs live
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// LogPath is the log file used while the TUI owns the terminal
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sentinel.log"), nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use SENTINEL_HOME if set, otherwise use user's home directory
	if home := os.Getenv("SENTINEL_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".sentinel", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfileName: DefaultProfile(),
		},
		ActiveProfile: DefaultProfileName,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	env := newEnv()
	if name := env.GetString("profile"); name != "" {
		if _, exists := c.Profiles[name]; !exists {
			return fmt.Errorf("profile '%s' from %s_PROFILE does not exist", name, envPrefix)
		}
		c.ActiveProfile = name
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
		profile = c.Profiles[c.ActiveProfile]
	}

	profile = withDefaults(profile)
	applyEnvOverrides(&profile, env)
	c.currentProfile = &profile
	return nil
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// applyEnvOverrides layers SENTINEL_* variables over the profile. Overrides
// live only in memory; Save never writes them back.
func applyEnvOverrides(p *Profile, env *viper.Viper) {
	if s := env.GetString("provider"); s != "" {
		p.Provider = s
	}
	if s := env.GetString("endpoint"); s != "" {
		p.Endpoint = s
	}
	if n := env.GetInt("timeout"); n > 0 {
		p.TimeoutSeconds = n
	}
	if n := env.GetInt("min_chars"); n > 0 {
		p.MinChars = n
	}
	if s := env.GetString("api_key"); s != "" {
		p.APIKey = s
	}
	if s := env.GetString("base_url"); s != "" {
		p.BaseURL = s
	}
	if s := env.GetString("model"); s != "" {
		p.Model = s
	}
}

func withDefaults(p Profile) Profile {
	d := DefaultProfile()
	if p.Provider == "" {
		p.Provider = d.Provider
	}
	if p.Provider == ProviderPredict && p.Endpoint == "" {
		p.Endpoint = d.Endpoint
	}
	if p.TimeoutSeconds <= 0 {
		p.TimeoutSeconds = d.TimeoutSeconds
	}
	if p.MinChars <= 0 {
		p.MinChars = d.MinChars
	}
	return p
}
