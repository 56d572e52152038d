package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/starlens/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string // from --log-level only; empty means "use precedence"

	// Config file
	ConfigFile string

	// Summary configuration
	Bucket         string
	TopLanguages   int
	MinTokenLength int
	MaxVocabulary  int
	StopWords      []string

	// Chart configuration
	ChartWidth  int
	ChartHeight int
	CloudSize   int

	// Highlight configuration
	Highlights    int
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// GitHub configuration
	GitHubToken   string
	GitHubPerPage int

	// Logging configuration
	LogLevelEnv string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra, applied via UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.starlens.yaml or ./.starlens.yaml)
// 5. Defaults
//
// A non-empty configFile pins the config file location instead of searching
// the standard paths.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind env names that the automatic replacer cannot derive
	bindEnvAliases(v)

	// Try to read config file if it exists
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &errors.ConfigError{
				Component: "config",
				Message:   fmt.Sprintf("reading %s: %v", configFile, err),
			}
		}
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".starlens")

		// Ignore error if not found
		_ = v.ReadInConfig()
	}

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		// Config file
		ConfigFile: v.ConfigFileUsed(),

		// Summary configuration
		Bucket:         v.GetString("bucket"),
		TopLanguages:   v.GetInt("top_languages"),
		MinTokenLength: v.GetInt("min_token_length"),
		MaxVocabulary:  v.GetInt("max_vocabulary"),
		StopWords:      v.GetStringSlice("stop_words"),

		// Chart configuration
		ChartWidth:  v.GetInt("chart.width"),
		ChartHeight: v.GetInt("chart.height"),
		CloudSize:   v.GetInt("chart.cloud_size"),

		// Highlight configuration
		Highlights:    v.GetInt("highlights"),
		OpenAIAPIKey:  v.GetString("openai.api_key"),
		OpenAIBaseURL: v.GetString("openai.base_url"),
		OpenAIModel:   v.GetString("openai.model"),

		// GitHub configuration
		GitHubToken:   v.GetString("github.token"),
		GitHubPerPage: v.GetInt("github.per_page"),

		// Logging configuration
		LogLevelEnv: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	if verbose {
		c.Verbose = true
	}
	if quiet {
		c.Quiet = true
	}
	if noColor {
		c.NoColor = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// godotenv.Load never overrides a variable that is already set, so the
	// first file listed wins: .env.local overrides .env, and real
	// environment variables override both.
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindEnvAliases binds config keys to the env names the original exporter
// scripts used, so existing setups keep working.
func bindEnvAliases(v *viper.Viper) {
	aliases := map[string][]string{
		"openai.api_key":  {"OPENAI_API_KEY"},
		"openai.base_url": {"OPENAI_BASE_URL", "OPENAI_API_URL"},
		"openai.model":    {"OPENAI_MODEL"},
		"github.token":    {"GITHUB_TOKEN"},
	}

	for key, envNames := range aliases {
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable for %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
