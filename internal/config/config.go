// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultRepository is the repository whose issues are listed when none is configured.
	DefaultRepository = "angular/components"
	// DefaultDomain is the public GitHub host.
	DefaultDomain = "github.com"
	// DefaultPageSize matches the GitHub search API default.
	DefaultPageSize = 30
	// MaxPageSize is the largest per_page the search API accepts.
	MaxPageSize = 100
	// DefaultAddr is the listen address of the web server.
	DefaultAddr = ":8080"
	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub     GitHubConfig
	Repository string
	PageSize   int
	Addr       string
	LogLevel   string
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	// Token is optional; search works anonymously with lower rate limits.
	Token  string
	Domain string
}

// LoadConfig loads configuration from an optional .env file and the environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("github.domain", DefaultDomain)
	v.SetDefault("repository", DefaultRepository)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log_level", DefaultLogLevel)

	// Map specific environment variables
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")
	_ = v.BindEnv("github.domain", "GITHUB_DOMAIN")
	_ = v.BindEnv("repository", "ISSUETABLE_REPOSITORY")
	_ = v.BindEnv("page_size", "ISSUETABLE_PAGE_SIZE")
	_ = v.BindEnv("addr", "ISSUETABLE_ADDR")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Repository: v.GetString("repository"),
		PageSize:   v.GetInt("page_size"),
		Addr:       v.GetString("addr"),
		LogLevel:   strings.ToLower(v.GetString("log_level")),
	}

	// An explicitly empty GITHUB_DOMAIN still means github.com.
	if config.GitHub.Domain == "" {
		config.GitHub.Domain = DefaultDomain
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every configuration value that is out of range.
func Validate(config *Config) error {
	var invalidVars []string

	if err := ValidateRepository(config.Repository); err != nil {
		invalidVars = append(invalidVars, "ISSUETABLE_REPOSITORY")
	}
	if config.PageSize < 1 || config.PageSize > MaxPageSize {
		invalidVars = append(invalidVars, "ISSUETABLE_PAGE_SIZE")
	}
	if config.Addr == "" {
		invalidVars = append(invalidVars, "ISSUETABLE_ADDR")
	}
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalidVars = append(invalidVars, "LOG_LEVEL")
	}

	if len(invalidVars) > 0 {
		return fmt.Errorf("invalid environment variables: %v", invalidVars)
	}

	return nil
}

// ValidateRepository checks that repository is in the "owner/repo" form.
func ValidateRepository(repository string) error {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return nil
}
