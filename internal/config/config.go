package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	WorkspaceDir string `mapstructure:"workspace_dir"`
	MetadataFile string `mapstructure:"metadata_file"`
	HistoryLimit int    `mapstructure:"history_limit"`
	SampleCount  int    `mapstructure:"sample_count"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		WorkspaceDir: ".gitlab",
		MetadataFile: "toolbox.json",
		HistoryLimit: 10,
		SampleCount:  5,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.WorkspaceDir == "" {
		return fmt.Errorf("workspace_dir cannot be empty")
	}
	if strings.Contains(c.WorkspaceDir, "..") {
		return fmt.Errorf("workspace_dir contains invalid path traversal")
	}
	if c.MetadataFile == "" {
		return fmt.Errorf("metadata_file cannot be empty")
	}
	if strings.ContainsAny(c.MetadataFile, `/\`) {
		return fmt.Errorf("metadata_file must be a bare filename, got %q", c.MetadataFile)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.SampleCount <= 0 {
		return fmt.Errorf("sample_count must be positive, got %d", c.SampleCount)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".gitlab-toolbox")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("GITLAB")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	if err := viper.BindEnv("workspace_dir", "GITLAB_WORKSPACE_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind workspace_dir env: %w", err)
	}
	if err := viper.BindEnv("metadata_file", "GITLAB_METADATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind metadata_file env: %w", err)
	}
	if err := viper.BindEnv("history_limit", "GITLAB_HISTORY_LIMIT"); err != nil {
		return nil, fmt.Errorf("failed to bind history_limit env: %w", err)
	}
	if err := viper.BindEnv("sample_count", "GITLAB_SAMPLE_COUNT"); err != nil {
		return nil, fmt.Errorf("failed to bind sample_count env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("workspace_dir", defaults.WorkspaceDir)
	viper.SetDefault("metadata_file", defaults.MetadataFile)
	viper.SetDefault("history_limit", defaults.HistoryLimit)
	viper.SetDefault("sample_count", defaults.SampleCount)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
