// Package config loads and saves doclink configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete doclink configuration
type Config struct {
	Version  int    `json:"version" mapstructure:"version"`
	RepoRoot string `json:"repoRoot" mapstructure:"repoRoot"`

	Registry RegistryConfig `json:"registry" mapstructure:"registry"`
	Scan     ScanConfig     `json:"scan" mapstructure:"scan"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// RegistryConfig describes where registry symbols come from
type RegistryConfig struct {
	// ScipIndexPath is an optional SCIP index to load symbols from
	ScipIndexPath string `json:"scipIndexPath" mapstructure:"scipIndexPath"`

	// DeclarationsFile is the manual symbol declarations file (SYMBOLS.toml)
	DeclarationsFile string `json:"declarationsFile" mapstructure:"declarationsFile"`

	// SourceRoots are directories indexed with tree-sitter extraction
	SourceRoots []string `json:"sourceRoots" mapstructure:"sourceRoots"`
}

// ScanConfig controls the documentation scan pass
type ScanConfig struct {
	// Exclude lists directory names skipped while walking documentation
	Exclude []string `json:"exclude" mapstructure:"exclude"`

	// MaxFileSizeBytes caps the size of a scanned documentation file
	MaxFileSizeBytes int `json:"maxFileSizeBytes" mapstructure:"maxFileSizeBytes"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		RepoRoot: ".",
		Registry: RegistryConfig{
			DeclarationsFile: "SYMBOLS.toml",
			SourceRoots:      []string{"."},
		},
		Scan: ScanConfig{
			Exclude:          []string{"node_modules", "vendor", "dist", "build"},
			MaxFileSizeBytes: 2 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "human",
		},
	}
}

// Load reads .doclink/config.json under repoRoot, falling back to defaults
// when the file does not exist.
func Load(repoRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("repoRoot", ".")
	v.SetDefault("registry.declarationsFile", "SYMBOLS.toml")
	v.SetDefault("scan.maxFileSizeBytes", 2*1024*1024)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "human")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".doclink"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			cfg := DefaultConfig()
			cfg.RepoRoot = repoRoot
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.RepoRoot == "" || cfg.RepoRoot == "." {
		cfg.RepoRoot = repoRoot
	}
	return &cfg, nil
}

// Save writes the configuration to .doclink/config.json under repoRoot.
func Save(cfg *Config, repoRoot string) error {
	dir := filepath.Join(repoRoot, ".doclink")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}
