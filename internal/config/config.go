package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MatcherConfig holds the confidence thresholds for the decision policy.
type MatcherConfig struct {
	HighConfidence   float64 `yaml:"high_confidence"`
	MediumConfidence float64 `yaml:"medium_confidence"`
}

// TokenizerConfig configures tokenization. A non-empty Stopwords list
// replaces the built-in default set.
type TokenizerConfig struct {
	Stopwords []string `yaml:"stopwords,omitempty"`
}

// StoreConfig selects and configures the knowledge store implementation.
type StoreConfig struct {
	Type string `yaml:"type"`           // "memory" or "sqlite"
	Path string `yaml:"path,omitempty"` // sqlite database file
}

// SnapshotConfig configures the YAML knowledge snapshot used by /save, /load
// and the optional file watcher.
type SnapshotConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Matcher   MatcherConfig   `yaml:"matcher"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Store     StoreConfig     `yaml:"store"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/faqbot/config.yaml.
// If neither exists, it writes defaults to ~/.config/faqbot/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "faqbot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Matcher:  MatcherConfig{HighConfidence: 0.55, MediumConfidence: 0.30},
		Store:    StoreConfig{Type: "memory"},
		Snapshot: SnapshotConfig{Path: "faqbot_kb.yaml"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Matcher.HighConfidence == 0 {
		cfg.Matcher.HighConfidence = 0.55
	}
	if cfg.Matcher.MediumConfidence == 0 {
		cfg.Matcher.MediumConfidence = 0.30
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = "memory"
	}
	if cfg.Store.Type == "sqlite" && cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join("data", "faqbot.db")
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "faqbot_kb.yaml"
	}
}
