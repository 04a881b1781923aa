package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Ruleset          string         `yaml:"ruleset" json:"ruleset"`
	DBPath           string         `yaml:"db_path" json:"db_path"`
	SaveKey          string         `yaml:"save_key" json:"save_key"`
	LegacySaveKeys   []string       `yaml:"legacy_save_keys" json:"legacy_save_keys"`
	CatalogOverlay   string         `yaml:"catalog_overlay" json:"catalog_overlay"`
	StartingCurrency int            `yaml:"starting_currency" json:"starting_currency"`
	Leveling         Leveling       `yaml:"leveling" json:"leveling"`
	BuildingCosts    map[string]int `yaml:"building_costs" json:"building_costs"`
	AutosaveSeconds  int            `yaml:"autosave_seconds" json:"autosave_seconds"`
	LogLevel         string         `yaml:"log_level" json:"log_level"`
	JournalKeep      int            `yaml:"journal_keep" json:"journal_keep"`
}

type Leveling struct {
	Threshold  int     `yaml:"threshold" json:"threshold"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

func (l *Leveling) ApplyDefaults() {
	if l.Threshold <= 0 {
		l.Threshold = 100
	}
	if l.Multiplier <= 1 {
		l.Multiplier = 1.5
	}
}

func (c *Config) ApplyDefaults() {
	if c.Ruleset == "" {
		c.Ruleset = "story"
	}
	if c.SaveKey == "" {
		c.SaveKey = "sami.profile"
	}
	if c.LegacySaveKeys == nil {
		c.LegacySaveKeys = []string{"samiAdventureSave"}
	}
	if c.StartingCurrency < 0 {
		c.StartingCurrency = 0
	}
	c.Leveling.ApplyDefaults()
	if c.AutosaveSeconds <= 0 {
		c.AutosaveSeconds = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.JournalKeep <= 0 {
		c.JournalKeep = 200
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
