package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides c with SAMI_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SAMI_RULESET"); v != "" {
		c.Ruleset = v
	}
	if v := os.Getenv("SAMI_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SAMI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SAMI_CATALOG"); v != "" {
		c.CatalogOverlay = v
	}
	if val := getEnvInt("SAMI_AUTOSAVE_SECONDS"); val > 0 {
		c.AutosaveSeconds = val
	}
	if val := getEnvInt("SAMI_STARTING_CURRENCY"); val > 0 {
		c.StartingCurrency = val
	}
}

// FromEnv loads defaults overridden by the environment.
func FromEnv() *Config {
	c := Default()
	c.ApplyEnv()
	return c
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
