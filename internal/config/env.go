package config

import "os"

// envOverrides maps environment variables to config field setters,
// applied after the file load and before validation.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "AUTOREBASE_ONTO",
		apply: func(c *Config, v string) {
			c.TargetBranch = v
		},
	},
	{
		envVar: "AUTOREBASE_MATCH_BRANCHES",
		apply: func(c *Config, v string) {
			c.MatchBranches = v
		},
	},
	{
		envVar: "AUTOREBASE_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
