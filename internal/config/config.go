// Package config loads the optional autorebase.yaml that supplements the
// CLI flags, following a layered load->env-override->validate pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for the autorebase driver. internal/cli
// merges it with the CLI flags: --onto and --match-branches replace
// TargetBranch and MatchBranches when given, --slow and
// --include-non-local are ORed with SlowConflictDetection and
// IncludeNonLocal, -v forces LogLevel to "verbose", and MinGitVersion
// has no flag.
type Config struct {
	// TargetBranch is the integration branch name ("" means unresolved;
	// the driver falls through to the VCS default-branch-name setting
	// and then the literal "master").
	TargetBranch string `yaml:"onto"`

	// MatchBranches is an optional glob filter over branch names.
	MatchBranches string `yaml:"matchBranches"`

	// SlowConflictDetection selects the linear conflict localization
	// algorithm instead of the reverse-rebase probe.
	SlowConflictDetection bool `yaml:"slowConflictDetection"`

	// IncludeNonLocal, when true, does not exclude branches that have
	// an upstream from the rebase set.
	IncludeNonLocal bool `yaml:"includeNonLocal"`

	// MinGitVersion is the [major, minor] version gate checked at
	// driver startup.
	MinGitVersion [2]int `yaml:"minGitVersion"`

	// LogLevel controls diagnostic verbosity ("silent", "info" or
	// "verbose").
	LogLevel string `yaml:"logLevel"`
}

// Load reads path if it exists, applies environment overrides, and
// validates the result. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
