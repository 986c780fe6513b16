package config

const (
	// DefaultLogLevel controls how much diagnostic chatter is printed
	// alongside the structured per-branch progress lines.
	DefaultLogLevel = "info"

	// DefaultMinGitMajor and DefaultMinGitMinor are the minimum git
	// version required to support the non-destructive `switch` used
	// throughout the rebase engine and scratch worktree manager.
	DefaultMinGitMajor = 2
	DefaultMinGitMinor = 23
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		TargetBranch:          "",
		MatchBranches:         "",
		SlowConflictDetection: false,
		IncludeNonLocal:       false,
		MinGitVersion:         [2]int{DefaultMinGitMajor, DefaultMinGitMinor},
		LogLevel:              DefaultLogLevel,
	}
}
