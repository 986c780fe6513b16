package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies.
type App struct {
	rootCmd *cobra.Command

	verbose bool

	version string
	commit  string
	date    string
}

// New creates a new CLI application.
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command.
func (a *App) setupRootCmd() {
	opts := RunOptions{}

	a.rootCmd = &cobra.Command{
		Use:   "git-autorebase",
		Short: "Rebase local topic branches onto an integration branch",
		Long: `git-autorebase keeps a repository's local topic branches rebased
onto an integration branch (master by default), skipping branches
checked out elsewhere with uncommitted changes and remembering
branches it could not cleanly rebase so it does not retry them until
they change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, a.verbose)
		},
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	registerRunFlags(a.rootCmd, &opts)

	a.rootCmd.AddCommand(NewVersionCmd(a))
}
