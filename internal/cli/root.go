package cli

import (
	"github.com/appskel-labs/appskel/internal/branding"
	"github.com/appskel-labs/appskel/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` materializes empty project skeletons (directories and zero-byte
placeholder files) from declarative catalogs. Run it with no arguments to
create the default skeleton in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	// Bare invocation scaffolds the default catalog into the current
	// working directory, so `appskel` alone does the whole job.
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
