package cli

import (
	"github.com/anvil-labs/anvil/internal/branding"
	"github.com/anvil-labs/anvil/internal/config"
	"github.com/anvil-labs/anvil/internal/logging"
	"github.com/anvil-labs/anvil/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	dryRun        bool
	verbose       bool
	noInteraction bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the steps instead of running them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noInteraction, "no-interaction", false, "Disable the animated progress bar and colours")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds frontend and full-stack JavaScript projects by driving
npm and npx through a fixed sequence of steps: React with Vite, TailwindCSS,
Next.js with Express, and the project's development server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(cmd.ErrOrStderr(), verbose)
		ui.ConfigureInteraction(noInteraction)
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
