package cli

import (
	"github.com/anvil-labs/anvil/internal/project"
	"github.com/spf13/cobra"
)

var (
	fabricateName    string
	fabricateLang    string
	fabricatePostCSS bool
)

func init() {
	fabricateCmd.Flags().StringVarP(&fabricateName, "name", "n", "", "Project directory name (required)")
	fabricateCmd.Flags().StringVarP(&fabricateLang, "lang", "l", "", "Project language: js or ts (default from config, js)")
	fabricateCmd.Flags().BoolVarP(&fabricatePostCSS, "flag", "f", false, "Set up Tailwind v3 with PostCSS instead of the Vite plugin")
	_ = fabricateCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(fabricateCmd)
}

var fabricateCmd = &cobra.Command{
	Use:   "fabricate",
	Short: "Create a React + Vite project with TailwindCSS",
	Long: `Create a React project with Vite, install its dependencies and add TailwindCSS.

Examples:
  anvil fabricate -n my-app
  anvil fabricate -n my-app -l ts
  anvil fabricate -n my-app -f`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, project.Invocation{
			Action: project.Fabricate,
			Name:   fabricateName,
			Lang:   resolveLang(cmd, fabricateLang),
			Flag:   fabricatePostCSS,
		})
	},
}
