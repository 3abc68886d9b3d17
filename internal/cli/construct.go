package cli

import (
	"github.com/anvil-labs/anvil/internal/project"
	"github.com/spf13/cobra"
)

var constructName string

func init() {
	constructCmd.Flags().StringVarP(&constructName, "name", "n", "", "Project directory name (required)")
	_ = constructCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(constructCmd)
}

var constructCmd = &cobra.Command{
	Use:   "construct",
	Short: "Create a Next.js project with an Express server",
	Long: `Create a Next.js project and add an Express server alongside it.

Example:
  anvil construct -n my-stack`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, project.Invocation{
			Action: project.Construct,
			Name:   constructName,
		})
	},
}
