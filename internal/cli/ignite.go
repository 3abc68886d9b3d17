package cli

import (
	"github.com/anvil-labs/anvil/internal/project"
	"github.com/spf13/cobra"
)

var igniteName string

func init() {
	igniteCmd.Flags().StringVarP(&igniteName, "name", "n", "", "Project directory name (required)")
	_ = igniteCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(igniteCmd)
}

var igniteCmd = &cobra.Command{
	Use:   "ignite",
	Short: "Start the project's development server",
	Long: `Run "npm run dev" inside the project directory. The command blocks until
the server exits; stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, project.Invocation{
			Action: project.Ignite,
			Name:   igniteName,
		})
	},
}
