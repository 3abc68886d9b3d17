package cli

import (
	"github.com/anvil-labs/anvil/internal/project"
	"github.com/spf13/cobra"
)

var blueprintName string

func init() {
	blueprintCmd.Flags().StringVarP(&blueprintName, "name", "n", "", "Project directory name (required)")
	_ = blueprintCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(blueprintCmd)
}

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Acknowledge a blueprint request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvocation(cmd, project.Invocation{
			Action: project.Blueprint,
			Name:   blueprintName,
		})
	},
}
