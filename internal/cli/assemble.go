package cli

import (
	"fmt"

	"github.com/anvil-labs/anvil/internal/project"
	"github.com/anvil-labs/anvil/internal/ui"
	"github.com/spf13/cobra"
)

var (
	assembleName string
	assembleLang string
)

func init() {
	assembleCmd.PersistentFlags().StringVarP(&assembleName, "name", "n", "", "Project directory name (required)")
	assembleCmd.PersistentFlags().StringVarP(&assembleLang, "lang", "l", "", "Project language: js or ts (default from config, js)")
	assembleCmd.AddCommand(assembleReactViteCmd)
	assembleCmd.AddCommand(assembleTailwindCmd)
	assembleCmd.AddCommand(assembleShadcnCmd)
	rootCmd.AddCommand(assembleCmd)
}

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Add a single building block to a project",
	Long: `Run one scaffolding step on its own.

Examples:
  anvil assemble react-vite -n my-app -l ts
  anvil assemble tailwindcss -n my-app
  anvil assemble shadcn -n my-app`,
	Args: cobra.NoArgs,
	// Without a part the command only reports the problem and still exits 0.
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarnMsg("no sub-action provided for 'assemble'. Use %s.", project.PartList()))
		return nil
	},
}

var assembleReactViteCmd = &cobra.Command{
	Use:   project.PartReactVite,
	Short: "Create a React + Vite project without extras",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(cmd, project.PartReactVite)
	},
}

var assembleTailwindCmd = &cobra.Command{
	Use:   project.PartTailwindCSS,
	Short: "Add TailwindCSS to an existing Vite project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(cmd, project.PartTailwindCSS)
	},
}

var assembleShadcnCmd = &cobra.Command{
	Use:   project.PartShadcn,
	Short: "Initialize shadcn/ui in an existing Tailwind project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssemble(cmd, project.PartShadcn)
	},
}

func runAssemble(cmd *cobra.Command, part string) error {
	return runInvocation(cmd, project.Invocation{
		Action: project.Assemble,
		Name:   assembleName,
		Lang:   resolveLang(cmd, assembleLang),
		Part:   part,
	})
}
