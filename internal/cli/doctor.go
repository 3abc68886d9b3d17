package cli

import (
	"fmt"
	"io"

	"github.com/anvil-labs/anvil/internal/config"
	"github.com/anvil-labs/anvil/internal/deps"
	"github.com/anvil-labs/anvil/internal/recipe"
	"github.com/anvil-labs/anvil/internal/scaffold"
	"github.com/spf13/cobra"
)

var checkRecipes string

func init() {
	doctorCmd.Flags().StringVar(&checkRecipes, "check-recipes", "", "Validate a recipes file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that npm, npx and the recipe catalog are usable",
	Long: `Run diagnostic checks: required tools and their versions, the recipe
catalog (built-in plus any configured overlay), and the embedded templates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkRecipes != "" {
			return runRecipesCheck(out, checkRecipes)
		}

		catalog, err := recipe.Load(config.RecipesFile())
		if err != nil {
			fmt.Fprintf(out, "Recipe catalog:\n  [FAIL] %v\n", err)
			return fmt.Errorf("recipe catalog is invalid: %w", err)
		}

		checker := &deps.Checker{Querier: newQuerier()}
		failed := checker.Report(cmd.Context(), out, catalog.Requires)

		fmt.Fprintln(out, "Recipe catalog:")
		source := "built-in"
		if path := config.RecipesFile(); path != "" {
			source = "built-in + " + path
		}
		fmt.Fprintf(out, "  [ OK ] %d recipes (%s)\n", len(catalog.Recipes), source)

		fmt.Fprintln(out, "Templates:")
		for _, name := range scaffold.Templates() {
			fmt.Fprintf(out, "  [ OK ] %s\n", name)
		}

		if failed > 0 {
			return fmt.Errorf("%d dependency check(s) failed", failed)
		}
		return nil
	},
}

func runRecipesCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Recipe validation: %s\n", path)

	result, err := recipe.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("recipe validation failed: %w", err)
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("recipes %s has %d validation issue(s)", path, len(result.Issues))
	}

	// The schema passed; Parse also checks template references.
	catalog, err := recipe.ParseFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] Valid recipes file: %d recipes\n", len(catalog.Recipes))
	return nil
}
