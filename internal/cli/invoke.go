package cli

import (
	"context"
	"fmt"

	"github.com/anvil-labs/anvil/internal/config"
	"github.com/anvil-labs/anvil/internal/deps"
	"github.com/anvil-labs/anvil/internal/logging"
	"github.com/anvil-labs/anvil/internal/plan"
	"github.com/anvil-labs/anvil/internal/progress"
	"github.com/anvil-labs/anvil/internal/project"
	"github.com/anvil-labs/anvil/internal/recipe"
	"github.com/anvil-labs/anvil/internal/runtime"
	"github.com/anvil-labs/anvil/internal/ui"
	"github.com/spf13/cobra"
)

// Process and tool access, replaced in tests.
var (
	newRunner  = func() runtime.Runner { return &runtime.ShellRunner{} }
	newQuerier = func() deps.Querier { return deps.ExecQuerier{} }
)

// resolveLang returns the --lang value, falling back to the configured default.
func resolveLang(cmd *cobra.Command, lang string) string {
	if cmd.Flags().Changed("lang") {
		return lang
	}
	return config.Lang()
}

// runInvocation validates inv, checks the required tools, and runs its steps.
// Nothing is launched or written before validation passes.
func runInvocation(cmd *cobra.Command, inv project.Invocation) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if err := inv.Validate(); err != nil {
		return err
	}

	done := inv.Completion()
	if !inv.NeedsTools() {
		fmt.Fprintln(out, done.Hint)
		return nil
	}

	catalog, err := recipe.Load(config.RecipesFile())
	if err != nil {
		return fmt.Errorf("loading recipes: %w", err)
	}

	if !dryRun {
		checker := &deps.Checker{Querier: newQuerier()}
		if err := checker.Check(ctx, catalog.Requires); err != nil {
			return err
		}
	}

	steps, err := inv.Steps(catalog)
	if err != nil {
		return fmt.Errorf("preparing %s: %w", inv.Action, err)
	}

	var executor plan.Executor = &plan.ActionExecutor{Runner: newRunner()}
	if dryRun {
		executor = &plan.DryRunExecutor{Out: out}
	}
	seq := &plan.Sequencer{
		Executor: executor,
		Progress: progress.New(cmd.ErrOrStderr(), len(steps), ui.IsInteractive()),
	}

	logging.Debug("running steps", "action", string(inv.Action), "name", inv.Name, "lang", inv.Lang, "steps", len(steps))
	if err := seq.Run(ctx, steps, done.Label); err != nil {
		logging.Debug("step failed", "kind", plan.KindOf(err).String(), "error", err)
		return err
	}

	if done.Hint != "" {
		fmt.Fprintln(out, ui.SuccessMsg("%s", done.Hint))
	}
	return nil
}
