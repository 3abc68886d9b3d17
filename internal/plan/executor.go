package plan

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/anvil-labs/anvil/internal/runtime"
)

// Executor performs the Actions of one Step.
type Executor interface {
	Execute(ctx context.Context, step Step) error
}

// ActionExecutor applies Actions for real: command lines go through Runner,
// files and directories are written to the local filesystem.
type ActionExecutor struct {
	Runner runtime.Runner
}

// Execute runs the step's actions in order and stops at the first failure.
func (e *ActionExecutor) Execute(ctx context.Context, step Step) error {
	for _, a := range step.Actions {
		if err := e.apply(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (e *ActionExecutor) apply(ctx context.Context, a Action) error {
	switch a.Kind {
	case ActionRun:
		out, err := e.Runner.Run(ctx, filepath.FromSlash(a.Dir), a.Command)
		if err != nil {
			return err
		}
		if !out.Success() {
			return &ExitError{CommandLine: a.Command, Code: out.ExitCode}
		}
		return nil

	case ActionWrite:
		path := filepath.FromSlash(a.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return &FileError{Op: "create directory for", Path: a.Path, Err: err}
		}
		if err := os.WriteFile(path, a.Content, 0644); err != nil {
			return &FileError{Op: "write", Path: a.Path, Err: err}
		}
		return nil

	case ActionMkdir:
		if err := os.MkdirAll(filepath.FromSlash(a.Path), 0755); err != nil {
			return &FileError{Op: "create directory", Path: a.Path, Err: err}
		}
		return nil

	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

// DryRunExecutor prints each Action instead of performing it.
type DryRunExecutor struct {
	Out io.Writer
}

func (e *DryRunExecutor) Execute(_ context.Context, step Step) error {
	for _, a := range step.Actions {
		fmt.Fprintf(e.Out, "+ %s\n", a.String())
	}
	return nil
}
