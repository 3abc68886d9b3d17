package runtime

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/anvil-labs/anvil/internal/logging"
)

// ShellRunner runs command lines through the platform shell.
type ShellRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process streams. Generators such as create-vite prompt on stdin.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes commandLine via the host shell, streaming output to the
// configured writers.
func (s *ShellRunner) Run(ctx context.Context, dir, commandLine string) (*Output, error) {
	name, args := shellCommand(commandLine)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logging.Debug("+ "+commandLine, "dir", dir)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Output{ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, &LaunchError{CommandLine: commandLine, Err: err}
	}

	return &Output{ExitCode: 0}, nil
}
