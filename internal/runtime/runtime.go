package runtime

import (
	"context"
	"fmt"
)

// Runner defines the interface for executing a shell command line.
type Runner interface {
	// Run executes commandLine in dir (the current directory when empty) and
	// blocks until the child exits. A non-zero exit is reported through
	// Output.ExitCode; the error return is reserved for launch failures.
	Run(ctx context.Context, dir, commandLine string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
}

// Success reports whether the child exited with status zero.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}

// LaunchError is returned when the shell itself could not be started.
type LaunchError struct {
	CommandLine string
	Err         error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.CommandLine, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
