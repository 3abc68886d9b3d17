package plan

import (
	"errors"
	"fmt"

	"github.com/anvil-labs/anvil/internal/deps"
	"github.com/anvil-labs/anvil/internal/runtime"
)

// Kind classifies a failure. Every kind ends the process with exit code 1;
// the distinction exists for diagnostics and tests.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingDependency
	KindInvalidArgument
	KindProcessExit
	KindProcessLaunch
	KindFileWrite
)

func (k Kind) String() string {
	switch k {
	case KindMissingDependency:
		return "missing dependency"
	case KindInvalidArgument:
		return "invalid argument"
	case KindProcessExit:
		return "process exit"
	case KindProcessLaunch:
		return "process launch"
	case KindFileWrite:
		return "file write"
	default:
		return "unknown"
	}
}

// ArgumentError reports an invalid command-line value.
type ArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s. %s", e.Name, e.Value, e.Reason)
}

// ExitError reports a command line that exited non-zero.
type ExitError struct {
	CommandLine string
	Code        int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.CommandLine, e.Code)
}

// FileError reports a failed write or directory creation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// StepError wraps the failure of the step at Index.
type StepError struct {
	Step  Step
	Index int
	Err   error
}

func (e *StepError) Error() string {
	if e.Step.Failure == "" {
		return fmt.Sprintf("step %q failed: %v", e.Step.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Step.Failure, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// KindOf classifies err. It returns KindUnknown for nil or unrecognized errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var (
		argErr     *ArgumentError
		exitErr    *ExitError
		launchErr  *runtime.LaunchError
		fileErr    *FileError
		missingErr *deps.MissingError
		versionErr *deps.VersionError
	)
	switch {
	case errors.As(err, &argErr):
		return KindInvalidArgument
	case errors.As(err, &missingErr), errors.As(err, &versionErr):
		return KindMissingDependency
	case errors.As(err, &exitErr):
		return KindProcessExit
	case errors.As(err, &launchErr):
		return KindProcessLaunch
	case errors.As(err, &fileErr):
		return KindFileWrite
	default:
		return KindUnknown
	}
}
