package deps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/anvil-labs/anvil/internal/logging"
)

// Requirement names a tool that must be invokable. MinVersion is optional.
type Requirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Querier reports the raw `--version` output of a tool.
type Querier interface {
	// Version returns ErrNotFound (possibly wrapped) when the tool cannot be
	// invoked at all.
	Version(ctx context.Context, tool string) (string, error)
}

// ErrNotFound is returned by queriers for tools that are not on PATH.
var ErrNotFound = errors.New("tool not found")

// MissingError reports the first tool that could not be invoked.
type MissingError struct {
	Tool string
	Err  error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing dependency: %s. Please install it", e.Tool)
}

func (e *MissingError) Unwrap() error { return e.Err }

// VersionError reports a tool older than its declared minimum.
type VersionError struct {
	Tool    string
	Version string
	Minimum string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s %s is older than the required %s. Please upgrade it", e.Tool, e.Version, e.Minimum)
}

// Checker verifies requirements through a Querier.
type Checker struct {
	Querier Querier
}

// NewChecker returns a Checker that queries real executables.
func NewChecker() *Checker {
	return &Checker{Querier: ExecQuerier{}}
}

// Check verifies each requirement in order and stops at the first failure.
func (c *Checker) Check(ctx context.Context, reqs []Requirement) error {
	for _, req := range reqs {
		if _, err := c.check(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// check returns the detected version (possibly empty) for one requirement.
func (c *Checker) check(ctx context.Context, req Requirement) (string, error) {
	out, err := c.Querier.Version(ctx, req.Name)
	if err != nil {
		return "", &MissingError{Tool: req.Name, Err: err}
	}

	version := ExtractVersion(out)
	if req.MinVersion == "" {
		return version, nil
	}
	if version == "" {
		logging.Warn("could not determine tool version, skipping minimum check", "tool", req.Name, "minimum", req.MinVersion)
		return "", nil
	}

	cmp, err := CompareVersions(version, req.MinVersion)
	if err != nil {
		logging.Warn("skipping version check", "tool", req.Name, "error", err)
		return version, nil
	}
	if cmp < 0 {
		return version, &VersionError{Tool: req.Name, Version: version, Minimum: req.MinVersion}
	}
	return version, nil
}

// Report prints one status line per requirement and returns the number of
// failed requirements. Unlike Check it does not stop at the first failure.
func (c *Checker) Report(ctx context.Context, w io.Writer, reqs []Requirement) int {
	fmt.Fprintln(w, "Dependency check:")
	failed := 0
	for _, req := range reqs {
		version, err := c.check(ctx, req)
		var missing *MissingError
		switch {
		case errors.As(err, &missing):
			fmt.Fprintf(w, "  [MISS] %s not found\n", req.Name)
			failed++
		case err != nil:
			fmt.Fprintf(w, "  [WARN] %v\n", err)
			failed++
		case version == "":
			fmt.Fprintf(w, "  [ OK ] %s (version unknown)\n", req.Name)
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s\n", req.Name, version)
		}
	}
	return failed
}

// ExecQuerier runs `<tool> --version` on the host.
type ExecQuerier struct{}

func (ExecQuerier) Version(ctx context.Context, tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool launched; only its version is unknown.
			return string(out), nil
		}
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return string(out), nil
}
