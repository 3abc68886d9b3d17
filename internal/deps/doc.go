// Package deps verifies that the external tools a command shells out to are
// installed before any work starts. Each tool is queried with `<tool> --version`;
// an optional minimum version is compared using semantic versioning.
package deps
