//go:build integration && !windows

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // ANVIL_HOME
	BinDir     string // fake npm/npx, first on PATH
	ProjectDir string // working directory the tools run in
	LogPath    string // one line per fake tool invocation
}

const fakeTool = `#!/bin/sh
echo "$(basename "$0") $*" >> "$ANVIL_FAKE_LOG"
if [ "$1" = "--version" ]; then
  echo "${ANVIL_FAKE_VERSION:-10.2.0}"
  exit 0
fi
case "$1" in
  create-vite@latest|create-next-app@latest) mkdir -p "$2" ;;
esac
if [ -n "$ANVIL_FAKE_FAIL" ]; then
  case "$*" in
    *"$ANVIL_FAKE_FAIL"*) exit 3 ;;
  esac
fi
exit 0
`

// setupTestEnv creates isolated directories, installs fake npm and npx
// scripts on PATH and changes into the project directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.LogPath = filepath.Join(env.HomeDir, "invocations.log")

	for _, tool := range []string{"npm", "npx"} {
		path := filepath.Join(env.BinDir, tool)
		if err := os.WriteFile(path, []byte(fakeTool), 0755); err != nil {
			t.Fatalf("writing fake %s: %v", tool, err)
		}
	}

	t.Setenv("ANVIL_HOME", env.HomeDir)
	t.Setenv("ANVIL_FAKE_LOG", env.LogPath)
	t.Setenv("ANVIL_FAKE_FAIL", "")
	t.Setenv("NO_INTERACTION", "1")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.ProjectDir)

	return env
}

// invocations returns the logged fake tool command lines.
func (e *testEnv) invocations(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading invocation log: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// writeFile creates path with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
