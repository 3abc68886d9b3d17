package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirHonorsHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ANVIL_HOME", dir)

	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLangDefaults(t *testing.T) {
	t.Setenv("ANVIL_HOME", t.TempDir())
	Load()

	if got := Lang(); got != "js" {
		t.Errorf("Lang() = %q, want %q", got, "js")
	}
	if got := RecipesFile(); got != "" {
		t.Errorf("RecipesFile() = %q, want empty", got)
	}
}

func TestLangFromEnv(t *testing.T) {
	t.Setenv("ANVIL_HOME", t.TempDir())
	t.Setenv("ANVIL_DEFAULT_LANG", "ts")
	Load()

	if got := Lang(); got != "ts" {
		t.Errorf("Lang() = %q, want %q", got, "ts")
	}
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ANVIL_HOME", dir)
	Load()

	if err := Set(KeyDefaultLang, "ts"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "default_lang: ts") {
		t.Errorf("config file missing key, got:\n%s", data)
	}

	// A fresh load picks the value up from disk.
	Load()
	if got := Lang(); got != "ts" {
		t.Errorf("Lang() after reload = %q, want %q", got, "ts")
	}
}
