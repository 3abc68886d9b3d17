package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anvil-labs/anvil/internal/plan"
	"github.com/anvil-labs/anvil/internal/scaffold"
)

func TestBuiltin_HasDispatcherRecipes(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	for _, name := range []string{ReactVite, Install, TailwindVite, TailwindPostCSS, Shadcn, NextJS, Express, DevServer} {
		if _, ok := c.Recipes[name]; !ok {
			t.Errorf("built-in catalog missing %q", name)
		}
	}
	if len(c.Requires) != 2 {
		t.Errorf("Requires = %v, want npm and npx", c.Requires)
	}
	for _, req := range c.Requires {
		if req.MinVersion != "" {
			t.Errorf("built-in requirement %s has minimum %q; only invocability is required", req.Name, req.MinVersion)
		}
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	delete(a.Recipes, Install)

	b, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Recipes[Install]; !ok {
		t.Error("mutating one Builtin() result leaked into the next")
	}
}

func TestStep_ReactViteTypeScript(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	step, err := c.Step(ReactVite, scaffold.NewData("demo", scaffold.LangTS))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if step.Label != "Setting up React with Vite..." {
		t.Errorf("Label = %q", step.Label)
	}
	if len(step.Actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(step.Actions))
	}
	want := "npx create-vite@latest demo --template react-ts"
	if got := step.Actions[0].Command; got != want {
		t.Errorf("Command = %q, want %q", got, want)
	}
}

func TestStep_TailwindViteWritesConfig(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	step, err := c.Step(TailwindVite, scaffold.NewData("demo", scaffold.LangJS))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}

	var writes []plan.Action
	for _, a := range step.Actions {
		switch a.Kind {
		case plan.ActionRun:
			if a.Dir != "demo" {
				t.Errorf("run dir = %q, want demo", a.Dir)
			}
		case plan.ActionWrite:
			writes = append(writes, a)
		}
	}
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
	if writes[0].Path != "demo/vite.config.js" {
		t.Errorf("write path = %q", writes[0].Path)
	}
	if !strings.Contains(string(writes[0].Content), "tailwindcss") {
		t.Errorf("vite config does not mention tailwindcss:\n%s", writes[0].Content)
	}
}

func TestStep_UnknownRecipe(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Step("nope", scaffold.NewData("demo", scaffold.LangJS)); err == nil {
		t.Fatal("expected error for unknown recipe")
	}
}

func TestStep_InlineContent(t *testing.T) {
	content := "hello {{.Name}}"
	r := Recipe{
		Label:   "Writing {{.Name}}",
		Failure: "Failed",
		Actions: []Action{{Write: &WriteSpec{Path: "{{.Name}}/README", Content: &content}}},
	}
	step, err := r.Step("readme", scaffold.NewData("demo", scaffold.LangJS))
	if err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if step.Label != "Writing demo" {
		t.Errorf("Label = %q", step.Label)
	}
	// Inline content is written verbatim.
	if got := string(step.Actions[0].Content); got != content {
		t.Errorf("Content = %q, want %q", got, content)
	}
}

func TestParse_UnknownTemplate(t *testing.T) {
	data := []byte(`
recipes:
  custom:
    label: Custom
    failure: Failed
    actions:
      - write:
          path: out.txt
          template: does-not-exist
`)
	_, err := Parse(data, "test")
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}
	if !strings.Contains(invalid.Error(), "does-not-exist") {
		t.Errorf("error does not name the template: %v", invalid)
	}
}

func TestParse_BadTemplateSyntax(t *testing.T) {
	data := []byte(`
recipes:
  custom:
    label: Custom
    failure: Failed
    actions:
      - run: "echo {{.Name"
`)
	if _, err := Parse(data, "test"); err == nil {
		t.Fatal("expected error for unparsable template")
	}
}

func TestLoad_OverlayReplacesByName(t *testing.T) {
	overlay := `
requires:
  - name: pnpm
recipes:
  install:
    label: Installing with pnpm...
    failure: Failed to install dependencies
    actions:
      - run: pnpm install
        dir: "{{.Name}}"
`
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	step, err := c.Step(Install, scaffold.NewData("demo", scaffold.LangJS))
	if err != nil {
		t.Fatal(err)
	}
	if step.Actions[0].Command != "pnpm install" {
		t.Errorf("Command = %q, want pnpm install", step.Actions[0].Command)
	}
	if _, ok := c.Recipes[ReactVite]; !ok {
		t.Error("overlay dropped untouched built-in recipes")
	}
	if len(c.Requires) != 1 || c.Requires[0].Name != "pnpm" {
		t.Errorf("Requires = %v, want [pnpm]", c.Requires)
	}
}

func TestLoad_NoOverlay(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Names()) < 7 {
		t.Errorf("Names() = %v", c.Names())
	}
}

func TestLoad_MissingOverlay(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing overlay")
	}
}
