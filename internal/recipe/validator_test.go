package recipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_BuiltinCatalog(t *testing.T) {
	result, err := Validate(builtinRecipes)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("built-in catalog is invalid: %v", result.Issues)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		keywords []string
	}{
		{
			name: "missing label",
			yaml: `
recipes:
  broken:
    failure: nope
    actions:
      - run: echo hi
`,
			keywords: []string{"required"},
		},
		{
			name: "empty actions",
			yaml: `
recipes:
  broken:
    label: Broken
    failure: nope
    actions: []
`,
			keywords: []string{"minItems"},
		},
		{
			name: "unknown top-level key",
			yaml: `
recipes: {}
extras: true
`,
			keywords: []string{"additionalProperties"},
		},
		{
			name: "bad recipe name",
			yaml: `
recipes:
  Bad_Name:
    label: x
    failure: y
    actions:
      - run: echo
`,
			keywords: []string{"pattern", "propertyNames"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				for _, kw := range tt.keywords {
					if issue.Keyword == kw {
						found = true
					}
				}
			}
			if !found {
				t.Errorf("expected one of %v, got %v", tt.keywords, result.Issues)
			}
		})
	}
}

func TestValidate_ActionMustHaveOneKind(t *testing.T) {
	data := []byte(`
recipes:
  both:
    label: x
    failure: y
    actions:
      - run: echo
        mkdir: out
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("action with run and mkdir should be invalid")
	}
	assertIssue(t, result.Issues, "/recipes/both/actions/0", actionUnionMessage)
	for _, issue := range result.Issues {
		if issue.Keyword == "not" || issue.Keyword == "required" {
			t.Errorf("union branch detail leaked into issues: %v", issue)
		}
	}
}

func TestValidate_WriteNeedsOneSource(t *testing.T) {
	data := []byte(`
recipes:
  w:
    label: x
    failure: y
    actions:
      - write:
          path: out.txt
          template: vite.config
          content: hello
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("write with template and content should be invalid")
	}
	assertIssue(t, result.Issues, "/recipes/w/actions/0/write", writeUnionMessage)
}

func TestPointerEscapes(t *testing.T) {
	if got := pointer([]string{"recipes", "a/b~c"}); got != "/recipes/a~1b~0c" {
		t.Errorf("pointer() = %q", got)
	}
	if got := pointer(nil); got != "" {
		t.Errorf("pointer(nil) = %q, want empty", got)
	}
}

func assertIssue(t *testing.T, issues []ValidationIssue, path, message string) {
	t.Helper()
	for _, issue := range issues {
		if issue.Path == path && issue.Message == message {
			return
		}
	}
	t.Errorf("no issue %q at %s in %v", message, path, issues)
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("recipes: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, builtinRecipes, 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIssueString(t *testing.T) {
	issue := ValidationIssue{Path: "/recipes/x", Message: "missing property"}
	if got := issue.String(); !strings.HasPrefix(got, "/recipes/x: ") {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q, want %q", got, "bad")
	}
}
