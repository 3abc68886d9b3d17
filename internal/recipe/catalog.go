package recipe

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/anvil-labs/anvil/internal/deps"
	"github.com/anvil-labs/anvil/internal/plan"
	"github.com/anvil-labs/anvil/internal/scaffold"
	"go.yaml.in/yaml/v3"
)

//go:embed recipes.yaml
var builtinRecipes []byte

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
	builtinErr     error
)

// InvalidError reports a catalog that failed validation.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msg := fmt.Sprintf("recipes %s: %s", e.Source, issueCount(len(e.Issues)))
	for _, issue := range e.Issues {
		msg += "\n  - " + issue.String()
	}
	return msg
}

// Builtin returns the embedded catalog. It is parsed once.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = Parse(builtinRecipes, "(built-in)")
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return builtinCatalog.clone(), nil
}

// Load returns the built-in catalog with the recipes in overlayPath (if any)
// replacing built-ins of the same name. A non-empty requires list in the
// overlay replaces the built-in one.
func Load(overlayPath string) (*Catalog, error) {
	base, err := Builtin()
	if err != nil {
		return nil, err
	}
	if overlayPath == "" {
		return base, nil
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return nil, fmt.Errorf("reading recipes file %s: %w", overlayPath, err)
	}
	overlay, err := Parse(data, overlayPath)
	if err != nil {
		return nil, err
	}

	for name, r := range overlay.Recipes {
		base.Recipes[name] = r
	}
	if len(overlay.Requires) > 0 {
		base.Requires = overlay.Requires
	}
	return base, nil
}

// Parse validates data against the recipe schema, decodes it, and checks
// that referenced templates exist. source names the data in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating recipes %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing recipes %s: %w", source, err)
	}
	if c.Recipes == nil {
		c.Recipes = map[string]Recipe{}
	}

	if issues := c.check(); len(issues) > 0 {
		return nil, &InvalidError{Source: source, Issues: issues}
	}
	return &c, nil
}

// ParseFile reads and parses a recipe file.
func ParseFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipes file %s: %w", path, err)
	}
	return Parse(data, path)
}

// check catches what the schema cannot: unknown scaffold templates and
// template strings that do not parse.
func (c *Catalog) check() []ValidationIssue {
	sample := scaffold.NewData("sample", scaffold.LangJS)
	var issues []ValidationIssue

	for _, name := range c.Names() {
		r := c.Recipes[name]
		base := "/recipes/" + name
		for _, field := range []struct{ path, text string }{
			{base + "/label", r.Label},
			{base + "/failure", r.Failure},
		} {
			if _, err := scaffold.Expand(field.text, sample); err != nil {
				issues = append(issues, ValidationIssue{Path: field.path, Message: err.Error(), Keyword: "template"})
			}
		}
		for i, a := range r.Actions {
			path := fmt.Sprintf("%s/actions/%d", base, i)
			for _, text := range []string{a.Run, a.Dir, a.Mkdir} {
				if _, err := scaffold.Expand(text, sample); err != nil {
					issues = append(issues, ValidationIssue{Path: path, Message: err.Error(), Keyword: "template"})
				}
			}
			if a.Write == nil {
				continue
			}
			if _, err := scaffold.Expand(a.Write.Path, sample); err != nil {
				issues = append(issues, ValidationIssue{Path: path + "/write/path", Message: err.Error(), Keyword: "template"})
			}
			if a.Write.Template != "" && !scaffold.Has(a.Write.Template) {
				issues = append(issues, ValidationIssue{
					Path:    path + "/write/template",
					Message: fmt.Sprintf("unknown template %q", a.Write.Template),
					Keyword: "template",
				})
			}
		}
	}
	return issues
}

// Names returns the recipe names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Recipes))
	for name := range c.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Step expands the named recipe into an executable Step.
func (c *Catalog) Step(name string, data *scaffold.Data) (plan.Step, error) {
	r, ok := c.Recipes[name]
	if !ok {
		return plan.Step{}, fmt.Errorf("recipe %q not found", name)
	}
	return r.Step(name, data)
}

// Step expands the recipe's templates against data.
func (r Recipe) Step(name string, data *scaffold.Data) (plan.Step, error) {
	label, err := scaffold.Expand(r.Label, data)
	if err != nil {
		return plan.Step{}, fmt.Errorf("recipe %s label: %w", name, err)
	}
	failure, err := scaffold.Expand(r.Failure, data)
	if err != nil {
		return plan.Step{}, fmt.Errorf("recipe %s failure: %w", name, err)
	}

	step := plan.Step{Name: name, Label: label, Failure: failure}
	for i, a := range r.Actions {
		action, err := a.expand(data)
		if err != nil {
			return plan.Step{}, fmt.Errorf("recipe %s action %d: %w", name, i, err)
		}
		step.Actions = append(step.Actions, action)
	}
	return step, nil
}

func (a Action) expand(data *scaffold.Data) (plan.Action, error) {
	switch {
	case a.Run != "":
		cmd, err := scaffold.Expand(a.Run, data)
		if err != nil {
			return plan.Action{}, err
		}
		dir, err := scaffold.Expand(a.Dir, data)
		if err != nil {
			return plan.Action{}, err
		}
		return plan.Run(dir, cmd), nil

	case a.Write != nil:
		path, err := scaffold.Expand(a.Write.Path, data)
		if err != nil {
			return plan.Action{}, err
		}
		if a.Write.Template != "" {
			content, err := scaffold.Render(a.Write.Template, data)
			if err != nil {
				return plan.Action{}, err
			}
			return plan.Write(path, content), nil
		}
		var content string
		if a.Write.Content != nil {
			content = *a.Write.Content
		}
		return plan.Write(path, []byte(content)), nil

	case a.Mkdir != "":
		path, err := scaffold.Expand(a.Mkdir, data)
		if err != nil {
			return plan.Action{}, err
		}
		return plan.Mkdir(path), nil

	default:
		return plan.Action{}, fmt.Errorf("action has no run, write or mkdir")
	}
}

func (c *Catalog) clone() *Catalog {
	out := &Catalog{
		Requires: append([]deps.Requirement(nil), c.Requires...),
		Recipes:  make(map[string]Recipe, len(c.Recipes)),
	}
	for name, r := range c.Recipes {
		out.Recipes[name] = r
	}
	return out
}
