package recipe

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/recipe.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a recipe file against the
// embedded schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem found in a recipe file.
type ValidationIssue struct {
	Path    string // JSON pointer into the file, e.g. "/recipes/install/actions/0"
	Message string
	Keyword string // failing schema keyword, e.g. "required"
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Messages for the schema's oneOf unions. The raw validator output for a
// union lists every branch; one sentence per location reads better.
const (
	actionUnionMessage = "an action needs exactly one of run, write or mkdir (dir is only allowed with run)"
	writeUnionMessage  = "write needs exactly one of template or content"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func recipeSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("decoding recipe schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("recipe.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("registering recipe schema: %w", err)
			return
		}
		if compiledSchema, err = c.Compile("recipe.schema.json"); err != nil {
			compileErr = fmt.Errorf("compiling recipe schema: %w", err)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks YAML recipe data against the schema. A non-nil error means
// the data could not be checked at all (malformed YAML, broken schema);
// schema violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := recipeSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// The validator expects values shaped like its own JSON decoder output.
	encoded, err := json.Marshal(jsonCompatible(doc))
	if err != nil {
		return nil, fmt.Errorf("converting recipes to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("converting recipes to JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("validating recipes: %w", err)
	}
	return &ValidationResult{Issues: issuesFrom(verr)}, nil
}

// ValidateFile reads a file and validates it against the recipe schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

func issueCount(n int) string {
	if n == 1 {
		return "1 validation issue"
	}
	return printer.Sprintf("%d validation issues", n)
}

// issuesFrom flattens the error tree into unique issues ordered by path.
func issuesFrom(root *jsonschema.ValidationError) []ValidationIssue {
	seen := map[ValidationIssue]bool{}
	var issues []ValidationIssue
	var walk func(ve *jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		keyword := lastKeyword(ve)
		if keyword == "oneOf" {
			add(&issues, seen, ValidationIssue{
				Path:    pointer(ve.InstanceLocation),
				Message: unionMessage(ve),
				Keyword: keyword,
			})
			return
		}
		if len(ve.Causes) == 0 {
			if keyword != "" && keyword != "$ref" {
				add(&issues, seen, ValidationIssue{
					Path:    pointer(ve.InstanceLocation),
					Message: ve.ErrorKind.LocalizedString(printer),
					Keyword: keyword,
				})
			}
			return
		}
		for _, cause := range ve.Causes {
			walk(cause)
		}
	}
	walk(root)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

func add(issues *[]ValidationIssue, seen map[ValidationIssue]bool, issue ValidationIssue) {
	if seen[issue] {
		return
	}
	seen[issue] = true
	*issues = append(*issues, issue)
}

func lastKeyword(ve *jsonschema.ValidationError) string {
	if ve.ErrorKind == nil {
		return ""
	}
	path := ve.ErrorKind.KeywordPath()
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

// unionMessage explains a failed oneOf by where it sits in the recipe file:
// "/recipes/<name>/actions/<i>" is an action, ".../write" a write spec.
func unionMessage(ve *jsonschema.ValidationError) string {
	loc := ve.InstanceLocation
	n := len(loc)
	switch {
	case n >= 2 && loc[n-2] == "actions":
		return actionUnionMessage
	case n >= 1 && loc[n-1] == "write":
		return writeUnionMessage
	default:
		return ve.ErrorKind.LocalizedString(printer)
	}
}

func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range loc {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(seg))
	}
	return b.String()
}

// jsonCompatible converts decoded YAML into values encoding/json accepts;
// non-string map keys are stringified.
func jsonCompatible(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = jsonCompatible(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = jsonCompatible(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = jsonCompatible(v)
		}
		return a
	default:
		return val
	}
}
