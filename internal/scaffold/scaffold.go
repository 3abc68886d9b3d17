package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const templatesDir = "templates"

// Supported project languages.
const (
	LangJS = "js"
	LangTS = "ts"
)

// Data holds all template variables available to file templates and to
// recipe command lines.
type Data struct {
	Name         string // project directory, e.g. "demo"
	Lang         string // "js" or "ts"
	ViteTemplate string // Derived: create-vite template, "react" or "react-ts"
	ConfigExt    string // Derived: extension of vite.config, "js" or "ts"
}

// NewData creates a Data with derived fields populated. Any language other
// than "ts" is treated as JavaScript; callers validate before this point.
func NewData(name, lang string) *Data {
	d := &Data{
		Name:         name,
		Lang:         lang,
		ViteTemplate: "react",
		ConfigExt:    LangJS,
	}
	if lang == LangTS {
		d.ViteTemplate = "react-ts"
		d.ConfigExt = LangTS
	}
	return d
}

// IsSupportedLang reports whether lang is one of the supported languages.
func IsSupportedLang(lang string) bool {
	return lang == LangJS || lang == LangTS
}

// Render executes the embedded template name (e.g. "vite.config") against data.
func Render(name string, data *Data) ([]byte, error) {
	tmplPath := path.Join(templatesDir, name+".tmpl")
	tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Expand evaluates an inline template string such as a command line or a
// file path against data.
func Expand(text string, data *Data) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	tmpl, err := template.New("inline").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", text, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("expanding %q: %w", text, err)
	}
	return buf.String(), nil
}

// Templates lists the embedded template names.
func Templates() []string {
	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is an embedded template.
func Has(name string) bool {
	_, err := fs.Stat(templateFS, path.Join(templatesDir, name+".tmpl"))
	return err == nil
}
