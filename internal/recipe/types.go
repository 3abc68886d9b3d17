package recipe

import "github.com/anvil-labs/anvil/internal/deps"

// Built-in recipe names referenced by the command dispatcher.
const (
	ReactVite       = "react-vite"
	Install         = "install"
	TailwindVite    = "tailwind-vite"
	TailwindPostCSS = "tailwind-postcss"
	Shadcn          = "shadcn"
	NextJS          = "nextjs"
	Express         = "express"
	DevServer       = "dev-server"
)

// Catalog is the parsed recipe file.
type Catalog struct {
	Requires []deps.Requirement `yaml:"requires,omitempty"`
	Recipes  map[string]Recipe  `yaml:"recipes"`
}

// Recipe describes one Step before its templates are expanded.
type Recipe struct {
	Label   string   `yaml:"label"`
	Failure string   `yaml:"failure"`
	Actions []Action `yaml:"actions"`
}

// Action is exactly one of Run (optionally with Dir), Write or Mkdir.
type Action struct {
	Run   string     `yaml:"run,omitempty"`
	Dir   string     `yaml:"dir,omitempty"`
	Write *WriteSpec `yaml:"write,omitempty"`
	Mkdir string     `yaml:"mkdir,omitempty"`
}

// WriteSpec writes either an embedded scaffold template or inline content.
type WriteSpec struct {
	Path     string  `yaml:"path"`
	Template string  `yaml:"template,omitempty"`
	Content  *string `yaml:"content,omitempty"`
}
