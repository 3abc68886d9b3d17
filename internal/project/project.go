// Package project turns a command invocation into the ordered steps that
// build it and the messages shown once they finish.
package project

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/anvil-labs/anvil/internal/plan"
	"github.com/anvil-labs/anvil/internal/recipe"
	"github.com/anvil-labs/anvil/internal/scaffold"
)

// Action is a top-level command.
type Action string

const (
	Fabricate Action = "fabricate"
	Construct Action = "construct"
	Assemble  Action = "assemble"
	Ignite    Action = "ignite"
	Blueprint Action = "blueprint"
)

// Parts accepted by Assemble.
const (
	PartReactVite   = "react-vite"
	PartTailwindCSS = "tailwindcss"
	PartShadcn      = "shadcn"
)

// AssembleParts lists the Assemble targets in help order.
var AssembleParts = []string{PartReactVite, PartTailwindCSS, PartShadcn}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Invocation is one parsed command line.
type Invocation struct {
	Action Action
	Name   string
	Lang   string
	// Flag selects the PostCSS Tailwind path for Fabricate.
	Flag bool
	// Part is the Assemble target.
	Part string
}

// Validate rejects bad names and languages before anything runs.
func (inv Invocation) Validate() error {
	if inv.Name == "" {
		return &plan.ArgumentError{Name: "name", Value: `""`, Reason: "A project name is required (-n NAME)."}
	}
	if !namePattern.MatchString(inv.Name) {
		return &plan.ArgumentError{
			Name:   "name",
			Value:  inv.Name,
			Reason: "Use letters, digits, '.', '_' or '-', starting with a letter or digit.",
		}
	}

	switch inv.Action {
	case Fabricate, Assemble:
		if !scaffold.IsSupportedLang(inv.Lang) {
			return &plan.ArgumentError{
				Name:   "lang",
				Value:  inv.Lang,
				Reason: fmt.Sprintf("Supported values are '%s' or '%s'.", scaffold.LangJS, scaffold.LangTS),
			}
		}
	}

	if inv.Action == Assemble && !slices.Contains(AssembleParts, inv.Part) {
		return &plan.ArgumentError{
			Name:   "part",
			Value:  inv.Part,
			Reason: "Use " + PartList() + ".",
		}
	}
	return nil
}

// PartList renders AssembleParts for messages: 'a', 'b' or 'c'.
func PartList() string {
	quoted := make([]string, len(AssembleParts))
	for i, p := range AssembleParts {
		quoted[i] = "'" + p + "'"
	}
	last := len(quoted) - 1
	return strings.Join(quoted[:last], ", ") + " or " + quoted[last]
}

// NeedsTools reports whether the invocation launches external tools.
func (inv Invocation) NeedsTools() bool {
	return inv.Action != Blueprint
}

// Recipes returns the recipe names the invocation runs, in order.
func (inv Invocation) Recipes() []string {
	switch inv.Action {
	case Fabricate:
		tailwind := recipe.TailwindVite
		if inv.Flag {
			tailwind = recipe.TailwindPostCSS
		}
		return []string{recipe.ReactVite, recipe.Install, tailwind}
	case Construct:
		return []string{recipe.NextJS, recipe.Express}
	case Assemble:
		switch inv.Part {
		case PartTailwindCSS:
			return []string{recipe.TailwindVite}
		case PartShadcn:
			return []string{recipe.Shadcn}
		default:
			return []string{recipe.ReactVite}
		}
	case Ignite:
		return []string{recipe.DevServer}
	default:
		return nil
	}
}

// Steps instantiates the invocation's recipes from catalog.
func (inv Invocation) Steps(catalog *recipe.Catalog) ([]plan.Step, error) {
	data := scaffold.NewData(inv.Name, inv.Lang)
	names := inv.Recipes()
	steps := make([]plan.Step, 0, len(names))
	for _, name := range names {
		step, err := catalog.Step(name, data)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Completion is what gets printed after the last step.
type Completion struct {
	Label string // final progress label
	Hint  string // follow-up line, may be empty
}

// Completion returns the success messages for the invocation.
func (inv Invocation) Completion() Completion {
	switch inv.Action {
	case Fabricate:
		return Completion{
			Label: "React-Vite project setup complete!",
			Hint:  fmt.Sprintf("Navigate to '%s' to start building your project.", inv.Name),
		}
	case Construct:
		return Completion{
			Label: "NextJs and ExpressJs setup complete!",
			Hint:  "Your full stack project is ready to go!",
		}
	case Assemble:
		switch inv.Part {
		case PartTailwindCSS:
			return Completion{Label: "TailwindCSS setup complete!"}
		case PartShadcn:
			return Completion{Label: "shadcn/ui setup complete!"}
		}
		return Completion{
			Label: "React-Vite setup complete!",
			Hint:  fmt.Sprintf("Navigate to '%s' to start building your project.", inv.Name),
		}
	case Ignite:
		return Completion{Label: "Development server stopped."}
	case Blueprint:
		return Completion{Hint: fmt.Sprintf("Executing Blueprint command for: %s", inv.Name)}
	default:
		return Completion{}
	}
}
