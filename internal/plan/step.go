package plan

import "fmt"

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActionRun ActionKind = iota + 1
	ActionWrite
	ActionMkdir
)

// Action is a single side effect inside a Step.
type Action struct {
	Kind    ActionKind
	Command string // ActionRun: shell command line
	Dir     string // ActionRun: working directory, "" for current
	Path    string // ActionWrite, ActionMkdir: slash-separated path
	Content []byte // ActionWrite: file body
}

// Run returns an Action that executes commandLine in dir.
func Run(dir, commandLine string) Action {
	return Action{Kind: ActionRun, Dir: dir, Command: commandLine}
}

// Write returns an Action that writes content to path, creating parents.
func Write(path string, content []byte) Action {
	return Action{Kind: ActionWrite, Path: path, Content: content}
}

// Mkdir returns an Action that creates path and its parents.
func Mkdir(path string) Action {
	return Action{Kind: ActionMkdir, Path: path}
}

// String renders the Action the way a dry run prints it.
func (a Action) String() string {
	switch a.Kind {
	case ActionRun:
		if a.Dir != "" {
			return fmt.Sprintf("cd %s && %s", a.Dir, a.Command)
		}
		return a.Command
	case ActionWrite:
		return fmt.Sprintf("write %s (%d bytes)", a.Path, len(a.Content))
	case ActionMkdir:
		return "mkdir -p " + a.Path
	default:
		return "unknown action"
	}
}

// Step is one labelled unit of work in a sequence.
type Step struct {
	Name    string // recipe the step was built from, e.g. "install"
	Label   string // shown by the progress reporter while the step runs
	Failure string // prefix of the diagnostic printed when the step fails
	Actions []Action
}
