// Package progress tracks completion of a fixed number of steps and renders
// it either as a bar redrawn in place (interactive terminals) or as one line
// per label change (CI logs, pipes). Launched tools share the terminal, so
// the bar line is always terminated before a step starts.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/anvil-labs/anvil/internal/ui"
)

const barWidth = 30

// Reporter displays the position of a running step sequence. It is owned by
// a single goroutine and is purely observational: write errors are ignored.
type Reporter struct {
	w           io.Writer
	total       int
	current     int
	label       string
	interactive bool
	finished    bool
	open        bool // an unterminated bar line is on screen
}

// New returns a Reporter for total steps writing to w.
func New(w io.Writer, total int, interactive bool) *Reporter {
	if total < 0 {
		total = 0
	}
	return &Reporter{w: w, total: total, interactive: interactive}
}

// SetLabel changes the label shown next to the bar. In interactive mode the
// line is ended so output of the step that follows starts on its own line.
func (r *Reporter) SetLabel(label string) {
	r.label = label
	r.render()
	r.endLine()
}

// Inc advances by one step. Advancing past the total is a no-op.
func (r *Reporter) Inc() {
	if r.current >= r.total {
		return
	}
	r.current++
	if r.interactive {
		r.render()
	}
}

// Finish shows a final label and ends the bar's line.
func (r *Reporter) Finish(label string) {
	if r.finished {
		return
	}
	r.finished = true
	r.label = label
	r.render()
	r.endLine()
}

// Stop ends the display without a final label, leaving the cursor on a fresh
// line for the error that follows.
func (r *Reporter) Stop() {
	if r.finished {
		return
	}
	r.finished = true
	r.endLine()
}

func (r *Reporter) endLine() {
	if !r.open {
		return
	}
	r.open = false
	fmt.Fprintln(r.w)
}

// Position returns the completed step count and the total.
func (r *Reporter) Position() (current, total int) {
	return r.current, r.total
}

// Label returns the current label.
func (r *Reporter) Label() string {
	return r.label
}

func (r *Reporter) render() {
	if r.w == nil {
		return
	}
	if !r.interactive {
		fmt.Fprintln(r.w, formatPlain(r.current, r.total, r.label))
		return
	}
	fmt.Fprintf(r.w, "\r\033[K%s %s %s", renderBar(r.current, r.total), ui.Muted(counter(r.current, r.total)), r.label)
	r.open = true
}

func formatPlain(current, total int, label string) string {
	return counter(current, total) + " " + label
}

func counter(current, total int) string {
	return fmt.Sprintf("[%d/%d]", current, total)
}

func renderBar(current, total int) string {
	filled := barWidth
	if total > 0 {
		filled = barWidth * current / total
	}
	return "[" + ui.Accent(strings.Repeat("#", filled)) + ui.Muted(strings.Repeat("-", barWidth-filled)) + "]"
}
