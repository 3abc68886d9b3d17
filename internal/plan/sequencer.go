package plan

import "context"

// Progress receives label and advance notifications from the Sequencer.
// progress.Reporter satisfies it.
type Progress interface {
	SetLabel(label string)
	Inc()
	Finish(label string)
	// Stop ends the display after a failure.
	Stop()
}

// Sequencer runs steps strictly in order with at most one in flight.
type Sequencer struct {
	Executor Executor
	Progress Progress
}

// Run executes steps in order. The first failing step ends the run with a
// *StepError; steps after it never execute. When every step succeeds the
// progress display is finished with finalLabel; after a failure it is stopped.
func (s *Sequencer) Run(ctx context.Context, steps []Step, finalLabel string) error {
	p := s.Progress
	if p == nil {
		p = nopProgress{}
	}

	for i, step := range steps {
		p.SetLabel(step.Label)
		if err := s.Executor.Execute(ctx, step); err != nil {
			p.Stop()
			return &StepError{Step: step, Index: i, Err: err}
		}
		p.Inc()
	}

	p.Finish(finalLabel)
	return nil
}

type nopProgress struct{}

func (nopProgress) SetLabel(string) {}
func (nopProgress) Inc()            {}
func (nopProgress) Finish(string)   {}
func (nopProgress) Stop()            {}
