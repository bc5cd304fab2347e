package metrics

import (
	"context"

	"git.home.luguber.info/inful/railsdocs/internal/process"
)

// InstrumentedRunner wraps a Runner and reports each command to a Recorder.
type InstrumentedRunner struct {
	next     process.Runner
	recorder Recorder
}

// NewInstrumentedRunner wraps next; a nil recorder disables reporting.
func NewInstrumentedRunner(next process.Runner, recorder Recorder) *InstrumentedRunner {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	return &InstrumentedRunner{next: next, recorder: recorder}
}

func (r *InstrumentedRunner) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	res, err := r.next.Run(ctx, cmd)
	r.recorder.ObserveCommand(cmd.Tool(), res.Duration, err == nil)
	return res, err
}
