package docgen

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"git.home.luguber.info/inful/railsdocs/internal/metrics"
	"git.home.luguber.info/inful/railsdocs/internal/observability"
	"git.home.luguber.info/inful/railsdocs/internal/report"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
	"git.home.luguber.info/inful/railsdocs/internal/workspace"
)

// StageName is a strongly-typed identifier for a pair pipeline stage.
type StageName string

// Pair pipeline stages in execution order.
const (
	StageLanguageDocs  StageName = "language_docs"
	StageFrameworkDocs StageName = "framework_docs"
	StageMerge         StageName = "merge"
	StagePublish       StageName = "publish"
)

// State is the progress of one pair through its pipeline.
type State string

const (
	StateNotStarted           State = "NOT_STARTED"
	StateLangCheckedOut       State = "LANG_CHECKED_OUT"
	StateLangDocsBuilt        State = "LANG_DOCS_BUILT"
	StateFwCheckedOutAndClean State = "FW_CHECKED_OUT_AND_CLEANED"
	StateFwDocsBuilt          State = "FW_DOCS_BUILT"
	StateMerged               State = "MERGED"
	StatePublished            State = "PUBLISHED"
	StateAborted              State = "ABORTED"
)

// pairRun is the working state of one pair. It lives for one pipeline
// execution and is never shared.
type pairRun struct {
	pair   versions.Pair
	ws     *workspace.Manager
	logger *slog.Logger
	state  State

	languageDocs  string
	frameworkDocs string
	merged        string
	outputDir     string
}

func (r *pairRun) transition(s State, attrs ...any) {
	r.state = s
	r.logger.Debug("Pair state changed", append([]any{logfields.State(string(s))}, attrs...)...)
}

// stageFn runs one stage; skipped reports that existing output was reused.
type stageFn func(ctx context.Context, run *pairRun) (skipped bool, err error)

type stageDef struct {
	name StageName
	fn   stageFn
}

// runStages executes stages in order, recording timing and outcome, and stops
// at the first error or cancellation.
func runStages(ctx context.Context, run *pairRun, defs []stageDef, rec metrics.Recorder) (report.PairReport, error) {
	pr := report.PairReport{Pair: run.pair}
	for _, st := range defs {
		if err := ctx.Err(); err != nil {
			run.transition(StateAborted)
			return pr, err
		}
		stageCtx := observability.WithStage(ctx, string(st.name))

		t0 := time.Now()
		skipped, err := st.fn(stageCtx, run)
		dur := time.Since(t0)

		sr := report.StageReport{Name: string(st.name), Skipped: skipped, Duration: dur}
		rec.ObserveStageDuration(string(st.name), dur)
		switch {
		case err != nil:
			sr.Error = err.Error()
			rec.IncStageResult(string(st.name), metrics.ResultFailed)
		case skipped:
			rec.IncStageResult(string(st.name), metrics.ResultSkipped)
		default:
			rec.IncStageResult(string(st.name), metrics.ResultSuccess)
		}
		pr.Stages = append(pr.Stages, sr)

		if err != nil {
			run.transition(StateAborted, logfields.Stage(string(st.name)), logfields.Error(err))
			return pr, err
		}
	}
	pr.OutputDir = run.outputDir
	pr.Published = run.state == StatePublished
	return pr, nil
}
