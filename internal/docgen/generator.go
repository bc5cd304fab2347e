package docgen

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/fsutil"
	"git.home.luguber.info/inful/railsdocs/internal/git"
	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"git.home.luguber.info/inful/railsdocs/internal/metrics"
	"git.home.luguber.info/inful/railsdocs/internal/observability"
	"git.home.luguber.info/inful/railsdocs/internal/process"
	"git.home.luguber.info/inful/railsdocs/internal/report"
	"git.home.luguber.info/inful/railsdocs/internal/source"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
	"git.home.luguber.info/inful/railsdocs/internal/workspace"
)

// Generator runs the documentation pipeline. It holds only run-independent
// collaborators; everything that varies per pair is passed explicitly.
type Generator struct {
	cfg      config.Config
	runner   process.Runner
	preparer *source.Preparer
	commands Commands
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator. The source trees are checked out with
// checkouter; every other external command goes through runner.
func NewGenerator(cfg config.Config, runner process.Runner, checkouter git.Checkouter, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		runner:   runner,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.commands = NewCommands(&g.cfg)
	g.preparer = source.NewPreparer(source.Trees{
		LanguageDir:  cfg.LanguageDir,
		FrameworkDir: cfg.FrameworkDir,
		Rake:         cfg.Tools.Rake,
	}, checkouter, runner)
	return g
}

// OutputDirName is the published directory name for pair.
func (g *Generator) OutputDirName(pair versions.Pair) string {
	return OutputDirName(g.cfg.Names, pair)
}

// OutputPath is the published directory for pair.
func (g *Generator) OutputPath(pair versions.Pair) string {
	return filepath.Join(g.cfg.OutputDir, g.OutputDirName(pair))
}

// Generate builds and publishes the docs for every pair of the cross product
// of lang and fw, in expansion order. The returned report is never nil and
// describes all pairs reached, including the one that failed.
func (g *Generator) Generate(ctx context.Context, lang, fw versions.Arg) (*report.RunReport, error) {
	rep := report.New(observability.GetContext(ctx).RunID)
	err := g.generate(ctx, rep, lang, fw)
	rep.Finish(err)

	g.recorder.ObserveRunDuration(rep.Duration())
	if err != nil {
		g.recorder.IncRunOutcome(metrics.OutcomeFailed)
	} else {
		g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	}
	return rep, err
}

func (g *Generator) generate(ctx context.Context, rep *report.RunReport, lang, fw versions.Arg) error {
	if err := lang.Validate(); err != nil {
		return ferrors.ValidationError("invalid language versions").WithCause(err).Build()
	}
	if err := fw.Validate(); err != nil {
		return ferrors.ValidationError("invalid framework versions").WithCause(err).Build()
	}

	log := observability.Logger(ctx, g.logger)
	return workspace.With(g.cfg.Workspace.BaseDir, g.cfg.Workspace.Prefix, func(ws *workspace.Manager) error {
		log.Info("Workspace created", logfields.Path(ws.Path()))
		return versions.Expand(lang, fw, func(pair versions.Pair) error {
			if err := g.ensureOutputRoot(); err != nil {
				return err
			}
			pr, err := g.RunPair(ctx, ws, pair)
			rep.AddPair(pr)
			return err
		})
	})
}

func (g *Generator) ensureOutputRoot() error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return ferrors.FileSystemError("cannot create output directory").
			WithCause(err).
			WithContext("path", g.cfg.OutputDir).
			Build()
	}
	return nil
}

// RunPair runs the pipeline for a single pair inside ws and publishes the
// result. Intermediate directories already present in ws are reused.
func (g *Generator) RunPair(ctx context.Context, ws *workspace.Manager, pair versions.Pair) (report.PairReport, error) {
	ctx = observability.WithPair(ctx, pair)
	run := &pairRun{
		pair:          pair,
		ws:            ws,
		logger:        observability.Logger(ctx, g.logger),
		state:         StateNotStarted,
		languageDocs:  ws.Join(LanguageDocsName(pair.Language)),
		frameworkDocs: ws.Join(FrameworkDocsName(pair.Framework)),
		merged:        ws.Join(MergedDocsName(pair)),
		outputDir:     g.OutputPath(pair),
	}
	run.logger.Info("Generating documentation")
	start := time.Now()

	pr, err := runStages(ctx, run, []stageDef{
		{StageLanguageDocs, g.stageLanguageDocs},
		{StageFrameworkDocs, g.stageFrameworkDocs},
		{StageMerge, g.stageMerge},
		{StagePublish, g.stagePublish},
	}, g.recorder)
	if err != nil {
		run.logger.Error("Aborting", logfields.Error(err))
		return pr, err
	}
	g.recorder.IncPairsPublished()
	run.logger.Info("Documentation published", logfields.Path(run.outputDir), logfields.Duration(time.Since(start)))
	return pr, nil
}

func (g *Generator) stageLanguageDocs(ctx context.Context, run *pairRun) (bool, error) {
	if run.ws.Exists(LanguageDocsName(run.pair.Language)) {
		run.logger.Info("Reusing language docs", logfields.Path(run.languageDocs))
		run.transition(StateLangDocsBuilt, "skipped", true)
		return true, nil
	}
	if err := g.preparer.PrepareLanguage(ctx, run.pair.Language); err != nil {
		return false, err
	}
	run.transition(StateLangCheckedOut)
	if _, err := g.runner.Run(ctx, g.commands.LanguageDocs(run.languageDocs)); err != nil {
		return false, err
	}
	run.transition(StateLangDocsBuilt)
	return false, nil
}

func (g *Generator) stageFrameworkDocs(ctx context.Context, run *pairRun) (bool, error) {
	if run.ws.Exists(FrameworkDocsName(run.pair.Framework)) {
		run.logger.Info("Reusing framework docs", logfields.Path(run.frameworkDocs))
		run.transition(StateFwDocsBuilt, "skipped", true)
		return true, nil
	}
	if err := g.preparer.PrepareFramework(ctx, run.pair.Framework); err != nil {
		return false, err
	}
	run.transition(StateFwCheckedOutAndClean)
	if _, err := g.runner.Run(ctx, g.commands.FrameworkDocs()); err != nil {
		return false, err
	}
	if err := fsutil.Move(g.commands.FrameworkDocsOutput(), run.frameworkDocs); err != nil {
		return false, err
	}
	run.transition(StateFwDocsBuilt)
	return false, nil
}

func (g *Generator) stageMerge(ctx context.Context, run *pairRun) (bool, error) {
	if run.ws.Exists(MergedDocsName(run.pair)) {
		run.logger.Info("Reusing merged docs", logfields.Path(run.merged))
		run.transition(StateMerged, "skipped", true)
		return true, nil
	}
	cmd := g.commands.Merge(run.pair, run.merged, run.languageDocs, run.frameworkDocs)
	if _, err := g.runner.Run(ctx, cmd); err != nil {
		return false, err
	}
	run.transition(StateMerged)
	return false, nil
}

func (g *Generator) stagePublish(_ context.Context, run *pairRun) (bool, error) {
	if err := fsutil.CopyTree(run.merged, run.outputDir); err != nil {
		return false, err
	}
	run.transition(StatePublished, logfields.Path(run.outputDir))
	return false, nil
}
