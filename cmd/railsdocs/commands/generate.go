package commands

import (
	"fmt"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/docgen"
	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/git"
	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"git.home.luguber.info/inful/railsdocs/internal/metrics"
	"git.home.luguber.info/inful/railsdocs/internal/observability"
	"git.home.luguber.info/inful/railsdocs/internal/process"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output   string `short:"o" help:"Output root for the published documentation" required:"" type:"path" env:"RAILSDOCS_OUTPUT"`
	Sdoc     string `name:"sdoc" help:"sdoc checkout (lib/, bin/sdoc, bin/sdoc-merge)" required:"" type:"path" env:"RAILSDOCS_SDOC_DIR"`
	RubyDir  string `name:"ruby-dir" help:"Ruby source tree (git working copy)" required:"" type:"path" env:"RAILSDOCS_RUBY_DIR"`
	RailsDir string `name:"rails-dir" help:"Rails source tree (git working copy)" required:"" type:"path" env:"RAILSDOCS_RAILS_DIR"`

	Ruby       string `name:"ruby" help:"ruby executable" default:"ruby" env:"RAILSDOCS_RUBY"`
	Rake       string `name:"rake" help:"rake executable" default:"rake" env:"RAILSDOCS_RAKE"`
	Git        string `name:"git" help:"git executable (exec backend)" default:"git" env:"RAILSDOCS_GIT"`
	GitBackend string `name:"git-backend" help:"Checkout backend (exec, go-git)" default:"exec" env:"RAILSDOCS_GIT_BACKEND"`
	WorkDir    string `name:"work-dir" help:"Parent directory of the temporary workspace (default: system temp dir)" type:"path" env:"RAILSDOCS_WORK_DIR"`

	Report      string `name:"report" help:"Write a YAML run report to FILE" type:"path" placeholder:"FILE" env:"RAILSDOCS_REPORT"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to FILE" type:"path" placeholder:"FILE" env:"RAILSDOCS_METRICS_FILE"`

	VersionFlags `embed:""`
	NameFlags    `embed:""`
}

// Config builds the run configuration from the flags.
func (g *GenerateCmd) Config() config.Config {
	cfg := config.Defaults()
	cfg.OutputDir = g.Output
	cfg.SdocDir = g.Sdoc
	cfg.LanguageDir = g.RubyDir
	cfg.FrameworkDir = g.RailsDir
	cfg.Tools = config.Tools{Ruby: g.Ruby, Rake: g.Rake, Git: g.Git}
	cfg.GitBackend = config.GitBackend(g.GitBackend)
	cfg.Workspace.BaseDir = g.WorkDir
	g.apply(&cfg)
	return cfg
}

func (g *GenerateCmd) Run(globals *Global, _ *CLI) error {
	cfg := g.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := g.VersionFlags.Validate(); err != nil {
		return ferrors.ValidationError("invalid versions").WithCause(err).Build()
	}
	lang, fw := g.Args()
	logger := globals.Logger

	ctx := observability.WithRunID(globals.Context, uuid.NewString())
	logger = observability.Logger(ctx, logger)
	logger.Info("Starting documentation generation",
		"ruby_versions", lang.String(),
		"rails_versions", fw.String(),
		logfields.Path(cfg.OutputDir))

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if g.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}
	runner := metrics.NewInstrumentedRunner(process.NewExecRunner(logger), recorder)

	var checkouter git.Checkouter
	switch cfg.EffectiveGitBackend() {
	case config.GitBackendGoGit:
		checkouter = git.NewGoGitCheckouter()
	default:
		checkouter = git.NewExecCheckouter(runner, cfg.Tools.Git)
	}

	gen := docgen.NewGenerator(cfg, runner, checkouter,
		docgen.WithRecorder(recorder),
		docgen.WithLogger(logger))
	rep, err := gen.Generate(ctx, lang, fw)

	if g.Report != "" {
		if perr := rep.Persist(g.Report); perr != nil {
			logger.Warn("Failed to write run report", logfields.Path(g.Report), logfields.Error(perr))
		}
	}
	if prom != nil {
		if werr := prom.WriteTextfile(g.MetricsFile); werr != nil {
			logger.Warn("Failed to write metrics file", logfields.Path(g.MetricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	logger.Info("Documentation generation complete",
		"pairs", len(rep.Pairs),
		logfields.Duration(rep.Duration()))
	_, _ = fmt.Fprintln(globals.Stdout, rep.Summary())
	return nil
}
