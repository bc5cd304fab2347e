package commands

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/docgen"
	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// PlanCmd implements the 'plan' command. Nothing is executed.
type PlanCmd struct {
	Output string `short:"o" help:"Output root used to resolve the published directories" type:"path" env:"RAILSDOCS_OUTPUT"`
	Format string `name:"format" help:"Output format (text, yaml)" default:"text" enum:"text,yaml"`

	VersionFlags `embed:""`
	NameFlags    `embed:""`
}

// PlannedPair is one pipeline execution of a run.
type PlannedPair struct {
	Pair         versions.Pair `yaml:"pair"`
	LanguageTag  string        `yaml:"language_tag"`
	FrameworkTag string        `yaml:"framework_tag"`
	OutputDir    string        `yaml:"output_dir"`
}

// Plan expands the versions in execution order.
func (p *PlanCmd) Plan() []PlannedPair {
	cfg := config.Defaults()
	p.apply(&cfg)

	lang, fw := p.Args()
	pairs := versions.Pairs(lang, fw)
	out := make([]PlannedPair, 0, len(pairs))
	for _, pair := range pairs {
		dir := docgen.OutputDirName(cfg.Names, pair)
		if p.Output != "" {
			dir = filepath.Join(p.Output, dir)
		}
		out = append(out, PlannedPair{
			Pair:         pair,
			LanguageTag:  versions.LanguageTag(pair.Language),
			FrameworkTag: versions.FrameworkTag(pair.Framework),
			OutputDir:    dir,
		})
	}
	return out
}

func (p *PlanCmd) Run(globals *Global, _ *CLI) error {
	if err := p.VersionFlags.Validate(); err != nil {
		return ferrors.ValidationError("invalid versions").WithCause(err).Build()
	}
	plan := p.Plan()

	if p.Format == "yaml" {
		enc := yaml.NewEncoder(globals.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return ferrors.InternalError("failed to encode plan").WithCause(err).Build()
		}
		return enc.Close()
	}
	for i, pp := range plan {
		_, _ = fmt.Fprintf(globals.Stdout, "%d. ruby %s (%s) + rails %s (%s) -> %s\n",
			i+1, pp.Pair.Language, pp.LanguageTag, pp.Pair.Framework, pp.FrameworkTag, pp.OutputDir)
	}
	return nil
}
