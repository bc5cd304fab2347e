package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/railsdocs/internal/config"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// Global is passed to every command's Run.
type Global struct {
	Context context.Context
	Stdout  io.Writer
	Logger  *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose   bool             `short:"v" help:"Enable verbose logging" env:"RAILSDOCS_VERBOSE"`
	LogLevel  string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" env:"RAILSDOCS_LOG_LEVEL"`
	LogFormat string           `name:"log-format" help:"Log format (text, json)" default:"text" env:"RAILSDOCS_LOG_FORMAT"`
	EnvFile   []string         `name:"env-file" help:"Load KEY=VALUE pairs from file before parsing (repeatable)" placeholder:"FILE"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate and publish merged Ruby and Rails documentation"`
	Plan     PlanCmd     `cmd:"" help:"Show the version pairs, tags and output directories of a run"`
	Tags     TagsCmd     `cmd:"" help:"Show the git tags derived from the requested versions"`

	logger *slog.Logger
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	c.logger = config.NewLogger(os.Stderr, c.LogLevel, c.LogFormat, c.Verbose)
	slog.SetDefault(c.logger)
	return nil
}

// Logger returns the logger configured by AfterApply (slog.Default before).
func (c *CLI) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// VersionFlags are the requested versions. Each flag is repeatable and also
// accepts a comma separated list.
type VersionFlags struct {
	RubyVersions  []string `name:"ruby-version" short:"r" required:"" sep:"," help:"Ruby version(s) to document" env:"RAILSDOCS_RUBY_VERSIONS" placeholder:"VERSION"`
	RailsVersions []string `name:"rails-version" short:"R" required:"" sep:"," help:"Rails version(s) to document" env:"RAILSDOCS_RAILS_VERSIONS" placeholder:"VERSION"`
}

// Args converts the flags into version arguments.
func (v VersionFlags) Args() (lang, fw versions.Arg) {
	return versions.FromList(v.RubyVersions), versions.FromList(v.RailsVersions)
}

// Validate rejects blank versions before any work starts.
func (v VersionFlags) Validate() error {
	lang, fw := v.Args()
	if err := lang.Validate(); err != nil {
		return err
	}
	return fw.Validate()
}

// NameFlags are the display names of the two projects.
type NameFlags struct {
	RubyTitle  string `name:"ruby-title" help:"Ruby name in the merged title" default:"Ruby" env:"RAILSDOCS_RUBY_TITLE"`
	RailsTitle string `name:"rails-title" help:"Rails name in the merged title" default:"Rails" env:"RAILSDOCS_RAILS_TITLE"`
	RubyName   string `name:"ruby-output-name" help:"Ruby name in the output directory" default:"Ruby" env:"RAILSDOCS_RUBY_OUTPUT_NAME"`
	RailsName  string `name:"rails-output-name" help:"Rails name in the output directory" default:"Ruby on Rails" env:"RAILSDOCS_RAILS_OUTPUT_NAME"`
}

func (n NameFlags) apply(cfg *config.Config) {
	cfg.Names = config.Names{
		LanguageTitle:   n.RubyTitle,
		FrameworkTitle:  n.RailsTitle,
		LanguageOutput:  n.RubyName,
		FrameworkOutput: n.RailsName,
	}
}
