// Package source brings the language and framework trees to the state
// matching a requested version before documentation is generated.
package source

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/railsdocs/internal/git"
	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"git.home.luguber.info/inful/railsdocs/internal/process"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// Trees locates the two source trees and the build tool used to clean the
// framework tree.
type Trees struct {
	LanguageDir  string
	FrameworkDir string
	Rake         string
}

// Preparer checks out version tags and clears stale framework build output.
// The trees are mutated in place; a Preparer must not be shared between
// concurrent runs.
type Preparer struct {
	trees      Trees
	checkouter git.Checkouter
	runner     process.Runner
}

// NewPreparer creates a preparer. runner executes the clean step.
func NewPreparer(trees Trees, checkouter git.Checkouter, runner process.Runner) *Preparer {
	if trees.Rake == "" {
		trees.Rake = "rake"
	}
	return &Preparer{trees: trees, checkouter: checkouter, runner: runner}
}

// PrepareLanguage checks out the tag for a language version.
func (p *Preparer) PrepareLanguage(ctx context.Context, version string) error {
	tag := versions.LanguageTag(version)
	slog.DebugContext(ctx, "Preparing language tree", logfields.Dir(p.trees.LanguageDir), logfields.Tag(tag))
	return p.checkouter.Checkout(ctx, p.trees.LanguageDir, tag)
}

// PrepareFramework checks out the tag for a framework version, then runs
// "<rake> clobber" so no previous build output leaks into the next build.
func (p *Preparer) PrepareFramework(ctx context.Context, version string) error {
	tag := versions.FrameworkTag(version)
	slog.DebugContext(ctx, "Preparing framework tree", logfields.Dir(p.trees.FrameworkDir), logfields.Tag(tag))
	if err := p.checkouter.Checkout(ctx, p.trees.FrameworkDir, tag); err != nil {
		return err
	}
	_, err := p.runner.Run(ctx, p.CleanCommand())
	return err
}

// CleanCommand is the framework build-output clean invocation.
func (p *Preparer) CleanCommand() process.Command {
	return process.Command{Name: p.trees.Rake, Args: []string{"clobber"}, Dir: p.trees.FrameworkDir}
}
