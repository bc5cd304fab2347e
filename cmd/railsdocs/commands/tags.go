package commands

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// TagsCmd implements the 'tags' command.
type TagsCmd struct {
	VersionFlags `embed:""`
}

func (t *TagsCmd) Run(globals *Global, _ *CLI) error {
	if err := t.VersionFlags.Validate(); err != nil {
		return ferrors.ValidationError("invalid versions").WithCause(err).Build()
	}
	for _, v := range t.RubyVersions {
		_, _ = fmt.Fprintf(globals.Stdout, "ruby\t%s\t%s\n", v, versions.LanguageTag(v))
	}
	for _, v := range t.RailsVersions {
		_, _ = fmt.Fprintf(globals.Stdout, "rails\t%s\t%s\n", v, versions.FrameworkTag(v))
	}
	return nil
}
