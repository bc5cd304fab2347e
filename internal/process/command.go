package process

import (
	"maps"
	"slices"
	"strings"

	"github.com/alessio/shellescape"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Env holds overrides applied on top of the inherited environment for this
	// invocation only.
	Env map[string]string
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// EnvList returns the overrides as sorted KEY=VALUE entries.
func (c Command) EnvList() []string {
	keys := slices.Sorted(maps.Keys(c.Env))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+c.Env[k])
	}
	return out
}

// String renders the command for logs and diagnostics, e.g.
//
//	[/src/ruby] SDOC_FORCE_MAIN_PAGE=README ruby -I /sdoc/lib /sdoc/bin/sdoc --all -o /tmp/x /src/ruby
func (c Command) String() string {
	parts := make([]string, 0, 2)

	keys := slices.Sorted(maps.Keys(c.Env))
	if len(keys) > 0 {
		env := make([]string, 0, len(keys))
		for _, k := range keys {
			env = append(env, shellescape.Quote(k)+"="+shellescape.Quote(c.Env[k]))
		}
		parts = append(parts, strings.Join(env, " "))
	}
	parts = append(parts, shellescape.QuoteCommand(c.Argv()))

	s := strings.Join(parts, " ")
	if c.Dir != "" {
		s = "[" + c.Dir + "] " + s
	}
	return s
}

// Tool returns the base name of the program, used as a metrics label.
func (c Command) Tool() string {
	name := c.Name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
