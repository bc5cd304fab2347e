package testutils

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/process"
)

// RecordingRunner is a process.Runner that records every command instead of
// executing it. Effects let a test emulate what the real tool would leave on
// disk, and FailWhen turns matching commands into exit failures.
type RecordingRunner struct {
	mu       sync.Mutex
	commands []process.Command
	effects  []effect
	failWhen func(process.Command) bool
	exitCode int
}

type effect struct {
	match func(process.Command) bool
	apply func(process.Command) error
}

// NewRecordingRunner creates a runner where every command succeeds.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{exitCode: 1}
}

// On registers an effect applied when match returns true.
func (r *RecordingRunner) On(match func(process.Command) bool, apply func(process.Command) error) *RecordingRunner {
	r.effects = append(r.effects, effect{match: match, apply: apply})
	return r
}

// FailWhen makes matching commands fail with exitCode.
func (r *RecordingRunner) FailWhen(match func(process.Command) bool, exitCode int) *RecordingRunner {
	r.failWhen = match
	r.exitCode = exitCode
	return r
}

func (r *RecordingRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if r.failWhen != nil && r.failWhen(cmd) {
		exitErr := &process.ExitError{Command: cmd, ExitCode: r.exitCode}
		return process.Result{ExitCode: r.exitCode}, ferrors.ProcessError("external command failed").
			WithCause(exitErr).
			WithContext("command", cmd.String()).
			WithContext("exit_code", r.exitCode).
			Build()
	}
	for _, e := range r.effects {
		if e.match(cmd) {
			if err := e.apply(cmd); err != nil {
				return process.Result{ExitCode: -1}, err
			}
		}
	}
	return process.Result{}, nil
}

// Commands returns the recorded commands in order.
func (r *RecordingRunner) Commands() []process.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

// Strings returns the recorded commands rendered with Command.String.
func (r *RecordingRunner) Strings() []string {
	cmds := r.Commands()
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.String())
	}
	return out
}

// HasArg matches commands whose argument list contains arg.
func HasArg(arg string) func(process.Command) bool {
	return func(c process.Command) bool { return slices.Contains(c.Args, arg) }
}

// ArgAfter returns the argument following flag, or "".
func ArgAfter(c process.Command, flag string) string {
	i := slices.Index(c.Args, flag)
	if i < 0 || i+1 >= len(c.Args) {
		return ""
	}
	return c.Args[i+1]
}

// MkdirAt returns an effect creating the directory named by fn(cmd) with an
// index.html inside.
func MkdirAt(fn func(process.Command) string) func(process.Command) error {
	return func(c process.Command) error {
		dir := fn(c)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "index.html"), []byte(c.String()), 0o600)
	}
}
