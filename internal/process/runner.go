package process

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/logfields"
)

// stderrTailSize bounds how much of a command's stderr is kept for diagnostics.
const stderrTailSize = 4096

// Result describes a finished command.
type Result struct {
	ExitCode int
	Duration time.Duration
	Stderr   string
}

// Runner executes external commands. Implementations must block until the
// command has finished.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands as child processes. Output is streamed to Stdout
// and Stderr (the parent's streams by default).
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner creates a runner attached to the current process's streams.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr, logger: logger}
}

// Run executes cmd and waits for it. A non-zero exit becomes a process error
// wrapping *ExitError.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if _, err := exec.LookPath(cmd.Name); err != nil {
		return Result{ExitCode: -1}, r.fail(cmd, "external command not found", -1, errors.Join(ErrCommandNotFound, err))
	}

	r.logger.InfoContext(ctx, "Running command", logfields.Command(cmd.String()))

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.EnvList()...)
	}
	tail := newTailBuffer(stderrTailSize)
	c.Stdout = r.Stdout
	c.Stderr = io.MultiWriter(r.Stderr, tail)

	start := time.Now()
	err := c.Run()
	res := Result{Duration: time.Since(start), Stderr: tail.String()}

	if err == nil {
		r.logger.DebugContext(ctx, "Command finished", logfields.Command(cmd.String()), logfields.Duration(res.Duration))
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, r.fail(cmd, "external command canceled", -1, errors.Join(ErrCanceled, ctxErr))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, r.fail(cmd, "external command failed", res.ExitCode, &ExitError{
			Command:  cmd,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		})
	}

	res.ExitCode = -1
	return res, r.fail(cmd, "external command could not be started", -1, err)
}

func (r *ExecRunner) fail(cmd Command, msg string, code int, cause error) error {
	b := ferrors.ProcessError(msg).
		WithCause(cause).
		WithContext("command", cmd.String()).
		WithContext("exit_code", code)
	if cmd.Dir != "" {
		b.WithContext("dir", cmd.Dir)
	}
	if len(cmd.Env) > 0 {
		b.WithContext("env", cmd.EnvList())
	}
	return b.Build()
}
