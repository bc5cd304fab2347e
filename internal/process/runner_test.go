package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() (*ExecRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := NewExecRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.Stdout = &stdout
	r.Stderr = &stderr
	return r, &stdout, &stderr
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)
	r, stdout, _ := newTestRunner()

	res, err := r.Run(context.Background(), Command{Name: "/bin/sh", Args: []string{"-c", "echo hello"}})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecRunner_EnvAndDir(t *testing.T) {
	requireShell(t)
	r, _, _ := newTestRunner()
	dir := t.TempDir()

	_, err := r.Run(context.Background(), Command{
		Name: "/bin/sh",
		Args: []string{"-c", `printf '%s' "$SDOC_FORCE_MAIN_PAGE" > marker`},
		Env:  map[string]string{"SDOC_FORCE_MAIN_PAGE": "README"},
		Dir:  dir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "marker"))
	require.NoError(t, err)
	assert.Equal(t, "README", string(data))
}

func TestExecRunner_EnvOverrideIsPerInvocation(t *testing.T) {
	requireShell(t)
	r, stdout, _ := newTestRunner()
	t.Setenv("SDOC_FORCE_MAIN_PAGE", "")

	_, err := r.Run(context.Background(), Command{
		Name: "/bin/sh",
		Args: []string{"-c", `printf '[%s]' "$SDOC_FORCE_MAIN_PAGE"`},
	})
	require.NoError(t, err)
	assert.Equal(t, "[]", stdout.String())
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)
	r, _, stderr := newTestRunner()
	cmd := Command{Name: "/bin/sh", Args: []string{"-c", "echo broken >&2; exit 3"}, Dir: t.TempDir()}

	res, err := r.Run(context.Background(), cmd)

	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "broken\n", stderr.String())

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Equal(t, "broken\n", exitErr.Stderr)
	assert.True(t, strings.Contains(err.Error(), "failed with status 3"))

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryProcess, classified.Category())
	dir, _ := classified.Context().GetString("dir")
	assert.Equal(t, cmd.Dir, dir)
	command, _ := classified.Context().GetString("command")
	assert.Equal(t, cmd.String(), command)
}

func TestExecRunner_CommandNotFound(t *testing.T) {
	r, _, _ := newTestRunner()

	_, err := r.Run(context.Background(), Command{Name: "railsdocs-no-such-binary"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryProcess))
}

func TestExecRunner_Canceled(t *testing.T) {
	requireShell(t)
	r, _, _ := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Command{Name: "/bin/sh", Args: []string{"-c", "sleep 5"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestTailBuffer(t *testing.T) {
	tb := newTailBuffer(4)
	_, _ = tb.Write([]byte("ab"))
	_, _ = tb.Write([]byte("cdef"))
	assert.Equal(t, "cdef", tb.String())
	_, _ = tb.Write([]byte("g"))
	assert.Equal(t, "defg", tb.String())
}
