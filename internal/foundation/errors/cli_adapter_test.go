package errors

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("invalid input").Build(), expected: 2},
		{name: "config", err: ConfigError("bad flag").Build(), expected: 7},
		{name: "git", err: GitError("checkout failed").Build(), expected: 8},
		{name: "process", err: ProcessError("rake failed").Build(), expected: 8},
		{name: "filesystem", err: FileSystemError("copy failed").Build(), expected: 11},
		{name: "internal", err: InternalError("bug").Build(), expected: 10},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := errors.New("the execution of the command git checkout v2_0_0 failed with status 1")
	err := ProcessError("external command failed").
		WithCause(cause).
		WithContext("exit_code", 1).
		WithContext("dir", "/src/ruby").
		Build()

	quiet := NewCLIErrorAdapter(false, slog.Default())
	assert.Equal(t, "Error: external command failed: "+cause.Error(), quiet.FormatError(err))

	verbose := NewCLIErrorAdapter(true, slog.Default())
	assert.Equal(t,
		"Error: external command failed: "+cause.Error()+"\n  dir: /src/ruby\n  exit_code: 1",
		verbose.FormatError(err))

	assert.Equal(t, "Error: boom", quiet.FormatError(errors.New("boom")))
	assert.Empty(t, quiet.FormatError(nil))
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := NewCLIErrorAdapter(false, logger).WithOutput(&out)

	code := adapter.Report(GitError("checkout failed").Build())

	assert.Equal(t, 8, code)
	assert.Equal(t, "Error: checkout failed\n", out.String())
	assert.Equal(t, 0, adapter.Report(nil))
}
