package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFiles(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"defaults", []string{"generate"}, []string{".env", ".env.local"}},
		{"separate value", []string{"--env-file", "ci.env", "plan"}, []string{"ci.env"}},
		{"equals form", []string{"--env-file=a.env", "--env-file=b.env"}, []string{"a.env", "b.env"}},
		{"after terminator", []string{"tags", "--", "--env-file=x"}, []string{".env", ".env.local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envFiles(tt.args))
		})
	}
}

func TestRun_Tags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"tags", "-r", "2.0.0-p195", "-R", "4.0.0"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "ruby\t2.0.0-p195\tv2_0_0_195\nrails\t4.0.0\tv4.0.0\n", stdout.String())
}

func TestRun_PlanUsesEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "railsdocs.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RAILSDOCS_RAILS_OUTPUT_NAME=Rails\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RAILSDOCS_RAILS_OUTPUT_NAME") })

	var stdout, stderr bytes.Buffer
	code := run([]string{"--env-file", envFile, "plan", "-r", "2.0.0", "-R", "4.0.0"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "1. ruby 2.0.0 (v2_0_0) + rails 4.0.0 (v4.0.0) -> Ruby v2.0.0, Rails v4.0.0\n", stdout.String())
}

func TestRun_GenerateConfigErrorExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	code := run([]string{"generate",
		"-o", filepath.Join(dir, "out"),
		"--sdoc", filepath.Join(dir, "sdoc"),
		"--ruby-dir", filepath.Join(dir, "ruby"),
		"--rails-dir", filepath.Join(dir, "rails"),
		"--git-backend", "svn",
		"-r", "2.0.0", "-R", "4.0.0",
	}, &stdout, &stderr)

	assert.Equal(t, 7, code)
	assert.Contains(t, stderr.String(), "unsupported git backend")
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}
