package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndCleanup(t *testing.T) {
	tempBase := t.TempDir()
	mgr := NewManager(tempBase, "")

	require.NoError(t, mgr.Create())

	wsPath := mgr.Path()
	require.NotEmpty(t, wsPath)
	assert.True(t, strings.HasPrefix(filepath.Base(wsPath), DefaultPrefix))
	assert.DirExists(t, wsPath)

	require.NoError(t, mgr.Cleanup())
	assert.NoDirExists(t, wsPath)
	assert.Empty(t, mgr.Path())

	// Second cleanup is a no-op.
	require.NoError(t, mgr.Cleanup())
}

func TestManager_UniquePaths(t *testing.T) {
	tempBase := t.TempDir()
	a := NewManager(tempBase, "ws")
	b := NewManager(tempBase, "ws")
	require.NoError(t, a.Create())
	require.NoError(t, b.Create())
	t.Cleanup(func() { _ = a.Cleanup(); _ = b.Cleanup() })

	assert.NotEqual(t, a.Path(), b.Path())
}

func TestManager_CreateTwiceFails(t *testing.T) {
	mgr := NewManager(t.TempDir(), "")
	require.NoError(t, mgr.Create())
	t.Cleanup(func() { _ = mgr.Cleanup() })

	assert.Error(t, mgr.Create())
}

func TestManager_Exists(t *testing.T) {
	mgr := NewManager(t.TempDir(), "")
	assert.False(t, mgr.Exists("ruby-docs-v2.0.0"))

	require.NoError(t, mgr.Create())
	t.Cleanup(func() { _ = mgr.Cleanup() })

	assert.False(t, mgr.Exists("ruby-docs-v2.0.0"))
	require.NoError(t, os.Mkdir(mgr.Join("ruby-docs-v2.0.0"), 0o750))
	assert.True(t, mgr.Exists("ruby-docs-v2.0.0"))
	assert.Equal(t, filepath.Join(mgr.Path(), "ruby-docs-v2.0.0"), mgr.Join("ruby-docs-v2.0.0"))
}

func TestWith_RemovesWorkspaceOnSuccess(t *testing.T) {
	var seen string
	err := With(t.TempDir(), "", func(m *Manager) error {
		seen = m.Path()
		return os.WriteFile(m.Join("marker"), []byte("x"), 0o600)
	})

	require.NoError(t, err)
	require.NotEmpty(t, seen)
	assert.NoDirExists(t, seen)
}

func TestWith_RemovesWorkspaceOnFailure(t *testing.T) {
	boom := errors.New("boom")
	var seen string
	err := With(t.TempDir(), "", func(m *Manager) error {
		seen = m.Path()
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.NoDirExists(t, seen)
}

func TestWith_RemovesWorkspaceOnPanic(t *testing.T) {
	var seen string
	assert.Panics(t, func() {
		_ = With(t.TempDir(), "", func(m *Manager) error {
			seen = m.Path()
			panic("abort")
		})
	})
	assert.NoDirExists(t, seen)
}
