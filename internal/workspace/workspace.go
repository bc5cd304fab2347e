package workspace

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/logfields"
)

// DefaultPrefix names workspace directories created by railsdocs.
const DefaultPrefix = "ruby-rails-docs"

// Manager handles the lifecycle of one temporary workspace.
type Manager struct {
	baseDir string
	prefix  string
	path    string
}

// NewManager creates a workspace manager. An empty baseDir means os.TempDir()
// and an empty prefix means DefaultPrefix.
func NewManager(baseDir, prefix string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Manager{baseDir: baseDir, prefix: prefix}
}

// Create makes a fresh, uniquely named workspace directory.
func (m *Manager) Create() error {
	if m.path != "" {
		return ferrors.InternalError("workspace already created").WithContext("path", m.path).Build()
	}
	if err := os.MkdirAll(m.baseDir, 0o750); err != nil {
		return ferrors.FileSystemError("failed to create workspace base directory").
			WithCause(err).
			WithContext("path", m.baseDir).
			Build()
	}
	dir, err := os.MkdirTemp(m.baseDir, m.prefix)
	if err != nil {
		return ferrors.FileSystemError("failed to create workspace directory").
			WithCause(err).
			WithContext("path", m.baseDir).
			Build()
	}
	m.path = dir
	slog.Debug("Created workspace", logfields.Path(dir))
	return nil
}

// Path returns the workspace directory, or "" before Create.
func (m *Manager) Path() string {
	return m.path
}

// Join returns the path of name inside the workspace.
func (m *Manager) Join(name string) string {
	return filepath.Join(m.path, name)
}

// Exists reports whether name is present inside the workspace.
func (m *Manager) Exists(name string) bool {
	if m.path == "" {
		return false
	}
	_, err := os.Lstat(m.Join(name))
	return err == nil
}

// Cleanup removes the workspace directory. Calling it again is a no-op.
func (m *Manager) Cleanup() error {
	if m.path == "" {
		return nil
	}
	if err := os.RemoveAll(m.path); err != nil {
		return ferrors.FileSystemError("failed to cleanup workspace").
			WithCause(err).
			WithContext("path", m.path).
			Build()
	}
	slog.Debug("Cleaned up workspace", logfields.Path(m.path))
	m.path = ""
	return nil
}

// With creates a workspace, runs fn inside it and always removes it
// afterwards. An error from fn takes precedence over a cleanup error.
func With(baseDir, prefix string, fn func(*Manager) error) (err error) {
	m := NewManager(baseDir, prefix)
	if err := m.Create(); err != nil {
		return err
	}
	defer func() {
		if cerr := m.Cleanup(); cerr != nil {
			if err == nil {
				err = cerr
				return
			}
			slog.Warn("Failed to cleanup workspace", logfields.Error(cerr))
			err = errors.Join(err, cerr)
		}
	}()
	return fn(m)
}
