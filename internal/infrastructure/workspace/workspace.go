// Package workspace manages scoped temporary directories for downloads
package workspace

import (
	"fmt"
	"os"
	"sync"
)

// Manager creates workspaces under a base directory
type Manager struct {
	baseDir string
}

// NewManager creates a workspace manager. An empty baseDir means the OS temp dir.
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Acquire creates a fresh, uniquely named working directory.
// The caller owns it and must call Release on every exit path.
func (m *Manager) Acquire(prefix string) (*Workspace, error) {
	if m.baseDir != "" {
		if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
			return nil, fmt.Errorf("create workspace base dir: %w", err)
		}
	}

	dir, err := os.MkdirTemp(m.baseDir, prefix+"-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return &Workspace{dir: dir}, nil
}

// Workspace is a temporary directory removed on Release
type Workspace struct {
	dir  string
	once sync.Once
	err  error
}

// Dir returns the workspace directory
func (w *Workspace) Dir() string {
	return w.dir
}

// Release removes the workspace and everything in it. Safe to call twice.
func (w *Workspace) Release() error {
	w.once.Do(func() {
		if err := os.RemoveAll(w.dir); err != nil {
			w.err = fmt.Errorf("remove workspace %s: %w", w.dir, err)
		}
	})
	return w.err
}
