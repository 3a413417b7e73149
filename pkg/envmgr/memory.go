package envmgr

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/venvkit/pkg/errors"
)

// Memory is an in-process Manager. Its listing mimics pyenv by reporting each
// environment both by name and as "<version>/envs/<name>".
type Memory struct {
	mu         sync.RWMutex
	envs       map[string]string // name -> interpreter version
	versions   map[string]bool
	failDelete map[string]error
	pins       map[string]string
	execs      []string
}

// NewMemory creates an empty registry with the given interpreter versions
// already installed.
func NewMemory(installed ...string) *Memory {
	m := &Memory{
		envs:       make(map[string]string),
		versions:   make(map[string]bool),
		failDelete: make(map[string]error),
		pins:       make(map[string]string),
	}
	for _, v := range installed {
		m.versions[v] = true
	}
	return m
}

// List implements Manager.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw := make([]string, 0, 2*len(m.envs))
	for name, version := range m.envs {
		raw = append(raw, version+"/envs/"+name, name)
	}
	slices.Sort(raw)
	return raw, nil
}

// Create implements Manager. Creating over an existing name fails the way
// pyenv-virtualenv does.
func (m *Memory) Create(ctx context.Context, name, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.versions[version] {
		return errors.New(errors.ErrCodeNotFound, "python %s is not installed", version)
	}
	if _, exists := m.envs[name]; exists {
		return errors.New(errors.ErrCodeCommandFailed, "environment %s already exists", name)
	}
	m.envs[name] = version
	return nil
}

// Delete implements Manager.
func (m *Memory) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failDelete[name]; ok {
		return err
	}
	if _, exists := m.envs[name]; !exists {
		return errors.New(errors.ErrCodeNotFound, "environment not found: %s", name)
	}
	delete(m.envs, name)
	return nil
}

// VersionInstalled implements Manager.
func (m *Memory) VersionInstalled(ctx context.Context, version string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.versions[version], nil
}

// InstallVersion implements Manager.
func (m *Memory) InstallVersion(ctx context.Context, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[version] = true
	return nil
}

// Pin implements Pinner.
func (m *Memory) Pin(ctx context.Context, dir, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pins[dir] = name
	return nil
}

// Exec implements Executor by recording "<env>: <args>".
func (m *Memory) Exec(ctx context.Context, env, dir string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.envs[env]; !exists {
		return errors.New(errors.ErrCodeNotFound, "environment not found: %s", env)
	}
	m.execs = append(m.execs, env+": "+strings.Join(args, " "))
	return nil
}

// FailDelete makes every later Delete of name return err.
func (m *Memory) FailDelete(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failDelete[name] = err
}

// Version returns the interpreter version bound to name.
func (m *Memory) Version(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.envs[name]
	return v, ok
}

// Pinned returns the environment pinned to dir.
func (m *Memory) Pinned(dir string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pins[dir]
}

// Execs returns the recorded Exec calls.
func (m *Memory) Execs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.execs...)
}
