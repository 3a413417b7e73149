package envmgr

import (
	"context"
	"slices"
	"strings"
)

// Manager is the external environment registry.
type Manager interface {
	// List returns the raw listing, version-association entries included.
	List(ctx context.Context) ([]string, error)

	// Create makes a new environment bound to the given interpreter version.
	Create(ctx context.Context, name, version string) error

	// Delete removes an environment by name.
	Delete(ctx context.Context, name string) error

	// VersionInstalled reports whether the interpreter version is available.
	VersionInstalled(ctx context.Context, version string) (bool, error)

	// InstallVersion installs an interpreter version.
	InstallVersion(ctx context.Context, version string) error
}

// Pinner writes the per-directory pin file the manager uses to auto-select an
// environment when a shell enters dir.
type Pinner interface {
	Pin(ctx context.Context, dir, name string) error
}

// Executor runs a tool inside a named environment (pip, pre-commit).
type Executor interface {
	Exec(ctx context.Context, env, dir string, args ...string) error
}

// IsAssociation reports whether a listing entry is a version association
// record rather than an environment name.
func IsAssociation(entry string) bool {
	return strings.ContainsAny(entry, `/\`)
}

// FilterNames returns the environment names in a raw listing: blank entries
// and association records are dropped, duplicates collapse, and the result is
// sorted ascending.
func FilterNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" || IsAssociation(entry) {
			continue
		}
		names = append(names, entry)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Names lists the manager and filters the result.
func Names(ctx context.Context, m Manager) ([]string, error) {
	raw, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterNames(raw), nil
}
