package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/venvkit/pkg/errors"
	"github.com/matzehuels/venvkit/pkg/naming"
)

func TestProvisionCreatesEnvironment(t *testing.T) {
	m := seed(t)
	c, out := newTestCLI(t, m, "")
	dir := filepath.Join(t.TempDir(), "demo")

	if err := execute(c.ProvisionCommand(), out, "-d", dir, "-v", "3.12.8"); err != nil {
		t.Fatalf("pyinit error: %v", err)
	}

	if v, ok := m.Version("demo"); !ok || v != "3.12.8" {
		t.Errorf("environment demo = %q, %v", v, ok)
	}
	if m.Pinned(dir) != "demo" {
		t.Errorf("directory pinned to %q", m.Pinned(dir))
	}
	for _, want := range []string{"Environment demo is ready", "[9/9] Installing pre-commit hooks"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProvisionCollision(t *testing.T) {
	m := seed(t, "demo")
	c, out := newTestCLI(t, m, "")
	c.Suffix = &naming.SequenceSuffix{Values: []string{"zzzz0000"}}

	dir := filepath.Join(t.TempDir(), "work")
	if err := execute(c.ProvisionCommand(), out, "-d", dir, "-n", "demo"); err != nil {
		t.Fatalf("pyinit error: %v", err)
	}

	if _, ok := m.Version("env-zzzz0000"); !ok {
		t.Error("fallback environment was not created")
	}
	if !strings.Contains(out.String(), "environment demo already exists, using env-zzzz0000") {
		t.Errorf("missing collision warning:\n%s", out)
	}
}

func TestProvisionConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"config version", nil, "3.11.9"},
		{"flag wins", []string{"-v", "3.12.8"}, "3.12.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seed(t)
			c, out := newTestCLI(t, m, "")

			cfg := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(cfg, []byte("python_version = \"3.11.9\"\nbaseline = [\"ruff\"]\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			dir := filepath.Join(t.TempDir(), "proj")

			args := append([]string{"-d", dir, "--config", cfg}, tt.args...)
			if err := execute(c.ProvisionCommand(), out, args...); err != nil {
				t.Fatalf("pyinit error: %v", err)
			}
			if v, _ := m.Version("proj"); v != tt.want {
				t.Errorf("python = %q, want %q", v, tt.want)
			}
			if !strings.Contains(strings.Join(m.Execs(), "\n"), "proj: pip install ruff") {
				t.Errorf("baseline from config not installed: %v", m.Execs())
			}
		})
	}
}

func TestProvisionRejectsBadInvocations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"positional", []string{"extra"}, errors.ErrCodeInvalidInput},
		{"unknown flag", []string{"--bogus"}, errors.ErrCodeInvalidInput},
		{"missing value", []string{"-n"}, errors.ErrCodeInvalidInput},
		{"bad name", []string{"-n", "a b"}, errors.ErrCodeInvalidName},
		{"missing requirements", []string{"-r", "/nonexistent/requirements.txt"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seed(t)
			c, out := newTestCLI(t, m, "")
			args := append([]string{"-d", filepath.Join(t.TempDir(), "p")}, tt.args...)

			if err := execute(c.ProvisionCommand(), out, args...); !errors.Is(err, tt.code) {
				t.Fatalf("pyinit error = %v, want %s", err, tt.code)
			}
			if len(remaining(t, m)) != 0 {
				t.Error("no environment should be created")
			}
		})
	}
}
