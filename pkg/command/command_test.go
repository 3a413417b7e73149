package command

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/venvkit/pkg/errors"
)

func TestSpecString(t *testing.T) {
	s := Spec{Name: "pyenv", Args: []string{"virtualenv", "3.12.8", "demo"}}
	if got := s.String(); got != "pyenv virtualenv 3.12.8 demo" {
		t.Errorf("String() = %q", got)
	}
	if got := (Spec{Name: "git"}).String(); got != "git" {
		t.Errorf("String() = %q", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines([]byte("  3.12.8/envs/foo\n\nfoo  \r\n bar\n"))
	want := []string{"3.12.8/envs/foo", "foo", "bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if got := Lines(nil); len(got) != 0 {
		t.Errorf("Lines(nil) = %v", got)
	}
}

func TestExecRunFailureIsCommandError(t *testing.T) {
	r := NewExec(nil)
	if _, err := r.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := r.Run(context.Background(), Spec{Name: "sh", Args: []string{"-c", "echo oops; exit 3"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *errors.CommandError
	if !stderrors.As(err, &ce) {
		t.Fatalf("error = %T, want *errors.CommandError", err)
	}
	if ce.Output != "oops" {
		t.Errorf("Output = %q, want %q", ce.Output, "oops")
	}
}

func TestExecRunEnvAndDir(t *testing.T) {
	r := NewExec(nil)
	if _, err := r.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()

	out, err := r.Run(context.Background(), Spec{
		Name: "sh",
		Args: []string{"-c", "echo $VENVKIT_TEST; pwd"},
		Dir:  dir,
		Env:  []string{"VENVKIT_TEST=hello"},
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	lines := Lines(out)
	if len(lines) != 2 || lines[0] != "hello" {
		t.Errorf("output = %v", lines)
	}
}
