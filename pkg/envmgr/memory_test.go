package envmgr

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/venvkit/pkg/errors"
)

func TestMemoryListMimicsPyenv(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("3.12.8")
	if err := m.Create(ctx, "foo", "3.12.8"); err != nil {
		t.Fatal(err)
	}

	raw, err := m.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"3.12.8/envs/foo", "foo"}, raw); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryCreate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("3.12.8")

	if err := m.Create(ctx, "foo", "3.11.0"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Create with missing version error = %v", err)
	}
	if err := m.Create(ctx, "foo", "3.12.8"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := m.Create(ctx, "foo", "3.12.8"); err == nil {
		t.Error("Create over existing name should fail")
	}
	if v, ok := m.Version("foo"); !ok || v != "3.12.8" {
		t.Errorf("Version(foo) = %q, %v", v, ok)
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("3.12.8")
	_ = m.Create(ctx, "a", "3.12.8")
	_ = m.Create(ctx, "b", "3.12.8")

	boom := fmt.Errorf("permission denied")
	m.FailDelete("b", boom)

	if err := m.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete(a) error: %v", err)
	}
	if err := m.Delete(ctx, "b"); err != boom {
		t.Errorf("Delete(b) error = %v, want %v", err, boom)
	}
	if err := m.Delete(ctx, "missing"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Delete(missing) error = %v", err)
	}

	names, _ := Names(ctx, m)
	if diff := cmp.Diff([]string{"b"}, names); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryVersionsPinsExecs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ok, _ := m.VersionInstalled(ctx, "3.13.1")
	if ok {
		t.Fatal("3.13.1 should not be installed yet")
	}
	if err := m.InstallVersion(ctx, "3.13.1"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := m.VersionInstalled(ctx, "3.13.1"); !ok {
		t.Error("3.13.1 should be installed")
	}

	_ = m.Create(ctx, "proj", "3.13.1")
	if err := m.Pin(ctx, "/work/proj", "proj"); err != nil {
		t.Fatal(err)
	}
	if got := m.Pinned("/work/proj"); got != "proj" {
		t.Errorf("Pinned() = %q", got)
	}

	if err := m.Exec(ctx, "proj", "/work/proj", "pip", "install", "ruff"); err != nil {
		t.Fatal(err)
	}
	if err := m.Exec(ctx, "ghost", "/work/proj", "pip"); err == nil {
		t.Error("Exec in missing env should fail")
	}
	if diff := cmp.Diff([]string{"proj: pip install ruff"}, m.Execs()); diff != "" {
		t.Errorf("Execs() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory("3.12.8")
	if _, err := m.List(ctx); err == nil {
		t.Error("List() on cancelled context should fail")
	}
}
