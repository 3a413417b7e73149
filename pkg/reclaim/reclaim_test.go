package reclaim

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/errors"
)

func TestOptionsMode(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    Mode
		wantArg string
	}{
		{"none", Options{}, ModeNone, ""},
		{"force alone", Options{Force: true}, ModeNone, ""},
		{"list", Options{List: true}, ModeList, ""},
		{"all", Options{All: true}, ModeAll, ""},
		{"prefix", Options{Prefix: "test-"}, ModePrefix, "test-"},
		{"name", Options{Name: "foo"}, ModeName, "foo"},
		{"interactive", Options{Interactive: true}, ModeInteractive, ""},
		{"list wins over all", Options{List: true, All: true}, ModeList, ""},
		{"all wins over prefix", Options{All: true, Prefix: "x"}, ModeAll, ""},
		{"prefix wins over name", Options{Prefix: "x", Name: "y"}, ModePrefix, "x"},
		{"name wins over interactive", Options{Name: "y", Interactive: true}, ModeName, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, arg := tt.opts.Mode()
			if mode != tt.want || arg != tt.wantArg {
				t.Errorf("Mode() = %v, %q; want %v, %q", mode, arg, tt.want, tt.wantArg)
			}
		})
	}
}

func TestModeDeletes(t *testing.T) {
	if ModeList.Deletes() || ModeNone.Deletes() {
		t.Error("list/none must not delete")
	}
	for _, m := range []Mode{ModeAll, ModePrefix, ModeName, ModeInteractive} {
		if !m.Deletes() {
			t.Errorf("%v.Deletes() = false", m)
		}
	}
}

func TestResolve(t *testing.T) {
	names := []string{"other-env", "test-env-1", "test-env-2"}

	tests := []struct {
		name         string
		mode         Mode
		arg          string
		want         []string
		wantNotFound string
	}{
		{"all", ModeAll, "", names, ""},
		{"list", ModeList, "", names, ""},
		{"prefix", ModePrefix, "test-env-", []string{"test-env-1", "test-env-2"}, ""},
		{"prefix is anchored", ModePrefix, "env-", nil, ""},
		{"name found", ModeName, "other-env", []string{"other-env"}, ""},
		{"name not found", ModeName, "ghost", nil, "ghost"},
		{"name is exact", ModeName, "test-env", nil, "test-env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.mode, tt.arg, names)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Names); diff != "" {
				t.Errorf("Names mismatch (-want +got):\n%s", diff)
			}
			if got.NotFound != tt.wantNotFound {
				t.Errorf("NotFound = %q, want %q", got.NotFound, tt.wantNotFound)
			}
		})
	}
}

func TestResolveRejectsModesWithoutListing(t *testing.T) {
	for _, m := range []Mode{ModeNone, ModeInteractive} {
		if _, err := Resolve(m, "", []string{"a"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Resolve(%v) error = %v", m, err)
		}
	}
}

func TestNewPlanFiltersAssociations(t *testing.T) {
	ctx := context.Background()
	m := envmgr.NewMemory("3.12.8")
	for _, n := range []string{"foo", "bar"} {
		_ = m.Create(ctx, n, "3.12.8")
	}

	p, err := NewPlan(ctx, m, Options{All: true})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"bar", "foo"}, p.Targets.Names); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewPlan(ctx, m, Options{}); err == nil {
		t.Error("NewPlan without a mode should fail")
	}

	p, err = NewPlan(ctx, m, Options{Interactive: true})
	if err != nil || !p.Targets.Empty() || len(p.Names) != 2 {
		t.Errorf("interactive plan = %+v, %v", p, err)
	}
}

func TestPrefixRemovalScenario(t *testing.T) {
	ctx := context.Background()
	m := envmgr.NewMemory("3.12.8")
	for _, n := range []string{"test-env-1", "test-env-2", "test-env-3", "test-env-4", "test-env-5", "other-test-env"} {
		if err := m.Create(ctx, n, "3.12.8"); err != nil {
			t.Fatal(err)
		}
	}

	p, err := NewPlan(ctx, m, Options{Prefix: "test-env-", Force: true})
	if err != nil {
		t.Fatal(err)
	}
	res := DeleteAll(ctx, m, p.Targets.Names)
	if !res.OK() || len(res.Deleted) != 5 {
		t.Fatalf("DeleteAll() = %+v", res)
	}

	left, _ := envmgr.Names(ctx, m)
	if diff := cmp.Diff([]string{"other-test-env"}, left); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
}
