package requirements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/venvkit/pkg/errors"
)

func TestParse(t *testing.T) {
	content := `# Test requirements
requests>=2.28.0
click==8.1.0
Pydantic_Core>=2.0
# Comment line
httpx  # inline comment
requests[socks]

-r base.txt
-e ./local-package
git+https://github.com/user/repo.git
`
	rf, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"requests", "click", "pydantic-core", "httpx"}
	if diff := cmp.Diff(want, rf.Packages); diff != "" {
		t.Errorf("Packages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-r base.txt", "-e ./local-package"}, rf.Options); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
	if len(rf.Direct) != 1 {
		t.Errorf("Direct = %v", rf.Direct)
	}
	if rf.Count() != 5 {
		t.Errorf("Count() = %d, want 5", rf.Count())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(path, []byte("black\nruff\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if rf.Path != path || rf.Count() != 2 {
		t.Errorf("Load() = %+v", rf)
	}

	_, err = Load(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Django":            "django",
		"zope.interface":    "zope-interface",
		"typing_extensions": "typing-extensions",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
