package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplateIncludesBuildInfo(t *testing.T) {
	tmpl := Template()
	for _, want := range []string{"{{.Name}}", Version, Commit, Date} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}
}

func TestFieldsArePaired(t *testing.T) {
	f := Fields()
	if len(f)%2 != 0 {
		t.Fatalf("Fields() has odd length %d", len(f))
	}
	if f[0] != "version" || f[1] != Version {
		t.Errorf("Fields()[0:2] = %v", f[0:2])
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
