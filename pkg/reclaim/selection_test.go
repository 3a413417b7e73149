package reclaim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseSelection(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}

	tests := []struct {
		name  string
		input string
		want  Selection
	}{
		{"valid and out of range", "2 99", Selection{Names: []string{"beta"}, Invalid: []string{"99"}}},
		{"all", "all", Selection{Names: names}},
		{"all with spaces", "  ALL ", Selection{Names: names}},
		{"quit", "q", Selection{Cancelled: true}},
		{"commas", "3,1", Selection{Names: []string{"alpha", "gamma"}}},
		{"duplicates collapse", "1 1 1", Selection{Names: []string{"alpha"}}},
		{"zero and negative", "0 -1 2", Selection{Names: []string{"beta"}, Invalid: []string{"0", "-1"}}},
		{"non numeric", "x 3", Selection{Names: []string{"gamma"}, Invalid: []string{"x"}}},
		{"empty", "", Selection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSelection(tt.input, names)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseSelection(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseSelectionEmptyListing(t *testing.T) {
	got := ParseSelection("1", nil)
	if len(got.Names) != 0 || len(got.Invalid) != 1 {
		t.Errorf("ParseSelection() = %+v", got)
	}
}
