package textutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "Water", []string{"Water"}},
		{"trimmed", "Animals,  Birds ", []string{"Animals", "Birds"}},
		{"empty", "", []string{""}},
		{"empty items kept", "a,,b", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("SplitList(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if n := ListCount(tt.input); n != len(tt.want) {
				t.Fatalf("ListCount(%q) = %d, want %d", tt.input, n, len(tt.want))
			}
		})
	}
}

func TestNaturalLess(t *testing.T) {
	ids := []string{"1_Poss_10", "1_Poss_2", "1_poss_1", "1_Poss_1a", "2_Poss_1", "1_Poss_1"}
	sort.SliceStable(ids, func(i, j int) bool { return NaturalLess(ids[i], ids[j]) })
	want := []string{"1_Poss_1", "1_poss_1", "1_Poss_1a", "1_Poss_2", "1_Poss_10", "2_Poss_1"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("natural order mismatch (-want +got):\n%s", diff)
	}
}

func TestReportName(t *testing.T) {
	tests := []struct {
		input, suffix, want string
	}{
		{"crowdin-downloads/SemanticDomains.pt-BR.xlf", "_names.txt", "SemanticDomains.pt-BR_names.txt"},
		{`C:\exports\file.xliff`, "_analysis.txt", "file_analysis.txt"},
		{"noext", "_x.tsv", "noext_x.tsv"},
	}
	for _, tt := range tests {
		if got := ReportName(tt.input, tt.suffix); got != tt.want {
			t.Errorf("ReportName(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
		}
	}
}
