package main

import (
	"bytes"
	"strings"
	"testing"

	"xlftools/internal/census"
)

func TestRenderCensusTable(t *testing.T) {
	section := census.Section{
		ID: "1_Poss_1",
		Names: census.Tally{Total: 4, States: []census.StateCount{
			{State: "final", Count: 3, Percent: 75},
			{State: "translated", Count: 1, Percent: 25},
		}},
	}

	out := renderCensusTable(section)
	for _, want := range []string{"UNITS", "SHARE", "final", "75.0%", "25.0%", "100.0%"} {
		requireContains(t, out, want)
	}
	if n := strings.Count(out, "_Name"); n != 1 {
		t.Fatalf("expected kind label once, got %d in:\n%s", n, out)
	}
	if strings.Contains(out, "_Desc_0") {
		t.Fatalf("expected empty descriptions to be left out:\n%s", out)
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "total") && !strings.Contains(line, "     4 │ 100.0% │") {
			t.Fatalf("expected right-aligned total row, got %q", line)
		}
	}
}

func TestWriteCensusJSONKeepsMarkup(t *testing.T) {
	var buf bytes.Buffer
	report := census.Report{PossGroup: "1_Poss", Children: []census.Section{{ID: "1_Poss_<a&b>"}}}
	if err := writeCensusJSON(&buf, report); err != nil {
		t.Fatalf("writeCensusJSON: %v", err)
	}
	requireContains(t, buf.String(), `"1_Poss_<a&b>"`)
}
