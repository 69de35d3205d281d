package census_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xlftools/internal/census"
	"xlftools/internal/testsupport"
	"xlftools/internal/xliff"
)

func parse(t *testing.T, content string) *xliff.Document {
	t.Helper()
	doc, err := xliff.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func possDocument() string {
	child := func(id string, units ...testsupport.Unit) testsupport.Group {
		return testsupport.Group{ID: id, Units: units}
	}
	return testsupport.XLF(testsupport.Group{
		ID: "1_Poss",
		Groups: []testsupport.Group{
			child("1_Poss_10",
				testsupport.Unit{ID: "1.10_Name", Source: "a", Target: "a", State: "final"},
			),
			child("1_Poss_2",
				testsupport.Unit{ID: "1.2_Name", Source: "a", Target: "a", State: "translated"},
				testsupport.Unit{ID: "1.2.1_Name", Source: "b", NoTarget: true},
				testsupport.Unit{ID: "1.2_Desc_0", Source: "d", Target: "d"},
				testsupport.Unit{ID: "1.2_Abbr", Source: "1.2", Target: "1.2", State: "final"},
			),
			child("1_Poss_3"),
		},
	})
}

func TestCountGroupsByChild(t *testing.T) {
	report, err := census.Count(parse(t, possDocument()), nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if report.PossGroup != "1_Poss" {
		t.Fatalf("unexpected poss group %q", report.PossGroup)
	}

	var ids []string
	for _, c := range report.Children {
		ids = append(ids, c.ID)
	}
	if diff := cmp.Diff([]string{"1_Poss_2", "1_Poss_3", "1_Poss_10"}, ids); diff != "" {
		t.Fatalf("child order (-want +got):\n%s", diff)
	}

	second := report.Children[0]
	wantNames := census.Tally{Total: 2, States: []census.StateCount{
		{State: census.NoTarget, Count: 1, Percent: 50},
		{State: "translated", Count: 1, Percent: 50},
	}}
	if diff := cmp.Diff(wantNames, second.Names); diff != "" {
		t.Fatalf("names tally (-want +got):\n%s", diff)
	}
	wantDescs := census.Tally{Total: 1, States: []census.StateCount{{State: census.NoState, Count: 1, Percent: 100}}}
	if diff := cmp.Diff(wantDescs, second.Descriptions); diff != "" {
		t.Fatalf("descriptions tally (-want +got):\n%s", diff)
	}
	if !report.Children[1].Empty() {
		t.Fatalf("expected empty child, got %+v", report.Children[1])
	}

	if report.Totals.Names.Total != 3 || report.Totals.Descriptions.Total != 1 {
		t.Fatalf("unexpected totals: %+v", report.Totals)
	}
	if report.GrandTotal != 4 {
		t.Fatalf("grand total = %d, want 4", report.GrandTotal)
	}
}

func TestCountWithoutPossGroup(t *testing.T) {
	doc := parse(t, testsupport.XLF(testsupport.Domain("1", "1", "Sky", "Céu", "", "")))
	if _, err := census.Count(doc, nil); !errors.Is(err, census.ErrNoPossGroup) {
		t.Fatalf("expected ErrNoPossGroup, got %v", err)
	}
}
