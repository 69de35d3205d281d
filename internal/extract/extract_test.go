package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xlftools/internal/logging"
	"xlftools/internal/testsupport"
	"xlftools/internal/xliff"
)

func fixture(t *testing.T) *xliff.Document {
	t.Helper()
	first := testsupport.Domain("1", "1", "Universe, creation", "Universo, criação", "Use this domain for general words.", "Use este domínio.")
	first.Groups = append(first.Groups, testsupport.Group{
		ID: "1_Qs",
		Groups: []testsupport.Group{{
			ID:    "1_Qs_0",
			Units: []testsupport.Unit{{ID: "1_Qs_0_Q", Source: "What words refer to everything?", Target: "Que palavras?"}},
		}},
	})
	second := testsupport.Domain("2", "2", "Person", "Pessoa", "", "")
	doc, err := xliff.Parse(strings.NewReader(testsupport.XLF(first, second)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestExtractModes(t *testing.T) {
	doc := fixture(t)
	tests := []struct {
		mode    Mode
		rows    []Row
		missing []string
	}{
		{
			mode: Names,
			rows: []Row{{"1", "Universe, creation", "Universo, criação"}, {"2", "Person", "Pessoa"}},
		},
		{
			mode: NamesWithDescriptions,
			rows: []Row{
				{"1", "Universe, creation", "Universo, criação", "Use this domain for general words."},
				{"2", "Person", "Pessoa", ""},
			},
		},
		{
			mode:    Descriptions,
			rows:    []Row{{"1", "Use this domain for general words.", "Use este domínio."}},
			missing: []string{"2"},
		},
		{
			mode:    DescriptionsWithNames,
			rows:    []Row{{"1", "Universe, creation", "Use this domain for general words.", "Use este domínio."}},
			missing: []string{"2"},
		},
		{
			mode:    Questions,
			rows:    []Row{{"1", "What words refer to everything?", "Que palavras?"}},
			missing: []string{"2"},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			res, err := Extract(doc, tt.mode, logging.NewNop())
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if diff := cmp.Diff(tt.rows, res.Rows); diff != "" {
				t.Fatalf("rows mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.missing, res.Missing); diff != "" {
				t.Fatalf("missing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractUnknownMode(t *testing.T) {
	if _, err := Extract(fixture(t), Mode("bogus"), nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := fixture(t)
	first, err := Extract(doc, Names, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Extract(fixture(t), Names, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, b := Render(first.Rows), Render(second.Rows)
	if !bytes.Equal(a, b) {
		t.Fatalf("render differs between runs:\n%s\n%s", a, b)
	}
	want := "1\tUniverse, creation\tUniverso, criação\n2\tPerson\tPessoa\n"
	if string(a) != want {
		t.Fatalf("unexpected render %q", a)
	}
}

func TestModeSuffix(t *testing.T) {
	for _, m := range Modes {
		if m.Suffix() == "" {
			t.Fatalf("mode %q has no suffix", m)
		}
	}
}
