// Package compare diffs the name or description translations of two XLF
// downloads of the same project, keyed by trans-unit identifier.
package compare

import (
	"fmt"
	"log/slog"
	"strings"

	"xlftools/internal/identifier"
	"xlftools/internal/logging"
	"xlftools/internal/xliff"
)

// Field selects which translation is compared.
type Field string

const (
	Names        Field = "names"
	Descriptions Field = "descriptions"
)

func (f Field) category() (identifier.Category, error) {
	switch f {
	case Names:
		return identifier.Name, nil
	case Descriptions:
		return identifier.Description, nil
	default:
		return identifier.Other, fmt.Errorf("unknown comparison field %q", f)
	}
}

// Suffix returns the default report-name suffix for f.
func (f Field) Suffix() string {
	if f == Descriptions {
		return "_descriptions.tsv"
	}
	return "_names.tsv"
}

// Options controls a comparison run.
type Options struct {
	Field Field
	// IncludeState also treats a changed target state as a change.
	IncludeState bool
}

// Row is one changed entry. Context columns come from the second file.
type Row struct {
	Identifier    string
	Abbr          string
	NameSource    string
	DescSource    string
	ContentBefore string
	ContentAfter  string
	StateBefore   xliff.State
	StateAfter    xliff.State
}

type entry struct {
	id         string
	abbr       string
	nameSource string
	descSource string
	content    string
	state      xliff.State
}

// Compare returns the rows whose target content (and, with IncludeState,
// target state) differ between before and after. Rows follow the traversal
// order of before; identifiers present in only one file are skipped.
func Compare(before, after *xliff.Document, opts Options, logger *slog.Logger) ([]Row, error) {
	cat, err := opts.Field.category()
	if err != nil {
		return nil, err
	}
	logger = logging.NewComponentLogger(logger, "compare")

	beforeEntries, _ := index(before, cat)
	afterEntries, afterByID := index(after, cat)

	var (
		rows    []Row
		skipped int
	)
	for _, b := range beforeEntries {
		a, ok := afterByID[b.id]
		if !ok {
			skipped++
			continue
		}
		contentChanged := b.content != a.content
		stateChanged := opts.IncludeState && b.state != a.state
		if !contentChanged && !stateChanged {
			continue
		}
		rows = append(rows, Row{
			Identifier:    b.id,
			Abbr:          a.abbr,
			NameSource:    a.nameSource,
			DescSource:    a.descSource,
			ContentBefore: b.content,
			ContentAfter:  a.content,
			StateBefore:   b.state,
			StateAfter:    a.state,
		})
	}

	logger.Info("comparison complete",
		logging.String("field", string(opts.Field)),
		logging.Bool("include_state", opts.IncludeState),
		logging.Int("compared", len(beforeEntries)-skipped),
		logging.Int("only_in_first", skipped),
		logging.Int("only_in_second", len(afterEntries)-(len(beforeEntries)-skipped)),
		logging.Int("changed", len(rows)),
	)
	return rows, nil
}

// index collects one entry per unit of cat, in document order, and a lookup
// by identifier. Later duplicates of an identifier are ignored.
func index(doc *xliff.Document, cat identifier.Category) ([]entry, map[string]entry) {
	var ordered []entry
	byID := make(map[string]entry)
	for _, dom := range doc.Domains() {
		var nameSource, descSource string
		if u, ok := dom.Find(identifier.Name); ok {
			nameSource = u.Source
		}
		if u, ok := dom.Find(identifier.Description); ok {
			descSource = u.Source
		}
		for _, u := range dom.Units {
			if identifier.Classify(u.Identifier()) != cat {
				continue
			}
			id := u.Identifier()
			if _, dup := byID[id]; dup {
				continue
			}
			e := entry{
				id:         id,
				abbr:       dom.Abbr,
				nameSource: nameSource,
				descSource: descSource,
				content:    effectiveTarget(u),
				state:      u.State,
			}
			byID[id] = e
			ordered = append(ordered, e)
		}
	}
	return ordered, byID
}

// effectiveTarget treats a target still waiting for translation as empty.
func effectiveTarget(u xliff.TranslationUnit) string {
	if u.State == xliff.StateNeedsTranslation {
		return ""
	}
	return u.Target
}

// Header returns the column names for a report with opts.
func Header(opts Options) []string {
	cols := []string{"Abbr", "Name Source"}
	if opts.Field == Descriptions {
		cols = append(cols, "Desc Source")
	}
	if opts.IncludeState {
		cols = append(cols, "State Before", "State After")
	}
	return append(cols, "Content Before", "Content After")
}

// Render formats rows as a tab-separated report with a header line.
func Render(rows []Row, opts Options) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(Header(opts), "\t"))
	b.WriteByte('\n')
	for _, r := range rows {
		cols := []string{r.Abbr, r.NameSource}
		if opts.Field == Descriptions {
			cols = append(cols, r.DescSource)
		}
		if opts.IncludeState {
			cols = append(cols, string(r.StateBefore), string(r.StateAfter))
		}
		cols = append(cols, r.ContentBefore, r.ContentAfter)
		b.WriteString(strings.Join(cols, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
