// Package extract pulls (source, target) pairs for one identifier category
// out of every semantic domain in a Crowdin XLF download.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"xlftools/internal/identifier"
	"xlftools/internal/logging"
	"xlftools/internal/xliff"
)

// Mode selects which units are extracted and which companion column, if any,
// accompanies them.
type Mode string

const (
	Names                 Mode = "names"
	NamesWithDescriptions Mode = "names-with-descriptions"
	Descriptions          Mode = "descriptions"
	DescriptionsWithNames Mode = "descriptions-with-names"
	Questions             Mode = "questions"
)

// Modes lists every mode in flag order.
var Modes = []Mode{Names, NamesWithDescriptions, Descriptions, DescriptionsWithNames, Questions}

type modeSpec struct {
	primary   identifier.Category
	companion identifier.Category
	suffix    string
}

var modeSpecs = map[Mode]modeSpec{
	Names:                 {primary: identifier.Name, suffix: "_names.txt"},
	NamesWithDescriptions: {primary: identifier.Name, companion: identifier.Description, suffix: "_names_descriptions.txt"},
	Descriptions:          {primary: identifier.Description, suffix: "_descriptions.txt"},
	DescriptionsWithNames: {primary: identifier.Description, companion: identifier.Name, suffix: "_descriptions_names.txt"},
	Questions:             {primary: identifier.Question, suffix: "_questions.txt"},
}

// Suffix returns the default report-name suffix for m.
func (m Mode) Suffix() string {
	return modeSpecs[m].suffix
}

// Validate reports whether m is a known mode.
func (m Mode) Validate() error {
	if _, ok := modeSpecs[m]; !ok {
		return fmt.Errorf("unknown extraction mode %q", m)
	}
	return nil
}

// Row is one extracted line. Columns are already in output order.
type Row []string

// Result holds the rows extracted from a document and the domains that had
// no unit of the requested category.
type Result struct {
	Rows    []Row
	Missing []string
}

// Extract walks doc's semantic domains and builds rows for mode.
//
// Column layouts:
//
//	names, descriptions, questions: abbr, source, target
//	names-with-descriptions:       abbr, name source, name target, desc source
//	descriptions-with-names:       abbr, name source, desc source, desc target
func Extract(doc *xliff.Document, mode Mode, logger *slog.Logger) (Result, error) {
	if err := mode.Validate(); err != nil {
		return Result{}, err
	}
	logger = logging.NewComponentLogger(logger, "extract")
	spec := modeSpecs[mode]

	var res Result
	for _, dom := range doc.Domains() {
		unit, ok := dom.Find(spec.primary)
		if !ok {
			logger.Warn("domain lacks the requested element",
				logging.String("domain", dom.ID),
				logging.String("category", spec.primary.String()),
			)
			res.Missing = append(res.Missing, dom.ID)
			continue
		}

		var companionSource string
		if spec.companion != identifier.Other {
			if extra, ok := dom.Find(spec.companion); ok {
				companionSource = extra.Source
			}
		}

		switch mode {
		case NamesWithDescriptions:
			res.Rows = append(res.Rows, Row{dom.Abbr, unit.Source, unit.Target, companionSource})
		case DescriptionsWithNames:
			res.Rows = append(res.Rows, Row{dom.Abbr, companionSource, unit.Source, unit.Target})
		default:
			res.Rows = append(res.Rows, Row{dom.Abbr, unit.Source, unit.Target})
		}
	}

	logger.Info("extraction complete",
		logging.String("mode", string(mode)),
		logging.Int("rows", len(res.Rows)),
		logging.Int("missing", len(res.Missing)),
	)
	return res, nil
}

// Render formats rows as tab-separated lines without a header.
func Render(rows []Row) []byte {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
