package detect

import (
	"log/slog"
	"strings"

	"xlftools/internal/identifier"
	"xlftools/internal/logging"
	"xlftools/internal/textutil"
	"xlftools/internal/xliff"
)

// Mismatch is a _Name unit whose list lengths differ.
type Mismatch struct {
	Identifier  string
	AbbrSource  string
	NameSource  string
	NameTarget  string
	TargetState xliff.State
	SourceCount int
	TargetCount int
}

// Increased reports whether the target lists more items than the source.
func (m Mismatch) Increased() bool {
	return m.TargetCount > m.SourceCount
}

// CommaListReport splits mismatches by direction, each in document order.
type CommaListReport struct {
	Increased []Mismatch
	Decreased []Mismatch
}

// Total returns the number of mismatches in the report.
func (r CommaListReport) Total() int {
	return len(r.Increased) + len(r.Decreased)
}

// CountMismatch compares the comma-separated item counts of source and target.
func CountMismatch(source, target string) (sourceCount, targetCount int, mismatch bool) {
	sourceCount = textutil.ListCount(source)
	targetCount = textutil.ListCount(target)
	return sourceCount, targetCount, sourceCount != targetCount
}

// CommaLists scans every _Name unit in units.
func CommaLists(units []xliff.TranslationUnit, logger *slog.Logger) CommaListReport {
	logger = logging.NewComponentLogger(logger, "comma-lists")

	abbrByID := make(map[string]string)
	for _, u := range units {
		if identifier.Classify(u.Identifier()) == identifier.Abbreviation {
			if _, seen := abbrByID[u.Identifier()]; !seen {
				abbrByID[u.Identifier()] = u.Source
			}
		}
	}

	var report CommaListReport
	for _, u := range units {
		id := u.Identifier()
		if identifier.Classify(id) != identifier.Name {
			continue
		}
		sc, tc, mismatch := CountMismatch(u.Source, u.Target)
		if !mismatch {
			continue
		}
		m := Mismatch{
			Identifier:  id,
			NameSource:  u.Source,
			NameTarget:  u.Target,
			TargetState: u.State,
			SourceCount: sc,
			TargetCount: tc,
		}
		if abbrID, ok := identifier.Companion(id, identifier.Name, identifier.Abbreviation); ok {
			m.AbbrSource = abbrByID[abbrID]
		}
		if m.Increased() {
			report.Increased = append(report.Increased, m)
		} else {
			report.Decreased = append(report.Decreased, m)
		}
	}

	logger.Info("comma list scan complete",
		logging.Int("increased", len(report.Increased)),
		logging.Int("decreased", len(report.Decreased)),
	)
	return report
}

const (
	increasedHeading = "### INCREASED LENGTH (target has MORE items than source) ###"
	decreasedHeading = "### DECREASED LENGTH (target has FEWER items than source) ###"
)

// RenderCommaLists formats the report as TSV with direction sections.
func RenderCommaLists(report CommaListReport, includeState bool) []byte {
	var b strings.Builder
	header := []string{"Abbr Source", "Name Source", "Name Target"}
	if includeState {
		header = append(header, "Target State")
	}
	b.WriteString(strings.Join(header, "\t"))
	b.WriteByte('\n')

	section := func(heading string, rows []Mismatch) {
		if len(rows) == 0 {
			return
		}
		b.WriteString("\n" + heading + "\n")
		for _, m := range rows {
			cols := []string{m.AbbrSource, m.NameSource, m.NameTarget}
			if includeState {
				cols = append(cols, string(m.TargetState))
			}
			b.WriteString(strings.Join(cols, "\t"))
			b.WriteByte('\n')
		}
	}
	section(increasedHeading, report.Increased)
	section(decreasedHeading, report.Decreased)
	return []byte(b.String())
}
