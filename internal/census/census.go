// Package census counts _Name and _Desc_0 trans-units under the _Poss group
// by target state.
package census

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"xlftools/internal/identifier"
	"xlftools/internal/logging"
	"xlftools/internal/textutil"
	"xlftools/internal/xliff"
)

// ErrNoPossGroup is returned when the document has no group whose id contains _Poss.
var ErrNoPossGroup = errors.New("no _Poss group found in file")

const (
	// NoState labels targets without a state attribute.
	NoState = "(no state)"
	// NoTarget labels units without a <target> element.
	NoTarget = "(no target)"
)

// StateCount is the number of units in one state.
type StateCount struct {
	State   string  `json:"state"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Tally is a per-state breakdown ordered alphabetically by state.
type Tally struct {
	Total  int          `json:"total"`
	States []StateCount `json:"states"`
}

// Section holds the name and description tallies for one group.
type Section struct {
	ID           string `json:"id"`
	Names        Tally  `json:"names"`
	Descriptions Tally  `json:"descriptions"`
}

// Empty reports whether the section counted nothing.
func (s Section) Empty() bool {
	return s.Names.Total == 0 && s.Descriptions.Total == 0
}

// Report is the result of Count.
type Report struct {
	PossGroup  string    `json:"poss_group"`
	Children   []Section `json:"children"`
	Totals     Section   `json:"totals"`
	GrandTotal int       `json:"grand_total"`
}

type counts map[string]int

// Count tallies the immediate children of the first _Poss group in doc.
// Children are naturally ordered by id; children sharing an id are merged.
func Count(doc *xliff.Document, logger *slog.Logger) (Report, error) {
	logger = logging.NewComponentLogger(logger, "census")

	var poss *xliff.Element
	for _, group := range doc.Groups() {
		if strings.Contains(group.ID(), "_Poss") {
			poss = group
			break
		}
	}
	if poss == nil {
		return Report{}, ErrNoPossGroup
	}

	type pair struct{ names, descs counts }
	byChild := make(map[string]*pair)
	var order []string
	totals := pair{names: counts{}, descs: counts{}}

	for _, child := range poss.Children() {
		if child.Name != "group" {
			continue
		}
		id := child.ID()
		p, ok := byChild[id]
		if !ok {
			p = &pair{names: counts{}, descs: counts{}}
			byChild[id] = p
			order = append(order, id)
		}
		for _, el := range child.Descendants("trans-unit") {
			state := stateLabel(el)
			switch identifier.Classify(el.ID()) {
			case identifier.Name:
				p.names[state]++
				totals.names[state]++
			case identifier.Description:
				p.descs[state]++
				totals.descs[state]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return textutil.NaturalLess(order[i], order[j])
	})

	report := Report{PossGroup: poss.ID()}
	for _, id := range order {
		p := byChild[id]
		report.Children = append(report.Children, Section{
			ID:           id,
			Names:        tally(p.names),
			Descriptions: tally(p.descs),
		})
	}
	report.Totals = Section{ID: "totals", Names: tally(totals.names), Descriptions: tally(totals.descs)}
	report.GrandTotal = report.Totals.Names.Total + report.Totals.Descriptions.Total

	logger.Info("state census complete",
		logging.String("poss_group", report.PossGroup),
		logging.Int("children", len(report.Children)),
		logging.Int("grand_total", report.GrandTotal),
	)
	return report, nil
}

func stateLabel(unit *xliff.Element) string {
	target := unit.Child("target")
	if target == nil {
		return NoTarget
	}
	state, ok := target.LookupAttribute("state")
	if !ok {
		return NoState
	}
	return state
}

func tally(c counts) Tally {
	var t Tally
	for _, n := range c {
		t.Total += n
	}
	states := make([]string, 0, len(c))
	for s := range c {
		states = append(states, s)
	}
	sort.Strings(states)
	for _, s := range states {
		t.States = append(t.States, StateCount{
			State:   s,
			Count:   c[s],
			Percent: float64(c[s]) / float64(t.Total) * 100,
		})
	}
	return t
}
