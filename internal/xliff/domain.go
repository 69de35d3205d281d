package xliff

import (
	"strings"

	"xlftools/internal/identifier"
)

// Domain is a semantic-domain group: a <group> with a direct guid child.
type Domain struct {
	ID string
	// Abbr is the source text of the domain's direct _Abbr trans-unit.
	Abbr  string
	Units []TranslationUnit
}

// Find returns the last unit of the given category, mirroring how later
// entries overwrite earlier ones when a domain repeats a suffix.
func (d Domain) Find(cat identifier.Category) (TranslationUnit, bool) {
	var (
		found TranslationUnit
		ok    bool
	)
	for _, u := range d.Units {
		if identifier.Classify(u.Identifier()) == cat {
			found, ok = u, true
		}
	}
	return found, ok
}

// Domains returns the semantic-domain groups in document order.
func (d *Document) Domains() []Domain {
	var out []Domain
	for _, group := range d.Groups() {
		if !isDomainGroup(group) {
			continue
		}
		out = append(out, newDomain(group))
	}
	return out
}

func isDomainGroup(group *Element) bool {
	for _, child := range group.Children() {
		if strings.Contains(child.Name, "guid") {
			return true
		}
	}
	return false
}

func newDomain(group *Element) Domain {
	dom := Domain{ID: group.ID()}
	for _, child := range group.Children() {
		if child.Name != "trans-unit" {
			continue
		}
		unit := NewUnit(child)
		if identifier.Classify(unit.Identifier()) == identifier.Abbreviation {
			dom.Abbr = unit.Source
			break
		}
	}
	for _, child := range group.Children() {
		switch child.Name {
		case "trans-unit":
			dom.Units = append(dom.Units, NewUnit(child))
		case "group":
			// sub-possibility subtrees belong to other domains
			if strings.Contains(child.ID(), "_SubPos") {
				continue
			}
			for _, el := range child.Descendants("trans-unit") {
				dom.Units = append(dom.Units, NewUnit(el))
			}
		}
	}
	return dom
}
