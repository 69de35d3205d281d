// Package identifier classifies Crowdin trans-unit identifiers by suffix.
package identifier

import (
	"regexp"
	"strings"
)

// Category is the kind of content a trans-unit identifier refers to.
type Category int

const (
	Other Category = iota
	Name
	Description
	Question
	Abbreviation
)

const (
	suffixName        = "_Name"
	suffixDescription = "_Desc_0"
	suffixAbbr        = "_Abbr"
)

var questionPattern = regexp.MustCompile(`_Qs_\d+_Q$`)

// Classify returns the category of id. Checks run Name, Description,
// Question, Abbreviation; anything else is Other.
func Classify(id string) Category {
	switch {
	case strings.HasSuffix(id, suffixName):
		return Name
	case strings.HasSuffix(id, suffixDescription):
		return Description
	case questionPattern.MatchString(id):
		return Question
	case strings.HasSuffix(id, suffixAbbr):
		return Abbreviation
	default:
		return Other
	}
}

// Companion rewrites an identifier of one category into the identifier of the
// same domain in another, e.g. "1_2_Name" → "1_2_Abbr". It reports false when
// id does not end in a known suffix for from.
func Companion(id string, from, to Category) (string, bool) {
	fromSuffix, ok := suffixFor(from)
	if !ok || !strings.HasSuffix(id, fromSuffix) {
		return "", false
	}
	toSuffix, ok := suffixFor(to)
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(id, fromSuffix) + toSuffix, true
}

func suffixFor(cat Category) (string, bool) {
	switch cat {
	case Name:
		return suffixName, true
	case Description:
		return suffixDescription, true
	case Abbreviation:
		return suffixAbbr, true
	default:
		return "", false
	}
}

func (c Category) String() string {
	switch c {
	case Name:
		return "Name"
	case Description:
		return "Description"
	case Question:
		return "Question"
	case Abbreviation:
		return "Abbreviation"
	default:
		return "Other"
	}
}
