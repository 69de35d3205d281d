package language

import (
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the English name for a BCP 47 or ISO 639 code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	tag, err := xlang.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}

// Label renders a tag as "<name> (<tag>)", e.g. "Brazilian Portuguese (pt-BR)".
func Label(tag xlang.Tag) string {
	if tag == xlang.Und {
		return "Unknown"
	}
	return DisplayName(tag.String()) + " (" + tag.String() + ")"
}
