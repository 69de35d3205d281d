package xliff

// State is the workflow state carried by a <target> element.
type State string

const (
	StateNone             State = ""
	StateFinal            State = "final"
	StateTranslated       State = "translated"
	StateNeedsTranslation State = "needs-translation"
)

// TranslationUnit is an immutable view of one <trans-unit>.
type TranslationUnit struct {
	ID       string
	Resname  string
	Source   string
	Target   string
	State    State
	Approved bool
	// Translatable is false only for translate="no".
	Translatable bool
	HasSource    bool
	HasTarget    bool
}

// Identifier returns resname when present (XLIFF exports) and id otherwise
// (XLF downloads).
func (u TranslationUnit) Identifier() string {
	if u.Resname != "" {
		return u.Resname
	}
	return u.ID
}

// NewUnit builds a TranslationUnit from a trans-unit element.
func NewUnit(el *Element) TranslationUnit {
	source := el.Child("source")
	target := el.Child("target")
	return TranslationUnit{
		ID:           el.Attribute("id"),
		Resname:      el.Attribute("resname"),
		Source:       source.InnerText(),
		Target:       target.InnerText(),
		State:        State(target.Attribute("state")),
		Approved:     el.Attribute("approved") == "yes",
		Translatable: el.Attribute("translate") != "no",
		HasSource:    source != nil,
		HasTarget:    target != nil,
	}
}

// Units returns every trans-unit in the document, in document order.
func (d *Document) Units() []TranslationUnit {
	elems := d.Root.Descendants("trans-unit")
	units := make([]TranslationUnit, 0, len(elems))
	for _, el := range elems {
		units = append(units, NewUnit(el))
	}
	return units
}

// Groups returns every <group> element, in document order.
func (d *Document) Groups() []*Element {
	return d.Root.Descendants("group")
}
