package testsupport

import (
	"encoding/xml"
	"strings"
)

// Unit describes a trans-unit in a generated fixture.
type Unit struct {
	ID       string
	Resname  string
	Source   string
	Target   string
	State    string
	NoTarget bool
	Approved bool
	// Translate is written verbatim as translate="..." when set.
	Translate string
}

// Group describes a <group> in a generated fixture. A non-empty GUID marks it
// as a semantic domain.
type Group struct {
	ID     string
	GUID   string
	Units  []Unit
	Groups []Group
}

const (
	xliffOpen = `<?xml version="1.0" encoding="UTF-8"?>
<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2" xmlns:sil="http://www.sil.org/computing/schemas/semdom" version="1.2">
  <file original="SemanticDomains.xml" source-language="en" target-language="pt-BR" datatype="plaintext">
    <body>
`
	xliffClose = `    </body>
  </file>
</xliff>
`
)

// XLF renders a namespaced XLIFF 1.2 document holding groups.
func XLF(groups ...Group) string {
	var b strings.Builder
	b.WriteString(xliffOpen)
	for _, g := range groups {
		writeGroup(&b, g, 3)
	}
	b.WriteString(xliffClose)
	return b.String()
}

// Export renders a flat XLIFF document like Crowdin's export endpoint.
func Export(units ...Unit) string {
	var b strings.Builder
	b.WriteString(xliffOpen)
	for _, u := range units {
		writeUnit(&b, u, 3)
	}
	b.WriteString(xliffClose)
	return b.String()
}

func writeGroup(b *strings.Builder, g Group, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + `<group id="` + escape(g.ID) + `">` + "\n")
	if g.GUID != "" {
		b.WriteString(indent + "  <sil:guid>" + escape(g.GUID) + "</sil:guid>\n")
	}
	for _, u := range g.Units {
		writeUnit(b, u, depth+1)
	}
	for _, child := range g.Groups {
		writeGroup(b, child, depth+1)
	}
	b.WriteString(indent + "</group>\n")
}

func writeUnit(b *strings.Builder, u Unit, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + `<trans-unit id="` + escape(u.ID) + `"`)
	if u.Resname != "" {
		b.WriteString(` resname="` + escape(u.Resname) + `"`)
	}
	if u.Approved {
		b.WriteString(` approved="yes"`)
	}
	if u.Translate != "" {
		b.WriteString(` translate="` + escape(u.Translate) + `"`)
	}
	b.WriteString(">\n")
	b.WriteString(indent + "  <source>" + escape(u.Source) + "</source>\n")
	if !u.NoTarget {
		b.WriteString(indent + "  <target")
		if u.State != "" {
			b.WriteString(` state="` + escape(u.State) + `"`)
		}
		b.WriteString(">" + escape(u.Target) + "</target>\n")
	}
	b.WriteString(indent + "</trans-unit>\n")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Domain builds a semantic-domain group with the usual Crowdin layout: the
// _Abbr and _Name units as direct children and the _Desc_0 unit nested in a
// _Desc group. Empty name or description texts omit those units.
func Domain(id, abbr, name, nameTarget, desc, descTarget string) Group {
	g := Group{ID: id, GUID: "guid-" + id}
	g.Units = append(g.Units, Unit{ID: id + "_Abbr", Source: abbr, Target: abbr, State: "final"})
	if name != "" {
		g.Units = append(g.Units, Unit{ID: id + "_Name", Source: name, Target: nameTarget, State: "translated"})
	}
	if desc != "" {
		g.Groups = append(g.Groups, Group{
			ID:    id + "_Desc",
			Units: []Unit{{ID: id + "_Desc_0", Source: desc, Target: descTarget, State: "translated"}},
		})
	}
	return g
}
