package xliff

import (
	"encoding/xml"
	"strings"
)

// Element is a decoded XML element.
type Element struct {
	Name  string
	Space string
	Attr  []xml.Attr
	nodes []node
}

// node is either a child element or a run of character data.
type node struct {
	elem *Element
	text string
}

// Attribute returns the value of the attribute with the given local name.
func (e *Element) Attribute(local string) string {
	v, _ := e.LookupAttribute(local)
	return v
}

// LookupAttribute reports the attribute value and whether it was present.
func (e *Element) LookupAttribute(local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.Attribute("id")
}

// Children returns the direct child elements in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	out := make([]*Element, 0, len(e.nodes))
	for _, n := range e.nodes {
		if n.elem != nil {
			out = append(out, n.elem)
		}
	}
	return out
}

// Child returns the first direct child with the given local name.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, n := range e.nodes {
		if n.elem != nil && n.elem.Name == name {
			return n.elem
		}
	}
	return nil
}

// Descendants returns every element below e with the given local name, in
// document order. e itself is not included.
func (e *Element) Descendants(name string) []*Element {
	var out []*Element
	e.walk(func(el *Element) {
		if el != e && el.Name == name {
			out = append(out, el)
		}
	})
	return out
}

func (e *Element) walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, n := range e.nodes {
		if n.elem != nil {
			n.elem.walk(fn)
		}
	}
}

// InnerText concatenates all character data below e and trims the result.
// A nil element yields "".
func (e *Element) InnerText() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.appendText(&b)
	return strings.TrimSpace(b.String())
}

func (e *Element) appendText(b *strings.Builder) {
	for _, n := range e.nodes {
		if n.elem != nil {
			n.elem.appendText(b)
			continue
		}
		b.WriteString(n.text)
	}
}
