package xliff

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound is returned when an input file does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrEmptyDocument is returned when the input holds no root element.
	ErrEmptyDocument = errors.New("document has no root element")
)

// Document is a parsed XLF/XLIFF file.
type Document struct {
	Path string
	Root *Element
}

// ParseFile opens and parses the XLIFF file at path. A missing file yields an
// error wrapping ErrNotFound.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a complete document. Malformed XML fails the whole parse.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Space: t.Name.Space, Attr: copyAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.nodes = append(parent.nodes, node{elem: el})
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			parent.nodes = append(parent.nodes, node{text: string(t)})
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return &Document{Root: root}, nil
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// TargetLanguage returns the target-language of the first <file> element.
func (d *Document) TargetLanguage() (language.Tag, bool) {
	for _, file := range d.Root.Descendants("file") {
		raw := file.Attribute("target-language")
		if raw == "" {
			continue
		}
		tag, err := language.Parse(raw)
		if err != nil {
			return language.Und, false
		}
		return tag, true
	}
	return language.Und, false
}
