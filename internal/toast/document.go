// Package toast composes notification documents from request fields and
// serializes them to the XML form the platform notifier consumes.
package toast

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmptyDocument is returned when a raw document string is blank.
	ErrEmptyDocument = errors.New("empty notification document")
	// ErrMalformedDocument is returned when a raw document cannot be parsed.
	ErrMalformedDocument = errors.New("malformed notification document")
)

// Attr is a single named attribute. Order is significant and preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in a notification document: a tag name, ordered
// attributes, optional text content and ordered children.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr sets an attribute, replacing an existing value in place so the
// original attribute order is kept.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// AttrValue returns the value of the named attribute.
func (e *Element) AttrValue(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds child elements in order.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Document is an ordered tree with a single root element. It is built once
// per notification and discarded after submission.
type Document struct {
	Root *Element
}

// Find returns the first element with the given tag name in depth-first
// order, or nil when no such element exists.
func (d *Document) Find(name string) *Element {
	if d == nil || d.Root == nil {
		return nil
	}
	return findElement(d.Root, name)
}

func findElement(e *Element, name string) *Element {
	if e.Name == name {
		return e
	}
	for _, c := range e.Children {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// Texts returns the content of every "text" element in document order.
func (d *Document) Texts() []string {
	var texts []string
	if d == nil || d.Root == nil {
		return texts
	}
	var walk func(e *Element)
	walk = func(e *Element) {
		if e.Name == "text" {
			texts = append(texts, e.Text)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return texts
}

// XML serializes the document. Serialization is deterministic: elements and
// attributes appear exactly in insertion order.
func (d *Document) XML() (string, error) {
	if d == nil || d.Root == nil {
		return "", ErrEmptyDocument
	}
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := encodeElement(enc, d.Root); err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.String(), nil
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Parse reads a raw document string into a Document. A raw document is
// used as-is by the caller; Parse only guarantees well-formed XML with a
// single root element.
func Parse(s string) (*Document, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyDocument
	}

	dec := xml.NewDecoder(strings.NewReader(s))
	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedDocument)
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			// Indentation between elements is not content.
			if len(stack) > 0 && strings.TrimSpace(string(t)) != "" {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return &Document{Root: root}, nil
}
