// Package svg provides a small element tree for composing SVG fragments.
//
// Elements wrap etree nodes. Attributes keep their insertion order so
// serialized output is byte-for-byte deterministic for a given tree.
package svg

import (
	"io"

	"github.com/beevik/etree"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Declaration is the XML preamble written ahead of standalone documents.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// A is shorthand for constructing an Attr.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Element is an SVG node: a primitive shape, a group, or a text-bearing element
// such as <style> or <title>.
type Element struct {
	node *etree.Element
}

// New creates an element with the given attributes.
func New(name string, attrs ...Attr) *Element {
	e := &Element{node: etree.NewElement(name)}
	for _, a := range attrs {
		e.node.CreateAttr(a.Name, a.Value)
	}
	return e
}

// Group creates a <g> element.
func Group(attrs ...Attr) *Element {
	return New("g", attrs...)
}

func wrap(node *etree.Element) *Element {
	return &Element{node: node}
}

// Name returns the tag name.
func (e *Element) Name() string {
	return e.node.Tag
}

// Append adds children in order and returns e for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.node.AddChild(c.node)
		}
	}
	return e
}

// Children returns the child elements in order.
func (e *Element) Children() []*Element {
	nodes := e.node.ChildElements()
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = wrap(n)
	}
	return out
}

// WithText sets the character data of e and returns it.
func (e *Element) WithText(text string) *Element {
	e.node.SetText(text)
	return e
}

// Text returns the character data directly inside e.
func (e *Element) Text() string {
	return e.node.Text()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	a := e.node.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Attrs returns the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.node.Attr))
	for i, a := range e.node.Attr {
		out[i] = Attr{Name: a.FullKey(), Value: a.Value}
	}
	return out
}

// Set replaces the named attribute, appending it when absent.
func (e *Element) Set(name, value string) {
	e.node.CreateAttr(name, value)
}

// ID returns the id attribute, or "" when unset.
func (e *Element) ID() string {
	return e.node.SelectAttrValue("id", "")
}

// String serializes e as markup.
func (e *Element) String() string {
	doc := etree.NewDocument()
	doc.AddChild(e.node.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		// in-memory writes never fail
		panic(err)
	}
	return s
}

// WriteTo implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}

// Document serializes root as a standalone document with the XML declaration.
func Document(root *Element) string {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.AddChild(etree.NewText("\n"))
	doc.AddChild(root.node.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		panic(err)
	}
	return s
}
