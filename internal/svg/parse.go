package svg

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// ErrEmptyDocument is returned by Parse when the input holds no element.
var ErrEmptyDocument = errors.New("document has no root element")

// Parse reads markup back into an element tree. Namespace prefixes are kept
// in tag and attribute names as written.
func Parse(markup string) (*Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	switch roots := doc.ChildElements(); len(roots) {
	case 0:
		return nil, ErrEmptyDocument
	case 1:
		return wrap(roots[0]), nil
	default:
		return nil, fmt.Errorf("parse svg: multiple root elements")
	}
}

// Find returns every descendant of e (excluding e) named name, in document
// order.
func (e *Element) Find(name string) []*Element {
	var out []*Element
	for _, c := range e.node.ChildElements() {
		if c.Tag == name {
			out = append(out, wrap(c))
		}
		out = append(out, wrap(c).Find(name)...)
	}
	return out
}

// ChildrenNamed returns the direct children of e named name.
func (e *Element) ChildrenNamed(name string) []*Element {
	nodes := e.node.SelectElements(name)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = wrap(n)
	}
	return out
}
