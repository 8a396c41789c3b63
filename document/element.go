package document

import (
	"github.com/andaru/sxml/xmlutil"
)

// Node is one child node of an Element. It is a closed set: a nested
// *Element, character Text, a CData section, a Comment or a ProcInst.
type Node interface {
	isNode()
}

// Text is entity-unescaped character data. It renders escaped.
type Text string

// CData renders as a literal CDATA section.
type CData string

// Comment renders as "<!--" content "-->".
type Comment string

// ProcInst renders as "<?" content "?>".
type ProcInst string

func (*Element) isNode() {}
func (Text) isNode()     {}
func (CData) isNode()    {}
func (Comment) isNode()  {}
func (ProcInst) isNode() {}

// Element is a single XML element: a named, optionally namespaced node
// carrying attributes and an ordered list of child nodes.
//
// Create Elements with NewElement or via builder.Parse; the zero value
// is not usable.
type Element struct {
	// Local is the element's local name.
	Local string
	// Space is the element's resolved namespace URI, empty for none.
	Space string
	// Attr holds the element's attributes keyed by resolved name.
	Attr *xmlutil.AttrMap
	// Nodes holds the element's child nodes in document order.
	Nodes []Node

	// prefixes records the prefixes this element itself declares
	// (namespace URI to prefix), used when re-serializing.
	prefixes xmlutil.PrefixMap
	// defaultNS is the default namespace in effect at this element's
	// declaration; names in it render unprefixed.
	defaultNS string
}

// NewElement returns a detached element with the given local name,
// namespace and attributes. The namespace also becomes the element's
// default namespace, so its name renders unprefixed.
func NewElement(local, space string, attrs ...xmlutil.Attr) *Element {
	e := &Element{
		Local:     local,
		Space:     space,
		Attr:      xmlutil.NewAttrMap(),
		prefixes:  xmlutil.NewPrefixMap(),
		defaultNS: space,
	}
	for _, a := range attrs {
		e.Attr.Set(a.Name, a.Value)
	}
	return e
}

// DeclarePrefix records that this element declares prefix for the
// namespace URI, for use when the element is re-serialized.
func (e *Element) DeclarePrefix(nsURI, prefix string) {
	if e.prefixes == nil {
		e.prefixes = xmlutil.NewPrefixMap()
	}
	e.prefixes.Bind(nsURI, prefix)
}

// SetDefaultNamespace sets the default (unprefixed) namespace in
// effect at this element's declaration.
func (e *Element) SetDefaultNamespace(nsURI string) { e.defaultNS = nsURI }

// DefaultNamespace returns the element's default namespace.
func (e *Element) DefaultNamespace() string { return e.defaultNS }

// Attribute returns the value of the attribute with the given local
// name and namespace.
func (e *Element) Attribute(local, space string) (string, bool) {
	return e.Attr.Get(xmlutil.Name{Local: local, Space: space})
}

// SetAttribute sets the attribute with the given local name and
// namespace, returning the previous value if one was present.
func (e *Element) SetAttribute(local, space, value string) (prev string, replaced bool) {
	return e.Attr.Set(xmlutil.Name{Local: local, Space: space}, value)
}

// RemoveAttribute removes the attribute with the given local name and
// namespace, returning its value if it was present.
func (e *Element) RemoveAttribute(local, space string) (string, bool) {
	return e.Attr.Remove(xmlutil.Name{Local: local, Space: space})
}

// SelectElement returns the first child element with the given local
// name and namespace, or nil if there is none.
func (e *Element) SelectElement(local, space string) *Element {
	for _, n := range e.Nodes {
		if child, ok := n.(*Element); ok && child.Local == local && child.Space == space {
			return child
		}
	}
	return nil
}

// SelectElements returns all direct child elements with the given
// local name and namespace, in document order.
func (e *Element) SelectElements(local, space string) []*Element {
	var out []*Element
	for _, n := range e.Nodes {
		if child, ok := n.(*Element); ok && child.Local == local && child.Space == space {
			out = append(out, child)
		}
	}
	return out
}

// Content returns the concatenation of all Text and CData beneath the
// element in document order, skipping comments, processing
// instructions and attributes.
func (e *Element) Content() string {
	var out []byte
	for _, n := range e.Nodes {
		switch n := n.(type) {
		case *Element:
			out = append(out, n.Content()...)
		case Text:
			out = append(out, n...)
		case CData:
			out = append(out, n...)
		}
	}
	return string(out)
}

// Tag appends child and returns it, for fluently building the child's
// descendants. The handle is valid until the parent's child list is
// restructured.
func (e *Element) Tag(child *Element) *Element {
	e.Nodes = append(e.Nodes, child)
	return child
}

// TagStay appends child and returns e, for fluently appending
// siblings.
func (e *Element) TagStay(child *Element) *Element {
	e.Nodes = append(e.Nodes, child)
	return e
}

// AppendText appends character data and returns e.
func (e *Element) AppendText(text string) *Element {
	e.Nodes = append(e.Nodes, Text(text))
	return e
}

// AppendCData appends a CDATA section and returns e.
func (e *Element) AppendCData(text string) *Element {
	e.Nodes = append(e.Nodes, CData(text))
	return e
}

// AppendComment appends a comment and returns e.
func (e *Element) AppendComment(text string) *Element {
	e.Nodes = append(e.Nodes, Comment(text))
	return e
}

// AppendProcInst appends a processing instruction and returns e.
func (e *Element) AppendProcInst(text string) *Element {
	e.Nodes = append(e.Nodes, ProcInst(text))
	return e
}
