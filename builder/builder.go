// Package builder assembles parser events into document element trees
// and provides the whole-document parsing entry points.
package builder

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andaru/sxml/document"
	"github.com/andaru/sxml/parser"
	"github.com/andaru/sxml/xmlutil"
)

// Structural build errors. They carry no position: they are detected
// after tokenization, from the event sequence alone.
var (
	// ErrNoElement indicates the event stream ended before a root
	// element was opened and closed.
	ErrNoElement = errors.New("no root element found")
	// ErrMismatchedTag indicates a close tag not matching the open
	// element's name or namespace.
	ErrMismatchedTag = errors.New("mismatched close tag")
	// ErrUnexpectedClose indicates a close tag with no element open.
	ErrUnexpectedClose = errors.New("close tag with no open element")
	// ErrExtraContent indicates content after the document root closed.
	ErrExtraContent = errors.New("content after document root")
)

// Builder reduces a sequence of parser events to a single element
// tree. It is a pure reducer: the same event sequence always yields
// the same tree or the same error, with no state beyond the explicit
// element stack.
//
// Content arriving before the root element opens (an XML declaration,
// comments, whitespace) is discarded. Any event fed after the root
// element has closed is ErrExtraContent.
type Builder struct {
	stack    []*document.Element
	defaults []string // default namespace per open element, innermost last
	root     *document.Element
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Done reports whether the document's root element has been completed.
func (b *Builder) Done() bool { return b.root != nil }

// Root returns the completed root element, or nil.
func (b *Builder) Root() *document.Element { return b.root }

// Feed consumes one event. When the event completes the document's
// root element, Feed returns it; otherwise it returns (nil, nil) and
// expects further events. A structural error is terminal for the
// build.
func (b *Builder) Feed(ev parser.Event) (*document.Element, error) {
	if b.root != nil {
		return nil, errors.WithStack(ErrExtraContent)
	}
	switch ev := ev.(type) {
	case parser.StartElement:
		el := document.NewElement(ev.Local, ev.Space)
		el.Attr = ev.Attr

		def := b.currentDefault()
		if v, ok := el.Attr.Get(xmlutil.Name{Local: "xmlns"}); ok {
			def = v
		}
		el.SetDefaultNamespace(def)
		b.defaults = append(b.defaults, def)

		for _, a := range el.Attr.Attrs() {
			if a.Name.Space == xmlutil.XMLNSNamespace {
				el.DeclarePrefix(a.Value, a.Name.Local)
			}
		}
		b.stack = append(b.stack, el)

	case parser.EndElement:
		if len(b.stack) == 0 {
			return nil, errors.WithStack(ErrUnexpectedClose)
		}
		el := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.defaults = b.defaults[:len(b.defaults)-1]
		if el.Local != ev.Local || el.Space != ev.Space {
			return nil, errors.WithStack(ErrMismatchedTag)
		}
		if len(b.stack) == 0 {
			b.root = el
			return el, nil
		}
		b.stack[len(b.stack)-1].TagStay(el)

	case parser.CharData:
		if top := b.top(); top != nil {
			top.AppendText(string(ev))
		}
	case parser.CData:
		if top := b.top(); top != nil {
			top.AppendCData(string(ev))
		}
	case parser.Comment:
		if top := b.top(); top != nil {
			top.AppendComment(string(ev))
		}
	case parser.ProcInst:
		if top := b.top(); top != nil {
			top.AppendProcInst(string(ev))
		}
	}
	return nil, nil
}

func (b *Builder) top() *document.Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) currentDefault() string {
	if len(b.defaults) == 0 {
		return ""
	}
	return b.defaults[len(b.defaults)-1]
}

// Parse reads one complete XML document from r and returns its root
// element. It stops pulling events once the root element closes.
// Lexical errors surface as *parser.ParseError; structural errors as
// the builder's sentinel errors.
func Parse(r io.Reader, opts ...parser.Option) (*document.Element, error) {
	p := parser.NewParser(r, opts...)
	b := NewBuilder()
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return nil, errors.WithStack(ErrNoElement)
		}
		if err != nil {
			return nil, err
		}
		root, err := b.Feed(ev)
		if err != nil {
			return nil, err
		}
		if root != nil {
			return root, nil
		}
	}
}

// ParseString parses a complete in-memory XML document.
func ParseString(s string, opts ...parser.Option) (*document.Element, error) {
	return Parse(strings.NewReader(s), opts...)
}
