package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andaru/sxml/entity"
	"github.com/andaru/sxml/xmlutil"
)

// WriteTo renders the element as XML text to w, implementing
// io.WriterTo. Attributes render in the node's stored order with
// single-quoted, escaped values; namespace prefixes and xmlns
// declarations are re-derived from the tree.
//
// A namespace referenced by the tree with no prefix declared on the
// path to it indicates a malformed tree and returns an error.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	r := &renderer{w: w}
	if err := r.element(e, nil, xmlutil.PrefixMap{}); err != nil {
		return r.n, err
	}
	return r.n, r.err
}

// String renders the element as XML text. It panics if the tree
// references a namespace with no declared prefix; trees produced by
// the builder are always renderable.
func (e *Element) String() string {
	var b strings.Builder
	if _, err := e.WriteTo(&b); err != nil {
		panic(err)
	}
	return b.String()
}

// renderer accumulates write progress; after the first write error all
// further output is discarded.
type renderer struct {
	w   io.Writer
	n   int64
	err error
}

func (r *renderer) str(s string) {
	if r.err != nil {
		return
	}
	n, err := io.WriteString(r.w, s)
	r.n += int64(n)
	r.err = err
}

func (r *renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	n, err := fmt.Fprintf(r.w, format, args...)
	r.n += int64(n)
	r.err = err
}

func (r *renderer) element(e, parent *Element, prefixes xmlutil.PrefixMap) error {
	prefixes = prefixes.Extend(e.prefixes)

	// A name outside the element's default namespace needs a prefix.
	prefixed := e.Space != e.defaultNS
	if prefixed {
		prefix, ok := prefixes.Prefix(e.Space)
		if !ok {
			return errors.Errorf("document: no prefix declared for namespace %q", e.Space)
		}
		r.printf("<%s:%s", prefix, e.Local)
	} else {
		r.printf("<%s", e.Local)
	}

	// Declare the default namespace where it changes, unless the
	// element already carries an explicit xmlns attribute.
	if !e.hasXmlnsAttr() {
		switch {
		case parent == nil && e.defaultNS != "":
			r.printf(" xmlns='%s'", e.defaultNS)
		case parent != nil && parent.defaultNS != e.defaultNS:
			r.printf(" xmlns='%s'", e.defaultNS)
		}
	}

	for _, a := range e.Attr.Attrs() {
		if a.Name.Space != "" {
			prefix, ok := prefixes.Prefix(a.Name.Space)
			if !ok {
				return errors.Errorf("document: no prefix declared for attribute namespace %q", a.Name.Space)
			}
			r.printf(" %s:%s='%s'", prefix, a.Name.Local, entity.Escape(a.Value))
		} else {
			r.printf(" %s='%s'", a.Name.Local, entity.Escape(a.Value))
		}
	}

	if len(e.Nodes) == 0 {
		r.str("/>")
		return nil
	}
	r.str(">")
	for _, n := range e.Nodes {
		switch n := n.(type) {
		case *Element:
			if err := r.element(n, e, prefixes); err != nil {
				return err
			}
		case Text:
			r.str(entity.Escape(string(n)))
		case CData:
			r.printf("<![CDATA[%s]]>", string(n))
		case Comment:
			r.printf("<!--%s-->", string(n))
		case ProcInst:
			r.printf("<?%s?>", string(n))
		default:
			panic(errors.Errorf("document: impossible node type %T", n))
		}
	}
	if prefixed {
		// the opening tag resolved this prefix already
		prefix, _ := prefixes.Prefix(e.Space)
		r.printf("</%s:%s>", prefix, e.Local)
	} else {
		r.printf("</%s>", e.Local)
	}
	return nil
}

func (e *Element) hasXmlnsAttr() bool {
	for _, a := range e.Attr.Attrs() {
		if a.Name.Local == "xmlns" {
			return true
		}
	}
	return false
}
